// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xdr

type MemoType int32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeId     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

// MaxMemoTextSize is the limit on memo text in bytes, not characters
const MaxMemoTextSize = 28

type Memo struct {
	Type    MemoType
	Text    *string
	Id      *uint64
	Hash    *Hash
	RetHash *Hash
}

func (m *Memo) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(m.Type)); err != nil {
		return err
	}
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		if m.Text == nil {
			return missingArm("MemoType", int32(m.Type))
		}
		return e.EncodeString(*m.Text, MaxMemoTextSize)
	case MemoTypeId:
		if m.Id == nil {
			return missingArm("MemoType", int32(m.Type))
		}
		return e.EncodeUint64(*m.Id)
	case MemoTypeHash:
		if m.Hash == nil {
			return missingArm("MemoType", int32(m.Type))
		}
		return m.Hash.EncodeTo(e)
	case MemoTypeReturn:
		if m.RetHash == nil {
			return missingArm("MemoType", int32(m.Type))
		}
		return m.RetHash.EncodeTo(e)
	}
	return unionError("MemoType", int32(m.Type))
}

func (m *Memo) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*m = Memo{Type: MemoType(t)}
	switch m.Type {
	case MemoTypeNone:
		return nil
	case MemoTypeText:
		text, err := d.DecodeString(MaxMemoTextSize)
		if err != nil {
			return err
		}
		m.Text = &text
		return nil
	case MemoTypeId:
		id, err := d.DecodeUint64()
		if err != nil {
			return err
		}
		m.Id = &id
		return nil
	case MemoTypeHash:
		m.Hash = new(Hash)
		return m.Hash.DecodeFrom(d)
	case MemoTypeReturn:
		m.RetHash = new(Hash)
		return m.RetHash.DecodeFrom(d)
	}
	return unionError("MemoType", t)
}
