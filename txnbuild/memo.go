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

package txnbuild

import (
	"fmt"
	"strconv"

	"github.com/blinklabs-io/gostellar/xdr"
)

// Memo is attached to a transaction. A nil Memo encodes as MEMO_NONE
type Memo interface {
	ToXDR() (xdr.Memo, error)
}

// MemoText is at most 28 bytes of text
type MemoText string

// MemoID is a 64-bit unsigned id
type MemoID uint64

// MemoHash is a 32-byte hash
type MemoHash [32]byte

// MemoReturn is the 32-byte hash of a transaction being refunded
type MemoReturn [32]byte

// NewMemoText validates the byte length of text
func NewMemoText(text string) (MemoText, error) {
	if len(text) > xdr.MaxMemoTextSize {
		return "", fmt.Errorf(
			"%w: text is %d bytes, maximum is %d",
			ErrInvalidMemo,
			len(text),
			xdr.MaxMemoTextSize,
		)
	}
	return MemoText(text), nil
}

// NewMemoID parses a decimal memo id
func NewMemoID(id string) (MemoID, error) {
	v, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a 64-bit unsigned integer", ErrInvalidMemo, id)
	}
	return MemoID(v), nil
}

func (m MemoText) ToXDR() (xdr.Memo, error) {
	text, err := NewMemoText(string(m))
	if err != nil {
		return xdr.Memo{}, err
	}
	s := string(text)
	return xdr.Memo{Type: xdr.MemoTypeText, Text: &s}, nil
}

func (m MemoID) ToXDR() (xdr.Memo, error) {
	id := uint64(m)
	return xdr.Memo{Type: xdr.MemoTypeId, Id: &id}, nil
}

func (m MemoID) String() string {
	return strconv.FormatUint(uint64(m), 10)
}

func (m MemoHash) ToXDR() (xdr.Memo, error) {
	hash := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeHash, Hash: &hash}, nil
}

func (m MemoReturn) ToXDR() (xdr.Memo, error) {
	hash := xdr.Hash(m)
	return xdr.Memo{Type: xdr.MemoTypeReturn, RetHash: &hash}, nil
}

func memoToXDR(m Memo) (xdr.Memo, error) {
	if m == nil {
		return xdr.Memo{Type: xdr.MemoTypeNone}, nil
	}
	return m.ToXDR()
}

func memoFromXDR(m xdr.Memo) (Memo, error) {
	switch {
	case m.Type == xdr.MemoTypeNone:
		return nil, nil
	case m.Type == xdr.MemoTypeText && m.Text != nil:
		return MemoText(*m.Text), nil
	case m.Type == xdr.MemoTypeId && m.Id != nil:
		return MemoID(*m.Id), nil
	case m.Type == xdr.MemoTypeHash && m.Hash != nil:
		return MemoHash(*m.Hash), nil
	case m.Type == xdr.MemoTypeReturn && m.RetHash != nil:
		return MemoReturn(*m.RetHash), nil
	}
	return nil, fmt.Errorf("%w: unsupported memo type %d", ErrInvalidMemo, m.Type)
}
