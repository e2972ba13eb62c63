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

type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

func (t *TimeBounds) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint64(t.MinTime); err != nil {
		return err
	}
	return e.EncodeUint64(t.MaxTime)
}

func (t *TimeBounds) DecodeFrom(d *Decoder) error {
	var err error
	if t.MinTime, err = d.DecodeUint64(); err != nil {
		return err
	}
	t.MaxTime, err = d.DecodeUint64()
	return err
}

type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

func (l *LedgerBounds) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint32(l.MinLedger); err != nil {
		return err
	}
	return e.EncodeUint32(l.MaxLedger)
}

func (l *LedgerBounds) DecodeFrom(d *Decoder) error {
	var err error
	if l.MinLedger, err = d.DecodeUint32(); err != nil {
		return err
	}
	l.MaxLedger, err = d.DecodeUint32()
	return err
}

const MaxExtraSigners = 2

type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *int64
	MinSeqAge       uint64
	MinSeqLedgerGap uint32
	ExtraSigners    []SignerKey
}

func (p *PreconditionsV2) EncodeTo(e *Encoder) error {
	if err := encodeOptional(e, p.TimeBounds); err != nil {
		return err
	}
	if err := encodeOptional(e, p.LedgerBounds); err != nil {
		return err
	}
	if err := e.EncodeBool(p.MinSeqNum != nil); err != nil {
		return err
	}
	if p.MinSeqNum != nil {
		if err := e.EncodeInt64(*p.MinSeqNum); err != nil {
			return err
		}
	}
	if err := e.EncodeUint64(p.MinSeqAge); err != nil {
		return err
	}
	if err := e.EncodeUint32(p.MinSeqLedgerGap); err != nil {
		return err
	}
	return encodeList(e, p.ExtraSigners, MaxExtraSigners)
}

func (p *PreconditionsV2) DecodeFrom(d *Decoder) error {
	var err error
	if p.TimeBounds, err = decodeOptional[TimeBounds](d); err != nil {
		return err
	}
	if p.LedgerBounds, err = decodeOptional[LedgerBounds](d); err != nil {
		return err
	}
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	if present {
		seq, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		p.MinSeqNum = &seq
	}
	if p.MinSeqAge, err = d.DecodeUint64(); err != nil {
		return err
	}
	if p.MinSeqLedgerGap, err = d.DecodeUint32(); err != nil {
		return err
	}
	p.ExtraSigners, err = decodeList[SignerKey](d, MaxExtraSigners)
	return err
}

type PreconditionType int32

const (
	PreconditionTypeNone PreconditionType = 0
	PreconditionTypeTime PreconditionType = 1
	PreconditionTypeV2   PreconditionType = 2
)

type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

// Bounds returns the time bounds regardless of which arm carries them
func (p Preconditions) Bounds() *TimeBounds {
	switch p.Type {
	case PreconditionTypeTime:
		return p.TimeBounds
	case PreconditionTypeV2:
		if p.V2 != nil {
			return p.V2.TimeBounds
		}
	}
	return nil
}

func (p *Preconditions) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case PreconditionTypeNone:
		return nil
	case PreconditionTypeTime:
		if p.TimeBounds == nil {
			return missingArm("PreconditionType", int32(p.Type))
		}
		return p.TimeBounds.EncodeTo(e)
	case PreconditionTypeV2:
		if p.V2 == nil {
			return missingArm("PreconditionType", int32(p.Type))
		}
		return p.V2.EncodeTo(e)
	}
	return unionError("PreconditionType", int32(p.Type))
}

func (p *Preconditions) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*p = Preconditions{Type: PreconditionType(t)}
	switch p.Type {
	case PreconditionTypeNone:
		return nil
	case PreconditionTypeTime:
		p.TimeBounds = new(TimeBounds)
		return p.TimeBounds.DecodeFrom(d)
	case PreconditionTypeV2:
		p.V2 = new(PreconditionsV2)
		return p.V2.DecodeFrom(d)
	}
	return unionError("PreconditionType", t)
}
