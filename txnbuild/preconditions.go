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
	"time"

	"github.com/blinklabs-io/gostellar/xdr"
)

// TimeoutInfinite leaves the upper time bound open
const TimeoutInfinite uint64 = 0

// TimeBounds limits the ledger close times, in unix seconds, during which a
// transaction is valid. A MaxTime of zero means no upper bound
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

// NewTimebounds returns bounds between minTime and maxTime
func NewTimebounds(minTime, maxTime uint64) TimeBounds {
	return TimeBounds{MinTime: minTime, MaxTime: maxTime}
}

// NewTimeout returns bounds that expire timeout seconds from now
func NewTimeout(timeout uint64) TimeBounds {
	if timeout == TimeoutInfinite {
		return NewInfiniteTimeout()
	}
	// #nosec G115
	now := uint64(time.Now().UTC().Unix())
	return TimeBounds{MaxTime: now + timeout}
}

// NewInfiniteTimeout returns bounds with no restriction
func NewInfiniteTimeout() TimeBounds {
	return TimeBounds{}
}

func (tb TimeBounds) Validate() error {
	if tb.MaxTime != 0 && tb.MaxTime < tb.MinTime {
		return fmt.Errorf(
			"%w: max time %d is before min time %d",
			ErrInvalidTimeBounds,
			tb.MaxTime,
			tb.MinTime,
		)
	}
	return nil
}

func (tb TimeBounds) toXDR() *xdr.TimeBounds {
	return &xdr.TimeBounds{
		MinTime: tb.MinTime,
		MaxTime: tb.MaxTime,
	}
}

// LedgerBounds limits the ledger sequence numbers in which a transaction is
// valid. A MaxLedger of zero means no upper bound
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

func (lb LedgerBounds) Validate() error {
	if lb.MaxLedger != 0 && lb.MaxLedger < lb.MinLedger {
		return fmt.Errorf(
			"%w: max ledger %d is before min ledger %d",
			ErrInvalidLedgerBounds,
			lb.MaxLedger,
			lb.MinLedger,
		)
	}
	return nil
}

// Preconditions are the conditions under which a transaction is valid. Only
// time bounds encode as PRECOND_TIME; anything else requires PRECOND_V2
type Preconditions struct {
	TimeBounds                 *TimeBounds
	LedgerBounds               *LedgerBounds
	MinSequenceNumber          *int64
	MinSequenceNumberAge       uint64
	MinSequenceNumberLedgerGap uint32
	ExtraSigners               []SignerKey
}

func (p Preconditions) hasV2() bool {
	return p.LedgerBounds != nil ||
		p.MinSequenceNumber != nil ||
		p.MinSequenceNumberAge != 0 ||
		p.MinSequenceNumberLedgerGap != 0 ||
		len(p.ExtraSigners) != 0
}

func (p Preconditions) Validate() error {
	if p.TimeBounds != nil {
		if err := p.TimeBounds.Validate(); err != nil {
			return err
		}
	}
	if p.LedgerBounds != nil {
		if err := p.LedgerBounds.Validate(); err != nil {
			return err
		}
	}
	if p.MinSequenceNumber != nil && *p.MinSequenceNumber < 0 {
		return fmt.Errorf("%w: negative minimum sequence number", ErrInvalidSequence)
	}
	if len(p.ExtraSigners) > xdr.MaxExtraSigners {
		return fmt.Errorf(
			"%w: %d extra signers, maximum is %d",
			ErrSignerSpecification,
			len(p.ExtraSigners),
			xdr.MaxExtraSigners,
		)
	}
	return nil
}

func (p Preconditions) ToXDR() (xdr.Preconditions, error) {
	if err := p.Validate(); err != nil {
		return xdr.Preconditions{}, err
	}
	if !p.hasV2() {
		if p.TimeBounds == nil {
			return xdr.Preconditions{Type: xdr.PreconditionTypeNone}, nil
		}
		return xdr.Preconditions{
			Type:       xdr.PreconditionTypeTime,
			TimeBounds: p.TimeBounds.toXDR(),
		}, nil
	}
	v2 := &xdr.PreconditionsV2{
		MinSeqAge:       p.MinSequenceNumberAge,
		MinSeqLedgerGap: p.MinSequenceNumberLedgerGap,
	}
	if p.TimeBounds != nil {
		v2.TimeBounds = p.TimeBounds.toXDR()
	}
	if p.LedgerBounds != nil {
		v2.LedgerBounds = &xdr.LedgerBounds{
			MinLedger: p.LedgerBounds.MinLedger,
			MaxLedger: p.LedgerBounds.MaxLedger,
		}
	}
	if p.MinSequenceNumber != nil {
		seq := *p.MinSequenceNumber
		v2.MinSeqNum = &seq
	}
	for _, signer := range p.ExtraSigners {
		key, err := signerKeyToXDR(signer)
		if err != nil {
			return xdr.Preconditions{}, err
		}
		v2.ExtraSigners = append(v2.ExtraSigners, key)
	}
	return xdr.Preconditions{Type: xdr.PreconditionTypeV2, V2: v2}, nil
}

func timeBoundsFromXDR(tb *xdr.TimeBounds) *TimeBounds {
	if tb == nil {
		return nil
	}
	return &TimeBounds{
		MinTime: tb.MinTime,
		MaxTime: tb.MaxTime,
	}
}

func preconditionsFromXDR(p xdr.Preconditions) (Preconditions, error) {
	var ret Preconditions
	switch p.Type {
	case xdr.PreconditionTypeNone:
		return ret, nil
	case xdr.PreconditionTypeTime:
		ret.TimeBounds = timeBoundsFromXDR(p.TimeBounds)
		return ret, nil
	}
	if p.Type != xdr.PreconditionTypeV2 || p.V2 == nil {
		return ret, fmt.Errorf("unsupported precondition type %d", p.Type)
	}
	v2 := p.V2
	ret.TimeBounds = timeBoundsFromXDR(v2.TimeBounds)
	if v2.LedgerBounds != nil {
		ret.LedgerBounds = &LedgerBounds{
			MinLedger: v2.LedgerBounds.MinLedger,
			MaxLedger: v2.LedgerBounds.MaxLedger,
		}
	}
	if v2.MinSeqNum != nil {
		seq := *v2.MinSeqNum
		ret.MinSequenceNumber = &seq
	}
	ret.MinSequenceNumberAge = v2.MinSeqAge
	ret.MinSequenceNumberLedgerGap = v2.MinSeqLedgerGap
	for _, key := range v2.ExtraSigners {
		signer, err := signerKeyFromXDR(key)
		if err != nil {
			return ret, err
		}
		ret.ExtraSigners = append(ret.ExtraSigners, signer)
	}
	return ret, nil
}
