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

	"github.com/blinklabs-io/gostellar/xdr"
)

// AccountFlag is an account authorization flag
type AccountFlag uint32

const (
	AuthRequired        AccountFlag = 1
	AuthRevocable       AccountFlag = 2
	AuthImmutable       AccountFlag = 4
	AuthClawbackEnabled AccountFlag = 8

	allAccountFlags = AuthRequired | AuthRevocable | AuthImmutable | AuthClawbackEnabled
)

// Threshold is a signer weight or operation threshold
type Threshold uint8

// SetOptions changes account settings. Nil fields are left unchanged. A
// Signer with weight zero removes that signer
type SetOptions struct {
	InflationDestination *string
	SetFlags             []AccountFlag
	ClearFlags           []AccountFlag
	MasterWeight         *Threshold
	LowThreshold         *Threshold
	MediumThreshold      *Threshold
	HighThreshold        *Threshold
	HomeDomain           *string
	Signer               *Signer
	SourceAccount        string
}

// NewThreshold returns a pointer to t for use in SetOptions
func NewThreshold(t Threshold) *Threshold {
	return &t
}

// NewHomeDomain returns a pointer to domain for use in SetOptions
func NewHomeDomain(domain string) *string {
	return &domain
}

// NewInflationDestination returns a pointer to address for use in SetOptions
func NewInflationDestination(address string) *string {
	return &address
}

func (so *SetOptions) Type() xdr.OperationType {
	return xdr.OperationTypeSetOptions
}

func (so *SetOptions) GetSourceAccount() string {
	return so.SourceAccount
}

func (so *SetOptions) Validate() error {
	_, err := so.BuildXDR()
	return err
}

func combineFlags(flags []AccountFlag) (*uint32, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	var ret uint32
	for _, flag := range flags {
		if flag&^allAccountFlags != 0 || flag == 0 {
			return nil, fmt.Errorf("%w: unknown account flag %d", ErrInvalidOperation, flag)
		}
		ret |= uint32(flag)
	}
	return &ret, nil
}

func splitFlags(flags *uint32) []AccountFlag {
	if flags == nil {
		return nil
	}
	var ret []AccountFlag
	for _, flag := range []AccountFlag{AuthRequired, AuthRevocable, AuthImmutable, AuthClawbackEnabled} {
		if *flags&uint32(flag) != 0 {
			ret = append(ret, flag)
		}
	}
	return ret
}

func thresholdToXDR(t *Threshold) *uint32 {
	if t == nil {
		return nil
	}
	v := uint32(*t)
	return &v
}

func thresholdFromXDR(v *uint32) (*Threshold, error) {
	if v == nil {
		return nil, nil
	}
	if *v > 0xff {
		return nil, fmt.Errorf("%w: threshold %d exceeds 255", ErrInvalidOperation, *v)
	}
	t := Threshold(*v)
	return &t, nil
}

func (so *SetOptions) BuildXDR() (xdr.Operation, error) {
	return buildOperation(so.SourceAccount, func() (xdr.OperationBody, error) {
		body := &xdr.SetOptionsOp{
			MasterWeight:  thresholdToXDR(so.MasterWeight),
			LowThreshold:  thresholdToXDR(so.LowThreshold),
			MedThreshold:  thresholdToXDR(so.MediumThreshold),
			HighThreshold: thresholdToXDR(so.HighThreshold),
		}
		if so.InflationDestination != nil {
			dest, err := accountIDToXDR("inflation destination", *so.InflationDestination)
			if err != nil {
				return xdr.OperationBody{}, err
			}
			body.InflationDest = &dest
		}
		var err error
		if body.SetFlags, err = combineFlags(so.SetFlags); err != nil {
			return xdr.OperationBody{}, err
		}
		if body.ClearFlags, err = combineFlags(so.ClearFlags); err != nil {
			return xdr.OperationBody{}, err
		}
		if so.HomeDomain != nil {
			if len(*so.HomeDomain) > xdr.MaxHomeDomainSize {
				return xdr.OperationBody{}, fmt.Errorf(
					"%w: home domain must be at most %d bytes",
					ErrInvalidOperation,
					xdr.MaxHomeDomainSize,
				)
			}
			domain := *so.HomeDomain
			body.HomeDomain = &domain
		}
		if so.Signer != nil {
			key, err := signerKeyToXDR(so.Signer.Key)
			if err != nil {
				return xdr.OperationBody{}, err
			}
			body.Signer = &xdr.Signer{Key: key, Weight: so.Signer.Weight}
		}
		return xdr.OperationBody{
			Type:         xdr.OperationTypeSetOptions,
			SetOptionsOp: body,
		}, nil
	})
}

func (so *SetOptions) FromXDR(op xdr.Operation) error {
	body := op.Body.SetOptionsOp
	if op.Body.Type != so.Type() || body == nil {
		return wrongOperationType(so.Type(), op.Body.Type)
	}
	ret := SetOptions{
		SetFlags:      splitFlags(body.SetFlags),
		ClearFlags:    splitFlags(body.ClearFlags),
		SourceAccount: sourceAccountFromXDR(op.SourceAccount),
	}
	if body.InflationDest != nil {
		ret.InflationDestination = NewInflationDestination(body.InflationDest.Address())
	}
	var err error
	for _, t := range []struct {
		dst **Threshold
		src *uint32
	}{
		{&ret.MasterWeight, body.MasterWeight},
		{&ret.LowThreshold, body.LowThreshold},
		{&ret.MediumThreshold, body.MedThreshold},
		{&ret.HighThreshold, body.HighThreshold},
	} {
		if *t.dst, err = thresholdFromXDR(t.src); err != nil {
			return err
		}
	}
	if body.HomeDomain != nil {
		ret.HomeDomain = NewHomeDomain(*body.HomeDomain)
	}
	if body.Signer != nil {
		key, err := signerKeyFromXDR(body.Signer.Key)
		if err != nil {
			return err
		}
		ret.Signer = &Signer{Key: key, Weight: body.Signer.Weight}
	}
	*so = ret
	return nil
}
