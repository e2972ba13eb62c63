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

	"github.com/blinklabs-io/gostellar/amount"
	"github.com/blinklabs-io/gostellar/xdr"
)

// Payment sends Amount of Asset to Destination
type Payment struct {
	Destination   string
	Amount        string
	Asset         Asset
	SourceAccount string
}

func (p *Payment) Type() xdr.OperationType {
	return xdr.OperationTypePayment
}

func (p *Payment) GetSourceAccount() string {
	return p.SourceAccount
}

func (p *Payment) Validate() error {
	_, err := p.BuildXDR()
	return err
}

func (p *Payment) BuildXDR() (xdr.Operation, error) {
	return buildOperation(p.SourceAccount, func() (xdr.OperationBody, error) {
		dest, err := muxedAccountToXDR("destination", p.Destination)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		asset, err := assetToXDR(p.Asset)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		value, err := amount.ParsePositive(p.Amount)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type: xdr.OperationTypePayment,
			PaymentOp: &xdr.PaymentOp{
				Destination: dest,
				Asset:       asset,
				Amount:      value,
			},
		}, nil
	})
}

func (p *Payment) FromXDR(op xdr.Operation) error {
	body := op.Body.PaymentOp
	if op.Body.Type != p.Type() || body == nil {
		return wrongOperationType(p.Type(), op.Body.Type)
	}
	asset, err := AssetFromXDR(body.Asset)
	if err != nil {
		return err
	}
	p.Destination = body.Destination.Address()
	p.Amount = amount.String(body.Amount)
	p.Asset = asset
	p.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}

// ChangeTrust creates, updates or (with a zero Limit) removes a trustline.
// An empty Limit means the largest representable amount
type ChangeTrust struct {
	Line          Asset
	Limit         string
	SourceAccount string
}

func (ct *ChangeTrust) Type() xdr.OperationType {
	return xdr.OperationTypeChangeTrust
}

func (ct *ChangeTrust) GetSourceAccount() string {
	return ct.SourceAccount
}

func (ct *ChangeTrust) Validate() error {
	_, err := ct.BuildXDR()
	return err
}

func (ct *ChangeTrust) BuildXDR() (xdr.Operation, error) {
	return buildOperation(ct.SourceAccount, func() (xdr.OperationBody, error) {
		if ct.Line != nil && ct.Line.IsNative() {
			return xdr.OperationBody{}, fmt.Errorf(
				"%w: trustline cannot be for the native asset",
				ErrInvalidAsset,
			)
		}
		line, err := assetToXDR(ct.Line)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		limitText := ct.Limit
		if limitText == "" {
			limitText = maxTrustLimit
		}
		limit, err := amount.Parse(limitText)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type:          xdr.OperationTypeChangeTrust,
			ChangeTrustOp: &xdr.ChangeTrustOp{Line: line, Limit: limit},
		}, nil
	})
}

func (ct *ChangeTrust) FromXDR(op xdr.Operation) error {
	body := op.Body.ChangeTrustOp
	if op.Body.Type != ct.Type() || body == nil {
		return wrongOperationType(ct.Type(), op.Body.Type)
	}
	line, err := AssetFromXDR(body.Line)
	if err != nil {
		return err
	}
	ct.Line = line
	ct.Limit = amount.String(body.Limit)
	ct.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}
