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

// offer holds the fields shared by the three offer operations
type offer struct {
	Selling Asset
	Buying  Asset
	Amount  string
	Price   amount.Rational
}

func (o offer) toXDR(allowZero bool, offerID int64) (*xdr.ManageOfferOp, error) {
	selling, err := assetToXDR(o.Selling)
	if err != nil {
		return nil, fmt.Errorf("selling: %w", err)
	}
	buying, err := assetToXDR(o.Buying)
	if err != nil {
		return nil, fmt.Errorf("buying: %w", err)
	}
	parse := amount.ParsePositive
	if allowZero {
		parse = amount.Parse
	}
	value, err := parse(o.Amount)
	if err != nil {
		return nil, err
	}
	price, err := priceToXDR(o.Price)
	if err != nil {
		return nil, err
	}
	if offerID < 0 {
		return nil, fmt.Errorf("%w: offer id %d is negative", ErrInvalidOperation, offerID)
	}
	return &xdr.ManageOfferOp{
		Selling: selling,
		Buying:  buying,
		Amount:  value,
		Price:   price,
		OfferId: offerID,
	}, nil
}

func offerFromXDR(body *xdr.ManageOfferOp) (offer, error) {
	selling, err := AssetFromXDR(body.Selling)
	if err != nil {
		return offer{}, err
	}
	buying, err := AssetFromXDR(body.Buying)
	if err != nil {
		return offer{}, err
	}
	return offer{
		Selling: selling,
		Buying:  buying,
		Amount:  amount.String(body.Amount),
		Price:   amount.Price{N: body.Price.N, D: body.Price.D},
	}, nil
}

// ManageSellOffer creates, updates or (with a zero Amount) deletes an offer to
// sell Amount of Selling at Price units of Buying each. OfferID zero creates
type ManageSellOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         amount.Rational
	OfferID       int64
	SourceAccount string
}

func (mo *ManageSellOffer) Type() xdr.OperationType {
	return xdr.OperationTypeManageSellOffer
}

func (mo *ManageSellOffer) GetSourceAccount() string {
	return mo.SourceAccount
}

func (mo *ManageSellOffer) Validate() error {
	_, err := mo.BuildXDR()
	return err
}

func (mo *ManageSellOffer) BuildXDR() (xdr.Operation, error) {
	return buildOperation(mo.SourceAccount, func() (xdr.OperationBody, error) {
		body, err := offer{mo.Selling, mo.Buying, mo.Amount, mo.Price}.toXDR(true, mo.OfferID)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type:              xdr.OperationTypeManageSellOffer,
			ManageSellOfferOp: body,
		}, nil
	})
}

func (mo *ManageSellOffer) FromXDR(op xdr.Operation) error {
	body := op.Body.ManageSellOfferOp
	if op.Body.Type != mo.Type() || body == nil {
		return wrongOperationType(mo.Type(), op.Body.Type)
	}
	o, err := offerFromXDR(body)
	if err != nil {
		return err
	}
	*mo = ManageSellOffer{
		Selling:       o.Selling,
		Buying:        o.Buying,
		Amount:        o.Amount,
		Price:         o.Price,
		OfferID:       body.OfferId,
		SourceAccount: sourceAccountFromXDR(op.SourceAccount),
	}
	return nil
}

// ManageBuyOffer is like ManageSellOffer but Amount is the amount of Buying
// wanted and Price is in units of Selling per unit of Buying
type ManageBuyOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         amount.Rational
	OfferID       int64
	SourceAccount string
}

func (mo *ManageBuyOffer) Type() xdr.OperationType {
	return xdr.OperationTypeManageBuyOffer
}

func (mo *ManageBuyOffer) GetSourceAccount() string {
	return mo.SourceAccount
}

func (mo *ManageBuyOffer) Validate() error {
	_, err := mo.BuildXDR()
	return err
}

func (mo *ManageBuyOffer) BuildXDR() (xdr.Operation, error) {
	return buildOperation(mo.SourceAccount, func() (xdr.OperationBody, error) {
		body, err := offer{mo.Selling, mo.Buying, mo.Amount, mo.Price}.toXDR(true, mo.OfferID)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type:             xdr.OperationTypeManageBuyOffer,
			ManageBuyOfferOp: body,
		}, nil
	})
}

func (mo *ManageBuyOffer) FromXDR(op xdr.Operation) error {
	body := op.Body.ManageBuyOfferOp
	if op.Body.Type != mo.Type() || body == nil {
		return wrongOperationType(mo.Type(), op.Body.Type)
	}
	o, err := offerFromXDR(body)
	if err != nil {
		return err
	}
	*mo = ManageBuyOffer{
		Selling:       o.Selling,
		Buying:        o.Buying,
		Amount:        o.Amount,
		Price:         o.Price,
		OfferID:       body.OfferId,
		SourceAccount: sourceAccountFromXDR(op.SourceAccount),
	}
	return nil
}

// CreatePassiveSellOffer creates an offer that does not take offers at the
// same price
type CreatePassiveSellOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         amount.Rational
	SourceAccount string
}

func (po *CreatePassiveSellOffer) Type() xdr.OperationType {
	return xdr.OperationTypeCreatePassiveSellOffer
}

func (po *CreatePassiveSellOffer) GetSourceAccount() string {
	return po.SourceAccount
}

func (po *CreatePassiveSellOffer) Validate() error {
	_, err := po.BuildXDR()
	return err
}

func (po *CreatePassiveSellOffer) BuildXDR() (xdr.Operation, error) {
	return buildOperation(po.SourceAccount, func() (xdr.OperationBody, error) {
		body, err := offer{po.Selling, po.Buying, po.Amount, po.Price}.toXDR(false, 0)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type:                     xdr.OperationTypeCreatePassiveSellOffer,
			CreatePassiveSellOfferOp: body,
		}, nil
	})
}

func (po *CreatePassiveSellOffer) FromXDR(op xdr.Operation) error {
	body := op.Body.CreatePassiveSellOfferOp
	if op.Body.Type != po.Type() || body == nil {
		return wrongOperationType(po.Type(), op.Body.Type)
	}
	o, err := offerFromXDR(body)
	if err != nil {
		return err
	}
	*po = CreatePassiveSellOffer{
		Selling:       o.Selling,
		Buying:        o.Buying,
		Amount:        o.Amount,
		Price:         o.Price,
		SourceAccount: sourceAccountFromXDR(op.SourceAccount),
	}
	return nil
}
