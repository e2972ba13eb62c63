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

type OperationType int32

const (
	OperationTypeCreateAccount          OperationType = 0
	OperationTypePayment                OperationType = 1
	OperationTypeManageSellOffer        OperationType = 3
	OperationTypeCreatePassiveSellOffer OperationType = 4
	OperationTypeSetOptions             OperationType = 5
	OperationTypeChangeTrust            OperationType = 6
	OperationTypeAccountMerge           OperationType = 8
	OperationTypeInflation              OperationType = 9
	OperationTypeManageData             OperationType = 10
	OperationTypeBumpSequence           OperationType = 11
	OperationTypeManageBuyOffer         OperationType = 12
)

var operationTypeNames = map[OperationType]string{
	OperationTypeCreateAccount:          "create_account",
	OperationTypePayment:                "payment",
	OperationTypeManageSellOffer:        "manage_sell_offer",
	OperationTypeCreatePassiveSellOffer: "create_passive_sell_offer",
	OperationTypeSetOptions:             "set_options",
	OperationTypeChangeTrust:            "change_trust",
	OperationTypeAccountMerge:           "account_merge",
	OperationTypeInflation:              "inflation",
	OperationTypeManageData:             "manage_data",
	OperationTypeBumpSequence:           "bump_sequence",
	OperationTypeManageBuyOffer:         "manage_buy_offer",
}

func (t OperationType) String() string {
	if name, ok := operationTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

const (
	MaxHomeDomainSize = 32
	MaxDataNameSize   = 64
	MaxDataValueSize  = 64
)

type CreateAccountOp struct {
	Destination     AccountID
	StartingBalance int64
}

func (o *CreateAccountOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt64(o.StartingBalance)
}

func (o *CreateAccountOp) DecodeFrom(d *Decoder) error {
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	o.StartingBalance, err = d.DecodeInt64()
	return err
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

func (o *PaymentOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt64(o.Amount)
}

func (o *PaymentOp) DecodeFrom(d *Decoder) error {
	if err := o.Destination.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Asset.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	o.Amount, err = d.DecodeInt64()
	return err
}

// ManageOfferOp carries both sell and buy offers; Amount is the buy amount for
// buy offers. OfferId is absent for passive offers
type ManageOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
	OfferId int64
}

func (o *ManageOfferOp) encode(e *Encoder, withOfferId bool) error {
	if err := o.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(o.Amount); err != nil {
		return err
	}
	if err := o.Price.EncodeTo(e); err != nil {
		return err
	}
	if !withOfferId {
		return nil
	}
	return e.EncodeInt64(o.OfferId)
}

func (o *ManageOfferOp) decode(d *Decoder, withOfferId bool) error {
	if err := o.Selling.DecodeFrom(d); err != nil {
		return err
	}
	if err := o.Buying.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if o.Amount, err = d.DecodeInt64(); err != nil {
		return err
	}
	if err := o.Price.DecodeFrom(d); err != nil {
		return err
	}
	if !withOfferId {
		return nil
	}
	o.OfferId, err = d.DecodeInt64()
	return err
}

type Signer struct {
	Key    SignerKey
	Weight uint32
}

type SetOptionsOp struct {
	InflationDest *AccountID
	ClearFlags    *uint32
	SetFlags      *uint32
	MasterWeight  *uint32
	LowThreshold  *uint32
	MedThreshold  *uint32
	HighThreshold *uint32
	HomeDomain    *string
	Signer        *Signer
}

func (o *SetOptionsOp) EncodeTo(e *Encoder) error {
	if err := encodeOptional(e, o.InflationDest); err != nil {
		return err
	}
	for _, v := range []*uint32{
		o.ClearFlags,
		o.SetFlags,
		o.MasterWeight,
		o.LowThreshold,
		o.MedThreshold,
		o.HighThreshold,
	} {
		if err := e.EncodeBool(v != nil); err != nil {
			return err
		}
		if v != nil {
			if err := e.EncodeUint32(*v); err != nil {
				return err
			}
		}
	}
	if err := e.EncodeBool(o.HomeDomain != nil); err != nil {
		return err
	}
	if o.HomeDomain != nil {
		if err := e.EncodeString(*o.HomeDomain, MaxHomeDomainSize); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(o.Signer != nil); err != nil {
		return err
	}
	if o.Signer != nil {
		if err := o.Signer.Key.EncodeTo(e); err != nil {
			return err
		}
		return e.EncodeUint32(o.Signer.Weight)
	}
	return nil
}

func (o *SetOptionsOp) DecodeFrom(d *Decoder) error {
	var err error
	if o.InflationDest, err = decodeOptional[AccountID](d); err != nil {
		return err
	}
	for _, dst := range []**uint32{
		&o.ClearFlags,
		&o.SetFlags,
		&o.MasterWeight,
		&o.LowThreshold,
		&o.MedThreshold,
		&o.HighThreshold,
	} {
		present, err := d.DecodeBool()
		if err != nil {
			return err
		}
		*dst = nil
		if present {
			v, err := d.DecodeUint32()
			if err != nil {
				return err
			}
			*dst = &v
		}
	}
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	o.HomeDomain = nil
	if present {
		domain, err := d.DecodeString(MaxHomeDomainSize)
		if err != nil {
			return err
		}
		o.HomeDomain = &domain
	}
	if present, err = d.DecodeBool(); err != nil {
		return err
	}
	o.Signer = nil
	if present {
		signer := new(Signer)
		if err := signer.Key.DecodeFrom(d); err != nil {
			return err
		}
		if signer.Weight, err = d.DecodeUint32(); err != nil {
			return err
		}
		o.Signer = signer
	}
	return nil
}

type ChangeTrustOp struct {
	Line  Asset
	Limit int64
}

func (o *ChangeTrustOp) EncodeTo(e *Encoder) error {
	if err := o.Line.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt64(o.Limit)
}

func (o *ChangeTrustOp) DecodeFrom(d *Decoder) error {
	if err := o.Line.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	o.Limit, err = d.DecodeInt64()
	return err
}

type ManageDataOp struct {
	DataName  string
	DataValue []byte // nil deletes the entry
}

func (o *ManageDataOp) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(o.DataName, MaxDataNameSize); err != nil {
		return err
	}
	if err := e.EncodeBool(o.DataValue != nil); err != nil {
		return err
	}
	if o.DataValue == nil {
		return nil
	}
	return e.EncodeOpaque(o.DataValue, MaxDataValueSize)
}

func (o *ManageDataOp) DecodeFrom(d *Decoder) error {
	var err error
	if o.DataName, err = d.DecodeString(MaxDataNameSize); err != nil {
		return err
	}
	present, err := d.DecodeBool()
	if err != nil {
		return err
	}
	o.DataValue = nil
	if present {
		value, err := d.DecodeOpaque(MaxDataValueSize)
		if err != nil {
			return err
		}
		if value == nil {
			value = []byte{}
		}
		o.DataValue = value
	}
	return nil
}

type BumpSequenceOp struct {
	BumpTo int64
}

// OperationBody is the union of supported operation payloads keyed by Type
type OperationBody struct {
	Type                     OperationType
	CreateAccountOp          *CreateAccountOp
	PaymentOp                *PaymentOp
	ManageSellOfferOp        *ManageOfferOp
	CreatePassiveSellOfferOp *ManageOfferOp
	SetOptionsOp             *SetOptionsOp
	ChangeTrustOp            *ChangeTrustOp
	Destination              *MuxedAccount
	ManageDataOp             *ManageDataOp
	BumpSequenceOp           *BumpSequenceOp
	ManageBuyOfferOp         *ManageOfferOp
}

func (b *OperationBody) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(b.Type)); err != nil {
		return err
	}
	missing := missingArm("OperationType", int32(b.Type))
	switch b.Type {
	case OperationTypeCreateAccount:
		if b.CreateAccountOp == nil {
			return missing
		}
		return b.CreateAccountOp.EncodeTo(e)
	case OperationTypePayment:
		if b.PaymentOp == nil {
			return missing
		}
		return b.PaymentOp.EncodeTo(e)
	case OperationTypeManageSellOffer:
		if b.ManageSellOfferOp == nil {
			return missing
		}
		return b.ManageSellOfferOp.encode(e, true)
	case OperationTypeCreatePassiveSellOffer:
		if b.CreatePassiveSellOfferOp == nil {
			return missing
		}
		return b.CreatePassiveSellOfferOp.encode(e, false)
	case OperationTypeSetOptions:
		if b.SetOptionsOp == nil {
			return missing
		}
		return b.SetOptionsOp.EncodeTo(e)
	case OperationTypeChangeTrust:
		if b.ChangeTrustOp == nil {
			return missing
		}
		return b.ChangeTrustOp.EncodeTo(e)
	case OperationTypeAccountMerge:
		if b.Destination == nil {
			return missing
		}
		return b.Destination.EncodeTo(e)
	case OperationTypeInflation:
		return nil
	case OperationTypeManageData:
		if b.ManageDataOp == nil {
			return missing
		}
		return b.ManageDataOp.EncodeTo(e)
	case OperationTypeBumpSequence:
		if b.BumpSequenceOp == nil {
			return missing
		}
		return e.EncodeInt64(b.BumpSequenceOp.BumpTo)
	case OperationTypeManageBuyOffer:
		if b.ManageBuyOfferOp == nil {
			return missing
		}
		return b.ManageBuyOfferOp.encode(e, true)
	}
	return unionError("OperationType", int32(b.Type))
}

func (b *OperationBody) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*b = OperationBody{Type: OperationType(t)}
	switch b.Type {
	case OperationTypeCreateAccount:
		b.CreateAccountOp = new(CreateAccountOp)
		return b.CreateAccountOp.DecodeFrom(d)
	case OperationTypePayment:
		b.PaymentOp = new(PaymentOp)
		return b.PaymentOp.DecodeFrom(d)
	case OperationTypeManageSellOffer:
		b.ManageSellOfferOp = new(ManageOfferOp)
		return b.ManageSellOfferOp.decode(d, true)
	case OperationTypeCreatePassiveSellOffer:
		b.CreatePassiveSellOfferOp = new(ManageOfferOp)
		return b.CreatePassiveSellOfferOp.decode(d, false)
	case OperationTypeSetOptions:
		b.SetOptionsOp = new(SetOptionsOp)
		return b.SetOptionsOp.DecodeFrom(d)
	case OperationTypeChangeTrust:
		b.ChangeTrustOp = new(ChangeTrustOp)
		return b.ChangeTrustOp.DecodeFrom(d)
	case OperationTypeAccountMerge:
		b.Destination = new(MuxedAccount)
		return b.Destination.DecodeFrom(d)
	case OperationTypeInflation:
		return nil
	case OperationTypeManageData:
		b.ManageDataOp = new(ManageDataOp)
		return b.ManageDataOp.DecodeFrom(d)
	case OperationTypeBumpSequence:
		bumpTo, err := d.DecodeInt64()
		if err != nil {
			return err
		}
		b.BumpSequenceOp = &BumpSequenceOp{BumpTo: bumpTo}
		return nil
	case OperationTypeManageBuyOffer:
		b.ManageBuyOfferOp = new(ManageOfferOp)
		return b.ManageBuyOfferOp.decode(d, true)
	}
	return unionError("OperationType", t)
}

type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (o *Operation) EncodeTo(e *Encoder) error {
	if err := encodeOptional(e, o.SourceAccount); err != nil {
		return err
	}
	return o.Body.EncodeTo(e)
}

func (o *Operation) DecodeFrom(d *Decoder) error {
	var err error
	if o.SourceAccount, err = decodeOptional[MuxedAccount](d); err != nil {
		return err
	}
	return o.Body.DecodeFrom(d)
}
