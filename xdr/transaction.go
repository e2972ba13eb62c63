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

type EnvelopeType int32

const (
	EnvelopeTypeTxV0      EnvelopeType = 0
	EnvelopeTypeScp       EnvelopeType = 1
	EnvelopeTypeTx        EnvelopeType = 2
	EnvelopeTypeAuth      EnvelopeType = 3
	EnvelopeTypeScpvalue  EnvelopeType = 4
	EnvelopeTypeTxFeeBump EnvelopeType = 5
	EnvelopeTypeOpId      EnvelopeType = 6
)

const (
	MaxOperations    = 100
	MaxSignatures    = 20
	MaxSignatureSize = 64
)

// ExtensionPoint is the reserved "ext" union. Only arm 0 (void) exists
type ExtensionPoint struct {
	V int32
}

func (x *ExtensionPoint) EncodeTo(e *Encoder) error {
	if x.V != 0 {
		return unionError("ExtensionPoint", x.V)
	}
	return e.EncodeInt32(0)
}

func (x *ExtensionPoint) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if v != 0 {
		return unionError("ExtensionPoint", v)
	}
	x.V = 0
	return nil
}

type SignatureHint [4]byte

type DecoratedSignature struct {
	Hint      SignatureHint
	Signature []byte
}

func (s *DecoratedSignature) EncodeTo(e *Encoder) error {
	if err := e.EncodeFixedOpaque(s.Hint[:]); err != nil {
		return err
	}
	return e.EncodeOpaque(s.Signature, MaxSignatureSize)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) error {
	if err := d.DecodeFixedOpaque(s.Hint[:]); err != nil {
		return err
	}
	var err error
	s.Signature, err = d.DecodeOpaque(MaxSignatureSize)
	return err
}

// Transaction is the current (v1) transaction body
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           ExtensionPoint
}

func (t *Transaction) EncodeTo(e *Encoder) error {
	if err := t.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(t.Fee); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.SeqNum); err != nil {
		return err
	}
	if err := t.Cond.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Memo.EncodeTo(e); err != nil {
		return err
	}
	if err := encodeList(e, t.Operations, MaxOperations); err != nil {
		return err
	}
	return t.Ext.EncodeTo(e)
}

func (t *Transaction) DecodeFrom(d *Decoder) error {
	if err := t.SourceAccount.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if t.Fee, err = d.DecodeUint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	if err := t.Cond.DecodeFrom(d); err != nil {
		return err
	}
	if err := t.Memo.DecodeFrom(d); err != nil {
		return err
	}
	if t.Operations, err = decodeList[Operation](d, MaxOperations); err != nil {
		return err
	}
	return t.Ext.DecodeFrom(d)
}

// TransactionV0 is the legacy body with a bare ed25519 source and optional
// time bounds in place of preconditions
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  uint32
	SeqNum               int64
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
	Ext                  ExtensionPoint
}

func (t *TransactionV0) EncodeTo(e *Encoder) error {
	if err := t.SourceAccountEd25519.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint32(t.Fee); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.SeqNum); err != nil {
		return err
	}
	if err := encodeOptional(e, t.TimeBounds); err != nil {
		return err
	}
	if err := t.Memo.EncodeTo(e); err != nil {
		return err
	}
	if err := encodeList(e, t.Operations, MaxOperations); err != nil {
		return err
	}
	return t.Ext.EncodeTo(e)
}

func (t *TransactionV0) DecodeFrom(d *Decoder) error {
	if err := t.SourceAccountEd25519.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if t.Fee, err = d.DecodeUint32(); err != nil {
		return err
	}
	if t.SeqNum, err = d.DecodeInt64(); err != nil {
		return err
	}
	if t.TimeBounds, err = decodeOptional[TimeBounds](d); err != nil {
		return err
	}
	if err := t.Memo.DecodeFrom(d); err != nil {
		return err
	}
	if t.Operations, err = decodeList[Operation](d, MaxOperations); err != nil {
		return err
	}
	return t.Ext.DecodeFrom(d)
}

// ToV1 returns the equivalent v1 transaction. The v1 encoding of the result
// is what a v0 envelope's signatures cover
func (t *TransactionV0) ToV1() Transaction {
	cond := Preconditions{Type: PreconditionTypeNone}
	if t.TimeBounds != nil {
		tb := *t.TimeBounds
		cond = Preconditions{Type: PreconditionTypeTime, TimeBounds: &tb}
	}
	return Transaction{
		SourceAccount: NewMuxedAccount(t.SourceAccountEd25519),
		Fee:           t.Fee,
		SeqNum:        t.SeqNum,
		Cond:          cond,
		Memo:          t.Memo,
		Operations:    t.Operations,
		Ext:           t.Ext,
	}
}

type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

func (v *TransactionV0Envelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeList(e, v.Signatures, MaxSignatures)
}

func (v *TransactionV0Envelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	v.Signatures, err = decodeList[DecoratedSignature](d, MaxSignatures)
	return err
}

type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (v *TransactionV1Envelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeList(e, v.Signatures, MaxSignatures)
}

func (v *TransactionV1Envelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	v.Signatures, err = decodeList[DecoratedSignature](d, MaxSignatures)
	return err
}

// FeeBumpInnerTx wraps the transaction a fee bump pays for. Only v1
// envelopes can be bumped
type FeeBumpInnerTx struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

func (i *FeeBumpInnerTx) EncodeTo(e *Encoder) error {
	if i.Type != EnvelopeTypeTx {
		return unionError("FeeBumpInnerTx", int32(i.Type))
	}
	if i.V1 == nil {
		return missingArm("FeeBumpInnerTx", int32(i.Type))
	}
	if err := e.EncodeInt32(int32(i.Type)); err != nil {
		return err
	}
	return i.V1.EncodeTo(e)
}

func (i *FeeBumpInnerTx) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if EnvelopeType(t) != EnvelopeTypeTx {
		return unionError("FeeBumpInnerTx", t)
	}
	i.Type = EnvelopeTypeTx
	i.V1 = new(TransactionV1Envelope)
	return i.V1.DecodeFrom(d)
}

type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       int64
	InnerTx   FeeBumpInnerTx
	Ext       ExtensionPoint
}

func (t *FeeBumpTransaction) EncodeTo(e *Encoder) error {
	if err := t.FeeSource.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt64(t.Fee); err != nil {
		return err
	}
	if err := t.InnerTx.EncodeTo(e); err != nil {
		return err
	}
	return t.Ext.EncodeTo(e)
}

func (t *FeeBumpTransaction) DecodeFrom(d *Decoder) error {
	if err := t.FeeSource.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	if t.Fee, err = d.DecodeInt64(); err != nil {
		return err
	}
	if err := t.InnerTx.DecodeFrom(d); err != nil {
		return err
	}
	return t.Ext.DecodeFrom(d)
}

type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

func (v *FeeBumpTransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := v.Tx.EncodeTo(e); err != nil {
		return err
	}
	return encodeList(e, v.Signatures, MaxSignatures)
}

func (v *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) error {
	if err := v.Tx.DecodeFrom(d); err != nil {
		return err
	}
	var err error
	v.Signatures, err = decodeList[DecoratedSignature](d, MaxSignatures)
	return err
}

// TransactionEnvelope is the union of signed transaction forms
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

// Signatures returns the signatures of whichever arm is set
func (t *TransactionEnvelope) Signatures() []DecoratedSignature {
	switch {
	case t.Type == EnvelopeTypeTxV0 && t.V0 != nil:
		return t.V0.Signatures
	case t.Type == EnvelopeTypeTx && t.V1 != nil:
		return t.V1.Signatures
	case t.Type == EnvelopeTypeTxFeeBump && t.FeeBump != nil:
		return t.FeeBump.Signatures
	}
	return nil
}

func (t *TransactionEnvelope) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(t.Type)); err != nil {
		return err
	}
	missing := missingArm("EnvelopeType", int32(t.Type))
	switch t.Type {
	case EnvelopeTypeTxV0:
		if t.V0 == nil {
			return missing
		}
		return t.V0.EncodeTo(e)
	case EnvelopeTypeTx:
		if t.V1 == nil {
			return missing
		}
		return t.V1.EncodeTo(e)
	case EnvelopeTypeTxFeeBump:
		if t.FeeBump == nil {
			return missing
		}
		return t.FeeBump.EncodeTo(e)
	}
	return unionError("EnvelopeType", int32(t.Type))
}

func (t *TransactionEnvelope) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*t = TransactionEnvelope{Type: EnvelopeType(v)}
	switch t.Type {
	case EnvelopeTypeTxV0:
		t.V0 = new(TransactionV0Envelope)
		return t.V0.DecodeFrom(d)
	case EnvelopeTypeTx:
		t.V1 = new(TransactionV1Envelope)
		return t.V1.DecodeFrom(d)
	case EnvelopeTypeTxFeeBump:
		t.FeeBump = new(FeeBumpTransactionEnvelope)
		return t.FeeBump.DecodeFrom(d)
	}
	return unionError("EnvelopeType", v)
}

// TaggedTransaction is the transaction half of a signature payload
type TaggedTransaction struct {
	Type    EnvelopeType
	Tx      *Transaction
	FeeBump *FeeBumpTransaction
}

func (t *TaggedTransaction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(t.Type)); err != nil {
		return err
	}
	switch t.Type {
	case EnvelopeTypeTx:
		if t.Tx == nil {
			return missingArm("TaggedTransaction", int32(t.Type))
		}
		return t.Tx.EncodeTo(e)
	case EnvelopeTypeTxFeeBump:
		if t.FeeBump == nil {
			return missingArm("TaggedTransaction", int32(t.Type))
		}
		return t.FeeBump.EncodeTo(e)
	}
	return unionError("TaggedTransaction", int32(t.Type))
}

func (t *TaggedTransaction) DecodeFrom(d *Decoder) error {
	v, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*t = TaggedTransaction{Type: EnvelopeType(v)}
	switch t.Type {
	case EnvelopeTypeTx:
		t.Tx = new(Transaction)
		return t.Tx.DecodeFrom(d)
	case EnvelopeTypeTxFeeBump:
		t.FeeBump = new(FeeBumpTransaction)
		return t.FeeBump.DecodeFrom(d)
	}
	return unionError("TaggedTransaction", v)
}

// TransactionSignaturePayload is hashed to produce the bytes every signer signs:
// network ID followed by the envelope-tagged transaction
type TransactionSignaturePayload struct {
	NetworkId         Hash
	TaggedTransaction TaggedTransaction
}

func (p *TransactionSignaturePayload) EncodeTo(e *Encoder) error {
	if err := p.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	return p.TaggedTransaction.EncodeTo(e)
}

func (p *TransactionSignaturePayload) DecodeFrom(d *Decoder) error {
	if err := p.NetworkId.DecodeFrom(d); err != nil {
		return err
	}
	return p.TaggedTransaction.DecodeFrom(d)
}
