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
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/xdr"
)

const (
	// MinBaseFee is the smallest per-operation fee the network accepts, in stroops
	MinBaseFee int64 = 100

	MaxOperations = xdr.MaxOperations
)

// TransactionParams describes a transaction to build
type TransactionParams struct {
	SourceAccount Account
	// BaseFee is the fee per operation in stroops
	BaseFee       int64
	Memo          Memo
	Preconditions Preconditions
	Operations    []Operation
	Logger        *slog.Logger
}

// Transaction is a sealed transaction and the signatures collected so far.
// It is never modified after construction; signing methods return a new value
type Transaction struct {
	envelope      xdr.TransactionEnvelope
	sourceAccount Account
	baseFee       int64
	maxFee        int64
	memo          Memo
	preconditions Preconditions
	operations    []Operation
	logger        *slog.Logger
}

// NewTransaction seals a transaction. The sequence number written into the
// body is the source account's sequence plus one, and the returned
// transaction's SourceAccount carries that new value
func NewTransaction(params TransactionParams) (*Transaction, error) {
	logger := loggerOrDefault(params.Logger)
	numOps := len(params.Operations)
	if numOps == 0 {
		return nil, ErrNoOperations
	}
	if numOps > MaxOperations {
		return nil, fmt.Errorf(
			"%w: %d operations, maximum is %d",
			ErrTooManyOperations,
			numOps,
			MaxOperations,
		)
	}
	if params.BaseFee < MinBaseFee {
		return nil, fmt.Errorf(
			"%w: base fee %d is below minimum %d",
			ErrInvalidFee,
			params.BaseFee,
			MinBaseFee,
		)
	}
	if params.BaseFee > math.MaxUint32/int64(numOps) {
		return nil, fmt.Errorf(
			"%w: base fee %d for %d operations overflows uint32",
			ErrInvalidFee,
			params.BaseFee,
			numOps,
		)
	}
	maxFee := params.BaseFee * int64(numOps)
	// #nosec G115
	fee := uint32(maxFee)
	sourceAccount, err := params.SourceAccount.muxedAccount()
	if err != nil {
		return nil, err
	}
	next, seq, err := params.SourceAccount.Next()
	if err != nil {
		return nil, err
	}
	cond, err := params.Preconditions.ToXDR()
	if err != nil {
		return nil, err
	}
	memo, err := memoToXDR(params.Memo)
	if err != nil {
		return nil, err
	}
	ops := make([]xdr.Operation, 0, numOps)
	for i, op := range params.Operations {
		if op == nil {
			return nil, &OperationError{Index: i, Err: fmt.Errorf("%w: nil operation", ErrInvalidOperation)}
		}
		xop, err := op.BuildXDR()
		if err != nil {
			return nil, &OperationError{Index: i, Type: op.Type(), Err: err}
		}
		ops = append(ops, xop)
	}
	ret := &Transaction{
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTx,
			V1: &xdr.TransactionV1Envelope{
				Tx: xdr.Transaction{
					SourceAccount: sourceAccount,
					Fee:           fee,
					SeqNum:        seq,
					Cond:          cond,
					Memo:          memo,
					Operations:    ops,
				},
			},
		},
		sourceAccount: next,
		baseFee:       params.BaseFee,
		maxFee:        maxFee,
		memo:          params.Memo,
		preconditions: params.Preconditions,
		operations:    append([]Operation(nil), params.Operations...),
		logger:        logger,
	}
	logger.Debug(
		"transaction sealed",
		"component", "txnbuild",
		"source", next.AccountID,
		"sequence", seq,
		"operations", numOps,
	)
	return ret, nil
}

// transactionFromEnvelope wraps a decoded v0 or v1 envelope
func transactionFromEnvelope(env xdr.TransactionEnvelope, logger *slog.Logger) (*Transaction, error) {
	var tx xdr.Transaction
	switch {
	case env.Type == xdr.EnvelopeTypeTxV0 && env.V0 != nil:
		tx = env.V0.Tx.ToV1()
	case env.Type == xdr.EnvelopeTypeTx && env.V1 != nil:
		tx = env.V1.Tx
	default:
		return nil, fmt.Errorf("unexpected envelope type %d", env.Type)
	}
	if len(tx.Operations) == 0 {
		return nil, ErrNoOperations
	}
	memo, err := memoFromXDR(tx.Memo)
	if err != nil {
		return nil, err
	}
	cond, err := preconditionsFromXDR(tx.Cond)
	if err != nil {
		return nil, err
	}
	ops := make([]Operation, 0, len(tx.Operations))
	for i, xop := range tx.Operations {
		op, err := operationFromXDR(xop)
		if err != nil {
			return nil, &OperationError{Index: i, Type: xop.Body.Type, Err: err}
		}
		ops = append(ops, op)
	}
	return &Transaction{
		envelope:      env,
		sourceAccount: NewAccount(tx.SourceAccount.Address(), tx.SeqNum),
		baseFee:       int64(tx.Fee) / int64(len(tx.Operations)),
		maxFee:        int64(tx.Fee),
		memo:          memo,
		preconditions: cond,
		operations:    ops,
		logger:        loggerOrDefault(logger),
	}, nil
}

// body returns the v1 form of the transaction, which is what gets signed
// whether the envelope is v0 or v1
func (t *Transaction) body() xdr.Transaction {
	if t.envelope.Type == xdr.EnvelopeTypeTxV0 {
		return t.envelope.V0.Tx.ToV1()
	}
	return t.envelope.V1.Tx
}

func (t *Transaction) tagged() xdr.TaggedTransaction {
	tx := t.body()
	return xdr.TaggedTransaction{Type: xdr.EnvelopeTypeTx, Tx: &tx}
}

// innerEnvelope returns the v1 envelope a fee bump wraps
func (t *Transaction) innerEnvelope() *xdr.TransactionV1Envelope {
	return &xdr.TransactionV1Envelope{
		Tx:         t.body(),
		Signatures: copySignatures(t.envelope.Signatures()),
	}
}

func (t *Transaction) withSignatures(sigs []xdr.DecoratedSignature) *Transaction {
	ret := *t
	if t.envelope.Type == xdr.EnvelopeTypeTxV0 {
		v0 := *t.envelope.V0
		v0.Signatures = sigs
		ret.envelope.V0 = &v0
	} else {
		v1 := *t.envelope.V1
		v1.Signatures = sigs
		ret.envelope.V1 = &v1
	}
	return &ret
}

func (t *Transaction) addSignatures(sigs ...xdr.DecoratedSignature) (*Transaction, error) {
	newSigs, err := appendSignatures(t.logger, t.envelope.Type, t.envelope.Signatures(), sigs...)
	if err != nil {
		return nil, err
	}
	return t.withSignatures(newSigs), nil
}

// SignatureBase returns the exact bytes whose hash is signed
func (t *Transaction) SignatureBase(sel network.Selector) ([]byte, error) {
	return signatureBase(sel, t.tagged())
}

// Hash returns the transaction hash on the selected network
func (t *Transaction) Hash(sel network.Selector) ([32]byte, error) {
	return signatureHash(sel, t.tagged())
}

// HashHex returns the transaction hash as lowercase hex
func (t *Transaction) HashHex(sel network.Selector) (string, error) {
	hash, err := t.Hash(sel)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash[:]), nil
}

// Sign returns a copy of the transaction with a signature from each keypair appended
func (t *Transaction) Sign(sel network.Selector, kps ...*keypair.Keypair) (*Transaction, error) {
	hash, err := t.Hash(sel)
	if err != nil {
		return nil, err
	}
	sigs, err := keypairSignatures(hash, kps)
	if err != nil {
		return nil, err
	}
	return t.addSignatures(sigs...)
}

// SignHashX returns a copy of the transaction with preimage appended as a
// hash-x signature
func (t *Transaction) SignHashX(preimage []byte) (*Transaction, error) {
	sig, err := hashXSignature(preimage)
	if err != nil {
		return nil, err
	}
	return t.addSignatures(sig)
}

// SignWithPayload returns a copy of the transaction with a signed-payload
// signature by kp over payload appended
func (t *Transaction) SignWithPayload(kp *keypair.Keypair, payload []byte) (*Transaction, error) {
	if kp == nil {
		return nil, keypair.ErrNoSecretKey
	}
	sig, err := kp.SignPayloadDecorated(payload)
	if err != nil {
		return nil, err
	}
	return t.addSignatures(sig)
}

// AddSignatureDecorated returns a copy of the transaction with sigs appended
// as given
func (t *Transaction) AddSignatureDecorated(sigs ...xdr.DecoratedSignature) (*Transaction, error) {
	return t.addSignatures(sigs...)
}

// AddSignatureBase64 verifies a base64 signature made by signer elsewhere and
// returns a copy of the transaction with it appended
func (t *Transaction) AddSignatureBase64(sel network.Selector, signer string, signature string) (*Transaction, error) {
	hash, err := t.Hash(sel)
	if err != nil {
		return nil, err
	}
	sig, err := verifiedSignature(hash, signer, signature)
	if err != nil {
		return nil, err
	}
	return t.addSignatures(sig)
}

// ToXDR returns a deep copy of the envelope
func (t *Transaction) ToXDR() (xdr.TransactionEnvelope, error) {
	return copyEnvelope(&t.envelope)
}

// MarshalBinary returns the canonical envelope bytes
func (t *Transaction) MarshalBinary() ([]byte, error) {
	return xdr.Marshal(&t.envelope)
}

// Base64 returns the envelope as base64, the form submitted to the network
func (t *Transaction) Base64() (string, error) {
	return xdr.MarshalBase64(&t.envelope)
}

// EnvelopeType reports whether the envelope is in v0 or v1 layout
func (t *Transaction) EnvelopeType() xdr.EnvelopeType {
	return t.envelope.Type
}

func (t *Transaction) Signatures() []xdr.DecoratedSignature {
	return copySignatures(t.envelope.Signatures())
}

func (t *Transaction) Operations() []Operation {
	return append([]Operation(nil), t.operations...)
}

// SourceAccount returns the source account at the sequence number this
// transaction consumes
func (t *Transaction) SourceAccount() Account {
	return t.sourceAccount
}

func (t *Transaction) SequenceNumber() int64 {
	return t.body().SeqNum
}

func (t *Transaction) BaseFee() int64 {
	return t.baseFee
}

// MaxFee is the total fee the source account is willing to pay
func (t *Transaction) MaxFee() int64 {
	return t.maxFee
}

func (t *Transaction) Memo() Memo {
	return t.memo
}

// Timebounds returns the time bounds, if any are set
func (t *Transaction) Timebounds() (TimeBounds, bool) {
	if t.preconditions.TimeBounds == nil {
		return TimeBounds{}, false
	}
	return *t.preconditions.TimeBounds, true
}

func (t *Transaction) Preconditions() Preconditions {
	return t.preconditions
}
