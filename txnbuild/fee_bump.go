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
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/xdr"
)

var ErrMissingInnerTransaction = errors.New("fee bump requires an inner transaction")

// FeeBumpTransactionParams describes a fee bump of an already signed transaction
type FeeBumpTransactionParams struct {
	Inner      *Transaction
	FeeAccount string
	// BaseFee is the fee per operation in stroops, counting the fee bump itself
	// as one extra operation
	BaseFee int64
	Logger  *slog.Logger
}

// FeeBumpTransaction wraps an inner transaction so that a different account
// pays its fee. Like Transaction it is never modified after construction
type FeeBumpTransaction struct {
	envelope   xdr.TransactionEnvelope
	inner      *Transaction
	feeAccount string
	baseFee    int64
	maxFee     int64
	logger     *slog.Logger
}

func NewFeeBumpTransaction(params FeeBumpTransactionParams) (*FeeBumpTransaction, error) {
	logger := loggerOrDefault(params.Logger)
	inner := params.Inner
	if inner == nil {
		return nil, ErrMissingInnerTransaction
	}
	minFee := max(MinBaseFee, inner.BaseFee())
	if params.BaseFee < minFee {
		return nil, fmt.Errorf(
			"%w: base fee %d is below minimum %d",
			ErrInvalidFee,
			params.BaseFee,
			minFee,
		)
	}
	numOps := int64(len(inner.operations)) + 1
	if params.BaseFee > math.MaxInt64/numOps {
		return nil, fmt.Errorf(
			"%w: base fee %d for %d operations overflows int64",
			ErrInvalidFee,
			params.BaseFee,
			numOps,
		)
	}
	maxFee := params.BaseFee * numOps
	feeSource, err := xdr.MuxedAccountFromAddress(params.FeeAccount)
	if err != nil {
		return nil, fmt.Errorf("%w: fee account %q: %w", ErrInvalidAccount, params.FeeAccount, err)
	}
	innerV1 := inner
	if inner.envelope.Type == xdr.EnvelopeTypeTxV0 {
		// v0 signatures already cover the v1 form, so they carry over unchanged
		converted := *inner
		converted.envelope = xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTx,
			V1:   inner.innerEnvelope(),
		}
		innerV1 = &converted
	}
	ret := &FeeBumpTransaction{
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeTxFeeBump,
			FeeBump: &xdr.FeeBumpTransactionEnvelope{
				Tx: xdr.FeeBumpTransaction{
					FeeSource: feeSource,
					Fee:       maxFee,
					InnerTx: xdr.FeeBumpInnerTx{
						Type: xdr.EnvelopeTypeTx,
						V1:   innerV1.innerEnvelope(),
					},
				},
			},
		},
		inner:      innerV1,
		feeAccount: params.FeeAccount,
		baseFee:    params.BaseFee,
		maxFee:     maxFee,
		logger:     logger,
	}
	logger.Debug(
		"fee bump sealed",
		"component", "txnbuild",
		"fee_source", params.FeeAccount,
		"max_fee", maxFee,
	)
	return ret, nil
}

func feeBumpFromEnvelope(env xdr.TransactionEnvelope, logger *slog.Logger) (*FeeBumpTransaction, error) {
	if env.Type != xdr.EnvelopeTypeTxFeeBump || env.FeeBump == nil {
		return nil, fmt.Errorf("unexpected envelope type %d", env.Type)
	}
	fb := env.FeeBump.Tx
	if fb.InnerTx.V1 == nil {
		return nil, ErrMissingInnerTransaction
	}
	inner, err := transactionFromEnvelope(
		xdr.TransactionEnvelope{Type: xdr.EnvelopeTypeTx, V1: fb.InnerTx.V1},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("inner transaction: %w", err)
	}
	return &FeeBumpTransaction{
		envelope:   env,
		inner:      inner,
		feeAccount: fb.FeeSource.Address(),
		baseFee:    fb.Fee / int64(len(inner.operations)+1),
		maxFee:     fb.Fee,
		logger:     loggerOrDefault(logger),
	}, nil
}

func (t *FeeBumpTransaction) tagged() xdr.TaggedTransaction {
	tx := t.envelope.FeeBump.Tx
	return xdr.TaggedTransaction{Type: xdr.EnvelopeTypeTxFeeBump, FeeBump: &tx}
}

func (t *FeeBumpTransaction) addSignatures(sigs ...xdr.DecoratedSignature) (*FeeBumpTransaction, error) {
	newSigs, err := appendSignatures(t.logger, t.envelope.Type, t.envelope.FeeBump.Signatures, sigs...)
	if err != nil {
		return nil, err
	}
	ret := *t
	env := *t.envelope.FeeBump
	env.Signatures = newSigs
	ret.envelope.FeeBump = &env
	return &ret, nil
}

// SignatureBase returns the exact bytes whose hash is signed
func (t *FeeBumpTransaction) SignatureBase(sel network.Selector) ([]byte, error) {
	return signatureBase(sel, t.tagged())
}

func (t *FeeBumpTransaction) Hash(sel network.Selector) ([32]byte, error) {
	return signatureHash(sel, t.tagged())
}

func (t *FeeBumpTransaction) HashHex(sel network.Selector) (string, error) {
	hash, err := t.Hash(sel)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash[:]), nil
}

// Sign returns a copy of the fee bump with a signature from each keypair appended
func (t *FeeBumpTransaction) Sign(sel network.Selector, kps ...*keypair.Keypair) (*FeeBumpTransaction, error) {
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

func (t *FeeBumpTransaction) SignHashX(preimage []byte) (*FeeBumpTransaction, error) {
	sig, err := hashXSignature(preimage)
	if err != nil {
		return nil, err
	}
	return t.addSignatures(sig)
}

func (t *FeeBumpTransaction) SignWithPayload(kp *keypair.Keypair, payload []byte) (*FeeBumpTransaction, error) {
	if kp == nil {
		return nil, keypair.ErrNoSecretKey
	}
	sig, err := kp.SignPayloadDecorated(payload)
	if err != nil {
		return nil, err
	}
	return t.addSignatures(sig)
}

func (t *FeeBumpTransaction) AddSignatureDecorated(sigs ...xdr.DecoratedSignature) (*FeeBumpTransaction, error) {
	return t.addSignatures(sigs...)
}

// AddSignatureBase64 verifies a base64 signature made by signer elsewhere and
// returns a copy of the fee bump with it appended
func (t *FeeBumpTransaction) AddSignatureBase64(sel network.Selector, signer string, signature string) (*FeeBumpTransaction, error) {
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
func (t *FeeBumpTransaction) ToXDR() (xdr.TransactionEnvelope, error) {
	return copyEnvelope(&t.envelope)
}

func (t *FeeBumpTransaction) MarshalBinary() ([]byte, error) {
	return xdr.Marshal(&t.envelope)
}

func (t *FeeBumpTransaction) Base64() (string, error) {
	return xdr.MarshalBase64(&t.envelope)
}

// Signatures returns the fee bump's own signatures, not the inner transaction's
func (t *FeeBumpTransaction) Signatures() []xdr.DecoratedSignature {
	return copySignatures(t.envelope.FeeBump.Signatures)
}

// InnerTransaction returns the wrapped transaction, always in v1 layout
func (t *FeeBumpTransaction) InnerTransaction() *Transaction {
	return t.inner
}

func (t *FeeBumpTransaction) FeeAccount() string {
	return t.feeAccount
}

func (t *FeeBumpTransaction) BaseFee() int64 {
	return t.baseFee
}

func (t *FeeBumpTransaction) MaxFee() int64 {
	return t.maxFee
}
