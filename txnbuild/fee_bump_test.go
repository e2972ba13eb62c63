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

package txnbuild_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/txnbuild"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fee bump of the signed payment paid by testDestination at base fee 200
const feeBumpHashHex = "507b744eea94a0d1bb25d178aed0cb850422e0b9a610995d6c05e87591ce28e6"

func signedPayment(t *testing.T) *txnbuild.Transaction {
	t.Helper()
	tx, err := buildPayment(t).Sign(network.Testnet, keypair.MustParse(testSecret))
	require.NoError(t, err)
	return tx
}

func TestFeeBump(t *testing.T) {
	inner := signedPayment(t)
	fb, err := txnbuild.NewFeeBumpTransaction(txnbuild.FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: testDestination,
		BaseFee:    200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(400), fb.MaxFee())
	assert.Equal(t, int64(200), fb.BaseFee())
	assert.Equal(t, testDestination, fb.FeeAccount())
	assert.Empty(t, fb.Signatures())
	assert.Len(t, fb.InnerTransaction().Signatures(), 1)

	base, err := fb.SignatureBase(network.Testnet)
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(testnetIdHex+"00000005"), base[:36])
	hash, err := fb.HashHex(network.Testnet)
	require.NoError(t, err)
	assert.Equal(t, feeBumpHashHex, hash)

	kp, err := keypair.Random()
	require.NoError(t, err)
	signed, err := fb.Sign(network.Testnet, kp)
	require.NoError(t, err)
	require.Len(t, signed.Signatures(), 1)
	rawHash, err := signed.Hash(network.Testnet)
	require.NoError(t, err)
	assert.True(t, kp.Verify(rawHash[:], signed.Signatures()[0].Signature))
	assert.Empty(t, fb.Signatures())

	b64, err := signed.Base64()
	require.NoError(t, err)
	generic, err := txnbuild.TransactionFromXDR(b64)
	require.NoError(t, err)
	_, isSimple := generic.Transaction()
	assert.False(t, isSimple)
	decoded, ok := generic.FeeBump()
	require.True(t, ok)
	assert.Equal(t, int64(400), decoded.MaxFee())
	assert.Equal(t, int64(200), decoded.BaseFee())
	assert.Equal(t, testDestination, decoded.FeeAccount())
	innerHash, err := decoded.InnerTransaction().HashHex(network.Testnet)
	require.NoError(t, err)
	assert.Equal(t, paymentHashHex, innerHash)
	decodedHash, err := decoded.HashHex(network.Testnet)
	require.NoError(t, err)
	assert.Equal(t, feeBumpHashHex, decodedHash)
	again, err := decoded.Base64()
	require.NoError(t, err)
	assert.Equal(t, b64, again)
}

func TestFeeBumpConvertsV0Inner(t *testing.T) {
	generic, err := txnbuild.TransactionFromXDR(paymentSignedV0)
	require.NoError(t, err)
	inner, ok := generic.Transaction()
	require.True(t, ok)
	fb, err := txnbuild.NewFeeBumpTransaction(txnbuild.FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: testDestination,
		BaseFee:    200,
	})
	require.NoError(t, err)
	assert.Equal(t, xdr.EnvelopeTypeTx, fb.InnerTransaction().EnvelopeType())
	sigs := fb.InnerTransaction().Signatures()
	require.Len(t, sigs, 1)
	assert.Equal(t, paymentSigHex, hex.EncodeToString(sigs[0].Signature))
	hash, err := fb.HashHex(network.Testnet)
	require.NoError(t, err)
	assert.Equal(t, feeBumpHashHex, hash)
	// The original stays in v0 layout
	assert.Equal(t, xdr.EnvelopeTypeTxV0, inner.EnvelopeType())
}

func TestFeeBumpErrors(t *testing.T) {
	inner := signedPayment(t)
	tests := []struct {
		name   string
		params txnbuild.FeeBumpTransactionParams
		err    error
	}{
		{
			name:   "no inner",
			params: txnbuild.FeeBumpTransactionParams{FeeAccount: testDestination, BaseFee: 200},
			err:    txnbuild.ErrMissingInnerTransaction,
		},
		{
			name:   "below minimum",
			params: txnbuild.FeeBumpTransactionParams{Inner: inner, FeeAccount: testDestination, BaseFee: 99},
			err:    txnbuild.ErrInvalidFee,
		},
		{
			name:   "overflow",
			params: txnbuild.FeeBumpTransactionParams{Inner: inner, FeeAccount: testDestination, BaseFee: 1 << 62},
			err:    txnbuild.ErrInvalidFee,
		},
		{
			name:   "bad fee account",
			params: txnbuild.FeeBumpTransactionParams{Inner: inner, FeeAccount: "GBAD", BaseFee: 200},
			err:    txnbuild.ErrInvalidAccount,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := txnbuild.NewFeeBumpTransaction(tc.params)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFeeBumpBelowInnerBaseFee(t *testing.T) {
	params := paymentParams(5)
	params.BaseFee = 300
	inner, err := txnbuild.NewTransaction(params)
	require.NoError(t, err)
	_, err = txnbuild.NewFeeBumpTransaction(txnbuild.FeeBumpTransactionParams{
		Inner:      inner,
		FeeAccount: testDestination,
		BaseFee:    200,
	})
	assert.ErrorIs(t, err, txnbuild.ErrInvalidFee)
}
