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

	"github.com/blinklabs-io/gostellar/cbor"
	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/txnbuild"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningRequestRoundTrip(t *testing.T) {
	tx := buildPayment(t)
	req, err := txnbuild.NewSigningRequest(network.Testnet, tx)
	require.NoError(t, err)
	assert.Equal(t, txnbuild.SigningRequestVersion, req.Version)
	assert.Equal(t, network.TestNetworkPassphrase, req.Passphrase)
	assert.Equal(t, test.DecodeHexString(testnetIdHex+envelopeTypeTxHex+paymentTxHex), req.SignatureBase)

	data, err := req.MarshalCBOR()
	require.NoError(t, err)
	// Four element array
	assert.Equal(t, byte(0x84), data[0])
	length, err := cbor.ListLength(data)
	require.NoError(t, err)
	assert.Equal(t, 4, length)

	decoded, err := txnbuild.DecodeSigningRequest(data)
	require.NoError(t, err)
	assert.Equal(t, req.Version, decoded.Version)
	assert.Equal(t, req.Passphrase, decoded.Passphrase)
	assert.Equal(t, req.Envelope, decoded.Envelope)
	assert.Equal(t, req.SignatureBase, decoded.SignatureBase)
	assert.Equal(t, data, decoded.Cbor())
	assert.Equal(t, network.Testnet, decoded.Network())
	require.NoError(t, decoded.Verify())
}

func TestSigningRequestApply(t *testing.T) {
	req, err := txnbuild.NewSigningRequest(network.Testnet, buildPayment(t))
	require.NoError(t, err)
	// The offline signer only needs the request
	hash := req.Hash()
	sig, err := keypair.MustParse(testSecret).SignDecorated(hash[:])
	require.NoError(t, err)
	generic, err := req.Apply(sig)
	require.NoError(t, err)
	tx, ok := generic.Transaction()
	require.True(t, ok)
	b64, err := tx.Base64()
	require.NoError(t, err)
	assert.Equal(t, paymentSigned, b64)
}

func TestSigningRequestFeeBump(t *testing.T) {
	fb, err := txnbuild.NewFeeBumpTransaction(txnbuild.FeeBumpTransactionParams{
		Inner:      signedPayment(t),
		FeeAccount: testDestination,
		BaseFee:    200,
	})
	require.NoError(t, err)
	req, err := txnbuild.NewSigningRequest(network.Testnet, fb)
	require.NoError(t, err)
	hash := req.Hash()
	assert.Equal(t, feeBumpHashHex, hex.EncodeToString(hash[:]))
	require.NoError(t, req.Verify())
	kp, err := keypair.Random()
	require.NoError(t, err)
	sig, err := kp.SignDecorated(hash[:])
	require.NoError(t, err)
	generic, err := req.Apply(sig)
	require.NoError(t, err)
	signed, ok := generic.FeeBump()
	require.True(t, ok)
	assert.Equal(t, []xdr.DecoratedSignature{sig}, signed.Signatures())
}

func TestSigningRequestVerifyMismatch(t *testing.T) {
	req, err := txnbuild.NewSigningRequest(network.Testnet, buildPayment(t))
	require.NoError(t, err)
	req.Passphrase = network.PublicNetworkPassphrase
	assert.ErrorIs(t, req.Verify(), txnbuild.ErrSigningRequestMismatch)
	_, err = req.Apply(xdr.DecoratedSignature{})
	assert.ErrorIs(t, err, txnbuild.ErrSigningRequestMismatch)
}

func TestSigningRequestErrors(t *testing.T) {
	_, err := txnbuild.NewSigningRequest(network.Network{}, buildPayment(t))
	assert.ErrorIs(t, err, network.ErrNoNetworkSelected)

	req := &txnbuild.SigningRequest{Version: 2, Passphrase: "x"}
	data, err := req.MarshalCBOR()
	require.NoError(t, err)
	_, err = txnbuild.DecodeSigningRequest(data)
	assert.ErrorIs(t, err, txnbuild.ErrSigningRequestVersion)

	_, err = txnbuild.DecodeSigningRequest([]byte{0x01})
	assert.ErrorIs(t, err, txnbuild.ErrSigningRequestLayout)
}

func TestDecodeSigningRequestArity(t *testing.T) {
	tests := []struct {
		name   string
		fields []any
	}{
		{"short", []any{uint(1), "x", []byte{}}},
		{"long", []any{uint(1), "x", []byte{}, []byte{}, []byte{}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := cbor.Encode(tc.fields)
			require.NoError(t, err)
			_, err = txnbuild.DecodeSigningRequest(data)
			assert.ErrorIs(t, err, txnbuild.ErrSigningRequestLayout)
		})
	}
}
