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

package xdr_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Single native payment of 10 XLM from GCVFUMIW... to GA3D5KRY..., sequence 6,
// infinite time bounds, signed on testnet
const (
	signedEnvelopeBase64 = "AAAAAgAAAACqWjEWw3mQd21Ab/JF1KrpKggwfX/SXLWReOkP3Bn2BQAAAGQAAAAAAAAABgAAAAEAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAEAAAAAAAAAAQAAAAA2Pqo4Z4QfutD07YjHeeT+ZuVqJHDcmMDsnAc9BcexAwAAAAAAAAAABfXhAAAAAAAAAAAB3Bn2BQAAAEBOQ5DgkoGUQK/I/IV0D8TdyrwMp/jNYZ4COXIFLb6gCGB5LoKNkUHyjJrNRGtG0eK38rPQpmxX0BjiNoEuoXcN"
	transactionHex       = "00000000aa5a3116c37990776d406ff245d4aae92a08307d7fd25cb59178e90fdc19f60500000064000000000000000600000001000000000000000000000000000000000000000000000001000000000000000100000000363eaa3867841fbad0f4ed88c779e4fe66e56a2470dc98c0ec9c073d05c7b103000000000000000005f5e10000000000"
	testnetIdHex         = "cee0302d59844d32bdca915c8203dd44b33fbb7edc19051ea37abedf28ecd472"
)

func TestTransactionEnvelopeRoundTrip(t *testing.T) {
	var env xdr.TransactionEnvelope
	require.NoError(t, xdr.UnmarshalBase64(signedEnvelopeBase64, &env))
	require.Equal(t, xdr.EnvelopeTypeTx, env.Type)
	require.NotNil(t, env.V1)
	tx := env.V1.Tx
	assert.Equal(
		t,
		"GCVFUMIWYN4ZA53NIBX7EROUVLUSUCBQPV75EXFVSF4OSD64DH3AKQKL",
		tx.SourceAccount.Address(),
	)
	assert.Equal(t, uint32(100), tx.Fee)
	assert.Equal(t, int64(6), tx.SeqNum)
	assert.Equal(t, xdr.PreconditionTypeTime, tx.Cond.Type)
	assert.Equal(t, &xdr.TimeBounds{}, tx.Cond.Bounds())
	assert.Equal(t, xdr.MemoTypeNone, tx.Memo.Type)
	require.Len(t, tx.Operations, 1)
	op := tx.Operations[0]
	assert.Nil(t, op.SourceAccount)
	require.Equal(t, xdr.OperationTypePayment, op.Body.Type)
	assert.Equal(
		t,
		"GA3D5KRYM6CB7OWQ6TWYRR3Z4T7GNZLKERYNZGGA5SOAOPIFY6YQHES5",
		op.Body.PaymentOp.Destination.Address(),
	)
	assert.Equal(t, xdr.AssetTypeNative, op.Body.PaymentOp.Asset.Type)
	assert.Equal(t, int64(100000000), op.Body.PaymentOp.Amount)
	require.Len(t, env.Signatures(), 1)
	assert.Equal(t, xdr.SignatureHint{0xdc, 0x19, 0xf6, 0x05}, env.Signatures()[0].Hint)
	assert.Len(t, env.Signatures()[0].Signature, 64)

	txBytes, err := xdr.Marshal(&tx)
	require.NoError(t, err)
	assert.Equal(t, transactionHex, hex.EncodeToString(txBytes))

	out, err := xdr.MarshalBase64(&env)
	require.NoError(t, err)
	assert.Equal(t, signedEnvelopeBase64, out)
}

func TestTransactionSignaturePayload(t *testing.T) {
	var tx xdr.Transaction
	require.NoError(t, xdr.Unmarshal(test.DecodeHexString(transactionHex), &tx))
	payload := xdr.TransactionSignaturePayload{
		TaggedTransaction: xdr.TaggedTransaction{
			Type: xdr.EnvelopeTypeTx,
			Tx:   &tx,
		},
	}
	copy(payload.NetworkId[:], test.DecodeHexString(testnetIdHex))
	data, err := xdr.Marshal(&payload)
	require.NoError(t, err)
	expected := testnetIdHex + "00000002" + transactionHex
	assert.Equal(t, expected, hex.EncodeToString(data))
}

func TestTransactionV0ToV1(t *testing.T) {
	var key xdr.Uint256
	key[31] = 1
	v0 := xdr.TransactionV0{
		SourceAccountEd25519: key,
		Fee:                  200,
		SeqNum:               42,
		TimeBounds:           &xdr.TimeBounds{MinTime: 1, MaxTime: 2},
		Memo:                 xdr.Memo{Type: xdr.MemoTypeNone},
		Operations: []xdr.Operation{
			{Body: xdr.OperationBody{Type: xdr.OperationTypeInflation}},
		},
	}
	v1 := v0.ToV1()
	assert.Equal(t, xdr.KeyTypeEd25519, v1.SourceAccount.Type)
	assert.Equal(t, key, *v1.SourceAccount.Ed25519)
	assert.Equal(t, xdr.PreconditionTypeTime, v1.Cond.Type)

	// Everything after the source account is byte identical between the forms
	v0Bytes, err := xdr.Marshal(&v0)
	require.NoError(t, err)
	v1Bytes, err := xdr.Marshal(&v1)
	require.NoError(t, err)
	assert.Equal(t, v0Bytes[32:], v1Bytes[36:])

	v0.TimeBounds = nil
	v1 = v0.ToV1()
	assert.Equal(t, xdr.PreconditionTypeNone, v1.Cond.Type)
	assert.Nil(t, v1.Cond.Bounds())
}

func TestFeeBumpRoundTrip(t *testing.T) {
	var inner xdr.TransactionEnvelope
	require.NoError(t, xdr.UnmarshalBase64(signedEnvelopeBase64, &inner))
	var feeKey xdr.Uint256
	feeKey[0] = 0xaa
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeTxFeeBump,
		FeeBump: &xdr.FeeBumpTransactionEnvelope{
			Tx: xdr.FeeBumpTransaction{
				FeeSource: xdr.NewMuxedAccount(feeKey),
				Fee:       400,
				InnerTx: xdr.FeeBumpInnerTx{
					Type: xdr.EnvelopeTypeTx,
					V1:   inner.V1,
				},
			},
		},
	}
	data, err := xdr.Marshal(&env)
	require.NoError(t, err)
	var decoded xdr.TransactionEnvelope
	require.NoError(t, xdr.Unmarshal(data, &decoded))
	assert.Equal(t, env, decoded)
	assert.Empty(t, decoded.Signatures())

	env.FeeBump.Tx.InnerTx.Type = xdr.EnvelopeTypeTxV0
	_, err = xdr.Marshal(&env)
	assert.ErrorIs(t, err, xdr.ErrInvalidUnion)
}

func TestEnvelopeDecodeErrors(t *testing.T) {
	good, err := hex.DecodeString("00000002" + transactionHex + "00000000")
	require.NoError(t, err)
	var env xdr.TransactionEnvelope
	require.NoError(t, xdr.Unmarshal(good, &env))

	testDefs := []struct {
		name string
		data []byte
		err  error
	}{
		{
			name: "trailing data",
			data: append(bytes.Clone(good), 0, 0, 0, 0),
			err:  xdr.ErrTrailingData,
		},
		{
			name: "unknown envelope type",
			data: append([]byte{0, 0, 0, 1}, good[4:]...),
			err:  xdr.ErrInvalidUnion,
		},
		{
			name: "too many signatures",
			data: append(bytes.Clone(good[:len(good)-4]), 0, 0, 0, 21),
			err:  xdr.ErrMaxLengthExceeded,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var env xdr.TransactionEnvelope
			err := xdr.Unmarshal(testDef.data, &env)
			assert.ErrorIs(t, err, testDef.err)
		})
	}

	// Truncated input is a plain decode error
	var truncated xdr.TransactionEnvelope
	assert.Error(t, xdr.Unmarshal(good[:len(good)-2], &truncated))
}

func TestExtensionPoint(t *testing.T) {
	var tx xdr.Transaction
	require.NoError(t, xdr.Unmarshal(test.DecodeHexString(transactionHex), &tx))
	tx.Ext.V = 1
	_, err := xdr.Marshal(&tx)
	assert.ErrorIs(t, err, xdr.ErrInvalidUnion)

	data := test.DecodeHexString(transactionHex)
	data[len(data)-1] = 1
	assert.ErrorIs(t, xdr.Unmarshal(data, &tx), xdr.ErrInvalidUnion)
}

func TestTooManyOperations(t *testing.T) {
	var tx xdr.Transaction
	require.NoError(t, xdr.Unmarshal(test.DecodeHexString(transactionHex), &tx))
	for len(tx.Operations) <= xdr.MaxOperations {
		tx.Operations = append(tx.Operations, tx.Operations[0])
	}
	_, err := xdr.Marshal(&tx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, xdr.ErrMaxLengthExceeded))
}

func TestUnmarshalBase64Invalid(t *testing.T) {
	var env xdr.TransactionEnvelope
	assert.Error(t, xdr.UnmarshalBase64("not base64!", &env))
}
