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

package keypair_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gostellar/internal/test"
	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSeedHex    = "691f2cd7f54a6d3e7a8aaa5c3caa3d314c222db0ae37bf87a4dfeaf23131a6fa"
	testSecret     = "SBUR6LGX6VFG2PT2RKVFYPFKHUYUYIRNWCXDPP4HUTP6V4RRGGTPU4GE"
	testAddress    = "GCVFUMIWYN4ZA53NIBX7EROUVLUSUCBQPV75EXFVSF4OSD64DH3AKQKL"
	testPublicHex  = "aa5a3116c37990776d406ff245d4aae92a08307d7fd25cb59178e90fdc19f605"
	helloSignature = "e7dc8846235701f9dcba08814b9d107091581c21da4289da27b69f843321da29c99bfc083462c0bafe2417a337d64188a9231bbccaf1fc97c0eecb7d9b746902"
)

func TestFromRawSeed(t *testing.T) {
	kp, err := keypair.FromRawSeed(test.DecodeHexString(testSeedHex))
	require.NoError(t, err)
	assert.True(t, kp.CanSign())
	assert.Equal(t, testAddress, kp.Address())
	assert.Equal(t, testAddress, kp.String())
	assert.Equal(t, testPublicHex, hex.EncodeToString(kp.RawPublicKey()))
	seed, err := kp.Seed()
	require.NoError(t, err)
	assert.Equal(t, testSecret, seed)
	rawSeed, err := kp.RawSeed()
	require.NoError(t, err)
	assert.Equal(t, testSeedHex, hex.EncodeToString(rawSeed))

	_, err = keypair.FromRawSeed(make([]byte, 31))
	assert.ErrorIs(t, err, keypair.ErrInvalidSeed)
}

func TestFromSecret(t *testing.T) {
	kp, err := keypair.FromSecret(testSecret)
	require.NoError(t, err)
	assert.Equal(t, testAddress, kp.Address())

	_, err = keypair.FromSecret(testAddress)
	assert.ErrorIs(t, err, keypair.ErrInvalidSeed)
	assert.ErrorIs(t, err, strkey.ErrVersionMismatch)
}

func TestVerifyOnly(t *testing.T) {
	kp, err := keypair.FromAddress(testAddress)
	require.NoError(t, err)
	assert.False(t, kp.CanSign())

	_, err = kp.Sign([]byte("hello world"))
	assert.ErrorIs(t, err, keypair.ErrNoSecretKey)
	_, err = kp.Seed()
	assert.ErrorIs(t, err, keypair.ErrNoSecretKey)
	_, err = kp.RawSeed()
	assert.ErrorIs(t, err, keypair.ErrNoSecretKey)
	_, err = kp.SignDecorated([]byte("hello world"))
	assert.ErrorIs(t, err, keypair.ErrNoSecretKey)

	assert.True(t, kp.Verify([]byte("hello world"), test.DecodeHexString(helloSignature)))

	_, err = keypair.FromAddress(testSecret)
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
	_, err = keypair.FromRawPublicKey(make([]byte, 33))
	assert.ErrorIs(t, err, keypair.ErrInvalidPublicKey)
}

func TestParse(t *testing.T) {
	kp, err := keypair.Parse(testSecret)
	require.NoError(t, err)
	assert.True(t, kp.CanSign())

	kp, err = keypair.Parse(testAddress)
	require.NoError(t, err)
	assert.False(t, kp.CanSign())
	assert.True(t, kp.Equal(keypair.MustParse(testSecret)))

	_, err = keypair.Parse("TAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABLVU")
	assert.ErrorIs(t, err, strkey.ErrVersionMismatch)
	_, err = keypair.Parse("garbage")
	assert.ErrorIs(t, err, strkey.ErrInvalidFormat)
	assert.Panics(t, func() { keypair.MustParse("garbage") })
}

func TestSignVerify(t *testing.T) {
	kp := keypair.MustParse(testSecret)
	msg := []byte("hello world")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, helloSignature, hex.EncodeToString(sig))
	assert.True(t, kp.Verify(msg, sig))

	for i := range msg {
		mutated := bytes.Clone(msg)
		mutated[i] ^= 0x01
		assert.False(t, kp.Verify(mutated, sig), "message byte %d", i)
	}
	for i := range sig {
		mutated := bytes.Clone(sig)
		mutated[i] ^= 0x01
		assert.False(t, kp.Verify(msg, mutated), "signature byte %d", i)
	}
	assert.False(t, kp.Verify(msg, sig[:63]))
	assert.False(t, kp.Verify(msg, nil))
	assert.False(t, kp.Verify(msg, append(bytes.Clone(sig), 0)))

	other, err := keypair.Random()
	require.NoError(t, err)
	assert.False(t, other.Verify(msg, sig))
}

func TestVerifyRejectsSmallOrderKey(t *testing.T) {
	// Identity point: every signature with R = identity and S = 0 verifies
	// under a plain cofactorless check for this key
	identity := make([]byte, 32)
	identity[0] = 1
	kp, err := keypair.FromRawPublicKey(identity)
	require.NoError(t, err)
	sig := make([]byte, 64)
	sig[0] = 1
	assert.False(t, kp.Verify([]byte("anything"), sig))
}

func TestVerifyRejectsNonCanonicalS(t *testing.T) {
	kp := keypair.MustParse(testSecret)
	msg := []byte("hello world")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	// Adding the group order to S keeps the same scalar but a non-canonical encoding
	order := test.DecodeHexString("edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	var carry uint16
	for i := range 32 {
		sum := uint16(sig[32+i]) + uint16(order[i]) + carry
		sig[32+i] = byte(sum)
		carry = sum >> 8
	}
	assert.False(t, kp.Verify(msg, sig))
}

func TestHints(t *testing.T) {
	kp := keypair.MustParse(testSecret)
	assert.Equal(t, xdr.SignatureHint{0xdc, 0x19, 0xf6, 0x05}, kp.Hint())

	decorated, err := kp.SignDecorated([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, kp.Hint(), decorated.Hint)
	assert.Equal(t, helloSignature, hex.EncodeToString(decorated.Signature))

	testDefs := []struct {
		payload []byte
		hint    xdr.SignatureHint
	}{
		{payload: []byte{1, 2, 3, 4, 5}, hint: xdr.SignatureHint{0xde, 0x1a, 0xf2, 0x00}},
		{payload: []byte{1, 2}, hint: xdr.SignatureHint{0xdc, 0x19, 0xf7, 0x07}},
		{payload: []byte{}, hint: kp.Hint()},
	}
	for _, testDef := range testDefs {
		decorated, err := kp.SignPayloadDecorated(testDef.payload)
		require.NoError(t, err)
		assert.Equal(t, testDef.hint, decorated.Hint)
		assert.True(t, kp.Verify(testDef.payload, decorated.Signature))
	}
}

func TestXDR(t *testing.T) {
	kp := keypair.MustParse(testAddress)
	assert.Equal(t, testPublicHex, kp.XDRAccountID().Ed25519.String())
	muxed := kp.XDRMuxedAccount()
	assert.Equal(t, testAddress, muxed.Address())
	signer := kp.XDRSignerKey()
	address, err := signer.Address()
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)
}

func TestMaster(t *testing.T) {
	kp, err := keypair.Master(network.Testnet)
	require.NoError(t, err)
	assert.Equal(t, "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H", kp.Address())
	seed, err := kp.Seed()
	require.NoError(t, err)
	assert.Equal(t, "SDHOAMBNLGCE2MV5ZKIVZAQD3VCLGP53P3OBSBI6UN5L5XZI5TKHFQL4", seed)

	_, err = keypair.Master(network.NewContext())
	assert.ErrorIs(t, err, network.ErrNoNetworkSelected)
}

func TestRandom(t *testing.T) {
	a, err := keypair.Random()
	require.NoError(t, err)
	b, err := keypair.Random()
	require.NoError(t, err)
	assert.True(t, a.CanSign())
	assert.False(t, a.Equal(b))
	assert.True(t, strkey.IsValid(strkey.VersionByteAccountID, a.Address()))
}
