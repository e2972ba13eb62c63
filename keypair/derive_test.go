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
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SEP-0005 test vector 1
const testMnemonic = "illness spike retreat truth genius clock brain pass fit cave bargain toe"

func TestSeedFromMnemonic(t *testing.T) {
	seed := keypair.SeedFromMnemonic(testMnemonic, "")
	assert.Equal(
		t,
		"e4a5a632e70943ae7f07659df1332160937fad82587216a4c64315a0fb39497ee4a01f76ddab4cba68147977f3a147b6ad584c41808e8238a07f6cc4b582f186",
		hex.EncodeToString(seed),
	)
	// Extra whitespace does not change the seed
	assert.Equal(t, seed, keypair.SeedFromMnemonic("  "+testMnemonic+"\n", ""))
}

func TestFromDerivationSeed(t *testing.T) {
	seed := keypair.SeedFromMnemonic(testMnemonic, "")
	testDefs := []struct {
		index   uint32
		address string
		secret  string
	}{
		{
			index:   0,
			address: "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6",
			secret:  "SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN",
		},
		{
			index:   1,
			address: "GBAW5XGWORWVFE2XTJYDTLDHXTY2Q2MO73HYCGB3XMFMQ562Q2W2GJQX",
			secret:  "SCEPFFWGAG5P2VX5DHIYK3XEMZYLTYWIPWYEKXFHSK25RVMIUNJ7CTIS",
		},
		{
			index:   9,
			address: "GBTVYYDIYWGUQUTKX6ZMLGSZGMTESJYJKJWAATGZGITA25ZB6T5REF44",
			secret:  "SCJGVMJ66WAUHQHNLMWDFGY2E72QKSI3XGSBYV6BANDFUFE7VY4XNXXR",
		},
	}
	for _, testDef := range testDefs {
		kp, err := keypair.FromDerivationSeed(seed, testDef.index)
		require.NoError(t, err)
		assert.Equal(t, testDef.address, kp.Address())
		secret, err := kp.Seed()
		require.NoError(t, err)
		assert.Equal(t, testDef.secret, secret)
	}
}

func TestFromMnemonicPassphrase(t *testing.T) {
	kp, err := keypair.FromMnemonic(testMnemonic, "p4ssphr4se", 0)
	require.NoError(t, err)
	assert.Equal(t, "GAEZGTGOZU7ROMCJDCLPG5EUTVQKLARN5GDGAMYTDAOV27XWCA3CQZQQ", kp.Address())
}

func TestFromDerivationSeedErrors(t *testing.T) {
	seed := keypair.SeedFromMnemonic(testMnemonic, "")
	_, err := keypair.FromDerivationSeed(seed, 1<<31)
	assert.ErrorIs(t, err, keypair.ErrInvalidDerivationIndex)
	_, err = keypair.FromDerivationSeed(nil, 0)
	assert.ErrorIs(t, err, keypair.ErrInvalidSeed)
}
