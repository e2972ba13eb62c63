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

package keypair

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DerivationSeedSize is the size of a BIP-0039 seed
	DerivationSeedSize = 64

	mnemonicIterations = 2048
	hardenedOffset     = 0x80000000

	purposeIndex  = 44
	coinTypeIndex = 148
)

var ErrInvalidDerivationIndex = errors.New("derivation index must be below 2^31")

// SeedFromMnemonic converts a BIP-0039 mnemonic and optional passphrase into
// a 64-byte derivation seed. Words are rejoined with single spaces; the
// mnemonic is not checked against a word list
func SeedFromMnemonic(mnemonic string, passphrase string) []byte {
	normalized := strings.Join(strings.Fields(mnemonic), " ")
	return pbkdf2.Key(
		[]byte(normalized),
		[]byte("mnemonic"+passphrase),
		mnemonicIterations,
		DerivationSeedSize,
		sha512.New,
	)
}

// FromDerivationSeed returns the keypair at m/44'/148'/index' (SEP-0005)
func FromDerivationSeed(seed []byte, index uint32) (*Keypair, error) {
	if index >= hardenedOffset {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDerivationIndex, index)
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty derivation seed", ErrInvalidSeed)
	}
	key := deriveHardened(seed, purposeIndex, coinTypeIndex, index)
	return FromRawSeed(key)
}

// FromMnemonic is SeedFromMnemonic followed by FromDerivationSeed
func FromMnemonic(mnemonic string, passphrase string, index uint32) (*Keypair, error) {
	return FromDerivationSeed(SeedFromMnemonic(mnemonic, passphrase), index)
}

// deriveHardened walks a SLIP-0010 ed25519 path where every level is hardened
func deriveHardened(seed []byte, path ...uint32) []byte {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chainCode := sum[:32], sum[32:]
	for _, index := range path {
		data := make([]byte, 0, 1+len(key)+4)
		data = append(data, 0)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)
		mac = hmac.New(sha512.New, chainCode)
		mac.Write(data)
		sum = mac.Sum(nil)
		key, chainCode = sum[:32], sum[32:]
	}
	return key
}
