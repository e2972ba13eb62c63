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

// Package keypair implements ed25519 signing keys and their strkey forms,
// signature hints and decorated signatures, plus SEP-0005 key derivation.
package keypair

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
)

const (
	// SeedSize is the size of a raw secret seed
	SeedSize = ed25519.SeedSize

	// PublicKeySize is the size of a raw public key
	PublicKeySize = ed25519.PublicKeySize

	// SignatureSize is the size of an ed25519 signature
	SignatureSize = ed25519.SignatureSize

	// HintSize is the size of a signature hint
	HintSize = 4
)

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidSeed      = errors.New("invalid secret seed")
	ErrNoSecretKey      = errors.New("keypair has no secret key")
)

// Keypair is an ed25519 public key with optional secret material. Keypairs
// are immutable; a verify-only Keypair has no private key
type Keypair struct {
	publicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
}

// FromRawSeed returns a signing keypair for a 32-byte seed
func FromRawSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidSeed,
			SeedSize,
			len(seed),
		)
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	return &Keypair{
		publicKey:  privateKey.Public().(ed25519.PublicKey),
		privateKey: privateKey,
	}, nil
}

// FromSecret returns a signing keypair for an S... strkey
func FromSecret(secret string) (*Keypair, error) {
	seed, err := strkey.Decode(strkey.VersionByteSeed, secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return FromRawSeed(seed)
}

// FromRawPublicKey returns a verify-only keypair for a 32-byte public key
func FromRawPublicKey(publicKey []byte) (*Keypair, error) {
	if len(publicKey) != PublicKeySize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidPublicKey,
			PublicKeySize,
			len(publicKey),
		)
	}
	return &Keypair{publicKey: bytes.Clone(publicKey)}, nil
}

// FromAddress returns a verify-only keypair for a G... strkey
func FromAddress(address string) (*Keypair, error) {
	publicKey, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return FromRawPublicKey(publicKey)
}

// Parse accepts either a G... address or an S... secret
func Parse(src string) (*Keypair, error) {
	version, err := strkey.Version(src)
	if err != nil {
		return nil, err
	}
	switch version {
	case strkey.VersionByteAccountID:
		return FromAddress(src)
	case strkey.VersionByteSeed:
		return FromSecret(src)
	}
	return nil, fmt.Errorf(
		"%w: %s strkey is not a key",
		strkey.ErrVersionMismatch,
		version,
	)
}

// MustParse is like Parse but panics on error
func MustParse(src string) *Keypair {
	kp, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("unexpected error parsing keypair: %s", err))
	}
	return kp
}

// Random returns a new signing keypair from the system CSPRNG
func Random() (*Keypair, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generate seed: %w", err)
	}
	return FromRawSeed(seed)
}

// Master returns the network root keypair, whose seed is the network ID
func Master(sel network.Selector) (*Keypair, error) {
	_, id, err := network.Resolve(sel)
	if err != nil {
		return nil, err
	}
	return FromRawSeed(id[:])
}

// CanSign reports whether the keypair holds secret material
func (k *Keypair) CanSign() bool {
	return k.privateKey != nil
}

// Address returns the G... strkey of the public key
func (k *Keypair) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, k.publicKey)
}

func (k *Keypair) String() string {
	return k.Address()
}

// Seed returns the S... strkey of the secret seed
func (k *Keypair) Seed() (string, error) {
	seed, err := k.RawSeed()
	if err != nil {
		return "", err
	}
	return strkey.Encode(strkey.VersionByteSeed, seed)
}

// RawSeed returns a copy of the 32-byte secret seed
func (k *Keypair) RawSeed() ([]byte, error) {
	if !k.CanSign() {
		return nil, ErrNoSecretKey
	}
	return bytes.Clone(k.privateKey.Seed()), nil
}

// RawPublicKey returns a copy of the 32-byte public key
func (k *Keypair) RawPublicKey() []byte {
	return bytes.Clone(k.publicKey)
}

// Equal reports whether both keypairs share a public key
func (k *Keypair) Equal(other *Keypair) bool {
	return other != nil && bytes.Equal(k.publicKey, other.publicKey)
}

// Hint returns the last 4 bytes of the public key
func (k *Keypair) Hint() xdr.SignatureHint {
	var hint xdr.SignatureHint
	copy(hint[:], k.publicKey[PublicKeySize-HintSize:])
	return hint
}

// Sign returns the detached ed25519 signature of msg
func (k *Keypair) Sign(msg []byte) ([]byte, error) {
	if !k.CanSign() {
		return nil, ErrNoSecretKey
	}
	return ed25519.Sign(k.privateKey, msg), nil
}

// Verify reports whether sig is a valid signature of msg. Malformed
// signatures, non-canonical encodings and small-order public keys all
// report false
func (k *Keypair) Verify(msg []byte, sig []byte) bool {
	if len(sig) != SignatureSize || len(k.publicKey) != PublicKeySize {
		return false
	}
	point, err := new(edwards25519.Point).SetBytes(k.publicKey)
	if err != nil {
		return false
	}
	// SetBytes accepts non-canonical encodings of valid points
	if !bytes.Equal(point.Bytes(), k.publicKey) {
		return false
	}
	isSmallOrder := new(edwards25519.Point).MultByCofactor(point).
		Equal(edwards25519.NewIdentityPoint()) == 1
	if isSmallOrder {
		return false
	}
	if _, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:]); err != nil {
		return false
	}
	return ed25519.Verify(k.publicKey, msg, sig)
}

// SignDecorated signs msg and pairs the signature with the keypair's hint
func (k *Keypair) SignDecorated(msg []byte) (xdr.DecoratedSignature, error) {
	sig, err := k.Sign(msg)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	return xdr.DecoratedSignature{Hint: k.Hint(), Signature: sig}, nil
}

// SignPayloadDecorated signs payload for a signed-payload signer. The hint
// is the last 4 bytes of the payload, zero-padded on the left, XORed with
// the keypair's own hint
func (k *Keypair) SignPayloadDecorated(payload []byte) (xdr.DecoratedSignature, error) {
	sig, err := k.Sign(payload)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	return xdr.DecoratedSignature{
		Hint:      PayloadHint(k.Hint(), payload),
		Signature: sig,
	}, nil
}

// PayloadHint derives the signed-payload hint for a signer hint and payload
func PayloadHint(signerHint xdr.SignatureHint, payload []byte) xdr.SignatureHint {
	var tail [HintSize]byte
	if len(payload) >= HintSize {
		copy(tail[:], payload[len(payload)-HintSize:])
	} else {
		copy(tail[HintSize-len(payload):], payload)
	}
	var hint xdr.SignatureHint
	for i := range hint {
		hint[i] = tail[i] ^ signerHint[i]
	}
	return hint
}

// XDRAccountID returns the public key as a wire account ID
func (k *Keypair) XDRAccountID() xdr.AccountID {
	var ret xdr.AccountID
	copy(ret.Ed25519[:], k.publicKey)
	return ret
}

// XDRMuxedAccount returns the public key as an unmultiplexed wire account
func (k *Keypair) XDRMuxedAccount() xdr.MuxedAccount {
	return xdr.NewMuxedAccount(k.XDRAccountID().Ed25519)
}

// XDRSignerKey returns the public key as an ed25519 signer key
func (k *Keypair) XDRSignerKey() xdr.SignerKey {
	key := k.XDRAccountID().Ed25519
	return xdr.SignerKey{Type: xdr.SignerKeyTypeEd25519, Ed25519: &key}
}
