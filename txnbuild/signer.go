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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/gostellar/strkey"
	"github.com/blinklabs-io/gostellar/xdr"
)

// SignerKey identifies an account signer. The implementations are the only
// possible kinds
type SignerKey interface {
	ToXDR() (xdr.SignerKey, error)
	Address() (string, error)
	isSignerKey()
}

// Ed25519Signer is an account public key (G...)
type Ed25519Signer struct {
	AccountID string
}

// PreAuthTxSigner authorizes the transaction with the given hash
type PreAuthTxSigner struct {
	Hash [32]byte
}

// HashXSigner is satisfied by revealing a preimage of Hash
type HashXSigner struct {
	Hash [32]byte
}

// SignedPayloadSigner is satisfied by an ed25519 signature of Payload by Signer
type SignedPayloadSigner struct {
	Signer  string
	Payload []byte
}

func (Ed25519Signer) isSignerKey()       {}
func (PreAuthTxSigner) isSignerKey()     {}
func (HashXSigner) isSignerKey()         {}
func (SignedPayloadSigner) isSignerKey() {}

func (s Ed25519Signer) ToXDR() (xdr.SignerKey, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, s.AccountID)
	if err != nil {
		return xdr.SignerKey{}, fmt.Errorf("%w: %w", ErrSignerSpecification, err)
	}
	var key xdr.Uint256
	copy(key[:], raw)
	return xdr.SignerKey{Type: xdr.SignerKeyTypeEd25519, Ed25519: &key}, nil
}

func (s Ed25519Signer) Address() (string, error) {
	if _, err := s.ToXDR(); err != nil {
		return "", err
	}
	return s.AccountID, nil
}

func (s PreAuthTxSigner) ToXDR() (xdr.SignerKey, error) {
	key := xdr.Uint256(s.Hash)
	return xdr.SignerKey{Type: xdr.SignerKeyTypePreAuthTx, PreAuthTx: &key}, nil
}

func (s PreAuthTxSigner) Address() (string, error) {
	return strkey.Encode(strkey.VersionByteHashTx, s.Hash[:])
}

func (s HashXSigner) ToXDR() (xdr.SignerKey, error) {
	key := xdr.Uint256(s.Hash)
	return xdr.SignerKey{Type: xdr.SignerKeyTypeHashX, HashX: &key}, nil
}

func (s HashXSigner) Address() (string, error) {
	return strkey.Encode(strkey.VersionByteHashX, s.Hash[:])
}

func (s SignedPayloadSigner) ToXDR() (xdr.SignerKey, error) {
	if _, err := strkey.EncodeSignedPayload(s.signerKey(), s.Payload); err != nil {
		return xdr.SignerKey{}, fmt.Errorf("%w: %w", ErrSignerSpecification, err)
	}
	sp := &xdr.SignerKeyEd25519SignedPayload{Payload: bytes.Clone(s.Payload)}
	copy(sp.Ed25519[:], s.signerKey())
	return xdr.SignerKey{
		Type:                 xdr.SignerKeyTypeEd25519SignedPayload,
		Ed25519SignedPayload: sp,
	}, nil
}

func (s SignedPayloadSigner) Address() (string, error) {
	addr, err := strkey.EncodeSignedPayload(s.signerKey(), s.Payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSignerSpecification, err)
	}
	return addr, nil
}

func (s SignedPayloadSigner) signerKey() []byte {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, s.Signer)
	if err != nil {
		return nil
	}
	return raw
}

// ParseSignerKey accepts a G, T, X or P strkey
func ParseSignerKey(address string) (SignerKey, error) {
	key, err := xdr.SignerKeyFromAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignerSpecification, err)
	}
	return signerKeyFromXDR(key)
}

func signerKeyToXDR(key SignerKey) (xdr.SignerKey, error) {
	if key == nil {
		return xdr.SignerKey{}, ErrSignerSpecification
	}
	return key.ToXDR()
}

func signerKeyFromXDR(key xdr.SignerKey) (SignerKey, error) {
	switch {
	case key.Type == xdr.SignerKeyTypeEd25519 && key.Ed25519 != nil:
		return Ed25519Signer{
			AccountID: strkey.MustEncode(strkey.VersionByteAccountID, key.Ed25519[:]),
		}, nil
	case key.Type == xdr.SignerKeyTypePreAuthTx && key.PreAuthTx != nil:
		return PreAuthTxSigner{Hash: *key.PreAuthTx}, nil
	case key.Type == xdr.SignerKeyTypeHashX && key.HashX != nil:
		return HashXSigner{Hash: *key.HashX}, nil
	case key.Type == xdr.SignerKeyTypeEd25519SignedPayload && key.Ed25519SignedPayload != nil:
		sp := key.Ed25519SignedPayload
		return SignedPayloadSigner{
			Signer:  strkey.MustEncode(strkey.VersionByteAccountID, sp.Ed25519[:]),
			Payload: bytes.Clone(sp.Payload),
		}, nil
	}
	return nil, fmt.Errorf("%w: signer key type %d", ErrSignerSpecification, key.Type)
}

// Signer is a signer key and its weight, as added or removed by SetOptions
type Signer struct {
	Key    SignerKey
	Weight uint32
}
