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

package xdr

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gostellar/strkey"
)

// Uint256 is a raw ed25519 key or 256-bit hash
type Uint256 [32]byte

func (u Uint256) String() string {
	return hex.EncodeToString(u[:])
}

func (u *Uint256) EncodeTo(e *Encoder) error {
	return e.EncodeFixedOpaque(u[:])
}

func (u *Uint256) DecodeFrom(d *Decoder) error {
	return d.DecodeFixedOpaque(u[:])
}

// Hash is a SHA-256 digest
type Hash = Uint256

type PublicKeyType int32

const (
	PublicKeyTypeEd25519 PublicKeyType = 0
)

// AccountID is a PublicKey union. Ed25519 is its only arm
type AccountID struct {
	Ed25519 Uint256
}

// Address returns the G... strkey
func (a AccountID) Address() string {
	return strkey.MustEncode(strkey.VersionByteAccountID, a.Ed25519[:])
}

func (a *AccountID) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(PublicKeyTypeEd25519)); err != nil {
		return err
	}
	return a.Ed25519.EncodeTo(e)
}

func (a *AccountID) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	if PublicKeyType(t) != PublicKeyTypeEd25519 {
		return unionError("PublicKeyType", t)
	}
	return a.Ed25519.DecodeFrom(d)
}

// AccountIDFromAddress parses a G... strkey
func AccountIDFromAddress(address string) (AccountID, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return AccountID{}, err
	}
	var ret AccountID
	copy(ret.Ed25519[:], raw)
	return ret, nil
}

type CryptoKeyType int32

const (
	KeyTypeEd25519              CryptoKeyType = 0
	KeyTypePreAuthTx            CryptoKeyType = 1
	KeyTypeHashX                CryptoKeyType = 2
	KeyTypeEd25519SignedPayload CryptoKeyType = 3
	KeyTypeMuxedEd25519         CryptoKeyType = 0x100
)

type MuxedAccountMed25519 struct {
	Id      uint64
	Ed25519 Uint256
}

// MuxedAccount is either a plain ed25519 account or one multiplexed with a 64-bit id
type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  *Uint256
	Med25519 *MuxedAccountMed25519
}

// NewMuxedAccount wraps a plain ed25519 key
func NewMuxedAccount(key Uint256) MuxedAccount {
	return MuxedAccount{Type: KeyTypeEd25519, Ed25519: &key}
}

// MuxedAccountFromAddress parses a G... or M... strkey
func MuxedAccountFromAddress(address string) (MuxedAccount, error) {
	version, raw, err := strkey.DecodeAny(address)
	if err != nil {
		return MuxedAccount{}, err
	}
	switch version {
	case strkey.VersionByteAccountID:
		var key Uint256
		copy(key[:], raw)
		return NewMuxedAccount(key), nil
	case strkey.VersionByteMuxedAccount:
		key, id, err := strkey.DecodeMuxed(address)
		if err != nil {
			return MuxedAccount{}, err
		}
		med := &MuxedAccountMed25519{Id: id}
		copy(med.Ed25519[:], key)
		return MuxedAccount{Type: KeyTypeMuxedEd25519, Med25519: med}, nil
	default:
		return MuxedAccount{}, strkeyVersionError(version, "account")
	}
}

// AccountID returns the underlying ed25519 account, dropping any mux id
func (m MuxedAccount) AccountID() AccountID {
	switch {
	case m.Type == KeyTypeMuxedEd25519 && m.Med25519 != nil:
		return AccountID{Ed25519: m.Med25519.Ed25519}
	case m.Ed25519 != nil:
		return AccountID{Ed25519: *m.Ed25519}
	}
	return AccountID{}
}

// Address returns the G... or M... strkey
func (m MuxedAccount) Address() string {
	if m.Type == KeyTypeMuxedEd25519 && m.Med25519 != nil {
		addr, err := strkey.EncodeMuxed(m.Med25519.Ed25519[:], m.Med25519.Id)
		if err != nil {
			panic("unexpected error encoding muxed account: " + err.Error())
		}
		return addr
	}
	return m.AccountID().Address()
}

func (m *MuxedAccount) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(m.Type)); err != nil {
		return err
	}
	switch m.Type {
	case KeyTypeEd25519:
		if m.Ed25519 == nil {
			return missingArm("CryptoKeyType", int32(m.Type))
		}
		return m.Ed25519.EncodeTo(e)
	case KeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return missingArm("CryptoKeyType", int32(m.Type))
		}
		if err := e.EncodeUint64(m.Med25519.Id); err != nil {
			return err
		}
		return m.Med25519.Ed25519.EncodeTo(e)
	}
	return unionError("CryptoKeyType", int32(m.Type))
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*m = MuxedAccount{Type: CryptoKeyType(t)}
	switch m.Type {
	case KeyTypeEd25519:
		m.Ed25519 = new(Uint256)
		return m.Ed25519.DecodeFrom(d)
	case KeyTypeMuxedEd25519:
		m.Med25519 = new(MuxedAccountMed25519)
		if m.Med25519.Id, err = d.DecodeUint64(); err != nil {
			return err
		}
		return m.Med25519.Ed25519.DecodeFrom(d)
	}
	return unionError("CryptoKeyType", t)
}

type SignerKeyType int32

const (
	SignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

const MaxSignedPayloadSize = 64

type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

type SignerKey struct {
	Type                 SignerKeyType
	Ed25519              *Uint256
	PreAuthTx            *Uint256
	HashX                *Uint256
	Ed25519SignedPayload *SignerKeyEd25519SignedPayload
}

// SignerKeyFromAddress parses a G, T, X or P strkey
func SignerKeyFromAddress(address string) (SignerKey, error) {
	version, raw, err := strkey.DecodeAny(address)
	if err != nil {
		return SignerKey{}, err
	}
	var key Uint256
	switch version {
	case strkey.VersionByteAccountID:
		copy(key[:], raw)
		return SignerKey{Type: SignerKeyTypeEd25519, Ed25519: &key}, nil
	case strkey.VersionByteHashTx:
		copy(key[:], raw)
		return SignerKey{Type: SignerKeyTypePreAuthTx, PreAuthTx: &key}, nil
	case strkey.VersionByteHashX:
		copy(key[:], raw)
		return SignerKey{Type: SignerKeyTypeHashX, HashX: &key}, nil
	case strkey.VersionByteSignedPayload:
		sp, err := strkey.DecodeSignedPayload(address)
		if err != nil {
			return SignerKey{}, err
		}
		ret := &SignerKeyEd25519SignedPayload{Payload: sp.Payload}
		copy(ret.Ed25519[:], sp.Signer)
		return SignerKey{
			Type:                 SignerKeyTypeEd25519SignedPayload,
			Ed25519SignedPayload: ret,
		}, nil
	}
	return SignerKey{}, strkeyVersionError(version, "signer")
}

// Address returns the strkey form of the signer key
func (s SignerKey) Address() (string, error) {
	switch s.Type {
	case SignerKeyTypeEd25519:
		if s.Ed25519 != nil {
			return strkey.Encode(strkey.VersionByteAccountID, s.Ed25519[:])
		}
	case SignerKeyTypePreAuthTx:
		if s.PreAuthTx != nil {
			return strkey.Encode(strkey.VersionByteHashTx, s.PreAuthTx[:])
		}
	case SignerKeyTypeHashX:
		if s.HashX != nil {
			return strkey.Encode(strkey.VersionByteHashX, s.HashX[:])
		}
	case SignerKeyTypeEd25519SignedPayload:
		if sp := s.Ed25519SignedPayload; sp != nil {
			return strkey.EncodeSignedPayload(sp.Ed25519[:], sp.Payload)
		}
	default:
		return "", unionError("SignerKeyType", int32(s.Type))
	}
	return "", missingArm("SignerKeyType", int32(s.Type))
}

func (s *SignerKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(s.Type)); err != nil {
		return err
	}
	var key *Uint256
	switch s.Type {
	case SignerKeyTypeEd25519:
		key = s.Ed25519
	case SignerKeyTypePreAuthTx:
		key = s.PreAuthTx
	case SignerKeyTypeHashX:
		key = s.HashX
	case SignerKeyTypeEd25519SignedPayload:
		if s.Ed25519SignedPayload == nil {
			return missingArm("SignerKeyType", int32(s.Type))
		}
		if err := s.Ed25519SignedPayload.Ed25519.EncodeTo(e); err != nil {
			return err
		}
		return e.EncodeOpaque(s.Ed25519SignedPayload.Payload, MaxSignedPayloadSize)
	default:
		return unionError("SignerKeyType", int32(s.Type))
	}
	if key == nil {
		return missingArm("SignerKeyType", int32(s.Type))
	}
	return key.EncodeTo(e)
}

func (s *SignerKey) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*s = SignerKey{Type: SignerKeyType(t)}
	key := new(Uint256)
	switch s.Type {
	case SignerKeyTypeEd25519:
		s.Ed25519 = key
	case SignerKeyTypePreAuthTx:
		s.PreAuthTx = key
	case SignerKeyTypeHashX:
		s.HashX = key
	case SignerKeyTypeEd25519SignedPayload:
		sp := new(SignerKeyEd25519SignedPayload)
		if err := sp.Ed25519.DecodeFrom(d); err != nil {
			return err
		}
		if sp.Payload, err = d.DecodeOpaque(MaxSignedPayloadSize); err != nil {
			return err
		}
		s.Ed25519SignedPayload = sp
		return nil
	default:
		return unionError("SignerKeyType", t)
	}
	return key.DecodeFrom(d)
}

func strkeyVersionError(version strkey.VersionByte, want string) error {
	return fmt.Errorf("%w: %s strkey cannot be used as %s", strkey.ErrVersionMismatch, version, want)
}
