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
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gostellar/cbor"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/xdr"
)

// SigningRequestVersion is the only signing request layout understood
const SigningRequestVersion uint = 1

const signingRequestFields = 4

var (
	ErrSigningRequestVersion  = errors.New("unsupported signing request version")
	ErrSigningRequestMismatch = errors.New("signing request signature base does not match envelope")
	ErrSigningRequestLayout   = errors.New("malformed signing request")
)

// SigningRequest carries a transaction to an offline signer such as a
// hardware wallet. It encodes as the CBOR array
// [version, passphrase, envelope, signatureBase]
type SigningRequest struct {
	cbor.DecodeStoreCbor
	cbor.StructAsArray
	Version       uint
	Passphrase    string
	Envelope      []byte
	SignatureBase []byte
}

// NewSigningRequest captures tx and its signature base on the selected network
func NewSigningRequest(sel network.Selector, tx Signable) (*SigningRequest, error) {
	n, _, err := network.Resolve(sel)
	if err != nil {
		return nil, err
	}
	envelope, err := tx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	base, err := tx.SignatureBase(n)
	if err != nil {
		return nil, err
	}
	return &SigningRequest{
		Version:       SigningRequestVersion,
		Passphrase:    n.Passphrase,
		Envelope:      envelope,
		SignatureBase: base,
	}, nil
}

// DecodeSigningRequest decodes a CBOR signing request and checks its version
func DecodeSigningRequest(data []byte) (*SigningRequest, error) {
	fields, err := cbor.ListLength(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningRequestLayout, err)
	}
	if fields != signingRequestFields {
		return nil, fmt.Errorf(
			"%w: %d fields, expected %d",
			ErrSigningRequestLayout,
			fields,
			signingRequestFields,
		)
	}
	ret := &SigningRequest{}
	if err := cbor.DecodeExact(data, ret); err != nil {
		return nil, fmt.Errorf("decode signing request: %w", err)
	}
	if ret.Version != SigningRequestVersion {
		return nil, fmt.Errorf("%w: %d", ErrSigningRequestVersion, ret.Version)
	}
	return ret, nil
}

func (r *SigningRequest) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(r)
}

func (r *SigningRequest) UnmarshalCBOR(data []byte) error {
	return r.UnmarshalCborGeneric(data, r)
}

// Network returns the network the request was made for
func (r *SigningRequest) Network() network.Network {
	return network.ByPassphrase(r.Passphrase)
}

// Hash returns the value a keypair signer signs
func (r *SigningRequest) Hash() [32]byte {
	return sha256.Sum256(r.SignatureBase)
}

// Transaction decodes the carried envelope
func (r *SigningRequest) Transaction() (*GenericTransaction, error) {
	return TransactionFromXDRBytes(r.Envelope)
}

// Verify recomputes the signature base from the envelope and passphrase and
// checks it against the one carried in the request
func (r *SigningRequest) Verify() error {
	tx, err := r.Transaction()
	if err != nil {
		return err
	}
	base, err := tx.Signable().SignatureBase(r.Network())
	if err != nil {
		return err
	}
	if !bytes.Equal(base, r.SignatureBase) {
		return ErrSigningRequestMismatch
	}
	return nil
}

// Apply verifies the request and returns its transaction with sig, as
// produced by the offline signer, appended
func (r *SigningRequest) Apply(sig xdr.DecoratedSignature) (*GenericTransaction, error) {
	if err := r.Verify(); err != nil {
		return nil, err
	}
	tx, err := r.Transaction()
	if err != nil {
		return nil, err
	}
	return tx.addSignatures(sig)
}
