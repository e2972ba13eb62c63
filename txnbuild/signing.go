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
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/network"
	"github.com/blinklabs-io/gostellar/xdr"
)

// MaxHashPreimageSize is the largest preimage accepted by SignHashX
const MaxHashPreimageSize = 64

// Signable is implemented by *Transaction and *FeeBumpTransaction
type Signable interface {
	SignatureBase(sel network.Selector) ([]byte, error)
	Hash(sel network.Selector) ([32]byte, error)
	Signatures() []xdr.DecoratedSignature
	MarshalBinary() ([]byte, error)
	Base64() (string, error)
}

// signatureBase returns networkId ‖ envelope type ‖ transaction bytes
func signatureBase(sel network.Selector, tagged xdr.TaggedTransaction) ([]byte, error) {
	_, id, err := network.Resolve(sel)
	if err != nil {
		return nil, err
	}
	payload := xdr.TransactionSignaturePayload{
		NetworkId:         xdr.Hash(id),
		TaggedTransaction: tagged,
	}
	return xdr.Marshal(&payload)
}

func signatureHash(sel network.Selector, tagged xdr.TaggedTransaction) ([32]byte, error) {
	base, err := signatureBase(sel, tagged)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(base), nil
}

// keypairSignatures signs hash with every keypair, failing without partial
// results if any keypair cannot sign
func keypairSignatures(hash [32]byte, kps []*keypair.Keypair) ([]xdr.DecoratedSignature, error) {
	ret := make([]xdr.DecoratedSignature, 0, len(kps))
	for _, kp := range kps {
		if kp == nil {
			return nil, keypair.ErrNoSecretKey
		}
		sig, err := kp.SignDecorated(hash[:])
		if err != nil {
			return nil, fmt.Errorf("sign with %s: %w", kp.Address(), err)
		}
		ret = append(ret, sig)
	}
	return ret, nil
}

// hashXSignature reveals preimage as the signature for a hash-x signer. The
// hint is the tail of SHA-256(preimage)
func hashXSignature(preimage []byte) (xdr.DecoratedSignature, error) {
	if len(preimage) > MaxHashPreimageSize {
		return xdr.DecoratedSignature{}, fmt.Errorf(
			"%w: %d bytes, maximum is %d",
			ErrHashPreimageTooLong,
			len(preimage),
			MaxHashPreimageSize,
		)
	}
	hash := sha256.Sum256(preimage)
	var hint xdr.SignatureHint
	copy(hint[:], hash[len(hash)-len(hint):])
	return xdr.DecoratedSignature{Hint: hint, Signature: bytes.Clone(preimage)}, nil
}

// verifiedSignature checks a base64 signature by signer over hash
func verifiedSignature(hash [32]byte, signer string, signature string) (xdr.DecoratedSignature, error) {
	kp, err := keypair.FromAddress(signer)
	if err != nil {
		return xdr.DecoratedSignature{}, err
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return xdr.DecoratedSignature{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if !kp.Verify(hash[:], sig) {
		return xdr.DecoratedSignature{}, fmt.Errorf(
			"%w: signature does not verify for %s",
			ErrInvalidSignature,
			signer,
		)
	}
	return xdr.DecoratedSignature{Hint: kp.Hint(), Signature: sig}, nil
}

// appendSignatures returns a new slice, leaving existing untouched
func appendSignatures(
	logger *slog.Logger,
	envelopeType xdr.EnvelopeType,
	existing []xdr.DecoratedSignature,
	add ...xdr.DecoratedSignature,
) ([]xdr.DecoratedSignature, error) {
	if len(existing)+len(add) > xdr.MaxSignatures {
		return nil, fmt.Errorf(
			"%w: %d signatures, maximum is %d",
			ErrTooManySignatures,
			len(existing)+len(add),
			xdr.MaxSignatures,
		)
	}
	ret := make([]xdr.DecoratedSignature, 0, len(existing)+len(add))
	ret = append(ret, existing...)
	for _, sig := range add {
		if len(sig.Signature) > xdr.MaxSignatureSize {
			return nil, fmt.Errorf(
				"%w: %d byte signature",
				ErrInvalidSignature,
				len(sig.Signature),
			)
		}
		ret = append(ret, xdr.DecoratedSignature{
			Hint:      sig.Hint,
			Signature: bytes.Clone(sig.Signature),
		})
		logger.Debug(
			"signature appended",
			"component", "txnbuild",
			"hint", hex.EncodeToString(sig.Hint[:]),
			"envelope_type", int32(envelopeType),
		)
	}
	return ret, nil
}

func copySignatures(sigs []xdr.DecoratedSignature) []xdr.DecoratedSignature {
	if sigs == nil {
		return nil
	}
	ret := make([]xdr.DecoratedSignature, len(sigs))
	for i, sig := range sigs {
		ret[i] = xdr.DecoratedSignature{Hint: sig.Hint, Signature: bytes.Clone(sig.Signature)}
	}
	return ret
}

// copyEnvelope returns a deep copy by way of the canonical encoding
func copyEnvelope(env *xdr.TransactionEnvelope) (xdr.TransactionEnvelope, error) {
	data, err := xdr.Marshal(env)
	if err != nil {
		return xdr.TransactionEnvelope{}, err
	}
	var ret xdr.TransactionEnvelope
	if err := xdr.Unmarshal(data, &ret); err != nil {
		return xdr.TransactionEnvelope{}, err
	}
	return ret, nil
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
