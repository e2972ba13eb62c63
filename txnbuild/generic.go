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
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/gostellar/xdr"
)

// GenericTransaction holds either a *Transaction or a *FeeBumpTransaction
// decoded from an envelope of unknown type
type GenericTransaction struct {
	simple  *Transaction
	feeBump *FeeBumpTransaction
}

// Transaction returns the plain transaction, if that is what was decoded
func (g *GenericTransaction) Transaction() (*Transaction, bool) {
	return g.simple, g.simple != nil
}

// FeeBump returns the fee bump transaction, if that is what was decoded
func (g *GenericTransaction) FeeBump() (*FeeBumpTransaction, bool) {
	return g.feeBump, g.feeBump != nil
}

// Signable returns whichever transaction is held
func (g *GenericTransaction) Signable() Signable {
	if g.feeBump != nil {
		return g.feeBump
	}
	return g.simple
}

// addSignatures appends sigs to whichever transaction is held
func (g *GenericTransaction) addSignatures(sigs ...xdr.DecoratedSignature) (*GenericTransaction, error) {
	if g.feeBump != nil {
		fb, err := g.feeBump.addSignatures(sigs...)
		if err != nil {
			return nil, err
		}
		return &GenericTransaction{feeBump: fb}, nil
	}
	tx, err := g.simple.addSignatures(sigs...)
	if err != nil {
		return nil, err
	}
	return &GenericTransaction{simple: tx}, nil
}

// TransactionFromXDR decodes a base64 envelope of any supported type
func TransactionFromXDR(b64 string) (*GenericTransaction, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.UnmarshalBase64(b64, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return genericFromEnvelope(env, nil)
}

// TransactionFromXDRBytes is like TransactionFromXDR for raw envelope bytes
func TransactionFromXDRBytes(data []byte) (*GenericTransaction, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return genericFromEnvelope(env, nil)
}

func genericFromEnvelope(env xdr.TransactionEnvelope, logger *slog.Logger) (*GenericTransaction, error) {
	switch env.Type {
	case xdr.EnvelopeTypeTxV0, xdr.EnvelopeTypeTx:
		tx, err := transactionFromEnvelope(env, logger)
		if err != nil {
			return nil, err
		}
		return &GenericTransaction{simple: tx}, nil
	case xdr.EnvelopeTypeTxFeeBump:
		fb, err := feeBumpFromEnvelope(env, logger)
		if err != nil {
			return nil, err
		}
		return &GenericTransaction{feeBump: fb}, nil
	}
	return nil, fmt.Errorf("unsupported envelope type %d", env.Type)
}
