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
	"math"

	"github.com/blinklabs-io/gostellar/amount"
	"github.com/blinklabs-io/gostellar/xdr"
)

// Operation is a single ledger operation. Operations keep the order they are
// given in and encode to exactly one wire operation each
type Operation interface {
	Type() xdr.OperationType
	Validate() error
	BuildXDR() (xdr.Operation, error)
	FromXDR(op xdr.Operation) error
	GetSourceAccount() string
}

// maxTrustLimit is the default ChangeTrust limit
var maxTrustLimit = amount.String(math.MaxInt64)

func sourceAccountToXDR(address string) (*xdr.MuxedAccount, error) {
	if address == "" {
		return nil, nil
	}
	ret, err := xdr.MuxedAccountFromAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q: %w", ErrInvalidAccount, address, err)
	}
	return &ret, nil
}

func sourceAccountFromXDR(source *xdr.MuxedAccount) string {
	if source == nil {
		return ""
	}
	return source.Address()
}

func accountIDToXDR(field string, address string) (xdr.AccountID, error) {
	ret, err := xdr.AccountIDFromAddress(address)
	if err != nil {
		return xdr.AccountID{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidAccount, field, address, err)
	}
	return ret, nil
}

func muxedAccountToXDR(field string, address string) (xdr.MuxedAccount, error) {
	ret, err := xdr.MuxedAccountFromAddress(address)
	if err != nil {
		return xdr.MuxedAccount{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidAccount, field, address, err)
	}
	return ret, nil
}

func priceToXDR(price amount.Rational) (xdr.Price, error) {
	if price == nil {
		return xdr.Price{}, fmt.Errorf("%w: price is required", amount.ErrInvalidPrice)
	}
	p, err := price.Rational()
	if err != nil {
		return xdr.Price{}, err
	}
	return xdr.Price{N: p.N, D: p.D}, nil
}

func wrongOperationType(want xdr.OperationType, got xdr.OperationType) error {
	return fmt.Errorf("%w: expected %s body, got %s", ErrInvalidOperation, want, got)
}

// operationFromXDR converts a wire operation to its builder form
func operationFromXDR(op xdr.Operation) (Operation, error) {
	var ret Operation
	switch op.Body.Type {
	case xdr.OperationTypeCreateAccount:
		ret = &CreateAccount{}
	case xdr.OperationTypePayment:
		ret = &Payment{}
	case xdr.OperationTypeManageSellOffer:
		ret = &ManageSellOffer{}
	case xdr.OperationTypeCreatePassiveSellOffer:
		ret = &CreatePassiveSellOffer{}
	case xdr.OperationTypeSetOptions:
		ret = &SetOptions{}
	case xdr.OperationTypeChangeTrust:
		ret = &ChangeTrust{}
	case xdr.OperationTypeAccountMerge:
		ret = &AccountMerge{}
	case xdr.OperationTypeInflation:
		ret = &Inflation{}
	case xdr.OperationTypeManageData:
		ret = &ManageData{}
	case xdr.OperationTypeBumpSequence:
		ret = &BumpSequence{}
	case xdr.OperationTypeManageBuyOffer:
		ret = &ManageBuyOffer{}
	default:
		return nil, fmt.Errorf("%w: unsupported type %d", ErrInvalidOperation, op.Body.Type)
	}
	if err := ret.FromXDR(op); err != nil {
		return nil, err
	}
	return ret, nil
}

func buildOperation(
	source string,
	body func() (xdr.OperationBody, error),
) (xdr.Operation, error) {
	sourceAccount, err := sourceAccountToXDR(source)
	if err != nil {
		return xdr.Operation{}, err
	}
	opBody, err := body()
	if err != nil {
		return xdr.Operation{}, err
	}
	return xdr.Operation{SourceAccount: sourceAccount, Body: opBody}, nil
}
