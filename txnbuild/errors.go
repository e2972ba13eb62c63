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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gostellar/xdr"
)

var (
	ErrNoOperations        = errors.New("transaction has no operations")
	ErrTooManyOperations   = errors.New("transaction has too many operations")
	ErrInvalidFee          = errors.New("invalid fee")
	ErrInvalidMemo         = errors.New("invalid memo")
	ErrInvalidAsset        = errors.New("invalid asset")
	ErrInvalidSequence     = errors.New("invalid sequence number")
	ErrInvalidTimeBounds   = errors.New("invalid time bounds")
	ErrInvalidLedgerBounds = errors.New("invalid ledger bounds")
	ErrInvalidAccount      = errors.New("invalid account")
	ErrHashPreimageTooLong = errors.New("hash preimage too long")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrSignerSpecification = errors.New("signer key must be exactly one of ed25519, pre-auth tx, hash-x or signed payload")
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrTooManySignatures   = errors.New("transaction has too many signatures")
)

// OperationError reports a failure building or validating the operation at Index
type OperationError struct {
	Index int
	Type  xdr.OperationType
	Err   error
}

func (e OperationError) Error() string {
	return fmt.Sprintf(
		"operation %d (%s): %v",
		e.Index,
		e.Type,
		e.Err,
	)
}

func (e OperationError) Unwrap() error { return e.Err }

func (OperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}
