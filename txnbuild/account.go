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
	"strconv"
	"sync"

	"github.com/blinklabs-io/gostellar/xdr"
)

// Account is a source account and its current sequence number as decimal
// text. Building a transaction never modifies an Account
type Account struct {
	AccountID string
	Sequence  string
}

// NewAccount returns an Account for address at sequence
func NewAccount(address string, sequence int64) Account {
	return Account{
		AccountID: address,
		Sequence:  strconv.FormatInt(sequence, 10),
	}
}

// SequenceNumber parses the current sequence number
func (a Account) SequenceNumber() (int64, error) {
	seq, err := strconv.ParseInt(a.Sequence, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSequence, a.Sequence)
	}
	if seq < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidSequence, seq)
	}
	return seq, nil
}

// Next consumes the current sequence number and returns the account advanced
// by exactly one along with the new number
func (a Account) Next() (Account, int64, error) {
	seq, err := a.SequenceNumber()
	if err != nil {
		return Account{}, 0, err
	}
	if seq == math.MaxInt64 {
		return Account{}, 0, fmt.Errorf("%w: sequence number exhausted", ErrInvalidSequence)
	}
	seq++
	return NewAccount(a.AccountID, seq), seq, nil
}

func (a Account) muxedAccount() (xdr.MuxedAccount, error) {
	ret, err := xdr.MuxedAccountFromAddress(a.AccountID)
	if err != nil {
		return xdr.MuxedAccount{}, fmt.Errorf("%w: source %q: %w", ErrInvalidAccount, a.AccountID, err)
	}
	return ret, nil
}

// AccountCursor serializes builds from one source account and persists the
// advanced sequence number only when a build succeeds
type AccountCursor struct {
	mu      sync.Mutex
	account Account
}

func NewAccountCursor(account Account) *AccountCursor {
	return &AccountCursor{account: account}
}

// Account returns the current account state
func (c *AccountCursor) Account() Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.account
}

// NewTransaction builds a transaction from the cursor's account, ignoring
// params.SourceAccount
func (c *AccountCursor) NewTransaction(params TransactionParams) (*Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	params.SourceAccount = c.account
	tx, err := NewTransaction(params)
	if err != nil {
		return nil, err
	}
	c.account = tx.SourceAccount()
	return tx, nil
}
