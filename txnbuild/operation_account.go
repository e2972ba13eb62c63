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

	"github.com/blinklabs-io/gostellar/amount"
	"github.com/blinklabs-io/gostellar/xdr"
)

// CreateAccount funds a new account with a starting balance of native asset
type CreateAccount struct {
	Destination   string
	Amount        string
	SourceAccount string
}

func (ca *CreateAccount) Type() xdr.OperationType {
	return xdr.OperationTypeCreateAccount
}

func (ca *CreateAccount) GetSourceAccount() string {
	return ca.SourceAccount
}

func (ca *CreateAccount) Validate() error {
	_, err := ca.BuildXDR()
	return err
}

func (ca *CreateAccount) BuildXDR() (xdr.Operation, error) {
	return buildOperation(ca.SourceAccount, func() (xdr.OperationBody, error) {
		dest, err := accountIDToXDR("destination", ca.Destination)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		balance, err := amount.Parse(ca.Amount)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type: xdr.OperationTypeCreateAccount,
			CreateAccountOp: &xdr.CreateAccountOp{
				Destination:     dest,
				StartingBalance: balance,
			},
		}, nil
	})
}

func (ca *CreateAccount) FromXDR(op xdr.Operation) error {
	body := op.Body.CreateAccountOp
	if op.Body.Type != ca.Type() || body == nil {
		return wrongOperationType(ca.Type(), op.Body.Type)
	}
	ca.Destination = body.Destination.Address()
	ca.Amount = amount.String(body.StartingBalance)
	ca.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}

// AccountMerge transfers the source account's native balance to Destination
// and removes the source account
type AccountMerge struct {
	Destination   string
	SourceAccount string
}

func (am *AccountMerge) Type() xdr.OperationType {
	return xdr.OperationTypeAccountMerge
}

func (am *AccountMerge) GetSourceAccount() string {
	return am.SourceAccount
}

func (am *AccountMerge) Validate() error {
	_, err := am.BuildXDR()
	return err
}

func (am *AccountMerge) BuildXDR() (xdr.Operation, error) {
	return buildOperation(am.SourceAccount, func() (xdr.OperationBody, error) {
		dest, err := muxedAccountToXDR("destination", am.Destination)
		if err != nil {
			return xdr.OperationBody{}, err
		}
		return xdr.OperationBody{
			Type:        xdr.OperationTypeAccountMerge,
			Destination: &dest,
		}, nil
	})
}

func (am *AccountMerge) FromXDR(op xdr.Operation) error {
	if op.Body.Type != am.Type() || op.Body.Destination == nil {
		return wrongOperationType(am.Type(), op.Body.Type)
	}
	am.Destination = op.Body.Destination.Address()
	am.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}

// Inflation runs the retired inflation process. It carries no body
type Inflation struct {
	SourceAccount string
}

func (inf *Inflation) Type() xdr.OperationType {
	return xdr.OperationTypeInflation
}

func (inf *Inflation) GetSourceAccount() string {
	return inf.SourceAccount
}

func (inf *Inflation) Validate() error {
	_, err := inf.BuildXDR()
	return err
}

func (inf *Inflation) BuildXDR() (xdr.Operation, error) {
	return buildOperation(inf.SourceAccount, func() (xdr.OperationBody, error) {
		return xdr.OperationBody{Type: xdr.OperationTypeInflation}, nil
	})
}

func (inf *Inflation) FromXDR(op xdr.Operation) error {
	if op.Body.Type != inf.Type() {
		return wrongOperationType(inf.Type(), op.Body.Type)
	}
	inf.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}

// BumpSequence raises the source account's sequence number to BumpTo
type BumpSequence struct {
	BumpTo        int64
	SourceAccount string
}

func (bs *BumpSequence) Type() xdr.OperationType {
	return xdr.OperationTypeBumpSequence
}

func (bs *BumpSequence) GetSourceAccount() string {
	return bs.SourceAccount
}

func (bs *BumpSequence) Validate() error {
	_, err := bs.BuildXDR()
	return err
}

func (bs *BumpSequence) BuildXDR() (xdr.Operation, error) {
	return buildOperation(bs.SourceAccount, func() (xdr.OperationBody, error) {
		if bs.BumpTo < 0 {
			return xdr.OperationBody{}, fmt.Errorf(
				"%w: bump to %d is negative",
				ErrInvalidSequence,
				bs.BumpTo,
			)
		}
		return xdr.OperationBody{
			Type:           xdr.OperationTypeBumpSequence,
			BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: bs.BumpTo},
		}, nil
	})
}

func (bs *BumpSequence) FromXDR(op xdr.Operation) error {
	if op.Body.Type != bs.Type() || op.Body.BumpSequenceOp == nil {
		return wrongOperationType(bs.Type(), op.Body.Type)
	}
	bs.BumpTo = op.Body.BumpSequenceOp.BumpTo
	bs.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}

// ManageData sets, or with a nil Value deletes, a named data entry on the
// source account
type ManageData struct {
	Name          string
	Value         []byte
	SourceAccount string
}

func (md *ManageData) Type() xdr.OperationType {
	return xdr.OperationTypeManageData
}

func (md *ManageData) GetSourceAccount() string {
	return md.SourceAccount
}

func (md *ManageData) Validate() error {
	_, err := md.BuildXDR()
	return err
}

func (md *ManageData) BuildXDR() (xdr.Operation, error) {
	return buildOperation(md.SourceAccount, func() (xdr.OperationBody, error) {
		if len(md.Name) == 0 || len(md.Name) > xdr.MaxDataNameSize {
			return xdr.OperationBody{}, fmt.Errorf(
				"%w: data name must be 1 to %d bytes",
				ErrInvalidOperation,
				xdr.MaxDataNameSize,
			)
		}
		if len(md.Value) > xdr.MaxDataValueSize {
			return xdr.OperationBody{}, fmt.Errorf(
				"%w: data value must be at most %d bytes",
				ErrInvalidOperation,
				xdr.MaxDataValueSize,
			)
		}
		var value []byte
		if md.Value != nil {
			value = bytes.Clone(md.Value)
		}
		return xdr.OperationBody{
			Type: xdr.OperationTypeManageData,
			ManageDataOp: &xdr.ManageDataOp{
				DataName:  md.Name,
				DataValue: value,
			},
		}, nil
	})
}

func (md *ManageData) FromXDR(op xdr.Operation) error {
	body := op.Body.ManageDataOp
	if op.Body.Type != md.Type() || body == nil {
		return wrongOperationType(md.Type(), op.Body.Type)
	}
	md.Name = body.DataName
	md.Value = nil
	if body.DataValue != nil {
		md.Value = bytes.Clone(body.DataValue)
	}
	md.SourceAccount = sourceAccountFromXDR(op.SourceAccount)
	return nil
}
