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

package xdr_test

import (
	"testing"

	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint32Ptr(v uint32) *uint32 {
	return &v
}

func TestOperationRoundTrip(t *testing.T) {
	dest, err := xdr.AccountIDFromAddress(testAccountAddress)
	require.NoError(t, err)
	muxed, err := xdr.MuxedAccountFromAddress(testMuxedAddress)
	require.NoError(t, err)
	signer, err := xdr.SignerKeyFromAddress(testAccountAddress)
	require.NoError(t, err)
	usd := xdr.Asset{
		Type:      xdr.AssetTypeCreditAlphanum4,
		AlphaNum4: &xdr.AlphaNum4{AssetCode: xdr.AssetCode4{'U', 'S', 'D'}, Issuer: dest},
	}
	native := xdr.Asset{Type: xdr.AssetTypeNative}
	offer := &xdr.ManageOfferOp{
		Selling: native,
		Buying:  usd,
		Amount:  5000000,
		Price:   xdr.Price{N: 5, D: 4},
		OfferId: 7,
	}
	domain := "example.com"

	testDefs := []struct {
		name string
		op   xdr.Operation
	}{
		{
			name: "create account",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:            xdr.OperationTypeCreateAccount,
				CreateAccountOp: &xdr.CreateAccountOp{Destination: dest, StartingBalance: 10000000},
			}},
		},
		{
			name: "payment with source",
			op: xdr.Operation{
				SourceAccount: &muxed,
				Body: xdr.OperationBody{
					Type:      xdr.OperationTypePayment,
					PaymentOp: &xdr.PaymentOp{Destination: muxed, Asset: usd, Amount: 1},
				},
			},
		},
		{
			name: "manage sell offer",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:              xdr.OperationTypeManageSellOffer,
				ManageSellOfferOp: offer,
			}},
		},
		{
			name: "manage buy offer",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:             xdr.OperationTypeManageBuyOffer,
				ManageBuyOfferOp: offer,
			}},
		},
		{
			name: "passive sell offer",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type: xdr.OperationTypeCreatePassiveSellOffer,
				CreatePassiveSellOfferOp: &xdr.ManageOfferOp{
					Selling: usd,
					Buying:  native,
					Amount:  1,
					Price:   xdr.Price{N: 1, D: 2},
				},
			}},
		},
		{
			name: "set options",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type: xdr.OperationTypeSetOptions,
				SetOptionsOp: &xdr.SetOptionsOp{
					InflationDest: &dest,
					SetFlags:      uint32Ptr(3),
					MasterWeight:  uint32Ptr(1),
					HighThreshold: uint32Ptr(255),
					HomeDomain:    &domain,
					Signer:        &xdr.Signer{Key: signer, Weight: 2},
				},
			}},
		},
		{
			name: "empty set options",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:         xdr.OperationTypeSetOptions,
				SetOptionsOp: &xdr.SetOptionsOp{},
			}},
		},
		{
			name: "change trust",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:          xdr.OperationTypeChangeTrust,
				ChangeTrustOp: &xdr.ChangeTrustOp{Line: usd, Limit: 1 << 62},
			}},
		},
		{
			name: "account merge",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:        xdr.OperationTypeAccountMerge,
				Destination: &muxed,
			}},
		},
		{
			name: "inflation",
			op:   xdr.Operation{Body: xdr.OperationBody{Type: xdr.OperationTypeInflation}},
		},
		{
			name: "manage data",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:         xdr.OperationTypeManageData,
				ManageDataOp: &xdr.ManageDataOp{DataName: "key", DataValue: []byte("value")},
			}},
		},
		{
			name: "delete data",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:         xdr.OperationTypeManageData,
				ManageDataOp: &xdr.ManageDataOp{DataName: "key"},
			}},
		},
		{
			name: "empty data value",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:         xdr.OperationTypeManageData,
				ManageDataOp: &xdr.ManageDataOp{DataName: "key", DataValue: []byte{}},
			}},
		},
		{
			name: "bump sequence",
			op: xdr.Operation{Body: xdr.OperationBody{
				Type:           xdr.OperationTypeBumpSequence,
				BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: 1 << 40},
			}},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := xdr.Marshal(&testDef.op)
			require.NoError(t, err)
			require.Zero(t, len(data)%4)
			var decoded xdr.Operation
			require.NoError(t, xdr.Unmarshal(data, &decoded))
			assert.Equal(t, testDef.op, decoded)
		})
	}
}

func TestPassiveOfferOmitsOfferId(t *testing.T) {
	offer := xdr.ManageOfferOp{
		Selling: xdr.Asset{Type: xdr.AssetTypeNative},
		Buying:  xdr.Asset{Type: xdr.AssetTypeNative},
		Amount:  1,
		Price:   xdr.Price{N: 1, D: 1},
	}
	sell, err := xdr.Marshal(&xdr.OperationBody{
		Type:              xdr.OperationTypeManageSellOffer,
		ManageSellOfferOp: &offer,
	})
	require.NoError(t, err)
	passive, err := xdr.Marshal(&xdr.OperationBody{
		Type:                     xdr.OperationTypeCreatePassiveSellOffer,
		CreatePassiveSellOfferOp: &offer,
	})
	require.NoError(t, err)
	assert.Equal(t, len(sell)-8, len(passive))
}

func TestOperationBodyErrors(t *testing.T) {
	_, err := xdr.Marshal(&xdr.OperationBody{Type: xdr.OperationTypePayment})
	assert.ErrorIs(t, err, xdr.ErrMissingUnionArm)

	_, err = xdr.Marshal(&xdr.OperationBody{Type: 2})
	assert.ErrorIs(t, err, xdr.ErrInvalidUnion)

	var body xdr.OperationBody
	assert.ErrorIs(t, xdr.Unmarshal([]byte{0, 0, 0, 99}, &body), xdr.ErrInvalidUnion)

	long := "this home domain is longer than 32 bytes"
	_, err = xdr.Marshal(&xdr.OperationBody{
		Type:         xdr.OperationTypeSetOptions,
		SetOptionsOp: &xdr.SetOptionsOp{HomeDomain: &long},
	})
	assert.ErrorIs(t, err, xdr.ErrMaxLengthExceeded)

	_, err = xdr.Marshal(&xdr.OperationBody{
		Type:         xdr.OperationTypeManageData,
		ManageDataOp: &xdr.ManageDataOp{DataName: "key", DataValue: make([]byte, 65)},
	})
	assert.ErrorIs(t, err, xdr.ErrMaxLengthExceeded)
}

func TestOperationTypeString(t *testing.T) {
	assert.Equal(t, "payment", xdr.OperationTypePayment.String())
	assert.Equal(t, "manage_buy_offer", xdr.OperationTypeManageBuyOffer.String())
	assert.Equal(t, "unknown", xdr.OperationType(2).String())
}
