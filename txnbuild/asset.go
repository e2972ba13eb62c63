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

	"github.com/blinklabs-io/gostellar/xdr"
)

const (
	maxAssetCodeLength  = 12
	alphanum4CodeLength = 4
	nativeAssetCode     = "native"
)

// Asset is either the native asset or a credit issued by an account
type Asset interface {
	IsNative() bool
	GetCode() string
	GetIssuer() string
	ToXDR() (xdr.Asset, error)
}

// NativeAsset is the network's native currency
type NativeAsset struct{}

func (NativeAsset) IsNative() bool { return true }

func (NativeAsset) GetCode() string { return nativeAssetCode }

func (NativeAsset) GetIssuer() string { return "" }

func (NativeAsset) ToXDR() (xdr.Asset, error) {
	return xdr.Asset{Type: xdr.AssetTypeNative}, nil
}

func (NativeAsset) String() string { return nativeAssetCode }

// CreditAsset is an asset code of 1 to 12 alphanumeric characters and its issuer.
// Codes of up to 4 characters use the alphanum4 encoding
type CreditAsset struct {
	Code   string
	Issuer string
}

func (CreditAsset) IsNative() bool { return false }

func (a CreditAsset) GetCode() string { return a.Code }

func (a CreditAsset) GetIssuer() string { return a.Issuer }

func (a CreditAsset) String() string {
	return a.Code + ":" + a.Issuer
}

// Validate checks the code and issuer
func (a CreditAsset) Validate() error {
	if len(a.Code) == 0 || len(a.Code) > maxAssetCodeLength {
		return fmt.Errorf(
			"%w: code %q must be 1 to %d characters",
			ErrInvalidAsset,
			a.Code,
			maxAssetCodeLength,
		)
	}
	for _, c := range []byte(a.Code) {
		isAlnum := (c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9')
		if !isAlnum {
			return fmt.Errorf("%w: code %q must be alphanumeric", ErrInvalidAsset, a.Code)
		}
	}
	if a.Issuer == "" {
		return fmt.Errorf("%w: %s has no issuer", ErrInvalidAsset, a.Code)
	}
	if _, err := xdr.AccountIDFromAddress(a.Issuer); err != nil {
		return fmt.Errorf("%w: issuer %q: %w", ErrInvalidAsset, a.Issuer, err)
	}
	return nil
}

func (a CreditAsset) ToXDR() (xdr.Asset, error) {
	if err := a.Validate(); err != nil {
		return xdr.Asset{}, err
	}
	issuer, err := xdr.AccountIDFromAddress(a.Issuer)
	if err != nil {
		return xdr.Asset{}, fmt.Errorf("%w: %w", ErrInvalidAsset, err)
	}
	if len(a.Code) <= alphanum4CodeLength {
		ret := &xdr.AlphaNum4{Issuer: issuer}
		copy(ret.AssetCode[:], a.Code)
		return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum4, AlphaNum4: ret}, nil
	}
	ret := &xdr.AlphaNum12{Issuer: issuer}
	copy(ret.AssetCode[:], a.Code)
	return xdr.Asset{Type: xdr.AssetTypeCreditAlphanum12, AlphaNum12: ret}, nil
}

func assetToXDR(a Asset) (xdr.Asset, error) {
	if a == nil {
		return xdr.Asset{}, fmt.Errorf("%w: asset is required", ErrInvalidAsset)
	}
	return a.ToXDR()
}

// AssetFromXDR converts a wire asset back to its builder form
func AssetFromXDR(a xdr.Asset) (Asset, error) {
	switch {
	case a.Type == xdr.AssetTypeNative:
		return NativeAsset{}, nil
	case a.Type == xdr.AssetTypeCreditAlphanum4 && a.AlphaNum4 != nil:
		return CreditAsset{Code: a.Code(), Issuer: a.AlphaNum4.Issuer.Address()}, nil
	case a.Type == xdr.AssetTypeCreditAlphanum12 && a.AlphaNum12 != nil:
		return CreditAsset{Code: a.Code(), Issuer: a.AlphaNum12.Issuer.Address()}, nil
	}
	return nil, fmt.Errorf("%w: unsupported asset type %d", ErrInvalidAsset, a.Type)
}
