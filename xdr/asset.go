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

import "bytes"

type AssetType int32

const (
	AssetTypeNative           AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare        AssetType = 3
)

type AssetCode4 [4]byte

type AssetCode12 [12]byte

type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountID
}

type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountID
}

// Asset is the native asset or an issued credit. ChangeTrust lines share this
// encoding for every type except pool shares, which are not supported
type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

// Code returns the asset code with its zero padding removed, or "native"
func (a Asset) Code() string {
	switch {
	case a.Type == AssetTypeCreditAlphanum4 && a.AlphaNum4 != nil:
		return string(bytes.TrimRight(a.AlphaNum4.AssetCode[:], "\x00"))
	case a.Type == AssetTypeCreditAlphanum12 && a.AlphaNum12 != nil:
		return string(bytes.TrimRight(a.AlphaNum12.AssetCode[:], "\x00"))
	}
	return "native"
}

func (a *Asset) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		if a.AlphaNum4 == nil {
			return missingArm("AssetType", int32(a.Type))
		}
		if err := e.EncodeFixedOpaque(a.AlphaNum4.AssetCode[:]); err != nil {
			return err
		}
		return a.AlphaNum4.Issuer.EncodeTo(e)
	case AssetTypeCreditAlphanum12:
		if a.AlphaNum12 == nil {
			return missingArm("AssetType", int32(a.Type))
		}
		if err := e.EncodeFixedOpaque(a.AlphaNum12.AssetCode[:]); err != nil {
			return err
		}
		return a.AlphaNum12.Issuer.EncodeTo(e)
	}
	return unionError("AssetType", int32(a.Type))
}

func (a *Asset) DecodeFrom(d *Decoder) error {
	t, err := d.DecodeInt32()
	if err != nil {
		return err
	}
	*a = Asset{Type: AssetType(t)}
	switch a.Type {
	case AssetTypeNative:
		return nil
	case AssetTypeCreditAlphanum4:
		a.AlphaNum4 = new(AlphaNum4)
		if err := d.DecodeFixedOpaque(a.AlphaNum4.AssetCode[:]); err != nil {
			return err
		}
		return a.AlphaNum4.Issuer.DecodeFrom(d)
	case AssetTypeCreditAlphanum12:
		a.AlphaNum12 = new(AlphaNum12)
		if err := d.DecodeFixedOpaque(a.AlphaNum12.AssetCode[:]); err != nil {
			return err
		}
		return a.AlphaNum12.Issuer.DecodeFrom(d)
	}
	return unionError("AssetType", t)
}

type Price struct {
	N int32
	D int32
}

func (p *Price) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt32(p.N); err != nil {
		return err
	}
	return e.EncodeInt32(p.D)
}

func (p *Price) DecodeFrom(d *Decoder) error {
	var err error
	if p.N, err = d.DecodeInt32(); err != nil {
		return err
	}
	p.D, err = d.DecodeInt32()
	return err
}
