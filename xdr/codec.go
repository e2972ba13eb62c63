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

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	_xdr "github.com/davecgh/go-xdr/xdr2"
)

var (
	ErrMaxLengthExceeded = errors.New("xdr: maximum length exceeded")
	ErrInvalidUnion      = errors.New("xdr: invalid union discriminant")
	ErrMissingUnionArm   = errors.New("xdr: union arm not set")
	ErrTrailingData      = errors.New("xdr: trailing data after value")
	ErrNonZeroPadding    = errors.New("xdr: non-zero padding")
)

// Encodable is implemented by types with a canonical XDR encoding
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Decodable is implemented by types that can be read from XDR
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Encoder writes XDR primitives
type Encoder struct {
	enc *_xdr.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: _xdr.NewEncoder(w)}
}

func (e *Encoder) EncodeInt32(v int32) error {
	_, err := e.enc.EncodeInt(v)
	return err
}

func (e *Encoder) EncodeUint32(v uint32) error {
	_, err := e.enc.EncodeUint(v)
	return err
}

func (e *Encoder) EncodeInt64(v int64) error {
	_, err := e.enc.EncodeHyper(v)
	return err
}

func (e *Encoder) EncodeUint64(v uint64) error {
	_, err := e.enc.EncodeUhyper(v)
	return err
}

func (e *Encoder) EncodeBool(v bool) error {
	_, err := e.enc.EncodeBool(v)
	return err
}

// EncodeFixedOpaque writes v followed by zero padding to a multiple of 4 bytes
func (e *Encoder) EncodeFixedOpaque(v []byte) error {
	_, err := e.enc.EncodeFixedOpaque(v)
	return err
}

// EncodeOpaque writes a length-prefixed, padded byte block of at most maxLen bytes
func (e *Encoder) EncodeOpaque(v []byte, maxLen int) error {
	if len(v) > maxLen {
		return fmt.Errorf("%w: %d > %d bytes", ErrMaxLengthExceeded, len(v), maxLen)
	}
	_, err := e.enc.EncodeOpaque(v)
	return err
}

// EncodeString writes a length-prefixed, padded string of at most maxLen bytes
func (e *Encoder) EncodeString(v string, maxLen int) error {
	if len(v) > maxLen {
		return fmt.Errorf("%w: %d > %d bytes", ErrMaxLengthExceeded, len(v), maxLen)
	}
	_, err := e.enc.EncodeString(v)
	return err
}

// EncodeArrayLength writes the element count of a variable-length array
func (e *Encoder) EncodeArrayLength(n int, maxLen int) error {
	if n > maxLen {
		return fmt.Errorf("%w: %d > %d elements", ErrMaxLengthExceeded, n, maxLen)
	}
	return e.EncodeUint32(uint32(n))
}

// Decoder reads XDR primitives
type Decoder struct {
	dec *_xdr.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: _xdr.NewDecoder(r)}
}

func (d *Decoder) DecodeInt32() (int32, error) {
	v, _, err := d.dec.DecodeInt()
	return v, err
}

func (d *Decoder) DecodeUint32() (uint32, error) {
	v, _, err := d.dec.DecodeUint()
	return v, err
}

func (d *Decoder) DecodeInt64() (int64, error) {
	v, _, err := d.dec.DecodeHyper()
	return v, err
}

func (d *Decoder) DecodeUint64() (uint64, error) {
	v, _, err := d.dec.DecodeUhyper()
	return v, err
}

func (d *Decoder) DecodeBool() (bool, error) {
	v, _, err := d.dec.DecodeBool()
	return v, err
}

// DecodeFixedOpaque reads exactly size bytes plus padding into dst
func (d *Decoder) DecodeFixedOpaque(dst []byte) error {
	v, err := d.decodePadded(len(dst))
	if err != nil {
		return err
	}
	copy(dst, v)
	return nil
}

// decodePadded reads size bytes and their padding, which must be zero
func (d *Decoder) decodePadded(size int) ([]byte, error) {
	padded := (size + 3) &^ 3
	// #nosec G115
	raw, _, err := d.dec.DecodeFixedOpaque(int32(padded))
	if err != nil {
		return nil, err
	}
	for _, b := range raw[size:] {
		if b != 0 {
			return nil, ErrNonZeroPadding
		}
	}
	return raw[:size:size], nil
}

// DecodeOpaque reads a length-prefixed byte block, rejecting lengths over maxLen
// before allocating
func (d *Decoder) DecodeOpaque(maxLen int) ([]byte, error) {
	n, err := d.DecodeUint32()
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(maxLen) {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrMaxLengthExceeded, n, maxLen)
	}
	if n == 0 {
		return nil, nil
	}
	return d.decodePadded(int(n))
}

func (d *Decoder) DecodeString(maxLen int) (string, error) {
	v, err := d.DecodeOpaque(maxLen)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// DecodeArrayLength reads the element count of a variable-length array
func (d *Decoder) DecodeArrayLength(maxLen int) (int, error) {
	n, err := d.DecodeUint32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(maxLen) {
		return 0, fmt.Errorf("%w: %d > %d elements", ErrMaxLengthExceeded, n, maxLen)
	}
	return int(n), nil
}

// Marshal returns the canonical XDR encoding of v
func Marshal(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.EncodeTo(NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data into v. The whole input must be consumed
func Unmarshal(data []byte, v Decodable) error {
	r := bytes.NewReader(data)
	if err := v.DecodeFrom(NewDecoder(r)); err != nil {
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, r.Len())
	}
	return nil
}

// MarshalBase64 returns the standard base64 form of the XDR encoding of v
func MarshalBase64(v Encodable) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalBase64 decodes base64 XDR into v
func UnmarshalBase64(src string, v Decodable) error {
	data, err := base64.StdEncoding.DecodeString(src)
	if err != nil {
		return fmt.Errorf("xdr: invalid base64: %w", err)
	}
	return Unmarshal(data, v)
}

func unionError(name string, v int32) error {
	return fmt.Errorf("%w: %s %d", ErrInvalidUnion, name, v)
}

func missingArm(name string, v int32) error {
	return fmt.Errorf("%w: %s %d", ErrMissingUnionArm, name, v)
}

// pointerCodec constrains *T to carry both halves of the codec
type pointerCodec[T any] interface {
	*T
	Encodable
	Decodable
}

// encodeOptional writes an XDR optional (presence flag then value)
func encodeOptional[T any, P pointerCodec[T]](e *Encoder, v P) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	return v.EncodeTo(e)
}

func decodeOptional[T any, P pointerCodec[T]](d *Decoder) (P, error) {
	present, err := d.DecodeBool()
	if err != nil || !present {
		return nil, err
	}
	v := P(new(T))
	if err := v.DecodeFrom(d); err != nil {
		return nil, err
	}
	return v, nil
}

// encodeList writes a variable-length array of at most maxLen elements
func encodeList[T any, P pointerCodec[T]](e *Encoder, list []T, maxLen int) error {
	if err := e.EncodeArrayLength(len(list), maxLen); err != nil {
		return err
	}
	for i := range list {
		if err := P(&list[i]).EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeList[T any, P pointerCodec[T]](d *Decoder, maxLen int) ([]T, error) {
	n, err := d.DecodeArrayLength(maxLen)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	list := make([]T, n)
	for i := range list {
		if err := P(&list[i]).DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return list, nil
}
