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

// Package strkey implements the checksummed base32 textual encoding used for
// account IDs, secret seeds, and the other key/hash identifiers exchanged
// between users and the network.
//
// A strkey is the RFC 4648 base32 (no padding) encoding of
//
//	version byte ‖ payload ‖ CRC16-XMODEM(version byte ‖ payload)
//
// with the checksum stored little-endian.
package strkey

import (
	"bytes"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
)

// VersionByte identifies the kind of material held in a strkey
type VersionByte byte

const (
	VersionByteAccountID     VersionByte = 6 << 3  // G
	VersionByteMuxedAccount  VersionByte = 12 << 3 // M
	VersionByteSeed          VersionByte = 18 << 3 // S
	VersionByteHashTx        VersionByte = 19 << 3 // T
	VersionByteHashX         VersionByte = 23 << 3 // X
	VersionByteSignedPayload VersionByte = 15 << 3 // P
)

const (
	// KeySize is the payload size for accounts, seeds and hashes
	KeySize = 32

	// MuxedSize is the payload size of a muxed account (key + 64-bit id)
	MuxedSize = KeySize + 8

	// MaxSignedPayloadSize is the largest inner payload a signed-payload strkey can carry
	MaxSignedPayloadSize = 64

	minSignedPayloadRawSize = KeySize + 4 + 4
	maxSignedPayloadRawSize = KeySize + 4 + MaxSignedPayloadSize

	checksumSize = 2

	minEncodedLength = 56
	maxEncodedLength = 165
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func (v VersionByte) String() string {
	switch v {
	case VersionByteAccountID:
		return "account"
	case VersionByteMuxedAccount:
		return "muxed account"
	case VersionByteSeed:
		return "seed"
	case VersionByteHashTx:
		return "pre-authorized transaction"
	case VersionByteHashX:
		return "sha256 hash"
	case VersionByteSignedPayload:
		return "signed payload"
	default:
		return fmt.Sprintf("unknown(%d)", byte(v))
	}
}

func (v VersionByte) valid() bool {
	switch v {
	case VersionByteAccountID,
		VersionByteMuxedAccount,
		VersionByteSeed,
		VersionByteHashTx,
		VersionByteHashX,
		VersionByteSignedPayload:
		return true
	}
	return false
}

// payloadSizeOK reports whether n is an acceptable raw payload length for the version
func (v VersionByte) payloadSizeOK(n int) bool {
	switch v {
	case VersionByteMuxedAccount:
		return n == MuxedSize
	case VersionByteSignedPayload:
		return n >= minSignedPayloadRawSize && n <= maxSignedPayloadRawSize
	default:
		return n == KeySize
	}
}

// Encode returns the strkey for the given version and payload
func Encode(version VersionByte, payload []byte) (string, error) {
	if !version.valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidVersion, version)
	}
	if !version.payloadSizeOK(len(payload)) {
		return "", fmt.Errorf(
			"%w: %d byte payload for %s",
			ErrInvalidPayloadLength,
			len(payload),
			version,
		)
	}
	if version == VersionByteSignedPayload {
		if err := checkSignedPayload(payload); err != nil {
			return "", err
		}
	}
	raw := make([]byte, 0, 1+len(payload)+checksumSize)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)
	raw = binary.LittleEndian.AppendUint16(raw, Checksum(raw))
	return encoding.EncodeToString(raw), nil
}

// MustEncode is like Encode but panics on error
func MustEncode(version VersionByte, payload []byte) string {
	ret, err := Encode(version, payload)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding strkey: %s", err))
	}
	return ret
}

// Decode returns the payload of the strkey, which must carry the expected version
func Decode(expected VersionByte, src string) ([]byte, error) {
	version, payload, err := decode(src)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, fmt.Errorf(
			"%w: expected %s, got %s",
			ErrVersionMismatch,
			expected,
			version,
		)
	}
	return payload, nil
}

// MustDecode is like Decode but panics on error
func MustDecode(expected VersionByte, src string) []byte {
	ret, err := Decode(expected, src)
	if err != nil {
		panic(fmt.Sprintf("unexpected error decoding strkey: %s", err))
	}
	return ret
}

// DecodeAny decodes a strkey of any known version
func DecodeAny(src string) (VersionByte, []byte, error) {
	return decode(src)
}

// Version returns the version byte of a valid strkey
func Version(src string) (VersionByte, error) {
	version, _, err := decode(src)
	return version, err
}

// IsValid reports whether src is a canonical strkey of the given version
func IsValid(expected VersionByte, src string) bool {
	_, err := Decode(expected, src)
	return err == nil
}

func decode(src string) (VersionByte, []byte, error) {
	// The shortest strkey is 56 characters (35 raw bytes), the longest is a full
	// signed payload, and base32 groups never end on 1, 3 or 6 leftover characters
	switch {
	case len(src) < minEncodedLength:
		return 0, nil, fmt.Errorf("%w: length %d too short", ErrInvalidFormat, len(src))
	case len(src) > maxEncodedLength:
		return 0, nil, fmt.Errorf("%w: length %d too long", ErrInvalidFormat, len(src))
	case len(src)%8 == 1 || len(src)%8 == 3 || len(src)%8 == 6:
		return 0, nil, fmt.Errorf("%w: impossible length %d", ErrInvalidFormat, len(src))
	}
	raw, err := encoding.DecodeString(src)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(raw) < 1+checksumSize {
		return 0, nil, fmt.Errorf("%w: decoded data too short", ErrInvalidFormat)
	}
	body := raw[:len(raw)-checksumSize]
	expected := binary.LittleEndian.Uint16(raw[len(raw)-checksumSize:])
	if actual := Checksum(body); actual != expected {
		return 0, nil, fmt.Errorf(
			"%w: expected %04x, got %04x",
			ErrChecksumMismatch,
			expected,
			actual,
		)
	}
	version := VersionByte(body[0])
	if !version.valid() {
		return 0, nil, fmt.Errorf("%w: %s", ErrInvalidVersion, version)
	}
	payload := bytes.Clone(body[1:])
	if !version.payloadSizeOK(len(payload)) {
		return 0, nil, fmt.Errorf(
			"%w: %d byte payload for %s",
			ErrInvalidPayloadLength,
			len(payload),
			version,
		)
	}
	if version == VersionByteSignedPayload {
		if err := checkSignedPayload(payload); err != nil {
			return 0, nil, err
		}
	}
	// Trailing bits of the final base32 character are ignored by the decoder, so
	// reject anything that doesn't round-trip to the exact same text
	if encoding.EncodeToString(raw) != src {
		return 0, nil, fmt.Errorf("%w: non-canonical encoding", ErrInvalidFormat)
	}
	return version, payload, nil
}

// Sentinel errors
var (
	ErrInvalidFormat        = errors.New("invalid strkey format")
	ErrChecksumMismatch     = errors.New("strkey checksum mismatch")
	ErrVersionMismatch      = errors.New("strkey version mismatch")
	ErrInvalidVersion       = fmt.Errorf("%w: unknown version byte", ErrVersionMismatch)
	ErrInvalidPayloadLength = fmt.Errorf("%w: invalid payload length", ErrInvalidFormat)
)
