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

package strkey

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// EncodeMuxed returns the M... strkey for an ed25519 key and a 64-bit account id
func EncodeMuxed(key []byte, id uint64) (string, error) {
	if len(key) != KeySize {
		return "", fmt.Errorf(
			"%w: %d byte key for muxed account",
			ErrInvalidPayloadLength,
			len(key),
		)
	}
	payload := make([]byte, 0, MuxedSize)
	payload = append(payload, key...)
	payload = binary.BigEndian.AppendUint64(payload, id)
	return Encode(VersionByteMuxedAccount, payload)
}

// DecodeMuxed splits an M... strkey into its ed25519 key and account id
func DecodeMuxed(src string) ([]byte, uint64, error) {
	payload, err := Decode(VersionByteMuxedAccount, src)
	if err != nil {
		return nil, 0, err
	}
	return payload[:KeySize], binary.BigEndian.Uint64(payload[KeySize:]), nil
}

// SignedPayload is the decoded form of a P... strkey: an ed25519 signer and the
// payload it is expected to sign
type SignedPayload struct {
	Signer  []byte
	Payload []byte
}

// EncodeSignedPayload returns the P... strkey for a signer key and payload. The
// payload is stored as XDR variable-length opaque data
func EncodeSignedPayload(signer []byte, payload []byte) (string, error) {
	if len(signer) != KeySize {
		return "", fmt.Errorf(
			"%w: %d byte signer key",
			ErrInvalidPayloadLength,
			len(signer),
		)
	}
	if len(payload) == 0 || len(payload) > MaxSignedPayloadSize {
		return "", fmt.Errorf(
			"%w: signed payload must be 1-%d bytes, got %d",
			ErrInvalidPayloadLength,
			MaxSignedPayloadSize,
			len(payload),
		)
	}
	padding := (4 - len(payload)%4) % 4
	raw := make([]byte, 0, KeySize+4+len(payload)+padding)
	raw = append(raw, signer...)
	raw = binary.BigEndian.AppendUint32(raw, uint32(len(payload)))
	raw = append(raw, payload...)
	raw = append(raw, make([]byte, padding)...)
	return Encode(VersionByteSignedPayload, raw)
}

// DecodeSignedPayload parses a P... strkey
func DecodeSignedPayload(src string) (SignedPayload, error) {
	raw, err := Decode(VersionByteSignedPayload, src)
	if err != nil {
		return SignedPayload{}, err
	}
	payloadLen := binary.BigEndian.Uint32(raw[KeySize : KeySize+4])
	return SignedPayload{
		Signer:  raw[:KeySize],
		Payload: raw[KeySize+4 : KeySize+4+int(payloadLen)],
	}, nil
}

// checkSignedPayload validates the inner length prefix and zero padding of a
// raw signed payload
func checkSignedPayload(raw []byte) error {
	payloadLen := binary.BigEndian.Uint32(raw[KeySize : KeySize+4])
	if payloadLen == 0 || payloadLen > MaxSignedPayloadSize {
		return fmt.Errorf(
			"%w: signed payload length %d",
			ErrInvalidPayloadLength,
			payloadLen,
		)
	}
	padded := (int(payloadLen) + 3) &^ 3
	if len(raw) != KeySize+4+padded {
		return fmt.Errorf(
			"%w: signed payload length %d does not match data",
			ErrInvalidPayloadLength,
			payloadLen,
		)
	}
	if !bytes.Equal(raw[KeySize+4+int(payloadLen):], make([]byte, padded-int(payloadLen))) {
		return fmt.Errorf("%w: non-zero signed payload padding", ErrInvalidFormat)
	}
	return nil
}
