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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gostellar/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

type arrayStruct struct {
	cbor.StructAsArray
	Version uint
	Name    string
	Data    []byte
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted
	{
		CborHex: "a2616101616202",
		Object:  map[string]int{"b": 2, "a": 1},
	},
	// Struct encoded as array
	{
		CborHex: "830163616263420102",
		Object:  arrayStruct{Version: 1, Name: "abc", Data: []byte{1, 2}},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		require.NoError(t, err)
		assert.Equal(t, test.CborHex, hex.EncodeToString(cborData))
	}
}

type customMarshal struct {
	Value uint
}

func (customMarshal) MarshalCBOR() ([]byte, error) {
	return []byte{0xf6}, nil
}

func TestEncodeGeneric(t *testing.T) {
	obj := &customMarshal{Value: 5}
	data, err := cbor.Encode(obj)
	require.NoError(t, err)
	assert.Equal(t, "f6", hex.EncodeToString(data))

	data, err = cbor.EncodeGeneric(obj)
	require.NoError(t, err)
	assert.Equal(t, "a16556616c756505", hex.EncodeToString(data))

	_, err = cbor.EncodeGeneric(customMarshal{})
	assert.Error(t, err)
}
