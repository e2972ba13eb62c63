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

package amount

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testDefs := []struct {
		input    string
		expected int64
	}{
		{input: "1", expected: One},
		{input: "0", expected: 0},
		{input: "000.0000000", expected: 0},
		{input: "0.0000001", expected: 1},
		{input: ".5", expected: 5_000_000},
		{input: "+2.5", expected: 25_000_000},
		{input: "100.1234567", expected: 1_001_234_567},
		{input: "00012", expected: 12 * One},
		{input: "922337203685.4775807", expected: math.MaxInt64},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.input, func(t *testing.T) {
			got, err := Parse(testDef.input)
			require.NoError(t, err)
			assert.Equal(t, testDef.expected, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testDefs := []string{
		"",
		"-",
		".",
		"1.",
		"-1",
		"-0",
		"-0.0000000",
		"-0.0000001",
		"1.00000001",
		"922337203685.4775808",
		"99999999999999999999999999999999999999999999999999999999999999999999999999999999",
		"1e7",
		"1,000",
		" 1",
		"0x10",
		"1.2.3",
	}
	for _, input := range testDefs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestParsePositive(t *testing.T) {
	_, err := ParsePositive("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = ParsePositive("0.0000000")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	got, err := ParsePositive("0.0000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
	assert.Panics(t, func() { MustParse("bogus") })
}

func TestString(t *testing.T) {
	testDefs := []struct {
		input    int64
		expected string
	}{
		{input: 0, expected: "0.0000000"},
		{input: 1, expected: "0.0000001"},
		{input: One, expected: "1.0000000"},
		{input: 1_001_234_567, expected: "100.1234567"},
		{input: -15, expected: "-0.0000015"},
		{input: math.MaxInt64, expected: "922337203685.4775807"},
		{input: math.MinInt64, expected: "-922337203685.4775808"},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, String(testDef.input))
		assert.Equal(t, testDef.expected, StringFromInt64(testDef.input))
	}
}

func TestRoundTrip(t *testing.T) {
	f := fuzz.New()
	for range 1000 {
		var v int64
		f.Fuzz(&v)
		if v < 0 {
			v = -(v + 1)
		}
		text := String(v)
		parsed, err := Parse(text)
		require.NoError(t, err, "parsing %q", text)
		require.Equal(t, v, parsed)
		require.Equal(t, text, String(parsed))
	}
}
