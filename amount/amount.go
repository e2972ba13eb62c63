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

// Package amount converts between human readable decimal amounts and the
// ledger's fixed-point 64-bit integer representation (stroops), and reduces
// decimal prices to bounded rational approximations
package amount

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// Decimals is the number of fractional digits in an amount
	Decimals = 7

	// One is the number of stroops in one unit
	One = 10_000_000
)

var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrApproximationNotFound = errors.New("no rational approximation found")
)

var (
	scale     = uint256.NewInt(One)
	maxAmount = uint256.NewInt(math.MaxInt64)
)

// Parse converts a decimal string to stroops. Zero is allowed, but any leading
// minus sign is rejected, including on zero
func Parse(v string) (int64, error) {
	return parse(v, true)
}

// ParsePositive is like Parse but rejects zero
func ParsePositive(v string) (int64, error) {
	return parse(v, false)
}

// MustParse is like Parse but panics on error
func MustParse(v string) int64 {
	ret, err := Parse(v)
	if err != nil {
		panic(fmt.Sprintf("unexpected error parsing amount: %s", err))
	}
	return ret
}

func parse(v string, allowZero bool) (int64, error) {
	d, err := parseDecimal(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if len(d.frac) > Decimals {
		return 0, fmt.Errorf(
			"%w: %q has more than %d fractional digits",
			ErrInvalidAmount,
			v,
			Decimals,
		)
	}
	whole, err := fromDigits(d.whole)
	if err != nil {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, v)
	}
	frac, err := fromDigits(d.frac + strings.Repeat("0", Decimals-len(d.frac)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, v, err)
	}
	scaled, overflow := new(uint256.Int).MulOverflow(whole, scale)
	if !overflow {
		scaled, overflow = scaled.AddOverflow(scaled, frac)
	}
	if overflow || scaled.Gt(maxAmount) {
		return 0, fmt.Errorf("%w: %q exceeds the maximum amount", ErrInvalidAmount, v)
	}
	if d.negative {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, v)
	}
	if !allowZero && scaled.IsZero() {
		return 0, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, v)
	}
	return int64(scaled.Uint64()), nil
}

// String renders stroops as a decimal with exactly 7 fractional digits
func String(v int64) string {
	var sign string
	// Two's complement negation also yields the right magnitude for math.MinInt64
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%07d", sign, u/One, u%One)
}

// StringFromInt64 is an alias for String
func StringFromInt64(v int64) string {
	return String(v)
}

// fromDigits converts a string of ASCII digits to an integer
func fromDigits(digits string) (*uint256.Int, error) {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return new(uint256.Int), nil
	}
	return uint256.FromDecimal(digits)
}

type decimal struct {
	negative bool
	whole    string
	frac     string
}

// parseDecimal splits a plain decimal number into its parts. Exponents,
// separators and whitespace are rejected. Leading zeros are removed from the
// whole part and trailing zeros are kept in the fractional part
func parseDecimal(v string) (decimal, error) {
	var ret decimal
	s := v
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		ret.negative = s[0] == '-'
		s = s[1:]
	}
	whole, frac, hasPoint := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return ret, fmt.Errorf("%q is not a number", v)
	}
	if hasPoint && frac == "" {
		return ret, fmt.Errorf("%q has a trailing decimal point", v)
	}
	for _, part := range []string{whole, frac} {
		for i := range len(part) {
			if part[i] < '0' || part[i] > '9' {
				return ret, fmt.Errorf("%q is not a number", v)
			}
		}
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	ret.whole = whole
	ret.frac = frac
	return ret, nil
}
