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
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"
)

// maxPriceDigits bounds the significant digits accepted for a decimal price so
// the exact numerator and denominator fit comfortably in 256 bits
const maxPriceDigits = 60

// Price is a rational n/d with both parts positive 32-bit integers
type Price struct {
	N int32
	D int32
}

// Rational is implemented by the forms a caller may supply a price in
type Rational interface {
	Rational() (Price, error)
}

// Rational validates an explicit price
func (p Price) Rational() (Price, error) {
	if p.N <= 0 || p.D <= 0 {
		return Price{}, fmt.Errorf(
			"%w: %d/%d must have a positive numerator and denominator",
			ErrInvalidPrice,
			p.N,
			p.D,
		)
	}
	return p, nil
}

// String returns the decimal value of the price truncated to 7 fractional digits
func (p Price) String() string {
	if p.D == 0 {
		return fmt.Sprintf("%d/%d", p.N, p.D)
	}
	n, d := int64(p.N), int64(p.D)
	// |n| * One / |d| fits in 64 bits for any 32-bit n
	return String(n * One / d)
}

// Float64 returns the approximate floating point value of the price
func (p Price) Float64() float64 {
	return float64(p.N) / float64(p.D)
}

// Decimal is a price given as decimal text, reduced by ParsePrice
type Decimal string

func (d Decimal) Rational() (Price, error) {
	return ParsePrice(string(d))
}

// ParsePrice converts a positive decimal string into its best rational
// approximation with numerator and denominator at most math.MaxInt32
func ParsePrice(v string) (Price, error) {
	d, err := parseDecimal(v)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %w", ErrInvalidPrice, err)
	}
	digits := strings.TrimLeft(d.whole+d.frac, "0")
	if len(digits) > maxPriceDigits || len(d.frac) > maxPriceDigits {
		return Price{}, fmt.Errorf(
			"%w: %q has more than %d significant digits",
			ErrInvalidPrice,
			v,
			maxPriceDigits,
		)
	}
	num, err := fromDigits(digits)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q: %w", ErrInvalidPrice, v, err)
	}
	if d.negative && !num.IsZero() {
		return Price{}, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, v)
	}
	den := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for range len(d.frac) {
		den.Mul(den, ten)
	}
	ret, err := Approximate(num, den)
	if err != nil {
		return Price{}, fmt.Errorf("%w for %q", err, v)
	}
	return ret, nil
}

// MustParsePrice is like ParsePrice but panics on error
func MustParsePrice(v string) Price {
	ret, err := ParsePrice(v)
	if err != nil {
		panic(fmt.Sprintf("unexpected error parsing price: %s", err))
	}
	return ret
}

// Approximate finds the last continued fraction convergent of num/den whose
// numerator and denominator both fit within math.MaxInt32.
//
// Iteration stops as soon as the integer part of the remainder exceeds the
// bound, a new convergent would exceed the bound (that convergent is
// discarded), or the remainder becomes exactly zero
func Approximate(num, den *uint256.Int) (Price, error) {
	if den.IsZero() {
		return Price{}, fmt.Errorf("%w: zero denominator", ErrInvalidPrice)
	}
	const bound = math.MaxInt32
	p := new(uint256.Int).Set(num)
	q := new(uint256.Int).Set(den)
	// Seed convergents h(-2)/k(-2) = 0/1 and h(-1)/k(-1) = 1/0
	var h2, h1 uint64 = 0, 1
	var k2, k1 uint64 = 1, 0
	for {
		a := new(uint256.Int).Div(p, q)
		if !a.IsUint64() || a.Uint64() > bound {
			break
		}
		ai := a.Uint64()
		h := ai*h1 + h2
		k := ai*k1 + k2
		if h > bound || k > bound {
			break
		}
		h2, h1 = h1, h
		k2, k1 = k1, k
		f := new(uint256.Int).Mod(p, q)
		if f.IsZero() {
			break
		}
		p, q = q, f
	}
	if h1 == 0 || k1 == 0 {
		return Price{}, fmt.Errorf(
			"%w: best convergent %d/%d",
			ErrApproximationNotFound,
			h1,
			k1,
		)
	}
	return Price{N: int32(h1), D: int32(k1)}, nil
}
