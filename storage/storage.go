/*
Copyright © 2021 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package storage defines the closed set of numeric kinds that may back a
// quantity.
//
// Only the exact types listed in Kind are accepted; defined types such as
// time.Duration are not, which keeps the set finite and enumerable.
// Overflow, division by zero and precision loss behave exactly as they do
// for the underlying Go type. The 128-bit kinds come from
// github.com/shabbyrobe/go-num and lukechampine.com/uint128.
package storage

import (
	"errors"
	"fmt"
	"math/big"

	num "github.com/shabbyrobe/go-num"
	"github.com/spf13/cast"
	"lukechampine.com/uint128"
)

// Signed is the set of fixed-width signed integer kinds.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is the set of fixed-width unsigned integer kinds.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer is the set of fixed-width integer kinds.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point kinds.
type Float interface {
	float32 | float64
}

// Number is the set of kinds that support arithmetic operators.
type Number interface {
	Integer | Float
}

// Int128 is a signed 128-bit integer.
type Int128 = num.I128

// Uint128 is an unsigned 128-bit integer.
type Uint128 = uint128.Uint128

// Wide is the set of 128-bit integer kinds. Go has no operators for them,
// so they may be stored, read and converted but not used in arithmetic.
type Wide interface {
	Int128 | Uint128
}

// NonZeroable is the set of kinds that may be wrapped in a NonZero.
type NonZeroable interface {
	Integer | Wide
}

// Kind is every permitted storage kind.
type Kind interface {
	Number | Wide |
		NonZero[int8] | NonZero[int16] | NonZero[int32] | NonZero[int64] |
		NonZero[uint8] | NonZero[uint16] | NonZero[uint32] | NonZero[uint64] |
		NonZero[Int128] | NonZero[Uint128]
}

// ErrZero is returned when a NonZero is created from zero.
var ErrZero = errors.New("storage: value is zero")

// NonZero is an integer that is guaranteed not to be zero. Its zero value
// is invalid; create one with NewNonZero or MustNonZero.
type NonZero[T NonZeroable] struct {
	v T
}

// NewNonZero returns v as a NonZero, or ErrZero if v is zero.
func NewNonZero[T NonZeroable](v T) (NonZero[T], error) {
	var zero T
	if v == zero {
		return NonZero[T]{}, fmt.Errorf("%w: cannot create NonZero[%T]", ErrZero, v)
	}
	return NonZero[T]{v: v}, nil
}

// MustNonZero is like NewNonZero but panics if v is zero.
func MustNonZero[T NonZeroable](v T) NonZero[T] {
	n, err := NewNonZero(v)
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns the wrapped integer.
func (n NonZero[T]) Get() T { return n.v }

func (n NonZero[T]) String() string { return fmt.Sprint(n.v) }

func (n NonZero[T]) display() float64 { return ToDisplay(n.v) }

// ToDisplay converts s to the floating display representation used for
// unit conversion. Integers wider than 53 bits may lose precision; 128-bit
// integers are rounded to the nearest float64.
func ToDisplay[S Kind](s S) float64 {
	switch v := any(s).(type) {
	case interface{ display() float64 }:
		return v.display()
	case Int128:
		return v.AsFloat64()
	case Uint128:
		f, _ := new(big.Float).SetInt(v.Big()).Float64()
		return f
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		panic(fmt.Errorf("storage: unexpected kind %T: %v", s, err))
	}
	return f
}

// FromDisplay converts a display value to S using Go's conversion rules:
// conversion to an integer kind truncates toward zero, and out-of-range
// values give an implementation-specific result.
func FromDisplay[S Number](v float64) S {
	return S(v)
}
