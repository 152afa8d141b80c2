// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is an immutable operand. It is float64-backed by default and
// decimal-backed when the engine runs in decimal (financial precision) mode.
type Value struct {
	f   float64
	d   decimal.Decimal
	dec bool
}

// Float wraps a float64 operand.
func Float(f float64) Value {
	return Value{f: f}
}

// Dec wraps a decimal operand.
func Dec(d decimal.Decimal) Value {
	return Value{d: d, dec: true}
}

// IsDecimal reports whether the value carries a decimal representation.
func (v Value) IsDecimal() bool {
	return v.dec
}

// Float64 returns the value as a float64, rounding a decimal if necessary.
func (v Value) Float64() float64 {
	if v.dec {
		return v.d.InexactFloat64()
	}
	return v.f
}

// Decimal returns the value as a decimal.
func (v Value) Decimal() decimal.Decimal {
	if v.dec {
		return v.d
	}
	return decimal.NewFromFloat(v.f)
}

// IsZero reports whether the value equals zero.
func (v Value) IsZero() bool {
	if v.dec {
		return v.d.IsZero()
	}
	return v.f == 0
}

// Neg returns the negated value.
func (v Value) Neg() Value {
	if v.dec {
		return Dec(v.d.Neg())
	}
	return Float(-v.f)
}

// String renders the value in its shortest exact form. It also serves as the
// canonical form used in cache keys and history records.
func (v Value) String() string {
	if v.dec {
		return v.d.String()
	}
	return strconv.FormatFloat(v.f, 'g', -1, 64)
}
