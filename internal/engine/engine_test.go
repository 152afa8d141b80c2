// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_BasicOperations(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b float64
		want float64
	}{
		{name: "add", op: Add, a: 10, b: 5, want: 15},
		{name: "subtract", op: Subtract, a: 10, b: 5, want: 5},
		{name: "multiply", op: Multiply, a: 10, b: 5, want: 50},
		{name: "divide", op: Divide, a: 10, b: 5, want: 2.0},
		{name: "power", op: Power, a: 2, b: 3, want: 8},
		{name: "modulo", op: Modulo, a: 10, b: 3, want: 1},
		{name: "divide fractional", op: Divide, a: 10, b: 4, want: 2.5},
		{name: "negative subtract", op: Subtract, a: 5, b: 10, want: -5},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Apply(tt.op, Float(tt.a), Float(tt.b))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Float64())
		})
	}
}

func TestApply_DivisionByZero(t *testing.T) {
	e := New()

	for _, op := range []Op{Divide, Modulo} {
		t.Run(op.Name(), func(t *testing.T) {
			_, err := e.Apply(op, Float(10), Float(0))
			assert.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}

func TestApply_DivisionByZero_Decimal(t *testing.T) {
	e := New(WithDecimal(0))

	a, err := e.ParseValue("10")
	assert.NoError(t, err)
	zero, err := e.ParseValue("0")
	assert.NoError(t, err)

	_, err = e.Apply(Divide, a, zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestApply_Purity(t *testing.T) {
	e := New()

	first, err := e.Apply(Add, Float(3), Float(4))
	assert.NoError(t, err)
	second, err := e.Apply(Add, Float(3), Float(4))
	assert.NoError(t, err)

	assert.Equal(t, first, second)

	// Only cache bookkeeping may change between the two calls.
	hits, misses := e.CacheStats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 0, e.History().Len())
}

func TestCalculate_UnknownOperator(t *testing.T) {
	e := New()

	_, err := e.Calculate("&", Float(1), Float(2))
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestCalculate_AllSymbols(t *testing.T) {
	e := New()

	for _, op := range Ops() {
		got, err := e.Calculate(op.Symbol(), Float(8), Float(2))
		assert.NoError(t, err)

		want, err := e.Apply(op, Float(8), Float(2))
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseValue(t *testing.T) {
	e := New()

	v, err := e.ParseValue("-12.5")
	assert.NoError(t, err)
	assert.Equal(t, -12.5, v.Float64())

	_, err = e.ParseValue("twelve")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseValue_Decimal(t *testing.T) {
	e := New(WithDecimal(0))

	v, err := e.ParseValue("0.1")
	assert.NoError(t, err)
	assert.True(t, v.IsDecimal())
	assert.Equal(t, "0.1", v.String())

	_, err = e.ParseValue("nope")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestDecimalMode_ExactAddition(t *testing.T) {
	e := New(WithDecimal(0))

	a, _ := e.ParseValue("0.1")
	b, _ := e.ParseValue("0.2")

	got, err := e.Apply(Add, a, b)
	assert.NoError(t, err)
	assert.Equal(t, "0.3", got.String())
}

func TestFloatMode_AdditionArtifact(t *testing.T) {
	e := New()

	got, err := e.Apply(Add, Float(0.1), Float(0.2))
	assert.NoError(t, err)
	assert.NotEqual(t, "0.3", got.String())
}

func TestDecimalMode_Operations(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		a, b string
		want string
	}{
		{name: "add", op: Add, a: "10", b: "5", want: "15"},
		{name: "divide", op: Divide, a: "1", b: "8", want: "0.125"},
		{name: "power", op: Power, a: "2", b: "3", want: "8"},
		{name: "modulo", op: Modulo, a: "10", b: "3", want: "1"},
	}

	e := New(WithDecimal(0))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := e.ParseValue(tt.a)
			b, _ := e.ParseValue(tt.b)
			got, err := e.Apply(tt.op, a, b)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOpForSymbol(t *testing.T) {
	op, ok := OpForSymbol("^")
	assert.True(t, ok)
	assert.Equal(t, Power, op)
	assert.Equal(t, "Power", op.Name())

	_, ok = OpForSymbol("&")
	assert.False(t, ok)
}
