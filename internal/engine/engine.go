// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/apex/log"
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of digits carried by decimal division in
// financial precision mode.
const DefaultPrecision = 28

// Engine applies the six operations to operands in the representation it was
// constructed with. It owns the result cache and the history log; there is
// no other state.
type Engine struct {
	dec    bool
	prec   int32
	cache  *resultCache
	hist   *History
	hits   uint64
	misses uint64
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithDecimal switches operands to arbitrary-precision decimals. prec bounds
// the digits carried by division; prec <= 0 selects DefaultPrecision.
func WithDecimal(prec int) Option {
	return func(e *Engine) {
		e.dec = true
		if prec > 0 {
			e.prec = int32(prec)
		}
	}
}

// WithCacheSize sets the result cache capacity. n <= 0 disables caching;
// results are identical either way.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		e.cache = newResultCache(n)
	}
}

// New constructs an Engine with a DefaultCacheSize cache and an empty
// history unless options say otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		prec:  DefaultPrecision,
		cache: newResultCache(DefaultCacheSize),
		hist:  NewHistory(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Decimal reports whether the engine is in decimal mode.
func (e *Engine) Decimal() bool {
	return e.dec
}

// History returns the engine's calculation log.
func (e *Engine) History() *History {
	return e.hist
}

// CacheStats returns the result cache hit and miss counts.
func (e *Engine) CacheStats() (hits, misses uint64) {
	return e.hits, e.misses
}

// ParseValue parses operand text in the engine's representation.
func (e *Engine) ParseValue(s string) (Value, error) {
	if e.dec {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		return Dec(d), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return Float(f), nil
}

// Calculate resolves a display symbol and applies the operation. It is the
// entry point used by the batch processor, where an unrecognized symbol is a
// per-item failure rather than a programming error.
func (e *Engine) Calculate(symbol string, a, b Value) (Value, error) {
	op, ok := OpForSymbol(symbol)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownOperator, symbol)
	}
	return e.Apply(op, a, b)
}

// Apply computes op(a, b). Divide and Modulo fail with ErrDivisionByZero
// when b is zero; the other four operations cannot fail and are memoized
// through the result cache.
func (e *Engine) Apply(op Op, a, b Value) (Value, error) {
	switch op {
	case Divide, Modulo:
		if b.IsZero() {
			return Value{}, fmt.Errorf("%s: %w", op.Name(), ErrDivisionByZero)
		}
		return e.compute(op, a, b), nil
	}

	key := cacheKey{op: op, a: a.String(), b: b.String()}
	if v, ok := e.cache.get(key); ok {
		e.hits++
		log.Debugf("cache hit: %s %s %s", key.a, op, key.b)
		return v, nil
	}

	v := e.compute(op, a, b)
	e.cache.add(key, v)
	e.misses++
	return v, nil
}

func (e *Engine) compute(op Op, a, b Value) Value {
	if e.dec {
		return Dec(e.computeDecimal(op, a.Decimal(), b.Decimal()))
	}
	return Float(computeFloat(op, a.Float64(), b.Float64()))
}

func computeFloat(op Op, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	case Power:
		return math.Pow(a, b)
	case Modulo:
		return math.Mod(a, b)
	}
	panic(fmt.Sprintf("engine: unhandled op %d", op))
}

func (e *Engine) computeDecimal(op Op, a, b decimal.Decimal) decimal.Decimal {
	switch op {
	case Add:
		return a.Add(b)
	case Subtract:
		return a.Sub(b)
	case Multiply:
		return a.Mul(b)
	case Divide:
		return a.DivRound(b, e.prec)
	case Power:
		return a.Pow(b)
	case Modulo:
		return a.Mod(b)
	}
	panic(fmt.Sprintf("engine: unhandled op %d", op))
}
