// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

// Op is the enumerated tag for one of the six supported operations.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
	Power
	Modulo
)

type opInfo struct {
	name   string
	symbol string
	// Divide and Modulo carry a runtime zero check, so only the four
	// always-pure operations are eligible for the result cache.
	cacheable bool
}

var ops = [...]opInfo{
	Add:      {name: "Addition", symbol: "+", cacheable: true},
	Subtract: {name: "Subtraction", symbol: "-", cacheable: true},
	Multiply: {name: "Multiplication", symbol: "*", cacheable: true},
	Divide:   {name: "Division", symbol: "/"},
	Power:    {name: "Power", symbol: "^", cacheable: true},
	Modulo:   {name: "Modulo", symbol: "%"},
}

var opBySymbol = func() map[string]Op {
	m := make(map[string]Op, len(ops))
	for op := range ops {
		m[ops[op].symbol] = Op(op)
	}
	return m
}()

// OpForSymbol maps a display symbol (+ - * / ^ %) to its Op.
func OpForSymbol(symbol string) (Op, bool) {
	op, ok := opBySymbol[symbol]
	return op, ok
}

// Ops returns the operations in menu order.
func Ops() []Op {
	return []Op{Add, Subtract, Multiply, Divide, Power, Modulo}
}

// Name returns the long display name, e.g. "Addition".
func (o Op) Name() string {
	return ops[o].name
}

// Symbol returns the display symbol, e.g. "+".
func (o Op) Symbol() string {
	return ops[o].symbol
}

func (o Op) String() string {
	return ops[o].symbol
}

func (o Op) cacheable() bool {
	return ops[o].cacheable
}
