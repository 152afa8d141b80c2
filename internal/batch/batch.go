// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"github.com/apex/log"

	"github.com/staranto/calcctlgo/internal/engine"
)

// Item is one requested calculation.
type Item struct {
	Symbol string
	A, B   engine.Value
}

// Result pairs an Item with its outcome. Exactly one of Value and Err is
// meaningful; Err carries engine.ErrDivisionByZero or
// engine.ErrUnknownOperator for failed items.
type Result struct {
	Item
	Value engine.Value
	Err   error
}

// Process applies every item in order and returns one Result per Item,
// input-ordered. A failing item never aborts the run; its error is captured
// and processing continues with the next item.
func Process(e *engine.Engine, items []Item) []Result {
	results := make([]Result, 0, len(items))
	for _, it := range items {
		v, err := e.Calculate(it.Symbol, it.A, it.B)
		if err != nil {
			log.Debugf("batch item %s %s %s failed: %v", it.A, it.Symbol, it.B, err)
		}
		results = append(results, Result{Item: it, Value: v, Err: err})
	}
	return results
}
