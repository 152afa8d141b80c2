// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/calcctlgo/internal/engine"
)

// ErrInvalidExpression flags input that fails charset validation or does not
// parse. A division (or modulo) by zero inside an otherwise well-formed
// expression surfaces as engine.ErrDivisionByZero instead.
var ErrInvalidExpression = errors.New("invalid expression")

const allowed = "0123456789.+-*/()^"

// Evaluate strips whitespace, validates, parses, and evaluates an infix
// arithmetic expression. On success the result is appended to the engine's
// history.
func Evaluate(e *engine.Engine, expr string) (engine.Value, error) {
	stripped := strings.Join(strings.Fields(expr), "")
	if stripped == "" {
		return engine.Value{}, fmt.Errorf("%w: empty input", ErrInvalidExpression)
	}

	// Reject anything outside the allowed charset before parsing starts.
	for _, r := range stripped {
		if !strings.ContainsRune(allowed, r) {
			return engine.Value{}, fmt.Errorf("%w: character %q not allowed", ErrInvalidExpression, r)
		}
	}

	toks, err := lex(stripped)
	if err != nil {
		return engine.Value{}, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	root, err := parse(e, toks)
	if err != nil {
		return engine.Value{}, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	v, err := root.eval(e)
	if err != nil {
		// Already typed (division by zero); do not re-wrap as invalid.
		return engine.Value{}, err
	}

	log.Debugf("evaluated %q = %s", stripped, v)
	e.History().Append(engine.Record{Input: stripped, Result: v.String()})
	return v, nil
}
