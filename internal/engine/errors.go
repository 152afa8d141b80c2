// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrDivisionByZero is returned when the second operand of a divide or
	// modulo operation is zero. Always detected before the operation runs.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperator is returned when an operator symbol does not map to
	// any of the six supported operations.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrInvalidNumber is returned when operand text cannot be parsed in the
	// engine's current representation.
	ErrInvalidNumber = errors.New("invalid number")
)
