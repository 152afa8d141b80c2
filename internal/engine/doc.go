// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package engine implements the arithmetic core of calcctl: the six binary
// operations, operand values in float or decimal representation, a bounded
// result cache for the pure operations, and the calculation history log.
package engine
