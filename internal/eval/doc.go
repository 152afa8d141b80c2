// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package eval validates and evaluates flat infix arithmetic expressions
// with conventional precedence and parentheses. Expressions are parsed with
// a small recursive-descent parser; no host evaluation facility is involved,
// and every binary operation is dispatched through the engine so zero checks
// and memoization behave the same inside and outside expressions.
package eval
