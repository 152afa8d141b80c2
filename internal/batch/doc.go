// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package batch runs ordered sequences of (operator, operand, operand)
// calculations through the engine, isolating per-item failures, and reads
// the comma-separated batch file format.
package batch
