// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output formats calculation results, batch summaries, and the
// history view for terminal display.
package output
