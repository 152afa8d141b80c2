// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the calcctl CLI. It wires flags, the one-shot
// expression and batch modes, and the interactive menu loop.
package command
