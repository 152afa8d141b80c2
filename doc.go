// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// calcctlgo is the main package for the calcctl command line calculator. It
// wires the CLI, delegates to internal packages, and serves as the entry
// point.
package main
