// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the calcctl release version reported by --version.
package version

var Version = "0.3.0"
