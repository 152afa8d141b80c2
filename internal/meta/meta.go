// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/calcctlgo/internal/config"
)

// Meta are the invocation-level values threaded through the CLI command.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
}
