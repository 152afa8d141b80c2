// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/calcctlgo/internal/config"
	"github.com/staranto/calcctlgo/internal/engine"
)

// NewRootFlags builds the calculator flags. Defaults for the tunables chain
// through CALCCTL_* env vars and then the calcctl.yaml config file.
func NewRootFlags(cfg config.Type) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "expression",
			Aliases: []string{"e"},
			Usage:   "evaluate one expression and exit",
		},
		&cli.StringFlag{
			Name:    "batch",
			Aliases: []string{"b"},
			Usage:   "run calculations from a batch file and exit",
		},
		&cli.BoolFlag{
			Name:    "decimal",
			Aliases: []string{"d"},
			Usage:   "use arbitrary-precision decimal operands",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CALCCTL_DECIMAL"),
				yaml.YAML("decimal", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.IntFlag{
			Name:  "precision",
			Usage: "digits carried by decimal division",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("precision", altsrc.StringSourcer(cfg.Source)),
			),
			Value: engine.DefaultPrecision,
		},
		&cli.IntFlag{
			Name:  "cache-size",
			Usage: "result cache capacity, 0 disables",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache_size", altsrc.StringSourcer(cfg.Source)),
			),
			Value: engine.DefaultCacheSize,
		},
		&cli.IntFlag{
			Name:  "history",
			Usage: "rows shown by the history view",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("history", altsrc.StringSourcer(cfg.Source)),
			),
			Value: 10,
		},
	}

	return
}
