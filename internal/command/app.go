// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/calcctlgo/internal/batch"
	"github.com/staranto/calcctlgo/internal/config"
	"github.com/staranto/calcctlgo/internal/engine"
	"github.com/staranto/calcctlgo/internal/eval"
	"github.com/staranto/calcctlgo/internal/meta"
	"github.com/staranto/calcctlgo/internal/output"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	cfg, _ := config.Load()
	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "calcctl",
		Usage: "command line calculator",
		UsageText: `calcctl [options]
calcctl -e "2 + 3 * 4"
calcctl -b calcs.txt`,
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "calcctl version info",
				HideDefault: true,
			},
		}, NewRootFlags(cfg)...),
		Action: RootAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// RootAction dispatches to one-shot expression evaluation, batch file
// processing, or the interactive menu loop.
func RootAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	eng := NewEngine(cmd)

	if expr := cmd.String("expression"); expr != "" {
		v, err := eval.Evaluate(eng, expr)
		if err != nil {
			return err
		}
		fmt.Printf("Result: %s\n", v)
		return nil
	}

	if path := cmd.String("batch"); path != "" {
		items, err := batch.ReadFile(eng, path)
		if err != nil {
			return err
		}
		for _, r := range batch.Process(eng, items) {
			fmt.Println(output.BatchLine(r))
		}
		return nil
	}

	return Interactive(cmd, eng, os.Stdin, os.Stdout)
}

// NewEngine constructs the engine per the resolved flags.
func NewEngine(cmd *cli.Command) *engine.Engine {
	opts := []engine.Option{
		engine.WithCacheSize(int(cmd.Int("cache-size"))),
	}
	if cmd.Bool("decimal") {
		opts = append(opts, engine.WithDecimal(int(cmd.Int("precision"))))
	}
	return engine.New(opts...)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
