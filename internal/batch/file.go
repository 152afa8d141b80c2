// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/calcctlgo/internal/engine"
)

// ReadFile parses a batch file into Items. One calculation per line in
// operator,operandA,operandB form; lines starting with # are comments and
// blank lines are skipped. A malformed line is logged with its line number
// and skipped; only failing to open or read the file is an error.
func ReadFile(e *engine.Engine, path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	var items []Item
	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item, err := ParseLine(e, line)
		if err != nil {
			log.Warnf("%s:%d: skipping: %v", path, lineno, err)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return items, nil
}

// ParseLine parses one operator,operandA,operandB line. Operand parsing
// follows the engine's representation; the operator symbol is kept as-is so
// an unknown symbol becomes a per-item result, not a parse failure.
func ParseLine(e *engine.Engine, line string) (Item, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return Item{}, fmt.Errorf("expected operator,num1,num2, got %d fields", len(parts))
	}

	a, err := e.ParseValue(strings.TrimSpace(parts[1]))
	if err != nil {
		return Item{}, err
	}
	b, err := e.ParseValue(strings.TrimSpace(parts[2]))
	if err != nil {
		return Item{}, err
	}

	return Item{Symbol: strings.TrimSpace(parts[0]), A: a, B: b}, nil
}
