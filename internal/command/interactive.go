// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/calcctlgo/internal/batch"
	"github.com/staranto/calcctlgo/internal/engine"
	"github.com/staranto/calcctlgo/internal/eval"
	"github.com/staranto/calcctlgo/internal/output"
)

const menuWidth = 40

// menuText builds the interactive menu once per process.
func menuText() string {
	bar := strings.Repeat("=", menuWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", bar)
	fmt.Fprintln(&b, "            CALCCTL CALCULATOR")
	fmt.Fprintln(&b, bar)
	for i, op := range engine.Ops() {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, op.Name(), op.Symbol())
	}
	fmt.Fprintln(&b, "7. Expression Evaluation")
	fmt.Fprintln(&b, "8. Batch Mode")
	fmt.Fprintln(&b, "9. Show History")
	fmt.Fprintln(&b, "0. Exit")
	b.WriteString(bar)
	return b.String()
}

// Interactive runs the numbered menu loop until the user exits or input
// ends. Errors raised by a single menu choice are reported and recovered;
// only end of input or an explicit exit returns.
func Interactive(cmd *cli.Command, eng *engine.Engine, in io.Reader, out io.Writer) error {
	histN := int(cmd.Int("history"))
	return interactiveLoop(eng, in, out, histN)
}

func interactiveLoop(eng *engine.Engine, in io.Reader, out io.Writer, histN int) error {
	if histN <= 0 {
		histN = 10
	}

	sc := bufio.NewScanner(in)
	menu := menuText()

	fmt.Fprintln(out, "Welcome to calcctl!")

	for {
		fmt.Fprintln(out, menu)
		fmt.Fprint(out, "\nSelect operation (0-9): ")

		choice, ok := readLine(sc)
		if !ok {
			return nil
		}

		switch choice {
		case "0":
			fmt.Fprintln(out, "\nThank you for using calcctl. Goodbye!")
			return nil
		case "7":
			runExpression(sc, out, eng)
		case "8":
			runBatchEntry(sc, out, eng)
		case "9":
			showHistory(out, eng, histN)
		default:
			n, err := strconv.Atoi(choice)
			if err != nil || n < 1 || n > len(engine.Ops()) {
				fmt.Fprintln(out, "\nInvalid choice. Please select a valid option.")
				continue
			}
			runOperation(sc, out, eng, engine.Ops()[n-1])
		}
	}
}

func runOperation(sc *bufio.Scanner, out io.Writer, eng *engine.Engine, op engine.Op) {
	fmt.Fprintf(out, "\n%s selected\n", op.Name())

	a, ok := promptValue(sc, out, eng, "Enter first number: ")
	if !ok {
		return
	}
	b, ok := promptValue(sc, out, eng, "Enter second number: ")
	if !ok {
		return
	}

	input := fmt.Sprintf("%s %s %s", a, op.Symbol(), b)

	res, err := eng.Apply(op, a, b)
	if err != nil {
		fmt.Fprintf(out, "\nError: %v\n", err)
		eng.History().Append(engine.Record{Input: input, Err: err.Error()})
		return
	}

	fmt.Fprintf(out, "\nResult: %s\n", output.FormatResult(a, op, b, res))
	eng.History().Append(engine.Record{Input: input, Result: res.String()})
}

func runExpression(sc *bufio.Scanner, out io.Writer, eng *engine.Engine) {
	fmt.Fprint(out, "\nEnter mathematical expression: ")
	expr, ok := readLine(sc)
	if !ok {
		return
	}

	res, err := eval.Evaluate(eng, expr)
	if err != nil {
		fmt.Fprintf(out, "\nError: %v\n", err)
		return
	}
	fmt.Fprintf(out, "\nResult: %s\n", res)
}

func runBatchEntry(sc *bufio.Scanner, out io.Writer, eng *engine.Engine) {
	fmt.Fprintln(out, "\nBatch Mode - Enter calculations in format: operation,num1,num2")
	fmt.Fprintln(out, "Operations: + - * / ^ %")
	fmt.Fprintln(out, "Enter 'done' when finished")

	var items []batch.Item
	for {
		fmt.Fprint(out, "\nEnter calculation (or 'done'): ")
		line, ok := readLine(sc)
		if !ok || strings.EqualFold(line, "done") {
			break
		}
		if line == "" {
			continue
		}

		item, err := batch.ParseLine(eng, line)
		if err != nil {
			fmt.Fprintf(out, "Invalid input: %v\n", err)
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return
	}

	fmt.Fprintln(out, "\nResults:")
	fmt.Fprintln(out, output.BatchTable(batch.Process(eng, items)))
}

func showHistory(out io.Writer, eng *engine.Engine, n int) {
	if eng.History().Len() == 0 {
		fmt.Fprintln(out, "\nNo history available.")
		return
	}

	hits, misses := eng.CacheStats()
	log.Debugf("cache stats: %d hits, %d misses", hits, misses)

	fmt.Fprintln(out, "\nCalculation History:")
	fmt.Fprintln(out, output.HistoryTable(eng.History().Last(n)))
}

// promptValue re-prompts until the input parses as a number in the engine's
// representation. ok is false when input ended.
func promptValue(sc *bufio.Scanner, out io.Writer, eng *engine.Engine, prompt string) (engine.Value, bool) {
	for {
		fmt.Fprint(out, prompt)
		line, ok := readLine(sc)
		if !ok {
			return engine.Value{}, false
		}
		v, err := eng.ParseValue(line)
		if err != nil {
			fmt.Fprintln(out, "Invalid input. Please enter a valid number.")
			continue
		}
		return v, true
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
