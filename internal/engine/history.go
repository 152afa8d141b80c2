// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package engine

import "time"

// Record is one entry in the calculation history. Exactly one of Result and
// Err is set. Records are never mutated after being appended.
type Record struct {
	Input  string
	Result string
	Err    string
	At     time.Time
}

// History is the ordered, append-only log of calculations performed during
// the current process. It is only ever touched by the single control thread
// driving the CLI loop.
type History struct {
	records []Record
}

// NewHistory returns an empty history log.
func NewHistory() *History {
	return &History{}
}

// Append adds a record to the end of the log, stamping it if unstamped.
func (h *History) Append(r Record) {
	if r.At.IsZero() {
		r.At = time.Now()
	}
	h.records = append(h.records, r)
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// Last returns up to n of the most recent records, oldest first. The
// returned slice is a copy.
func (h *History) Last(n int) []Record {
	if n <= 0 || len(h.records) == 0 {
		return nil
	}
	if n > len(h.records) {
		n = len(h.records)
	}
	out := make([]Record, n)
	copy(out, h.records[len(h.records)-n:])
	return out
}
