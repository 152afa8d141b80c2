// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token
	}{
		{
			name:  "simple sum",
			input: "2+3",
			want: []token{
				{typ: tokNumber, text: "2"},
				{typ: tokPlus, text: "+"},
				{typ: tokNumber, text: "3"},
			},
		},
		{
			name:  "all operators",
			input: "1-2*3/4^5",
			want: []token{
				{typ: tokNumber, text: "1"},
				{typ: tokMinus, text: "-"},
				{typ: tokNumber, text: "2"},
				{typ: tokMult, text: "*"},
				{typ: tokNumber, text: "3"},
				{typ: tokDivide, text: "/"},
				{typ: tokNumber, text: "4"},
				{typ: tokPower, text: "^"},
				{typ: tokNumber, text: "5"},
			},
		},
		{
			name:  "parens and decimals",
			input: "(1.5)",
			want: []token{
				{typ: tokOParen, text: "("},
				{typ: tokNumber, text: "1.5"},
				{typ: tokCParen, text: ")"},
			},
		},
		{
			name:  "leading dot",
			input: ".25",
			want:  []token{{typ: tokNumber, text: ".25"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lex(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLex_BadNumber(t *testing.T) {
	_, err := lex("1..2")
	assert.Error(t, err)

	_, err = lex(".")
	assert.Error(t, err)
}
