// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"fmt"
	"strings"
)

type tokenType int

const (
	tokNumber tokenType = iota
	tokPlus
	tokMinus
	tokMult
	tokDivide
	tokPower
	tokOParen
	tokCParen
)

type token struct {
	typ  tokenType
	text string
}

const numeric = "0123456789"

var runeTokens = map[byte]tokenType{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokMult,
	'/': tokDivide,
	'^': tokPower,
	'(': tokOParen,
	')': tokCParen,
}

// lexer scans a whitespace-stripped expression into tokens. The input has
// already passed charset validation, so the only failure left here is a
// malformed numeric literal.
type lexer struct {
	input      string
	start, pos int
}

func lex(input string) ([]token, error) {
	l := &lexer{input: input}
	var toks []token
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if typ, ok := runeTokens[c]; ok {
			l.pos++
			l.start = l.pos
			toks = append(toks, token{typ: typ, text: string(c)})
			continue
		}
		text, err := l.lexNumber()
		if err != nil {
			return nil, err
		}
		toks = append(toks, token{typ: tokNumber, text: text})
	}
	return toks, nil
}

func (l *lexer) lexNumber() (string, error) {
	l.acceptRun(numeric)
	if l.accept(".") {
		if l.accept(".") {
			return "", fmt.Errorf("bad number syntax %q", l.current())
		}
		l.acceptRun(numeric)
	}
	text := l.current()
	if text == "" || text == "." {
		return "", fmt.Errorf("bad number syntax %q", text)
	}
	l.start = l.pos
	return text, nil
}

func (l *lexer) current() string {
	return l.input[l.start:l.pos]
}

func (l *lexer) accept(valid string) bool {
	if l.pos < len(l.input) && strings.IndexByte(valid, l.input[l.pos]) >= 0 {
		l.pos++
		return true
	}
	return false
}

func (l *lexer) acceptRun(valid string) {
	for l.accept(valid) {
	}
}
