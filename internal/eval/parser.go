// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package eval

import (
	"fmt"

	"github.com/staranto/calcctlgo/internal/engine"
)

// node is a parsed subexpression. Evaluation dispatches binary operations
// through the engine.
type node interface {
	eval(e *engine.Engine) (engine.Value, error)
}

type literal struct {
	v engine.Value
}

func (n literal) eval(*engine.Engine) (engine.Value, error) {
	return n.v, nil
}

type negate struct {
	child node
}

func (n negate) eval(e *engine.Engine) (engine.Value, error) {
	v, err := n.child.eval(e)
	if err != nil {
		return engine.Value{}, err
	}
	return v.Neg(), nil
}

type binary struct {
	op          engine.Op
	left, right node
}

func (n binary) eval(e *engine.Engine) (engine.Value, error) {
	a, err := n.left.eval(e)
	if err != nil {
		return engine.Value{}, err
	}
	b, err := n.right.eval(e)
	if err != nil {
		return engine.Value{}, err
	}
	return e.Apply(n.op, a, b)
}

// parser implements the grammar
//
//	expr   := term   (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := '-'* primary ('^' factor)?
//	primary:= number | '(' expr ')'
//
// '^' is right-associative via the recursion in factor, and a leading minus
// is applied to the primary before '^', so -2^2 parses as (-2)^2.
type parser struct {
	eng  *engine.Engine
	toks []token
	pos  int
}

func parse(e *engine.Engine, toks []token) (node, error) {
	p := &parser{eng: e, toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok {
		return nil, fmt.Errorf("unexpected %q", t.text)
	}
	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp(tokPlus, engine.Add, tokMinus, engine.Subtract)
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.acceptOp(tokMult, engine.Multiply, tokDivide, engine.Divide)
		if !ok {
			return left, nil
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, left: left, right: right}
	}
}

func (p *parser) parseFactor() (node, error) {
	neg := false
	for p.accept(tokMinus) {
		neg = !neg
	}

	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if neg {
		base = negate{child: base}
	}

	if p.accept(tokPower) {
		exp, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return binary{op: engine.Power, left: base, right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	switch t.typ {
	case tokNumber:
		p.pos++
		v, err := p.eng.ParseValue(t.text)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", t.text)
		}
		return literal{v: v}, nil
	case tokOParen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(tokCParen) {
			return nil, fmt.Errorf("unbalanced parentheses")
		}
		return inner, nil
	}

	return nil, fmt.Errorf("unexpected %q", t.text)
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) accept(typ tokenType) bool {
	if t, ok := p.peek(); ok && t.typ == typ {
		p.pos++
		return true
	}
	return false
}

// acceptOp consumes one of two operator tokens and returns the matching Op.
func (p *parser) acceptOp(t1 tokenType, op1 engine.Op, t2 tokenType, op2 engine.Op) (engine.Op, bool) {
	if p.accept(t1) {
		return op1, true
	}
	if p.accept(t2) {
		return op2, true
	}
	return 0, false
}
