// Package calc parses and evaluates arithmetic expressions, built on the
// combinators in package parse. The grammar:
//
//	expr   = term  { ("+" | "-") term }
//	term   = factor { ("*" | "/") factor }
//	factor = integer | "(" expr ")"
//
// Whitespace and '#' line comments may appear between tokens. Operators
// associate to the left.
package calc

import "fmt"

// Node is an expression tree node.
type Node interface {
	Eval() (int64, error)
	String() string
}

// Literal is an integer constant.
type Literal struct {
	Value int64
}

func (l *Literal) Eval() (int64, error) {
	return l.Value, nil
}

func (l *Literal) String() string {
	return fmt.Sprintf("%d", l.Value)
}

// Binary applies an arithmetic operator to two sub-expressions.
type Binary struct {
	Op    rune
	Left  Node
	Right Node
}

func (b *Binary) Eval() (int64, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '*':
		return left * right, nil
	case '/':
		if right == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("unknown operator %q", string(b.Op))
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}
