package calc

import "github.com/synapseradio/combo/parse"

// NewParser builds a fresh expression parser anchored at end of input.
// Each call constructs new memoization caches, so a parser instance must
// only be run against a single input.
func NewParser() parse.Parser[Node] {
	var expr parse.Parser[Node]

	factor := parse.Memoize(parse.Alt(
		lexeme(parse.Map(parse.Integer(), func(n int64) Node {
			return &Literal{Value: n}
		})),
		parse.Between(sym('('), sym(')'), parse.Ref(&expr)),
	))

	term := chainLeft(factor, parse.Alt(sym('*'), sym('/')))
	expr = parse.Memoize(chainLeft(term, parse.Alt(sym('+'), sym('-'))))

	return parse.EOF(parse.After(skipBlank(), expr))
}

// Parse parses input as a complete expression using a fresh parser.
func Parse(input string) parse.Outcome[Node] {
	return parse.Run(NewParser(), input)
}

// chainLeft parses operand { op operand }, folding the matches into a
// left-associative Binary tree.
func chainLeft(operand parse.Parser[Node], op parse.Parser[rune]) parse.Parser[Node] {
	type tail struct {
		op      rune
		operand Node
	}
	rest := parse.Many(parse.Seq2(op, operand, func(o rune, n Node) tail {
		return tail{op: o, operand: n}
	}))
	return parse.Seq2(operand, rest, func(first Node, tails []tail) Node {
		node := first
		for _, t := range tails {
			node = &Binary{Op: t.op, Left: node, Right: t.operand}
		}
		return node
	})
}

// sym matches a single operator or bracket character as a lexeme.
func sym(r rune) parse.Parser[rune] {
	return lexeme(parse.Char(r))
}

// lexeme wraps p to consume trailing blanks (whitespace and comments).
func lexeme[T any](p parse.Parser[T]) parse.Parser[T] {
	return parse.Seq2(p, skipBlank(), func(v T, _ struct{}) T { return v })
}

// endOfLine is the zero-width stop for line comments: a newline or the
// end of the input.
var endOfLine = parse.Alt(
	discard(parse.Char('\n')),
	parse.Not(parse.AnyChar()),
)

// skipBlank consumes any run of whitespace and '#' line comments. It
// never fails and never consumes the newline-terminating check's input
// beyond the blanks themselves.
func skipBlank() parse.Parser[struct{}] {
	comment := parse.After(parse.Char('#'),
		parse.Until(endOfLine, parse.AnyChar()))
	blank := parse.Alt(
		discard(parse.Many1(parse.Whitespace())),
		discard(comment),
	)
	return discard(parse.Many(blank))
}

func discard[T any](p parse.Parser[T]) parse.Parser[struct{}] {
	return parse.Map(p, func(T) struct{} { return struct{}{} })
}
