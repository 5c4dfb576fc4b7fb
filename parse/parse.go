// Package parse provides parser combinators over rune sequences.
//
// A Parser is a pure function from an input and a starting position to an
// Outcome: either a value with the position after the consumed input, or a
// failure carrying the position it was reported at and the set of
// expectations that would have allowed success. Parsers are built by
// composing primitives (Char, String, Digit, ...) with combinators (Seq,
// Alt, Many, Between, ...); composition produces new parser values and
// never mutates existing ones.
package parse

// Parser recognizes input starting at pos and reports an Outcome.
// Position is a rune index into input. A parser never reads before pos
// and a successful outcome never reports a position smaller than pos.
type Parser[T any] func(input []rune, pos int) Outcome[T]

// Outcome is the result of running a parser.
//
// When OK is true, Value holds the parsed value and Pos is the index
// immediately after the consumed input (equal to the starting position
// for zero-width parsers). When OK is false, Expected is a non-empty,
// deduplicated list of human-readable expectations in first-seen order,
// and Pos is the position the failure is reported at - the deepest
// position reached, not necessarily the position the parser started from.
type Outcome[T any] struct {
	OK       bool
	Value    T
	Pos      int
	Expected []string
}

// Ok returns a successful outcome with the given value and position.
func Ok[T any](v T, pos int) Outcome[T] {
	return Outcome[T]{OK: true, Value: v, Pos: pos}
}

// Expecting returns a failed outcome at pos with the given expectations.
func Expecting[T any](pos int, expected ...string) Outcome[T] {
	return Outcome[T]{Pos: pos, Expected: expected}
}

// failOf retypes a failure. The value type of a failed outcome carries no
// information, so propagating a sub-parser's failure through a combinator
// with a different value type only copies position and expectations.
func failOf[A, B any](o Outcome[A]) Outcome[B] {
	return Outcome[B]{Pos: o.Pos, Expected: o.Expected}
}

// union merges expectation lists, dropping duplicates and keeping
// first-seen order.
func union(sets ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, e := range set {
			if seen[e] {
				continue
			}
			seen[e] = true
			merged = append(merged, e)
		}
	}
	return merged
}

// Run applies p to input starting at position zero.
func Run[T any](p Parser[T], input string) Outcome[T] {
	return p([]rune(input), 0)
}

// RunAt applies p to input starting at pos.
func RunAt[T any](p Parser[T], input string, pos int) Outcome[T] {
	return p([]rune(input), pos)
}
