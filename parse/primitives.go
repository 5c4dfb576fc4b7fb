package parse

import (
	"fmt"
	"unicode"
)

// Char matches exactly the rune want. At end of input it fails rather
// than panicking.
func Char(want rune) Parser[rune] {
	expected := fmt.Sprintf("'%c'", want)
	return func(input []rune, pos int) Outcome[rune] {
		if pos >= len(input) || input[pos] != want {
			return Expecting[rune](pos, expected)
		}
		return Ok(want, pos+1)
	}
}

// String matches the literal want. The empty string succeeds without
// consuming input.
func String(want string) Parser[string] {
	runes := []rune(want)
	expected := fmt.Sprintf("'%s'", want)
	return func(input []rune, pos int) Outcome[string] {
		if pos+len(runes) > len(input) {
			return Expecting[string](pos, expected)
		}
		for i, r := range runes {
			if input[pos+i] != r {
				return Expecting[string](pos, expected)
			}
		}
		return Ok(want, pos+len(runes))
	}
}

// AnyChar matches any single rune.
func AnyChar() Parser[rune] {
	return func(input []rune, pos int) Outcome[rune] {
		if pos >= len(input) {
			return Expecting[rune](pos, "any character")
		}
		return Ok(input[pos], pos+1)
	}
}

// Whitespace matches exactly one space, tab, newline or carriage return.
func Whitespace() Parser[rune] {
	return func(input []rune, pos int) Outcome[rune] {
		if pos >= len(input) {
			return Expecting[rune](pos, "whitespace")
		}
		switch input[pos] {
		case ' ', '\t', '\n', '\r':
			return Ok(input[pos], pos+1)
		}
		return Expecting[rune](pos, "whitespace")
	}
}

// Whitespaces consumes a maximal run of whitespace as classified by
// unicode.IsSpace and always succeeds, with the consumed text as its
// value. Note the asymmetry with Whitespace, which recognizes only the
// four ASCII whitespace characters: Whitespaces is deliberately broader
// than Many(Whitespace()) on inputs containing other space code points.
func Whitespaces() Parser[string] {
	return func(input []rune, pos int) Outcome[string] {
		end := pos
		for end < len(input) && unicode.IsSpace(input[end]) {
			end++
		}
		return Ok(string(input[pos:end]), end)
	}
}

// Letter matches one ASCII letter.
func Letter() Parser[rune] {
	return func(input []rune, pos int) Outcome[rune] {
		if pos < len(input) {
			r := input[pos]
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				return Ok(r, pos+1)
			}
		}
		return Expecting[rune](pos, "letter")
	}
}

// Digit matches one decimal digit.
func Digit() Parser[rune] {
	return func(input []rune, pos int) Outcome[rune] {
		if pos < len(input) && input[pos] >= '0' && input[pos] <= '9' {
			return Ok(input[pos], pos+1)
		}
		return Expecting[rune](pos, "digit")
	}
}

// Succeed always succeeds with v without consuming input. It is the
// neutral element for Alt; Optional is defined in terms of it.
func Succeed[T any](v T) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		return Ok(v, pos)
	}
}

// Fail always fails without consuming input, reporting msg as the sole
// expectation.
func Fail[T any](msg string) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		return Expecting[T](pos, msg)
	}
}
