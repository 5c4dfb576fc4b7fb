package parse

import "strconv"

// Integer parses an optionally signed decimal integer: an optional '+'
// or '-' followed by at least one digit. A leading '+' is discarded
// ("+789" parses as 789). A digit run that does not fit in an int64
// fails at the starting position rather than clamping.
func Integer() Parser[int64] {
	sign := Optional(Alt(Char('+'), Char('-')))
	digits := Many1(Digit())
	literal := Seq2(sign, digits, func(s Maybe[rune], ds []rune) string {
		if s.Set && s.Value == '-' {
			return "-" + string(ds)
		}
		return string(ds)
	})
	return func(input []rune, pos int) Outcome[int64] {
		out := literal(input, pos)
		if !out.OK {
			return failOf[string, int64](out)
		}
		n, err := strconv.ParseInt(out.Value, 10, 64)
		if err != nil {
			return Expecting[int64](pos, "integer")
		}
		return Ok(n, out.Pos)
	}
}

// Ident parses an identifier: an ASCII letter followed by letters and
// digits.
func Ident() Parser[string] {
	rest := Many(Alt(Letter(), Digit()))
	return Seq2(Letter(), rest, func(first rune, rs []rune) string {
		return string(append([]rune{first}, rs...))
	})
}
