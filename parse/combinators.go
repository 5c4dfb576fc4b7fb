package parse

// Seq runs each parser in order, threading the position, and collects
// the values. The first failure is returned verbatim - its expectations
// and position, not the sequence's starting position - and the remaining
// parsers do not run.
func Seq[T any](parsers ...Parser[T]) Parser[[]T] {
	return func(input []rune, pos int) Outcome[[]T] {
		values := make([]T, 0, len(parsers))
		cur := pos
		for _, p := range parsers {
			out := p(input, cur)
			if !out.OK {
				return failOf[T, []T](out)
			}
			values = append(values, out.Value)
			cur = out.Pos
		}
		return Ok(values, cur)
	}
}

// Seq2 runs pa then pb and joins their values. Either failure is
// propagated verbatim.
func Seq2[A, B, R any](pa Parser[A], pb Parser[B], join func(A, B) R) Parser[R] {
	return func(input []rune, pos int) Outcome[R] {
		a := pa(input, pos)
		if !a.OK {
			return failOf[A, R](a)
		}
		b := pb(input, a.Pos)
		if !b.OK {
			return failOf[B, R](b)
		}
		return Ok(join(a.Value, b.Value), b.Pos)
	}
}

// Seq3 runs pa, pb, pc in order and joins their values.
func Seq3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C], join func(A, B, C) R) Parser[R] {
	return func(input []rune, pos int) Outcome[R] {
		a := pa(input, pos)
		if !a.OK {
			return failOf[A, R](a)
		}
		b := pb(input, a.Pos)
		if !b.OK {
			return failOf[B, R](b)
		}
		c := pc(input, b.Pos)
		if !c.OK {
			return failOf[C, R](c)
		}
		return Ok(join(a.Value, b.Value, c.Value), c.Pos)
	}
}

// Alt tries each parser at the same starting position and returns the
// first success. If all fail, the result is a single failure at the
// starting position whose expectations are the deduplicated union, in
// first-seen order, of every alternative's expectations - the caller
// sees every alternative that could have matched, not just the last one
// tried.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		var all [][]string
		for _, p := range parsers {
			out := p(input, pos)
			if out.OK {
				return out
			}
			all = append(all, out.Expected)
		}
		merged := union(all...)
		if len(merged) == 0 {
			// Zero alternatives: a failure still carries at least one
			// expectation.
			merged = []string{"no alternative"}
		}
		return Outcome[T]{Pos: pos, Expected: merged}
	}
}

// Map transforms a parser's value on success; failure is propagated
// unchanged.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return func(input []rune, pos int) Outcome[B] {
		out := p(input, pos)
		if !out.OK {
			return failOf[A, B](out)
		}
		return Ok(fn(out.Value), out.Pos)
	}
}

// MapCheck is Map with a validation step: if valid rejects the parsed
// value, the result is a failure with expectation "validated value" at
// the original position - rejection means this was not a valid token
// here, not a failure further along. fn is only called on accepted
// values.
func MapCheck[A, B any](p Parser[A], fn func(A) B, valid func(A) bool) Parser[B] {
	return func(input []rune, pos int) Outcome[B] {
		out := p(input, pos)
		if !out.OK {
			return failOf[A, B](out)
		}
		if !valid(out.Value) {
			return Expecting[B](pos, "validated value")
		}
		return Ok(fn(out.Value), out.Pos)
	}
}

// Many applies p repeatedly until it fails and collects the values. It
// always succeeds; zero matches yield an empty slice at the starting
// position. A repetition that succeeds without advancing terminates the
// loop, so a zero-width sub-parser cannot spin forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input []rune, pos int) Outcome[[]T] {
		var values []T
		cur := pos
		for {
			out := p(input, cur)
			if !out.OK || out.Pos == cur {
				return Ok(values, cur)
			}
			values = append(values, out.Value)
			cur = out.Pos
		}
	}
}

// Many1 is Many with at least one required match; the first attempt's
// failure is returned as-is.
func Many1[T any](p Parser[T]) Parser[[]T] {
	rest := Many(p)
	return func(input []rune, pos int) Outcome[[]T] {
		first := p(input, pos)
		if !first.OK {
			return failOf[T, []T](first)
		}
		out := rest(input, first.Pos)
		return Ok(append([]T{first.Value}, out.Value...), out.Pos)
	}
}

// Maybe marks an optional value: Set is false when the value is absent.
type Maybe[T any] struct {
	Set   bool
	Value T
}

// Optional always succeeds, consuming input only if p does; otherwise
// it is zero-width with an unset Maybe. Equivalent to
// Alt(p, Succeed(absent)).
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return Alt(
		Map(p, func(v T) Maybe[T] { return Maybe[T]{Set: true, Value: v} }),
		Succeed(Maybe[T]{}),
	)
}
