package parse

import "fmt"

// Between requires left, then p, then right in sequence and yields only
// p's value. Whichever stage fails, that failure propagates.
func Between[L, R, T any](left Parser[L], right Parser[R], p Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		l := left(input, pos)
		if !l.OK {
			return failOf[L, T](l)
		}
		out := p(input, l.Pos)
		if !out.OK {
			return out
		}
		r := right(input, out.Pos)
		if !r.OK {
			return failOf[R, T](r)
		}
		return Ok(out.Value, r.Pos)
	}
}

// After requires prefix then p and yields only p's value.
func After[P, T any](prefix Parser[P], p Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		pre := prefix(input, pos)
		if !pre.OK {
			return failOf[P, T](pre)
		}
		return p(input, pre.Pos)
	}
}

// Until applies p repeatedly, checking stop before each repetition. The
// stop check is zero-width: when stop matches, repetition ends without
// consuming the stop marker. If p fails before stop ever matches, that
// failure is the result. Termination relies on stop eventually matching
// or p eventually failing; an input offering neither loops forever, which
// is the caller's responsibility to rule out.
func Until[S, T any](stop Parser[S], p Parser[T]) Parser[[]T] {
	return func(input []rune, pos int) Outcome[[]T] {
		var values []T
		cur := pos
		for {
			if s := stop(input, cur); s.OK {
				return Ok(values, cur)
			}
			out := p(input, cur)
			if !out.OK {
				return failOf[T, []T](out)
			}
			values = append(values, out.Value)
			cur = out.Pos
		}
	}
}

// Not is zero-width negative lookahead: it succeeds exactly when p
// fails, consuming nothing. When p succeeds, Not fails at the original
// position with an expectation naming what should not have matched.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(input []rune, pos int) Outcome[struct{}] {
		out := p(input, pos)
		if out.OK {
			return Expecting[struct{}](pos, "not "+describe(out.Value))
		}
		return Ok(struct{}{}, pos)
	}
}

// Except checks exclusion first without consuming input: if it matches,
// the result is an immediate failure at the original position and p is
// never invoked. Otherwise p runs normally from the original position.
func Except[X, T any](exclusion Parser[X], p Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		if x := exclusion(input, pos); x.OK {
			return Expecting[T](pos, "not "+describe(x.Value))
		}
		return p(input, pos)
	}
}

// Peek runs p and, on success, yields its value with the position reset
// to the starting position: lookahead without consumption. Failure
// propagates unchanged.
func Peek[T any](p Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		out := p(input, pos)
		if !out.OK {
			return out
		}
		return Ok(out.Value, pos)
	}
}

// EOF runs p and additionally requires it to have consumed the whole
// input; otherwise the result is a failure expecting "end of input" at
// the position p reached.
func EOF[T any](p Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		out := p(input, pos)
		if !out.OK {
			return out
		}
		if out.Pos != len(input) {
			return Expecting[T](out.Pos, "end of input")
		}
		return out
	}
}

// SepBy parses one item, then repeatedly sep followed by item, yielding
// the item values only. At least one item is required, matching Many1's
// semantics for the first element.
func SepBy[S, T any](sep Parser[S], item Parser[T]) Parser[[]T] {
	rest := Many(After(sep, item))
	return func(input []rune, pos int) Outcome[[]T] {
		first := item(input, pos)
		if !first.OK {
			return failOf[T, []T](first)
		}
		out := rest(input, first.Pos)
		return Ok(append([]T{first.Value}, out.Value...), out.Pos)
	}
}

// Token parses p and then consumes and discards a trailing run of
// generic whitespace, yielding p's value with the position after the
// whitespace.
func Token[T any](p Parser[T]) Parser[T] {
	return Seq2(p, Whitespaces(), func(v T, _ string) T { return v })
}

// describe renders a matched value for "not <value>" expectations.
func describe(v any) string {
	switch x := v.(type) {
	case rune:
		return fmt.Sprintf("%q", string(x))
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
