package parse

// Bind is dependent sequencing: run p, then use its value to choose the
// next parser, which runs from the advanced position. This is strictly
// more expressive than Seq - the second parser may be derived from the
// first value, e.g. "read a count, then read exactly that many
// repetitions". Either failure short-circuits the chain verbatim.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input []rune, pos int) Outcome[B] {
		out := p(input, pos)
		if !out.OK {
			return failOf[A, B](out)
		}
		return f(out.Value)(input, out.Pos)
	}
}

// AndThen chains p through any number of value-dependent continuation
// steps of the same type. With no steps it behaves exactly as p.
// Heterogeneously typed chains compose via nested Bind calls instead.
func AndThen[T any](p Parser[T], steps ...func(T) Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		out := p(input, pos)
		for _, step := range steps {
			if !out.OK {
				return out
			}
			out = step(out.Value)(input, out.Pos)
		}
		return out
	}
}

// Memoize wraps p with a position-keyed result cache so that repeated
// invocation at the same position returns the recorded Outcome instead
// of recomputing. Each call to Memoize creates an independent cache, so
// two wrappers around structurally identical parsers do not share
// entries. The cache is append-only and never evicted.
//
// This is what makes recursive grammar rules affordable: without it, a
// rule that re-derives the same (parser, position) pair repeats work
// exponentially.
//
// Constraints: a memoized parser must be used against one logical input
// for its lifetime - running it against a different input returns stale
// entries, since keys are positions, not content. It is also not safe
// for concurrent use; callers sharing one across goroutines must add
// their own synchronization.
func Memoize[T any](p Parser[T]) Parser[T] {
	cache := make(map[int]Outcome[T])
	return func(input []rune, pos int) Outcome[T] {
		if out, ok := cache[pos]; ok {
			return out
		}
		out := p(input, pos)
		cache[pos] = out
		return out
	}
}

// Ref dereferences p at invocation time rather than composition time,
// so a grammar rule can refer to a parser variable that is assigned
// later. The pointer must be non-nil and assigned before the first run.
func Ref[T any](p *Parser[T]) Parser[T] {
	return func(input []rune, pos int) Outcome[T] {
		return (*p)(input, pos)
	}
}

// Lazy defers construction of p until first use, breaking the cycle when
// a grammar rule refers to itself (Go evaluates arguments eagerly, so a
// recursive rule cannot mention its own variable directly). build runs
// at most once.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var p Parser[T]
	return func(input []rune, pos int) Outcome[T] {
		if p == nil {
			p = build()
		}
		return p(input, pos)
	}
}
