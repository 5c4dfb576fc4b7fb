package parse

import "testing"

func TestInteger(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		value int64
		end   int
	}{
		{"123", true, 123, 3},
		{"-456", true, -456, 4},
		{"+789", true, 789, 4},
		{"0", true, 0, 1},
		{"12ab", true, 12, 2},
		{"abc", false, 0, 0},
		{"", false, 0, 0},
	}
	p := Integer()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := Run(p, tt.input)
			if tt.ok {
				wantSuccess(t, out, tt.value, tt.end)
			} else if out.OK {
				t.Fatalf("got success %d, want failure", out.Value)
			}
		})
	}
}

func TestIntegerRange(t *testing.T) {
	p := Integer()
	wantSuccess(t, Run(p, "9223372036854775807"), int64(9223372036854775807), 19)
	wantSuccess(t, Run(p, "-9223372036854775808"), int64(-9223372036854775808), 20)

	// Out-of-range literals fail instead of clamping to the nearest
	// representable value.
	wantFailure(t, Run(p, "99999999999999999999"), 0, "integer")
	wantFailure(t, Run(p, "9223372036854775808"), 0, "integer")
	wantFailure(t, Run(p, "-9223372036854775809"), 0, "integer")
}

func TestIntegerBareSignFails(t *testing.T) {
	out := Run(Integer(), "-")
	wantFailure(t, out, 1, "digit")
}

func TestIdent(t *testing.T) {
	p := Ident()
	wantSuccess(t, Run(p, "foo1 bar"), "foo1", 4)
	wantSuccess(t, Run(p, "x"), "x", 1)
	wantFailure(t, Run(p, "1x"), 0, "letter")
}
