package parse

import (
	"reflect"
	"testing"
)

func wantSuccess[T any](t *testing.T, out Outcome[T], value T, pos int) {
	t.Helper()
	if !out.OK {
		t.Fatalf("got failure at %d expecting %v, want success", out.Pos, out.Expected)
	}
	if !reflect.DeepEqual(out.Value, value) {
		t.Errorf("value: got %v, want %v", out.Value, value)
	}
	if out.Pos != pos {
		t.Errorf("pos: got %d, want %d", out.Pos, pos)
	}
}

func wantFailure[T any](t *testing.T, out Outcome[T], pos int, expected ...string) {
	t.Helper()
	if out.OK {
		t.Fatalf("got success %v at %d, want failure", out.Value, out.Pos)
	}
	if out.Pos != pos {
		t.Errorf("failure pos: got %d, want %d", out.Pos, pos)
	}
	if !reflect.DeepEqual(out.Expected, expected) {
		t.Errorf("expected: got %v, want %v", out.Expected, expected)
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		ok    bool
		end   int
	}{
		{"abc", 0, true, 1},
		{"abc", 1, false, 1},
		{"", 0, false, 0},
		{"ba", 1, true, 2},
	}
	p := Char('a')
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := RunAt(p, tt.input, tt.pos)
			if tt.ok {
				wantSuccess(t, out, 'a', tt.end)
			} else {
				wantFailure(t, out, tt.pos, "'a'")
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		want  string
		input string
		pos   int
		ok    bool
		end   int
	}{
		{"http", "https", 0, true, 4},
		{"http", "htt", 0, false, 0},
		{"http", "xhttp", 1, true, 5},
		{"http", "httq", 0, false, 0},
		{"", "anything", 3, true, 3},
		{"", "", 0, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.want+"/"+tt.input, func(t *testing.T) {
			out := RunAt(String(tt.want), tt.input, tt.pos)
			if tt.ok {
				wantSuccess(t, out, tt.want, tt.end)
			} else {
				wantFailure(t, out, tt.pos, "'"+tt.want+"'")
			}
		})
	}
}

func TestAnyChar(t *testing.T) {
	wantSuccess(t, Run(AnyChar(), "x"), 'x', 1)
	wantFailure(t, Run(AnyChar(), ""), 0, "any character")
	wantFailure(t, RunAt(AnyChar(), "x", 1), 1, "any character")
}

func TestWhitespace(t *testing.T) {
	for _, ws := range []string{" ", "\t", "\n", "\r"} {
		out := Run(Whitespace(), ws)
		wantSuccess(t, out, []rune(ws)[0], 1)
	}
	wantFailure(t, Run(Whitespace(), "x"), 0, "whitespace")
	wantFailure(t, Run(Whitespace(), ""), 0, "whitespace")
}

func TestWhitespaces(t *testing.T) {
	tests := []struct {
		input string
		value string
		end   int
	}{
		{"  \t\nx", "  \t\n", 4},
		{"x", "", 0},
		{"", "", 0},
		{" x", " ", 1}, // non-breaking space: generic predicate, not the four-char class
	}
	for _, tt := range tests {
		out := Run(Whitespaces(), tt.input)
		wantSuccess(t, out, tt.value, tt.end)
	}
}

func TestLetterAndDigit(t *testing.T) {
	wantSuccess(t, Run(Letter(), "q"), 'q', 1)
	wantSuccess(t, Run(Letter(), "Z"), 'Z', 1)
	wantFailure(t, Run(Letter(), "1"), 0, "letter")
	wantFailure(t, Run(Letter(), "é"), 0, "letter")
	wantSuccess(t, Run(Digit(), "7"), '7', 1)
	wantFailure(t, Run(Digit(), "x"), 0, "digit")
	wantFailure(t, Run(Digit(), ""), 0, "digit")
}

func TestSucceedIsZeroWidth(t *testing.T) {
	out := RunAt(Succeed(42), "abc", 2)
	wantSuccess(t, out, 42, 2)
}

func TestFail(t *testing.T) {
	out := RunAt(Fail[int]("a reason"), "abc", 1)
	wantFailure(t, out, 1, "a reason")
}
