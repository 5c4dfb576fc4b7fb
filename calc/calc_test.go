package calc

import (
	"strings"
	"testing"
)

func TestParseAndEval(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"-7", -7},
		{"+7", 7},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10-4-3", 3},
		{"100/5/2", 10},
		{"2*(3+4)-5", 9},
		{" 12 \t+\n 30 ", 42},
		{"((((5))))", 5},
		{"12 + # add thirty\n 30", 42},
		{"# leading comment\n1+1", 2},
		{"6/2*3", 9},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := Parse(tt.input)
			if !out.OK {
				t.Fatalf("parse failed at %d expecting %v", out.Pos, out.Expected)
			}
			got, err := out.Value.Eval()
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{"", 0},
		{"+", 0},       // sign without digits; alternation reports at its start
		{"(1+2", 0},    // unclosed paren
		{"1+2)", 3},    // trailing input after a complete expression
		{"a+1", 0},     // not an expression at all
		{"1 + + 2", 2}, // expression ends before the dangling operator
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := Parse(tt.input)
			if out.OK {
				t.Fatalf("got success %v, want failure", out.Value)
			}
			if out.Pos != tt.pos {
				t.Errorf("failure pos: got %d, want %d", out.Pos, tt.pos)
			}
			if len(out.Expected) == 0 {
				t.Error("failure carries no expectations")
			}
		})
	}
}

func TestLeftAssociativeTree(t *testing.T) {
	out := Parse("10-4-3")
	if !out.OK {
		t.Fatalf("parse failed at %d expecting %v", out.Pos, out.Expected)
	}
	if got, want := out.Value.String(), "((10 - 4) - 3)"; got != want {
		t.Errorf("tree: got %s, want %s", got, want)
	}
}

func TestDivisionByZero(t *testing.T) {
	out := Parse("1/0")
	if !out.OK {
		t.Fatalf("parse failed at %d expecting %v", out.Pos, out.Expected)
	}
	if _, err := out.Value.Eval(); err == nil {
		t.Error("want division-by-zero error")
	}
}

func TestDeeplyNested(t *testing.T) {
	input := strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)
	out := Parse(input)
	if !out.OK {
		t.Fatalf("parse failed at %d expecting %v", out.Pos, out.Expected)
	}
	got, err := out.Value.Eval()
	if err != nil || got != 1 {
		t.Errorf("got %d, %v; want 1", got, err)
	}
}
