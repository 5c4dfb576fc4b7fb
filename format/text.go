package format

import (
	"fmt"
	"io"

	"github.com/synapseradio/combo/calc"
	"github.com/synapseradio/combo/parse"
)

// TextEncoder prints the expression tree on success and the failure
// message otherwise.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(out parse.Outcome[calc.Node]) error {
	if !out.OK {
		_, err := fmt.Fprintln(e.w, FailureMessage(out.Expected, out.Pos))
		return err
	}
	_, err := fmt.Fprintln(e.w, out.Value.String())
	return err
}
