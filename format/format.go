// Package format renders parse outcomes and expression trees for the
// CLI and the language server.
package format

import (
	"fmt"
	"strings"

	"github.com/synapseradio/combo/calc"
	"github.com/synapseradio/combo/parse"
)

// Encoder writes one parse outcome to its destination.
type Encoder interface {
	Encode(out parse.Outcome[calc.Node]) error
}

// FailureMessage builds the human-readable message for a failed outcome:
// "expected one of {expectations} at position {position}".
func FailureMessage(expected []string, pos int) string {
	if len(expected) == 1 {
		return fmt.Sprintf("expected %s at position %d", expected[0], pos)
	}
	return fmt.Sprintf("expected one of %s at position %d", strings.Join(expected, ", "), pos)
}
