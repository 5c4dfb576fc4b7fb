package langserver

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/synapseradio/combo/calc"
	"github.com/synapseradio/combo/format"
)

// diagnosticsFor parses text as an expression and reports the failure,
// if any, as a single diagnostic at the failure position.
func diagnosticsFor(text string) []protocol.Diagnostic {
	out := calc.Parse(text)
	if out.OK {
		return nil
	}

	runes := []rune(text)
	start := offsetToPosition(runes, out.Pos)
	end := start
	if out.Pos < len(runes) {
		end = offsetToPosition(runes, out.Pos+1)
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  format.FailureMessage(out.Expected, out.Pos),
	}}
}

// offsetToPosition converts a rune offset into an LSP line/character
// position.
func offsetToPosition(text []rune, offset int) protocol.Position {
	var line, character uint32
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			character = 0
		} else {
			character++
		}
	}
	return protocol.Position{Line: line, Character: character}
}
