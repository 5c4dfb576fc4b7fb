package format

import (
	"encoding/json"
	"io"

	"github.com/synapseradio/combo/calc"
	"github.com/synapseradio/combo/parse"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(out parse.Outcome[calc.Node]) error {
	text, err := e.MarshalText(out)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(out parse.Outcome[calc.Node]) ([]byte, error) {
	return json.MarshalIndent(outcomeToJSON(out), "", "  ")
}

type jsonOutcome struct {
	OK       bool      `json:"ok"`
	Pos      int       `json:"pos"`
	Node     *jsonNode `json:"node,omitempty"`
	Expected []string  `json:"expected,omitempty"`
	Message  string    `json:"message,omitempty"`
}

type jsonNode struct {
	Kind  string    `json:"kind"`
	Value *int64    `json:"value,omitempty"`
	Op    string    `json:"op,omitempty"`
	Left  *jsonNode `json:"left,omitempty"`
	Right *jsonNode `json:"right,omitempty"`
}

func outcomeToJSON(out parse.Outcome[calc.Node]) *jsonOutcome {
	jo := &jsonOutcome{
		OK:  out.OK,
		Pos: out.Pos,
	}
	if out.OK {
		jo.Node = nodeToJSON(out.Value)
	} else {
		jo.Expected = out.Expected
		jo.Message = FailureMessage(out.Expected, out.Pos)
	}
	return jo
}

func nodeToJSON(n calc.Node) *jsonNode {
	switch node := n.(type) {
	case *calc.Literal:
		v := node.Value
		return &jsonNode{Kind: "literal", Value: &v}
	case *calc.Binary:
		return &jsonNode{
			Kind:  "binary",
			Op:    string(node.Op),
			Left:  nodeToJSON(node.Left),
			Right: nodeToJSON(node.Right),
		}
	default:
		return &jsonNode{Kind: "unknown"}
	}
}
