package lsif

import (
	"encoding/json"
	"fmt"

	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
)

// Record is one decoded dump line: either a vertex or an edge, never both.
type Record struct {
	Type   ElementType
	Vertex Vertex
	Edge   *Edge
}

// ParseLine decodes a single dump line. It fails on invalid JSON, a missing
// or unknown type discriminator, or a label-specific payload that does not
// decode. Vertex labels outside the known set decode to UnknownVertex so
// edges referencing them still validate.
func ParseLine(data []byte) (*Record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	switch env.Type {
	case ElementVertex:
		v, err := decodeVertex(env, data)
		if err != nil {
			return nil, err
		}
		return &Record{Type: ElementVertex, Vertex: v}, nil
	case ElementEdge:
		var e Edge
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("edge %s: %w", env.ID, err)
		}
		return &Record{Type: ElementEdge, Edge: &e}, nil
	case "":
		return nil, fmt.Errorf("record %s: missing type discriminator", env.ID)
	default:
		return nil, fmt.Errorf("record %s: unknown type %q", env.ID, env.Type)
	}
}

func decodeVertex(env envelope, data []byte) (Vertex, error) {
	var v Vertex
	switch VertexLabel(env.Label) {
	case VertexMetaData:
		v = &MetaData{}
	case VertexGroup:
		v = &Group{}
	case VertexProject:
		v = &Project{}
	case VertexDocument:
		v = &Document{}
	case VertexRange:
		v = &Range{}
	case VertexResultSet:
		v = &ResultSet{}
	case VertexMoniker:
		v = &Moniker{}
	case VertexEvent:
		v = &Event{}
	case VertexDeclarationResult:
		v = &DeclarationResult{}
	case VertexDefinitionResult:
		v = &DefinitionResult{}
	case VertexTypeDefinitionResult:
		v = &TypeDefinitionResult{}
	case VertexReferenceResult:
		v = &ReferenceResult{}
	case VertexHoverResult:
		v = &HoverResult{}
	case VertexFoldingRangeResult:
		v = &FoldingRangeResult{}
	case VertexDocumentLinkResult:
		v = &DocumentLinkResult{}
	case VertexDiagnosticResult:
		v = &DiagnosticResult{}
	case VertexDocumentSymbolResult:
		return decodeDocumentSymbolResult(env, data)
	case "":
		return nil, fmt.Errorf("vertex %s: missing label", env.ID)
	default:
		return &UnknownVertex{ID: env.ID, Label: VertexLabel(env.Label)}, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("vertex %s (%s): %w", env.ID, env.Label, err)
	}
	return v, nil
}

// decodeDocumentSymbolResult handles the two result encodings: fully
// materialized DocumentSymbol trees (elements carry "name") and range-based
// trees (elements carry only range ids and children).
func decodeDocumentSymbolResult(env envelope, data []byte) (Vertex, error) {
	var raw struct {
		Result []json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("vertex %s (documentSymbolResult): %w", env.ID, err)
	}
	out := &DocumentSymbolResult{ID: env.ID}
	if len(raw.Result) == 0 {
		return out, nil
	}
	var probe struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(raw.Result[0], &probe); err != nil {
		return nil, fmt.Errorf("vertex %s (documentSymbolResult): %w", env.ID, err)
	}
	if probe.Name != nil {
		out.Symbols = make([]lsp.DocumentSymbol, 0, len(raw.Result))
		for _, item := range raw.Result {
			var sym lsp.DocumentSymbol
			if err := json.Unmarshal(item, &sym); err != nil {
				return nil, fmt.Errorf("vertex %s (documentSymbolResult): %w", env.ID, err)
			}
			out.Symbols = append(out.Symbols, sym)
		}
		return out, nil
	}
	out.RangeBased = make([]RangeBasedDocumentSymbol, 0, len(raw.Result))
	for _, item := range raw.Result {
		var node RangeBasedDocumentSymbol
		if err := json.Unmarshal(item, &node); err != nil {
			return nil, fmt.Errorf("vertex %s (documentSymbolResult): %w", env.ID, err)
		}
		out.RangeBased = append(out.RangeBased, node)
	}
	return out, nil
}
