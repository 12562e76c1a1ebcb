package lsif

// EdgeLabel names an edge kind.
type EdgeLabel string

const (
	EdgeContains EdgeLabel = "contains"
	EdgeItem     EdgeLabel = "item"
	EdgeNext     EdgeLabel = "next"
	EdgeMoniker  EdgeLabel = "moniker"

	EdgeTextDocumentDeclaration    EdgeLabel = "textDocument/declaration"
	EdgeTextDocumentDefinition     EdgeLabel = "textDocument/definition"
	EdgeTextDocumentTypeDefinition EdgeLabel = "textDocument/typeDefinition"
	EdgeTextDocumentReferences     EdgeLabel = "textDocument/references"
	EdgeTextDocumentHover          EdgeLabel = "textDocument/hover"
	EdgeTextDocumentDocumentSymbol EdgeLabel = "textDocument/documentSymbol"
	EdgeTextDocumentFoldingRange   EdgeLabel = "textDocument/foldingRange"
	EdgeTextDocumentDocumentLink   EdgeLabel = "textDocument/documentLink"
	EdgeTextDocumentDiagnostic     EdgeLabel = "textDocument/diagnostic"
)

// ItemProperty qualifies what an item edge contributes to its result vertex.
type ItemProperty string

const (
	ItemDeclarations     ItemProperty = "declarations"
	ItemDefinitions      ItemProperty = "definitions"
	ItemReferences       ItemProperty = "references"
	ItemReferenceResults ItemProperty = "referenceResults"
	ItemReferenceLinks   ItemProperty = "referenceLinks"
)

// Edge is a directed relationship between two known vertices. Single-target
// edges fill InV; multi-target edges fill InVs and are applied as an ordered
// sequence of single-target applications.
type Edge struct {
	ID       ID           `json:"id"`
	Label    EdgeLabel    `json:"label"`
	OutV     ID           `json:"outV"`
	InV      ID           `json:"inV,omitempty"`
	InVs     []ID         `json:"inVs,omitempty"`
	Property ItemProperty `json:"property,omitempty"`
	Document ID           `json:"document,omitempty"`
}

// Targets returns the edge's in-vertices in application order.
func (e *Edge) Targets() []ID {
	if len(e.InVs) > 0 {
		return e.InVs
	}
	if e.InV != "" {
		return []ID{e.InV}
	}
	return nil
}

// ResultRequest reports whether the label is a textDocument/* request edge
// linking an origin vertex to its precomputed result.
func (l EdgeLabel) ResultRequest() bool {
	switch l {
	case EdgeTextDocumentDeclaration, EdgeTextDocumentDefinition,
		EdgeTextDocumentTypeDefinition, EdgeTextDocumentReferences,
		EdgeTextDocumentHover, EdgeTextDocumentDocumentSymbol,
		EdgeTextDocumentFoldingRange, EdgeTextDocumentDocumentLink,
		EdgeTextDocumentDiagnostic:
		return true
	}
	return false
}
