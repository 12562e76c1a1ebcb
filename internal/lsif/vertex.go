package lsif

import (
	"encoding/json"

	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
)

// VertexLabel names a vertex kind.
type VertexLabel string

const (
	VertexMetaData             VertexLabel = "metaData"
	VertexGroup                VertexLabel = "group"
	VertexProject              VertexLabel = "project"
	VertexDocument             VertexLabel = "document"
	VertexRange                VertexLabel = "range"
	VertexResultSet            VertexLabel = "resultSet"
	VertexMoniker              VertexLabel = "moniker"
	VertexEvent                VertexLabel = "$event"
	VertexDeclarationResult    VertexLabel = "declarationResult"
	VertexDefinitionResult     VertexLabel = "definitionResult"
	VertexTypeDefinitionResult VertexLabel = "typeDefinitionResult"
	VertexReferenceResult      VertexLabel = "referenceResult"
	VertexHoverResult          VertexLabel = "hoverResult"
	VertexDocumentSymbolResult VertexLabel = "documentSymbolResult"
	VertexFoldingRangeResult   VertexLabel = "foldingRangeResult"
	VertexDocumentLinkResult   VertexLabel = "documentLinkResult"
	VertexDiagnosticResult     VertexLabel = "diagnosticResult"
)

// Vertex is the closed set of vertex kinds. Concrete types carry only the
// fields their label defines; everything is immutable after decode.
type Vertex interface {
	VertexID() ID
	VertexLabel() VertexLabel
}

// MetaData carries the dump's format version. Required exactly once.
type MetaData struct {
	ID      ID     `json:"id"`
	Version string `json:"version"`
}

// Group is the workspace grouping vertex carrying the root URI.
type Group struct {
	ID      ID     `json:"id"`
	RootURI string `json:"rootUri"`
	Name    string `json:"name,omitempty"`
}

// Project groups the documents of one build unit.
type Project struct {
	ID       ID     `json:"id"`
	Name     string `json:"name,omitempty"`
	Resource string `json:"resource,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

// Document is an indexed file. Contents may be embedded in the dump; when it
// is not, the store substitutes sentinel text before hashing.
type Document struct {
	ID         ID     `json:"id"`
	URI        string `json:"uri"`
	LanguageID string `json:"languageId,omitempty"`
	Contents   string `json:"contents,omitempty"`
}

// RangeTag carries symbol metadata attached to a range vertex. Only
// declaration and definition tags can seed document-symbol nodes.
type RangeTag struct {
	Type       string         `json:"type"` // declaration | definition | reference | unknown
	Text       string         `json:"text"`
	Kind       lsp.SymbolKind `json:"kind,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	Deprecated bool           `json:"deprecated,omitempty"`
	FullRange  *lsp.Range     `json:"fullRange,omitempty"`
}

// Range is a position span inside a document, addressable by queries.
type Range struct {
	ID    ID           `json:"id"`
	Start lsp.Position `json:"start"`
	End   lsp.Position `json:"end"`
	Tag   *RangeTag    `json:"tag,omitempty"`
}

// Span returns the range as a protocol range value.
func (r *Range) Span() lsp.Range {
	return lsp.Range{Start: r.Start, End: r.End}
}

// ResultSet is an anonymous vertex that ranges chain to via next edges so
// several ranges can share one set of precomputed results.
type ResultSet struct {
	ID ID `json:"id"`
}

// MonikerKind distinguishes local symbols from ones visible across files.
type MonikerKind string

const (
	MonikerLocal    MonikerKind = "local"
	MonikerExported MonikerKind = "export"
	MonikerImported MonikerKind = "import"
)

// Moniker is a scheme-qualified portable symbol identifier. Key is derived
// during ingestion from (scheme, identifier) and is empty for local monikers.
type Moniker struct {
	ID         ID          `json:"id"`
	Scheme     string      `json:"scheme"`
	Identifier string      `json:"identifier"`
	Kind       MonikerKind `json:"kind,omitempty"`
	Key        string      `json:"-"`
}

// Local reports whether the moniker is scoped to a single file and therefore
// excluded from cross-project linking.
func (m *Moniker) Local() bool {
	return m.Kind == MonikerLocal
}

// Event marks the begin/end of a group, project, or document scope.
type Event struct {
	ID    ID     `json:"id"`
	Scope string `json:"scope"`
	Kind  string `json:"kind"` // begin | end
	Data  ID     `json:"data"`
}

// DeclarationResult anchors declaration item edges.
type DeclarationResult struct {
	ID ID `json:"id"`
}

// DefinitionResult anchors definition item edges.
type DefinitionResult struct {
	ID ID `json:"id"`
}

// TypeDefinitionResult anchors type-definition item edges.
type TypeDefinitionResult struct {
	ID ID `json:"id"`
}

// ReferenceResult anchors reference item edges; it may nest further
// reference results and moniker links.
type ReferenceResult struct {
	ID ID `json:"id"`
}

// HoverResult holds a precomputed hover payload.
type HoverResult struct {
	ID     ID        `json:"id"`
	Result lsp.Hover `json:"result"`
}

// RangeBasedDocumentSymbol is the compact symbol-tree form: each node points
// at a range vertex whose tag supplies name, detail, and kind.
type RangeBasedDocumentSymbol struct {
	ID       ID                         `json:"id"`
	Children []RangeBasedDocumentSymbol `json:"children,omitempty"`
}

// DocumentSymbolResult holds a document's symbol outline in exactly one of
// two forms: fully materialized symbols or range-based references.
type DocumentSymbolResult struct {
	ID         ID
	Symbols    []lsp.DocumentSymbol
	RangeBased []RangeBasedDocumentSymbol
}

// FoldingRangeResult holds a document's precomputed folding regions.
type FoldingRangeResult struct {
	ID     ID                 `json:"id"`
	Result []lsp.FoldingRange `json:"result"`
}

// DocumentLinkResult holds document links, passed through untouched.
type DocumentLinkResult struct {
	ID     ID              `json:"id"`
	Result json.RawMessage `json:"result"`
}

// DiagnosticResult holds diagnostics, passed through untouched.
type DiagnosticResult struct {
	ID     ID              `json:"id"`
	Result json.RawMessage `json:"result"`
}

// UnknownVertex registers an id for a label this store has no use for
// (packageInformation, source, ...). Edges may still reference it.
type UnknownVertex struct {
	ID    ID
	Label VertexLabel
}

func (v *MetaData) VertexID() ID             { return v.ID }
func (v *Group) VertexID() ID                { return v.ID }
func (v *Project) VertexID() ID              { return v.ID }
func (v *Document) VertexID() ID             { return v.ID }
func (v *Range) VertexID() ID                { return v.ID }
func (v *ResultSet) VertexID() ID            { return v.ID }
func (v *Moniker) VertexID() ID              { return v.ID }
func (v *Event) VertexID() ID                { return v.ID }
func (v *DeclarationResult) VertexID() ID    { return v.ID }
func (v *DefinitionResult) VertexID() ID     { return v.ID }
func (v *TypeDefinitionResult) VertexID() ID { return v.ID }
func (v *ReferenceResult) VertexID() ID      { return v.ID }
func (v *HoverResult) VertexID() ID          { return v.ID }
func (v *DocumentSymbolResult) VertexID() ID { return v.ID }
func (v *FoldingRangeResult) VertexID() ID   { return v.ID }
func (v *DocumentLinkResult) VertexID() ID   { return v.ID }
func (v *DiagnosticResult) VertexID() ID     { return v.ID }
func (v *UnknownVertex) VertexID() ID        { return v.ID }

func (v *MetaData) VertexLabel() VertexLabel             { return VertexMetaData }
func (v *Group) VertexLabel() VertexLabel                { return VertexGroup }
func (v *Project) VertexLabel() VertexLabel              { return VertexProject }
func (v *Document) VertexLabel() VertexLabel             { return VertexDocument }
func (v *Range) VertexLabel() VertexLabel                { return VertexRange }
func (v *ResultSet) VertexLabel() VertexLabel            { return VertexResultSet }
func (v *Moniker) VertexLabel() VertexLabel              { return VertexMoniker }
func (v *Event) VertexLabel() VertexLabel                { return VertexEvent }
func (v *DeclarationResult) VertexLabel() VertexLabel    { return VertexDeclarationResult }
func (v *DefinitionResult) VertexLabel() VertexLabel     { return VertexDefinitionResult }
func (v *TypeDefinitionResult) VertexLabel() VertexLabel { return VertexTypeDefinitionResult }
func (v *ReferenceResult) VertexLabel() VertexLabel      { return VertexReferenceResult }
func (v *HoverResult) VertexLabel() VertexLabel          { return VertexHoverResult }
func (v *DocumentSymbolResult) VertexLabel() VertexLabel { return VertexDocumentSymbolResult }
func (v *FoldingRangeResult) VertexLabel() VertexLabel   { return VertexFoldingRangeResult }
func (v *DocumentLinkResult) VertexLabel() VertexLabel   { return VertexDocumentLinkResult }
func (v *DiagnosticResult) VertexLabel() VertexLabel     { return VertexDiagnosticResult }
func (v *UnknownVertex) VertexLabel() VertexLabel        { return v.Label }
