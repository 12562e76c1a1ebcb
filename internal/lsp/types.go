// Package lsp holds the protocol-shaped types returned by navigation queries.
// Field names and JSON tags follow the Language Server Protocol so results can
// be handed to any LSP-speaking consumer without translation.
package lsp

import "encoding/json"

// Position is a zero-based line/character position in a document.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a span between two positions, end inclusive on its line.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Location is a range within a named document.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// Hover is the content shown for a hover request. Contents is kept as raw
// JSON: the index may embed a string, MarkupContent, or MarkedString array,
// and the store passes it through untouched.
type Hover struct {
	Contents json.RawMessage `json:"contents"`
	Range    *Range          `json:"range,omitempty"`
}

// SymbolKind is the LSP symbol kind numbering (1=File .. 26=TypeParameter).
type SymbolKind int

// DocumentSymbol is a node in a document's symbol outline tree.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail,omitempty"`
	Kind           SymbolKind       `json:"kind"`
	Deprecated     bool             `json:"deprecated,omitempty"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// FoldingRange describes a foldable region.
type FoldingRange struct {
	StartLine      int    `json:"startLine"`
	StartCharacter *int   `json:"startCharacter,omitempty"`
	EndLine        int    `json:"endLine"`
	EndCharacter   *int   `json:"endCharacter,omitempty"`
	Kind           string `json:"kind,omitempty"`
}
