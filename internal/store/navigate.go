package store

import (
	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
)

// location maps a range vertex to a protocol location via its owning
// document. Ranges whose containment parent is unknown resolve to false.
func (s *Store) location(r *lsif.Range) (lsp.Location, bool) {
	doc := s.owningDocument(r.ID)
	if doc == nil {
		return lsp.Location{}, false
	}
	return lsp.Location{URI: doc.URI, Range: r.Span()}, true
}

// expandPlainItems maps a result vertex's plain-range item edges to
// locations, in item order.
func (s *Store) expandPlainItems(resultID lsif.ID) []lsp.Location {
	out := []lsp.Location{}
	for _, item := range s.items[resultID] {
		if item.kind != itemRange {
			continue
		}
		r := s.rangeByID(item.id)
		if r == nil {
			continue
		}
		if loc, ok := s.location(r); ok {
			out = append(out, loc)
		}
	}
	return out
}

// navigationTargets resolves the request kind attached to the range at
// (uri, pos) and expands its items into locations. Absence at any step is a
// normal empty result.
func (s *Store) navigationTargets(uri string, pos lsp.Position, label lsif.EdgeLabel) []lsp.Location {
	r, ok := s.RangeAtPosition(uri, pos)
	if !ok {
		return []lsp.Location{}
	}
	resultID, _, ok := s.resolveAttached(r.ID, label)
	if !ok {
		return []lsp.Location{}
	}
	return s.expandPlainItems(resultID)
}

// Declarations returns declaration locations for the symbol at pos.
// The result is always a sequence, possibly empty.
func (s *Store) Declarations(uri string, pos lsp.Position) []lsp.Location {
	return s.navigationTargets(uri, pos, lsif.EdgeTextDocumentDeclaration)
}

// Definitions returns definition locations for the symbol at pos.
func (s *Store) Definitions(uri string, pos lsp.Position) []lsp.Location {
	return s.navigationTargets(uri, pos, lsif.EdgeTextDocumentDefinition)
}

// TypeDefinitions returns type-definition locations for the symbol at pos.
func (s *Store) TypeDefinitions(uri string, pos lsp.Position) []lsp.Location {
	return s.navigationTargets(uri, pos, lsif.EdgeTextDocumentTypeDefinition)
}

// Hover returns the hover content for the symbol at pos. The hover's own
// declared range overrides the clicked range when present.
func (s *Store) Hover(uri string, pos lsp.Position) (*lsp.Hover, bool) {
	r, ok := s.RangeAtPosition(uri, pos)
	if !ok {
		return nil, false
	}
	resultID, _, ok := s.resolveAttached(r.ID, lsif.EdgeTextDocumentHover)
	if !ok {
		return nil, false
	}
	hr, ok := s.vertices[resultID].(*lsif.HoverResult)
	if !ok {
		return nil, false
	}
	hover := lsp.Hover{Contents: hr.Result.Contents}
	if hr.Result.Range != nil {
		span := *hr.Result.Range
		hover.Range = &span
	} else {
		span := r.Span()
		hover.Range = &span
	}
	return &hover, true
}
