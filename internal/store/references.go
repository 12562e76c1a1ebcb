package store

import (
	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
)

// refWalk carries the state threaded through a single References call:
// accumulated locations, per-range and per-result dedup sets, and the
// moniker worklist driving cross-project closure.
type refWalk struct {
	includeDeclaration bool
	locations          []lsp.Location
	seenRanges         map[lsif.ID]bool
	seenResults        map[lsif.ID]bool
	seenMonikers       map[string]bool
	pending            []*lsif.Moniker
}

// References returns every reference location for the symbol at pos, closed
// over cross-project moniker equivalence and deduplicated by range id.
// Declaration and definition ranges are included only when asked for.
func (s *Store) References(uri string, pos lsp.Position, includeDeclaration bool) []lsp.Location {
	w := &refWalk{
		includeDeclaration: includeDeclaration,
		locations:          []lsp.Location{},
		seenRanges:         make(map[lsif.ID]bool),
		seenResults:        make(map[lsif.ID]bool),
		seenMonikers:       make(map[string]bool),
	}

	r, ok := s.RangeAtPosition(uri, pos)
	if !ok {
		return w.locations
	}
	resultID, anchor, ok := s.resolveAttached(r.ID, lsif.EdgeTextDocumentReferences)
	if !ok {
		return w.locations
	}
	s.expandReferenceResult(w, resultID)
	if m := s.findAttachedMoniker(anchor); m != nil {
		w.pending = append(w.pending, m)
	}
	s.drainMonikers(w)
	return w.locations
}

// expandReferenceResult walks a reference result's item edges. Ranges are
// contributed directly, nested reference results recurse, and reference
// links queue their moniker for closure processing. The seenResults set
// guards against cyclic result graphs.
func (s *Store) expandReferenceResult(w *refWalk, resultID lsif.ID) {
	if w.seenResults[resultID] {
		return
	}
	w.seenResults[resultID] = true
	for _, item := range s.items[resultID] {
		switch item.kind {
		case itemRange:
			if !w.includeDeclaration &&
				(item.property == lsif.ItemDeclarations || item.property == lsif.ItemDefinitions) {
				continue
			}
			s.contributeRange(w, item.id)
		case itemResult:
			s.expandReferenceResult(w, item.id)
		case itemLink:
			if m, ok := s.vertices[item.id].(*lsif.Moniker); ok && !m.Local() {
				w.pending = append(w.pending, m)
			}
		}
	}
}

// contributeRange appends the range's location unless the range was already
// reached along another expansion path.
func (s *Store) contributeRange(w *refWalk, rangeID lsif.ID) {
	if w.seenRanges[rangeID] {
		return
	}
	r := s.rangeByID(rangeID)
	if r == nil {
		return
	}
	w.seenRanges[rangeID] = true
	if loc, ok := s.location(r); ok {
		w.locations = append(w.locations, loc)
	}
}

// drainMonikers processes the pending-moniker list to closure. Each
// unprocessed key pulls in every moniker sharing it; each such moniker's
// anchor vertex resolves its own reference result, whose expansion may
// discover further monikers.
func (s *Store) drainMonikers(w *refWalk) {
	for len(w.pending) > 0 {
		m := w.pending[0]
		w.pending = w.pending[1:]
		if m.Key == "" || w.seenMonikers[m.Key] {
			continue
		}
		w.seenMonikers[m.Key] = true
		for _, sibling := range s.monikersByKey(m.Key) {
			anchor, ok := s.monikerAnchor(sibling.ID)
			if !ok {
				continue
			}
			resultID, resultAnchor, ok := s.resolveAttached(anchor, lsif.EdgeTextDocumentReferences)
			if !ok {
				continue
			}
			s.expandReferenceResult(w, resultID)
			if other := s.findAttachedMoniker(resultAnchor); other != nil {
				w.pending = append(w.pending, other)
			}
		}
	}
}
