package store

import (
	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
)

// containsPosition reports whether pos falls inside r. Lines strictly
// between start and end always qualify; on the start line the character must
// be at or past the start, on the end line at or before the end.
func containsPosition(r *lsif.Range, pos lsp.Position) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character > r.End.Character {
		return false
	}
	return true
}

// containsRange reports whether inner's span lies fully inside outer's.
func containsRange(outer, inner *lsif.Range) bool {
	return containsPosition(outer, inner.Start) && containsPosition(outer, inner.End)
}

// RangeAtPosition finds the most specific range in the URI's canonical
// document covering pos. When one candidate nests inside another the nested
// one wins; unrelated candidates resolve to the first encountered.
func (s *Store) RangeAtPosition(uri string, pos lsp.Position) (*lsif.Range, bool) {
	doc := s.canonicalDocument(uri)
	if doc == nil {
		return nil, false
	}
	var best *lsif.Range
	for _, r := range s.containedRanges(doc.ID) {
		if !containsPosition(r, pos) {
			continue
		}
		if best == nil || containsRange(best, r) {
			best = r
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// resolveAttached walks the next chain starting at id (inclusive) until a
// vertex carries a direct result edge of the requested kind. It returns the
// result vertex id and the anchor vertex where the edge was found. The
// visited set bounds the walk even on a cyclic chain.
func (s *Store) resolveAttached(id lsif.ID, label lsif.EdgeLabel) (resultID, anchor lsif.ID, ok bool) {
	seen := make(map[lsif.ID]bool)
	for cur := id; !seen[cur]; {
		seen[cur] = true
		if rid, found := s.result(cur, label); found {
			return rid, cur, true
		}
		nxt, found := s.next[cur]
		if !found {
			break
		}
		cur = nxt
	}
	return "", "", false
}

// findAttachedMoniker walks the previous chain starting at anchor
// (inclusive) until a vertex with a direct moniker edge is found.
func (s *Store) findAttachedMoniker(anchor lsif.ID) *lsif.Moniker {
	seen := make(map[lsif.ID]bool)
	for cur := anchor; !seen[cur]; {
		seen[cur] = true
		if m := s.attachedMoniker(cur); m != nil {
			return m
		}
		prv, found := s.prev[cur]
		if !found {
			break
		}
		cur = prv
	}
	return nil
}
