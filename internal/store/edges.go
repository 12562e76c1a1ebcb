package store

import (
	"fmt"
	"log/slog"

	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
)

// ApplyEdge indexes one edge. Both endpoints must already be registered;
// multi-target edges are applied as an ordered sequence of single-target
// applications. Unknown edge labels are skipped so dumps produced by newer
// emitters still load.
func (s *Store) ApplyEdge(e *lsif.Edge) error {
	if _, ok := s.vertices[e.OutV]; !ok {
		return &DanglingReferenceError{EdgeID: e.ID, Missing: e.OutV}
	}
	targets := e.Targets()
	if len(targets) == 0 {
		return fmt.Errorf("edge %s (%s): no target vertex", e.ID, e.Label)
	}
	for _, inV := range targets {
		if _, ok := s.vertices[inV]; !ok {
			return &DanglingReferenceError{EdgeID: e.ID, Missing: inV}
		}
	}

	switch e.Label {
	case lsif.EdgeContains:
		for _, inV := range targets {
			s.contains[e.OutV] = append(s.contains[e.OutV], inV)
			s.parent[inV] = e.OutV
		}
	case lsif.EdgeItem:
		for _, inV := range targets {
			s.items[e.OutV] = append(s.items[e.OutV], s.itemTargetFor(e, inV))
		}
	case lsif.EdgeNext:
		for _, inV := range targets {
			if _, dup := s.next[e.OutV]; dup {
				return &DuplicateEdgeError{EdgeID: e.ID, Label: e.Label, OutV: e.OutV}
			}
			s.next[e.OutV] = inV
			s.prev[inV] = e.OutV
		}
	case lsif.EdgeMoniker:
		for _, inV := range targets {
			if _, dup := s.monikers[e.OutV]; dup {
				return &DuplicateEdgeError{EdgeID: e.ID, Label: e.Label, OutV: e.OutV}
			}
			s.monikers[e.OutV] = inV
			s.anchors[inV] = e.OutV
		}
	default:
		if !e.Label.ResultRequest() {
			slog.Debug("store.edge.skip_unknown", "id", e.ID, "label", e.Label)
			break
		}
		for _, inV := range targets {
			s.results[resultKey{origin: e.OutV, label: e.Label}] = inV
		}
	}
	return nil
}

// itemTargetFor classifies an item edge target by the edge's property.
// Untyped item edges target a range directly.
func (s *Store) itemTargetFor(e *lsif.Edge, inV lsif.ID) itemTarget {
	switch e.Property {
	case lsif.ItemReferenceResults:
		return itemTarget{kind: itemResult, property: e.Property, id: inV}
	case lsif.ItemReferenceLinks:
		return itemTarget{kind: itemLink, property: e.Property, id: inV}
	default:
		// declarations, definitions, references, or no property at all
		return itemTarget{kind: itemRange, property: e.Property, id: inV}
	}
}

// result returns the result vertex id attached directly to origin for the
// given request kind.
func (s *Store) result(origin lsif.ID, label lsif.EdgeLabel) (lsif.ID, bool) {
	id, ok := s.results[resultKey{origin: origin, label: label}]
	return id, ok
}

// containedRanges returns the range vertices directly contained by the given
// container, in registration order.
func (s *Store) containedRanges(container lsif.ID) []*lsif.Range {
	children := s.contains[container]
	out := make([]*lsif.Range, 0, len(children))
	for _, id := range children {
		if r := s.ranges[id]; r != nil {
			out = append(out, r)
		}
	}
	return out
}

// owningDocument walks the containment parent index from a range up to its
// document vertex.
func (s *Store) owningDocument(rangeID lsif.ID) *lsif.Document {
	cur := rangeID
	for hops := 0; hops <= len(s.parent); hops++ {
		p, ok := s.parent[cur]
		if !ok {
			return nil
		}
		if doc, ok := s.documents[p]; ok {
			return doc
		}
		cur = p
	}
	return nil
}
