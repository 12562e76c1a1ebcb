package store

import (
	"testing"

	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
)

// nestedRangeStore builds one document holding range R1 (lines 0-10) with
// range R2 (lines 2-4) nested inside it.
func nestedRangeStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	mustVertex(t, s, &lsif.Document{ID: "doc", URI: "file:///src/nest.go", Contents: "x"})
	mustVertex(t, s, &lsif.Range{ID: "R1", Start: pos(0, 0), End: pos(10, 0)})
	mustVertex(t, s, &lsif.Range{ID: "R2", Start: pos(2, 0), End: pos(4, 10)})
	mustEdge(t, s, &lsif.Edge{ID: "e1", Label: lsif.EdgeContains, OutV: "doc", InVs: []lsif.ID{"R1", "R2"}})
	return s
}

func TestRangeAtPositionPrefersNested(t *testing.T) {
	s := nestedRangeStore(t)

	r, ok := s.RangeAtPosition("file:///src/nest.go", pos(3, 0))
	if !ok {
		t.Fatal("expected a range at (3,0)")
	}
	if r.ID != "R2" {
		t.Errorf("most specific range should win: got %s, want R2", r.ID)
	}

	r, ok = s.RangeAtPosition("file:///src/nest.go", pos(8, 0))
	if !ok || r.ID != "R1" {
		t.Errorf("position outside R2 should resolve to R1, got %+v", r)
	}
}

func TestRangeAtPositionBoundaries(t *testing.T) {
	s := New()
	mustVertex(t, s, &lsif.Document{ID: "doc", URI: "file:///src/b.go", Contents: "x"})
	mustVertex(t, s, &lsif.Range{ID: "r", Start: pos(2, 4), End: pos(4, 6)})
	mustEdge(t, s, &lsif.Edge{ID: "e1", Label: lsif.EdgeContains, OutV: "doc", InVs: []lsif.ID{"r"}})

	tests := []struct {
		name       string
		line, char int
		want       bool
	}{
		{"before start char on start line", 2, 3, false},
		{"at start", 2, 4, true},
		{"after start char on start line", 2, 99, true},
		{"line strictly inside", 3, 0, true},
		{"at end", 4, 6, true},
		{"past end char on end line", 4, 7, false},
		{"line before", 1, 0, false},
		{"line after", 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := s.RangeAtPosition("file:///src/b.go", pos(tt.line, tt.char))
			if ok != tt.want {
				t.Errorf("(%d,%d): got %v, want %v", tt.line, tt.char, ok, tt.want)
			}
		})
	}
}

func TestRangeAtPositionUnknownURI(t *testing.T) {
	s := New()
	if _, ok := s.RangeAtPosition("file:///nowhere.go", pos(0, 0)); ok {
		t.Error("unknown URI should resolve to no range")
	}
}

func TestResolveAttachedWalksNextChain(t *testing.T) {
	s := twoProjectStore(t)

	// rA2 has no direct references edge; rsA (one next hop away) does.
	resultID, anchor, ok := s.resolveAttached("rA2", lsif.EdgeTextDocumentReferences)
	if !ok {
		t.Fatal("expected to resolve a reference result")
	}
	if resultID != "refA" || anchor != "rsA" {
		t.Errorf("got result=%s anchor=%s, want refA/rsA", resultID, anchor)
	}
}

func TestResolveAttachedChainEnds(t *testing.T) {
	s := twoProjectStore(t)

	if _, _, ok := s.resolveAttached("rA2", lsif.EdgeTextDocumentDocumentSymbol); ok {
		t.Error("chain without the requested result kind should resolve to not-found")
	}
}

func TestResolveAttachedCyclicChain(t *testing.T) {
	s := New()
	mustVertex(t, s, &lsif.ResultSet{ID: "a"})
	mustVertex(t, s, &lsif.ResultSet{ID: "b"})
	mustEdge(t, s, &lsif.Edge{ID: "e1", Label: lsif.EdgeNext, OutV: "a", InV: "b"})
	mustEdge(t, s, &lsif.Edge{ID: "e2", Label: lsif.EdgeNext, OutV: "b", InV: "a"})

	// must terminate despite the cycle
	if _, _, ok := s.resolveAttached("a", lsif.EdgeTextDocumentHover); ok {
		t.Error("cyclic chain without results should resolve to not-found")
	}
}

func TestFindAttachedMoniker(t *testing.T) {
	s := twoProjectStore(t)

	m := s.findAttachedMoniker("rsA")
	if m == nil || m.ID != "mA" {
		t.Fatalf("expected mA attached at rsA, got %+v", m)
	}

	if m := s.findAttachedMoniker("rA2"); m != nil {
		t.Errorf("rA2 itself carries no moniker and has no previous, got %+v", m)
	}
}
