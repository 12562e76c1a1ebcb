package store

import (
	"encoding/hex"

	"github.com/zeebo/xxh3"

	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
)

// MonikerKey digests the canonical encoding of (scheme, identifier). The
// NUL separator keeps ("a","bc") and ("ab","c") from colliding.
func MonikerKey(scheme, identifier string) string {
	h := xxh3.New()
	h.WriteString(scheme)
	h.WriteString("\x00")
	h.WriteString(identifier)
	return hex.EncodeToString(h.Sum(nil))
}

// registerMoniker indexes a non-local moniker under its derived key. Local
// monikers never participate in cross-file linking and are not indexed.
func (s *Store) registerMoniker(m *lsif.Moniker) {
	if m.Local() {
		return
	}
	m.Key = MonikerKey(m.Scheme, m.Identifier)
	s.monikerSets[m.Key] = append(s.monikerSets[m.Key], m)
}

// monikersByKey returns every indexed moniker sharing the given key.
func (s *Store) monikersByKey(key string) []*lsif.Moniker {
	return s.monikerSets[key]
}

// attachedMoniker returns the moniker vertex attached to id, if any.
func (s *Store) attachedMoniker(id lsif.ID) *lsif.Moniker {
	mid, ok := s.monikers[id]
	if !ok {
		return nil
	}
	m, _ := s.vertices[mid].(*lsif.Moniker)
	return m
}

// monikerAnchor returns the vertex a moniker is attached to.
func (s *Store) monikerAnchor(monikerID lsif.ID) (lsif.ID, bool) {
	id, ok := s.anchors[monikerID]
	return id, ok
}
