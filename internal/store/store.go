// Package store holds the frozen in-memory graph built from an LSIF dump and
// answers all navigation queries against it. The ingestion pipeline populates
// the store through the Register/Apply methods in a single pass; once loading
// succeeds the store is never mutated again, so query methods are safe to
// call from any number of goroutines without locking.
package store

import (
	"fmt"

	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
)

// DanglingReferenceError reports an edge endpoint that names an unknown
// vertex id. Any occurrence aborts the load.
type DanglingReferenceError struct {
	EdgeID  lsif.ID
	Missing lsif.ID
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("edge %s references unknown vertex %s", e.EdgeID, e.Missing)
}

// DuplicateEdgeError reports a second next edge or a second moniker attached
// to one vertex. The format allows at most one of each; a duplicate means
// the dump is malformed and the load aborts.
type DuplicateEdgeError struct {
	EdgeID lsif.ID
	Label  lsif.EdgeLabel
	OutV   lsif.ID
}

func (e *DuplicateEdgeError) Error() string {
	return fmt.Sprintf("edge %s: duplicate %s edge from vertex %s", e.EdgeID, e.Label, e.OutV)
}

// resultKey addresses the single result vertex attached to an origin vertex
// for one textDocument request kind.
type resultKey struct {
	origin lsif.ID
	label  lsif.EdgeLabel
}

// itemKind classifies what an item edge contributes during expansion.
type itemKind int

const (
	itemRange itemKind = iota // plain range target (untyped or decl/def/ref property)
	itemResult                // nested reference result
	itemLink                  // moniker contributed via referenceLinks
)

// itemTarget is one applied item edge: a target id plus how to expand it.
type itemTarget struct {
	kind     itemKind
	property lsif.ItemProperty
	id       lsif.ID
}

// documentBucket groups every document vertex registered under one URI.
// The first-registered document is canonical for content and feature lookups.
type documentBucket struct {
	hash string
	docs []lsif.ID
}

// Store is the aggregate owning every index built from the dump. All maps
// are keyed by vertex id except the content and moniker indices, which are
// content-addressed.
type Store struct {
	vertices  map[lsif.ID]lsif.Vertex
	projects  map[lsif.ID]*lsif.Project
	documents map[lsif.ID]*lsif.Document
	ranges    map[lsif.ID]*lsif.Range

	contains map[lsif.ID][]lsif.ID // container -> ordered children
	parent   map[lsif.ID]lsif.ID   // contained -> container
	items    map[lsif.ID][]itemTarget
	next     map[lsif.ID]lsif.ID
	prev     map[lsif.ID]lsif.ID
	monikers map[lsif.ID]lsif.ID // vertex -> attached moniker
	anchors  map[lsif.ID]lsif.ID // moniker -> vertex it is attached to
	results  map[resultKey]lsif.ID

	rootURI string

	contents    map[string]string          // content hash -> text
	docHashes   map[lsif.ID]string         // document id -> its own content hash
	buckets     map[string]*documentBucket // uri -> registered documents
	uriOrder    []string                   // bucket creation order
	monikerSets map[string][]*lsif.Moniker // moniker key -> monikers sharing it
}

// New returns an empty store ready for ingestion.
func New() *Store {
	return &Store{
		vertices:    make(map[lsif.ID]lsif.Vertex),
		projects:    make(map[lsif.ID]*lsif.Project),
		documents:   make(map[lsif.ID]*lsif.Document),
		ranges:      make(map[lsif.ID]*lsif.Range),
		contains:    make(map[lsif.ID][]lsif.ID),
		parent:      make(map[lsif.ID]lsif.ID),
		items:       make(map[lsif.ID][]itemTarget),
		next:        make(map[lsif.ID]lsif.ID),
		prev:        make(map[lsif.ID]lsif.ID),
		monikers:    make(map[lsif.ID]lsif.ID),
		anchors:     make(map[lsif.ID]lsif.ID),
		results:     make(map[resultKey]lsif.ID),
		contents:    make(map[string]string),
		docHashes:   make(map[lsif.ID]string),
		buckets:     make(map[string]*documentBucket),
		monikerSets: make(map[string][]*lsif.Moniker),
	}
}

// RegisterVertex records a vertex in the id registry and in the typed
// sub-collection its label calls for.
func (s *Store) RegisterVertex(v lsif.Vertex) error {
	id := v.VertexID()
	if id == "" {
		return fmt.Errorf("vertex with empty id (label %s)", v.VertexLabel())
	}
	s.vertices[id] = v
	switch vt := v.(type) {
	case *lsif.Document:
		s.registerDocument(vt)
	case *lsif.Moniker:
		s.registerMoniker(vt)
	case *lsif.Range:
		s.ranges[id] = vt
	case *lsif.Project:
		s.projects[id] = vt
	}
	return nil
}

// SetRootURI records the workspace root from the dump's group vertex.
func (s *Store) SetRootURI(uri string) { s.rootURI = uri }

// RootURI returns the workspace root the dump was produced for.
func (s *Store) RootURI() string { return s.rootURI }

// CountVertices returns the number of registered vertices.
func (s *Store) CountVertices() int {
	return len(s.vertices)
}

// CountDocuments returns the number of registered document vertices.
func (s *Store) CountDocuments() int {
	return len(s.documents)
}

// rangeByID returns the range vertex for id, nil when id is not a range.
func (s *Store) rangeByID(id lsif.ID) *lsif.Range {
	return s.ranges[id]
}
