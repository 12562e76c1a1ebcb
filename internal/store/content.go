package store

import (
	"encoding/hex"
	"log/slog"

	"github.com/zeebo/xxh3"

	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
)

// sentinelContents stands in for document text the dump did not embed, so
// every document still gets a stable content hash.
const sentinelContents = "No content provided."

// hashText returns the hex digest of the given text.
func hashText(text string) string {
	h := xxh3.New()
	h.WriteString(text)
	return hex.EncodeToString(h.Sum(nil))
}

// registerDocument hashes the document's text and files the vertex under its
// URI bucket. Documents sharing a URI should share a hash; divergence is
// logged and the first-registered content stays canonical.
func (s *Store) registerDocument(d *lsif.Document) {
	text := d.Contents
	if text == "" {
		text = sentinelContents
	}
	hash := hashText(text)
	if _, ok := s.contents[hash]; !ok {
		s.contents[hash] = text
	}
	s.docHashes[d.ID] = hash

	bucket, ok := s.buckets[d.URI]
	if !ok {
		bucket = &documentBucket{hash: hash}
		s.buckets[d.URI] = bucket
		s.uriOrder = append(s.uriOrder, d.URI)
	} else if bucket.hash != hash {
		slog.Warn("store.document.hash_mismatch",
			"uri", d.URI, "id", d.ID, "canonical", bucket.hash, "got", hash)
	}
	bucket.docs = append(bucket.docs, d.ID)
	s.documents[d.ID] = d
}

// canonicalDocument returns the first-registered document vertex for a URI.
func (s *Store) canonicalDocument(uri string) *lsif.Document {
	bucket, ok := s.buckets[uri]
	if !ok || len(bucket.docs) == 0 {
		return nil
	}
	return s.documents[bucket.docs[0]]
}

// DocumentHandle identifies an indexed file by its canonical document vertex
// and content hash.
type DocumentHandle struct {
	ID   lsif.ID `json:"id"`
	Hash string  `json:"hash"`
}

// DocumentInfo describes one indexed URI for the host layer.
type DocumentInfo struct {
	URI  string  `json:"uri"`
	ID   lsif.ID `json:"id"`
	Hash string  `json:"hash"`
}

// FindFile resolves a URI to its canonical document handle.
func (s *Store) FindFile(uri string) (DocumentHandle, bool) {
	bucket, ok := s.buckets[uri]
	if !ok || len(bucket.docs) == 0 {
		return DocumentHandle{}, false
	}
	return DocumentHandle{ID: bucket.docs[0], Hash: bucket.hash}, true
}

// FileContent returns the text stored under the handle's content hash.
func (s *Store) FileContent(handle DocumentHandle) (string, bool) {
	text, ok := s.contents[handle.Hash]
	return text, ok
}

// DocumentHash returns the content hash registered for a specific document
// vertex. Documents whose text diverged from their URI's canonical content
// stay reachable through their own hash.
func (s *Store) DocumentHash(id lsif.ID) (string, bool) {
	hash, ok := s.docHashes[id]
	return hash, ok
}

// DocumentInfos lists every indexed URI in registration order, one entry per
// URI using the first-registered document's id.
func (s *Store) DocumentInfos() []DocumentInfo {
	out := make([]DocumentInfo, 0, len(s.uriOrder))
	for _, uri := range s.uriOrder {
		bucket := s.buckets[uri]
		if bucket == nil || len(bucket.docs) == 0 {
			continue
		}
		out = append(out, DocumentInfo{URI: uri, ID: bucket.docs[0], Hash: bucket.hash})
	}
	return out
}
