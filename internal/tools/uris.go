package tools

import "strings"

// URIMapper translates between the editor's URI space and the URIs the dump
// was produced with. The zero value passes URIs through untouched.
type URIMapper struct {
	EditorPrefix string
	IndexPrefix  string
}

// ToIndex rewrites an editor-facing URI into the index's URI space.
func (m *URIMapper) ToIndex(uri string) string {
	if m.EditorPrefix == "" || m.IndexPrefix == "" {
		return uri
	}
	if rest, ok := strings.CutPrefix(uri, m.EditorPrefix); ok {
		return m.IndexPrefix + rest
	}
	return uri
}

// ToEditor rewrites an index-native URI into the editor's URI space.
func (m *URIMapper) ToEditor(uri string) string {
	if m.EditorPrefix == "" || m.IndexPrefix == "" {
		return uri
	}
	if rest, ok := strings.CutPrefix(uri, m.IndexPrefix); ok {
		return m.EditorPrefix + rest
	}
	return uri
}
