package store

import (
	"github.com/DeusData/lsif-nav-mcp/internal/lsif"
	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
)

// DocumentSymbols returns the symbol outline of the URI's canonical
// document. Materialized trees are returned as a defensive copy; range-based
// trees are reconstructed from the tags of their referenced ranges.
func (s *Store) DocumentSymbols(uri string) ([]lsp.DocumentSymbol, bool) {
	doc := s.canonicalDocument(uri)
	if doc == nil {
		return nil, false
	}
	resultID, ok := s.result(doc.ID, lsif.EdgeTextDocumentDocumentSymbol)
	if !ok {
		return nil, false
	}
	dsr, ok := s.vertices[resultID].(*lsif.DocumentSymbolResult)
	if !ok {
		return nil, false
	}
	if dsr.Symbols != nil {
		return append([]lsp.DocumentSymbol{}, dsr.Symbols...), true
	}
	return s.convertSymbolNodes(dsr.RangeBased), true
}

// convertSymbolNodes rebuilds symbol trees from range-based nodes. A node
// converts only when its range carries a declaration or definition tag;
// nodes that do not convert are dropped without disturbing their siblings.
func (s *Store) convertSymbolNodes(nodes []lsif.RangeBasedDocumentSymbol) []lsp.DocumentSymbol {
	out := make([]lsp.DocumentSymbol, 0, len(nodes))
	for _, node := range nodes {
		if sym := s.convertSymbolNode(node); sym != nil {
			out = append(out, *sym)
		}
	}
	return out
}

func (s *Store) convertSymbolNode(node lsif.RangeBasedDocumentSymbol) *lsp.DocumentSymbol {
	children := s.convertSymbolNodes(node.Children)
	r := s.rangeByID(node.ID)
	if r == nil || r.Tag == nil {
		return nil
	}
	tag := r.Tag
	if tag.Type != "declaration" && tag.Type != "definition" {
		return nil
	}
	full := r.Span()
	if tag.FullRange != nil {
		full = *tag.FullRange
	}
	sym := &lsp.DocumentSymbol{
		Name:           tag.Text,
		Detail:         tag.Detail,
		Kind:           tag.Kind,
		Deprecated:     tag.Deprecated,
		Range:          full,
		SelectionRange: r.Span(),
	}
	if len(children) > 0 {
		sym.Children = children
	}
	return sym
}

// FoldingRanges returns a defensive copy of the canonical document's folding
// regions.
func (s *Store) FoldingRanges(uri string) ([]lsp.FoldingRange, bool) {
	doc := s.canonicalDocument(uri)
	if doc == nil {
		return nil, false
	}
	resultID, ok := s.result(doc.ID, lsif.EdgeTextDocumentFoldingRange)
	if !ok {
		return nil, false
	}
	frr, ok := s.vertices[resultID].(*lsif.FoldingRangeResult)
	if !ok {
		return nil, false
	}
	return append([]lsp.FoldingRange{}, frr.Result...), true
}
