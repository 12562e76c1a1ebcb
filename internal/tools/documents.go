package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) documentURI(req *mcp.CallToolRequest) (string, error) {
	args, err := parseArgs(req)
	if err != nil {
		return "", err
	}
	uri := getStringArg(args, "uri")
	if uri == "" {
		return "", fmt.Errorf("missing required 'uri' parameter")
	}
	return s.uris.ToIndex(uri), nil
}

func (s *Server) handleDocumentSymbols(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uri, err := s.documentURI(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	symbols, ok := s.store.DocumentSymbols(uri)
	if !ok {
		return jsonResult(map[string]any{"found": false}), nil
	}
	return jsonResult(map[string]any{
		"found":   true,
		"symbols": symbols,
		"total":   len(symbols),
	}), nil
}

func (s *Server) handleFoldingRanges(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uri, err := s.documentURI(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	ranges, ok := s.store.FoldingRanges(uri)
	if !ok {
		return jsonResult(map[string]any{"found": false}), nil
	}
	return jsonResult(map[string]any{
		"found":  true,
		"ranges": ranges,
		"total":  len(ranges),
	}), nil
}

func (s *Server) handleListDocuments(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := s.store.DocumentInfos()
	for i := range infos {
		infos[i].URI = s.uris.ToEditor(infos[i].URI)
	}
	return jsonResult(map[string]any{
		"documents": infos,
		"total":     len(infos),
	}), nil
}

func (s *Server) handleFileContent(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uri, err := s.documentURI(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	handle, ok := s.store.FindFile(uri)
	if !ok {
		return errResult(fmt.Sprintf("uri not indexed: %s", uri)), nil
	}
	text, ok := s.store.FileContent(handle)
	if !ok {
		return errResult(fmt.Sprintf("no content for hash %s", handle.Hash)), nil
	}
	return jsonResult(map[string]any{
		"id":      handle.ID,
		"hash":    handle.Hash,
		"content": text,
	}), nil
}
