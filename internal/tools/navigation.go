package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleHover(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	uri, pos, err := s.positionArgs(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	hover, ok := s.store.Hover(uri, pos)
	if !ok {
		return jsonResult(map[string]any{"found": false}), nil
	}
	return jsonResult(map[string]any{
		"found": true,
		"hover": hover,
	}), nil
}

func (s *Server) handleDeclarations(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	uri, pos, err := s.positionArgs(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	locs := s.editorLocations(s.store.Declarations(uri, pos))
	return jsonResult(map[string]any{
		"locations": locs,
		"total":     len(locs),
	}), nil
}

func (s *Server) handleDefinitions(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	uri, pos, err := s.positionArgs(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	locs := s.editorLocations(s.store.Definitions(uri, pos))
	return jsonResult(map[string]any{
		"locations": locs,
		"total":     len(locs),
	}), nil
}

func (s *Server) handleReferences(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	uri, pos, err := s.positionArgs(args)
	if err != nil {
		return errResult(err.Error()), nil
	}
	includeDeclaration := getBoolArg(args, "include_declaration")

	locs := s.editorLocations(s.store.References(uri, pos, includeDeclaration))
	return jsonResult(map[string]any{
		"locations": locs,
		"total":     len(locs),
	}), nil
}
