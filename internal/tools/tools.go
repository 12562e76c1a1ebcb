// Package tools exposes the loaded navigation store over MCP. Every tool is
// a pure read against the frozen store, so handlers run concurrently without
// coordination.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DeusData/lsif-nav-mcp/internal/lsp"
	"github.com/DeusData/lsif-nav-mcp/internal/store"
)

// Server wraps the MCP server with tool handlers bound to one store.
type Server struct {
	mcp   *mcp.Server
	store *store.Store
	uris  *URIMapper
}

// NewServer creates an MCP server with all navigation tools registered.
// A nil mapper passes URIs through untouched.
func NewServer(s *store.Store, uris *URIMapper) *Server {
	if uris == nil {
		uris = &URIMapper{}
	}
	srv := &Server{
		store: s,
		uris:  uris,
		mcp: mcp.NewServer(
			&mcp.Implementation{
				Name:    "lsif-nav-mcp",
				Version: "0.1.0",
			},
			nil,
		),
	}
	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// positionSchema is the shared input schema of every position query.
const positionSchema = `{
	"type": "object",
	"properties": {
		"uri": {
			"type": "string",
			"description": "Document URI (e.g. 'file:///src/main.go')"
		},
		"line": {
			"type": "integer",
			"description": "Zero-based line number"
		},
		"character": {
			"type": "integer",
			"description": "Zero-based character offset"
		}
	},
	"required": ["uri", "line", "character"]
}`

// documentSchema is the shared input schema of every whole-document query.
const documentSchema = `{
	"type": "object",
	"properties": {
		"uri": {
			"type": "string",
			"description": "Document URI (e.g. 'file:///src/main.go')"
		}
	},
	"required": ["uri"]
}`

func (s *Server) registerTools() {
	// 1. hover
	s.mcp.AddTool(&mcp.Tool{
		Name:        "hover",
		Description: "Return the precomputed hover content (signature, docs) for the symbol at a position. Returns the hover markup and the range it applies to, or a not-found note when the position carries no symbol.",
		InputSchema: json.RawMessage(positionSchema),
	}, s.handleHover)

	// 2. declarations
	s.mcp.AddTool(&mcp.Tool{
		Name:        "declarations",
		Description: "List declaration locations for the symbol at a position. Always returns a location array, possibly empty.",
		InputSchema: json.RawMessage(positionSchema),
	}, s.handleDeclarations)

	// 3. definitions
	s.mcp.AddTool(&mcp.Tool{
		Name:        "definitions",
		Description: "List definition locations for the symbol at a position. Always returns a location array, possibly empty.",
		InputSchema: json.RawMessage(positionSchema),
	}, s.handleDefinitions)

	// 4. references
	s.mcp.AddTool(&mcp.Tool{
		Name:        "references",
		Description: "List every reference to the symbol at a position, including references reachable only through cross-project moniker linking. Set include_declaration to also return declaration/definition ranges.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"uri": {
					"type": "string",
					"description": "Document URI (e.g. 'file:///src/main.go')"
				},
				"line": {
					"type": "integer",
					"description": "Zero-based line number"
				},
				"character": {
					"type": "integer",
					"description": "Zero-based character offset"
				},
				"include_declaration": {
					"type": "boolean",
					"description": "Include declaration and definition ranges in the result"
				}
			},
			"required": ["uri", "line", "character"]
		}`),
	}, s.handleReferences)

	// 5. document_symbols
	s.mcp.AddTool(&mcp.Tool{
		Name:        "document_symbols",
		Description: "Return the symbol outline tree of a document: names, kinds, and ranges of its declarations, nested by containment.",
		InputSchema: json.RawMessage(documentSchema),
	}, s.handleDocumentSymbols)

	// 6. folding_ranges
	s.mcp.AddTool(&mcp.Tool{
		Name:        "folding_ranges",
		Description: "Return the foldable regions of a document.",
		InputSchema: json.RawMessage(documentSchema),
	}, s.handleFoldingRanges)

	// 7. list_documents
	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_documents",
		Description: "List every indexed document URI with its canonical document id and content hash.",
		InputSchema: json.RawMessage(`{"type": "object"}`),
	}, s.handleListDocuments)

	// 8. file_content
	s.mcp.AddTool(&mcp.Tool{
		Name:        "file_content",
		Description: "Return the indexed text of a document as captured at indexing time. This is the dump's embedded content, not the file on disk.",
		InputSchema: json.RawMessage(documentSchema),
	}, s.handleFileContent)
}

// positionArgs extracts and translates the (uri, position) pair common to
// the navigation tools.
func (s *Server) positionArgs(args map[string]any) (string, lsp.Position, error) {
	uri := getStringArg(args, "uri")
	if uri == "" {
		return "", lsp.Position{}, fmt.Errorf("missing required 'uri' parameter")
	}
	pos := lsp.Position{
		Line:      getIntArg(args, "line", -1),
		Character: getIntArg(args, "character", -1),
	}
	if pos.Line < 0 || pos.Character < 0 {
		return "", lsp.Position{}, fmt.Errorf("missing or negative 'line'/'character' parameter")
	}
	return s.uris.ToIndex(uri), pos, nil
}

// editorLocations translates query results back into the editor's URI space.
func (s *Server) editorLocations(locs []lsp.Location) []lsp.Location {
	out := make([]lsp.Location, len(locs))
	for i, loc := range locs {
		loc.URI = s.uris.ToEditor(loc.URI)
		out[i] = loc
	}
	return out
}

func jsonResult(data any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errResult("json marshal err=" + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

func parseArgs(req *mcp.CallToolRequest) (map[string]any, error) {
	if len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &m); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return m, nil
}

func getStringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

func getIntArg(args map[string]any, key string, defaultVal int) int {
	v, ok := args[key]
	if !ok {
		return defaultVal
	}
	f, ok := v.(float64) // JSON numbers decode as float64
	if !ok {
		return defaultVal
	}
	return int(f)
}

func getBoolArg(args map[string]any, key string) bool {
	v, ok := args[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		return false
	}
	return b
}
