// ABOUTME: MCP tools for searching, creating, and reading memos.
// ABOUTME: Each handler issues exactly one gRPC call against the Memos server.

package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	v1pb "github.com/usememos/memos/proto/gen/api/v1"

	"github.com/rumman157/memos-mcp/internal/memos"
)

func (s *Server) registerTools() {
	// search_memo
	s.server.AddTool(&mcp.Tool{
		Name:        "search_memo",
		Description: "Search for memos by content key words",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"key_word": {"type": "string", "description": "The key words to search for in the memo content"}
			},
			"required": ["key_word"]
		}`),
	}, s.handleSearchMemo)

	// create_memo
	s.server.AddTool(&mcp.Tool{
		Name:        "create_memo",
		Description: "Create a new memo",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"content": {"type": "string", "description": "The content of the memo"},
				"visibility": {"type": "string", "enum": ["PUBLIC", "PROTECTED", "PRIVATE"], "description": "The visibility of the memo", "default": "PUBLIC"}
			},
			"required": ["content"]
		}`),
	}, s.handleCreateMemo)

	// get_memo
	s.server.AddTool(&mcp.Tool{
		Name:        "get_memo",
		Description: "Get a memo by its resource name",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "The name of the memo. Format: memos/{id}"}
			},
			"required": ["name"]
		}`),
	}, s.handleGetMemo)

	// list_memo_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "list_memo_tags",
		Description: "List all existing memo tags",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"parent": {"type": "string", "description": "The parent, who owns the tags. Format: memos/{id}. Use \"memos/-\" to list all tags.", "default": "memos/-"},
				"visibility": {"type": "string", "enum": ["PUBLIC", "PROTECTED", "PRIVATE"], "description": "The visibility of the tags", "default": "PRIVATE"}
			}
		}`),
	}, s.handleListMemoTags)
}

// unmarshalArgs decodes raw tool arguments into v, leaving v untouched when
// the caller sent no arguments so pre-set defaults survive.
func unmarshalArgs(req *mcp.CallToolRequest, v any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, v)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// Tool handlers.
func (s *Server) handleSearchMemo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params searchMemoRequest
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	res, err := s.memos.ListMemos(ctx, &v1pb.ListMemosRequest{
		Filter: memos.SearchFilter(params.KeyWord),
	})
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(res.Memos))
	for _, memo := range res.Memos {
		contents = append(contents, memo.Content)
	}
	return textResult("Search result:\n" + strings.Join(contents, ", ")), nil
}

func (s *Server) handleCreateMemo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := defaultCreateMemoRequest()
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	memo, err := s.memos.CreateMemo(ctx, &v1pb.CreateMemoRequest{
		Content:    params.Content,
		Visibility: params.visibility().Wire(),
	})
	if err != nil {
		return nil, err
	}

	return textResult("Memo created: " + memo.Name), nil
}

func (s *Server) handleGetMemo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params getMemoRequest
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	memo, err := s.memos.GetMemo(ctx, &v1pb.GetMemoRequest{Name: params.Name})
	if err != nil {
		return nil, err
	}

	return textResult("Memo:\n" + memo.Content), nil
}

func (s *Server) handleListMemoTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := defaultListMemoTagsRequest()
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	res, err := s.memos.ListMemoTags(ctx, &v1pb.ListMemoTagsRequest{
		Parent: params.Parent,
		Filter: memos.TagVisibilityFilter(params.visibility()),
	})
	if err != nil {
		return nil, err
	}

	// Tag amounts arrive as a map; sort the names so output is stable.
	names := make([]string, 0, len(res.TagAmounts))
	for name := range res.TagAmounts {
		names = append(names, name)
	}
	sort.Strings(names)

	return textResult("Tags:\n" + strings.Join(names, ", ")), nil
}
