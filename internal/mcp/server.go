// ABOUTME: MCP server bridging tool calls to the remote Memos service.
// ABOUTME: Serves over stdio or the streamable HTTP transport.

package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rumman157/memos-mcp/internal/memos"
)

type Server struct {
	server *mcp.Server
	memos  memos.Service
}

func NewServer(svc memos.Service) *Server {
	s := &Server{memos: svc}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "memos-mcp",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s
}

// Serve runs the protocol loop over stdio until the stream pair closes.
func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler exposes the server over the streamable HTTP transport.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}
