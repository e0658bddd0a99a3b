// ABOUTME: gRPC client wrapper for the remote Memos server.
// ABOUTME: Owns the connection for process lifetime and attaches bearer token credentials.

package memos

import (
	"context"
	"fmt"

	v1pb "github.com/usememos/memos/proto/gen/api/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rumman157/memos-mcp/internal/config"
)

// Service is the subset of the Memos memo API the adapter calls.
type Service interface {
	ListMemos(ctx context.Context, in *v1pb.ListMemosRequest, opts ...grpc.CallOption) (*v1pb.ListMemosResponse, error)
	CreateMemo(ctx context.Context, in *v1pb.CreateMemoRequest, opts ...grpc.CallOption) (*v1pb.Memo, error)
	GetMemo(ctx context.Context, in *v1pb.GetMemoRequest, opts ...grpc.CallOption) (*v1pb.Memo, error)
	ListMemoTags(ctx context.Context, in *v1pb.ListMemoTagsRequest, opts ...grpc.CallOption) (*v1pb.ListMemoTagsResponse, error)
}

// Client holds the long-lived connection to the Memos server. It is safe for
// sequential reuse across tool calls.
type Client struct {
	conn *grpc.ClientConn
	svc  v1pb.MemoServiceClient
}

// tokenCredentials attaches a bearer token to every outgoing request.
type tokenCredentials string

func (t tokenCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + string(t)}, nil
}

func (t tokenCredentials) RequireTransportSecurity() bool {
	return false
}

// Dial connects to the Memos server described by cfg. Release the returned
// client with Close at process shutdown.
func Dial(cfg *config.Config) (*Client, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if cfg.Token != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(tokenCredentials(cfg.Token)))
	}

	conn, err := grpc.NewClient(cfg.Addr(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Addr(), err)
	}

	return &Client{
		conn: conn,
		svc:  v1pb.NewMemoServiceClient(conn),
	}, nil
}

// Memos returns the memo service stub.
func (c *Client) Memos() Service {
	return c.svc
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
