// ABOUTME: HTTP command serving the MCP adapter over streamable HTTP.
// ABOUTME: Mounts the handler on a chi router with standard middleware.

package main

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/rumman157/memos-mcp/internal/mcp"
)

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve the adapter over HTTP",
	Long:  `Serve the Model Context Protocol adapter over the streamable HTTP transport instead of stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		client, err := dialMemos(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		server := mcp.NewServer(client.Memos())

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(middleware.Recoverer)
		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		r.Handle("/mcp", server.HTTPHandler())

		log.Info("serving MCP over HTTP", "addr", addr)
		srv := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}
		return srv.ListenAndServe()
	},
}

func init() {
	httpCmd.Flags().String("addr", ":8081", "listen address")
	rootCmd.AddCommand(httpCmd)
}
