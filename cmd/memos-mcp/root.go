// ABOUTME: Root command serving the MCP adapter over stdio.
// ABOUTME: Wires flags, the config file, and the Memos gRPC connection.

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rumman157/memos-mcp/internal/config"
	"github.com/rumman157/memos-mcp/internal/mcp"
	"github.com/rumman157/memos-mcp/internal/memos"
)

var rootCmd = &cobra.Command{
	Use:          "memos-mcp",
	Short:        "MCP server for a remote Memos instance",
	Long:         `Give a model the ability to access a Memos server: search, create, and read memos, and list memo tags, over the Model Context Protocol.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := dialMemos(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		server := mcp.NewServer(client.Memos())
		return server.Serve(cmd.Context())
	},
}

// loadConfig reads the config file and applies any explicitly set flags on
// top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		cfg.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("token") {
		cfg.Token, _ = cmd.Flags().GetString("token")
	}
	return cfg, nil
}

func dialMemos(cmd *cobra.Command) (*memos.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log.Info("connecting to memos server", "addr", cfg.Addr())
	return memos.Dial(cfg)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("host", "localhost", "the Memos server host name")
	rootCmd.PersistentFlags().Int("port", 8080, "the Memos server gRPC port")
	rootCmd.PersistentFlags().String("token", "", "the bearer token for authentication")
	rootCmd.PersistentFlags().String("config", "", "path to the config file")
}
