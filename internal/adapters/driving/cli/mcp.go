package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/ideaflux/ideaflux/internal/adapters/driven/config/file"
	"github.com/ideaflux/ideaflux/internal/adapters/driving/mcp"
	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants. It exposes
the check_similarity, summarize, and suggest_proposals tools.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

The config file is watched while the server runs; provider credential and
locale changes take effect without a restart.

Examples:
  # Stdio mode (default, for Claude Desktop)
  ideaflux mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  ideaflux mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ideaflux": {
        "command": "/path/to/ideaflux",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	// Proxies resolve the current services on every call, so a config
	// reload swaps providers under a running server.
	ports := &mcp.Ports{
		Similarity: similarityProxy{},
		Summary:    summaryProxy{},
		Suggestion: suggestionProxy{},
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// Follow config edits for the lifetime of the server.
	if configStore != nil {
		watcher, err := configfile.NewWatcher(configStore, buildAIServices)
		if err != nil {
			logger.Warn("config watcher unavailable: %v", err)
		} else {
			defer watcher.Close()
			go watcher.Run(cmd.Context())
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

type similarityProxy struct{}

func (similarityProxy) Assess(ctx context.Context, project domain.ProjectContext, draft domain.ProposalDraft, existing []domain.Proposal) []domain.SimilarityMatch {
	return similarityService.Assess(ctx, project, draft, existing)
}

type summaryProxy struct{}

func (summaryProxy) Summarize(ctx context.Context, title, description string, budget domain.SummaryBudget) string {
	return summaryService.Summarize(ctx, title, description, budget)
}

func (summaryProxy) ProposalSummary(ctx context.Context, title, description string) string {
	return summaryService.ProposalSummary(ctx, title, description)
}

func (summaryProxy) SummarizeProject(ctx context.Context, projectID string) (string, error) {
	return summaryService.SummarizeProject(ctx, projectID)
}

type suggestionProxy struct{}

func (suggestionProxy) Suggest(ctx context.Context, project domain.ProjectContext, existing []domain.Proposal) []domain.SuggestedProposal {
	return suggestionService.Suggest(ctx, project, existing)
}
