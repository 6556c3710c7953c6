package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

// ProposalInput is an existing proposal passed to the tools.
type ProposalInput struct {
	ID          string `json:"id" jsonschema:"the proposal identifier"`
	Title       string `json:"title" jsonschema:"the proposal title"`
	Description string `json:"description,omitempty" jsonschema:"the proposal body"`
	Summary     string `json:"summary,omitempty" jsonschema:"a short proposal summary"`
}

// CheckSimilarityInput is the input schema for the check_similarity tool.
type CheckSimilarityInput struct {
	ProjectTitle       string          `json:"project_title" jsonschema:"the title of the project the proposals belong to"`
	ProjectDescription string          `json:"project_description,omitempty" jsonschema:"the project description"`
	DraftTitle         string          `json:"draft_title" jsonschema:"the title of the draft proposal being checked"`
	DraftDescription   string          `json:"draft_description,omitempty" jsonschema:"the body of the draft proposal"`
	Existing           []ProposalInput `json:"existing" jsonschema:"the existing proposals to compare against"`
}

// SimilarityMatchOutput is one graded comparison.
type SimilarityMatchOutput struct {
	ID          string  `json:"id"`
	Similarity  float64 `json:"similarity"`
	Explanation string  `json:"explanation"`
}

// CheckSimilarityOutput is the output schema for the check_similarity tool.
type CheckSimilarityOutput struct {
	Matches []SimilarityMatchOutput `json:"matches"`
	Count   int                     `json:"count"`
}

// SummarizeInput is the input schema for the summarize tool.
type SummarizeInput struct {
	Title       string `json:"title" jsonschema:"the title of the text to summarize"`
	Description string `json:"description,omitempty" jsonschema:"the long-form body to summarize"`
	MaxWords    int    `json:"max_words,omitempty" jsonschema:"word budget hint for the model (default 42)"`
	MaxChars    int    `json:"max_chars,omitempty" jsonschema:"hard character limit (default 260)"`
}

// SummarizeOutput is the output schema for the summarize tool.
type SummarizeOutput struct {
	Summary string `json:"summary"`
}

// SuggestProposalsInput is the input schema for the suggest_proposals tool.
type SuggestProposalsInput struct {
	ProjectTitle       string          `json:"project_title" jsonschema:"the title of the project to suggest proposals for"`
	ProjectDescription string          `json:"project_description,omitempty" jsonschema:"the project description"`
	Existing           []ProposalInput `json:"existing,omitempty" jsonschema:"existing proposals the suggestions must not duplicate"`
}

// SuggestedProposalOutput is one generated proposal candidate.
type SuggestedProposalOutput struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Summary string `json:"summary"`
}

// SuggestProposalsOutput is the output schema for the suggest_proposals tool.
type SuggestProposalsOutput struct {
	Suggestions []SuggestedProposalOutput `json:"suggestions"`
	Count       int                       `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_similarity",
		Description: "Grade how similar a draft proposal is to each existing proposal in a project",
	}, s.handleCheckSimilarity)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Condense a title and description into a short summary",
	}, s.handleSummarize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_proposals",
		Description: "Generate up to three new proposal candidates for a project",
	}, s.handleSuggestProposals)
}

// handleCheckSimilarity handles the check_similarity tool invocation.
func (s *Server) handleCheckSimilarity(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckSimilarityInput,
) (*mcp.CallToolResult, CheckSimilarityOutput, error) {
	project := domain.ProjectContext{
		Title:       input.ProjectTitle,
		Description: input.ProjectDescription,
	}
	draft := domain.ProposalDraft{
		Title:       input.DraftTitle,
		Description: input.DraftDescription,
	}
	existing := proposalsFromInput(input.Existing)

	matches := s.ports.Similarity.Assess(ctx, project, draft, existing)

	output := CheckSimilarityOutput{
		Matches: make([]SimilarityMatchOutput, len(matches)),
		Count:   len(matches),
	}
	for i := range matches {
		output.Matches[i] = SimilarityMatchOutput{
			ID:          matches[i].ID,
			Similarity:  matches[i].Similarity,
			Explanation: matches[i].Explanation,
		}
	}

	return nil, output, nil
}

// handleSummarize handles the summarize tool invocation.
func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	budget := domain.ProposalSummaryBudget
	if input.MaxWords > 0 {
		budget.MaxWords = input.MaxWords
	}
	if input.MaxChars > 0 {
		budget.MaxChars = input.MaxChars
	}

	summary := s.ports.Summary.Summarize(ctx, input.Title, input.Description, budget)

	return nil, SummarizeOutput{Summary: summary}, nil
}

// handleSuggestProposals handles the suggest_proposals tool invocation.
func (s *Server) handleSuggestProposals(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestProposalsInput,
) (*mcp.CallToolResult, SuggestProposalsOutput, error) {
	project := domain.ProjectContext{
		Title:       input.ProjectTitle,
		Description: input.ProjectDescription,
	}
	existing := proposalsFromInput(input.Existing)

	suggestions := s.ports.Suggestion.Suggest(ctx, project, existing)

	output := SuggestProposalsOutput{
		Suggestions: make([]SuggestedProposalOutput, len(suggestions)),
		Count:       len(suggestions),
	}
	for i := range suggestions {
		output.Suggestions[i] = SuggestedProposalOutput{
			Title:   suggestions[i].Title,
			Details: suggestions[i].Details,
			Summary: suggestions[i].Summary,
		}
	}

	return nil, output, nil
}

// proposalsFromInput converts tool inputs to domain proposals.
func proposalsFromInput(in []ProposalInput) []domain.Proposal {
	out := make([]domain.Proposal, len(in))
	for i := range in {
		out[i] = domain.Proposal{
			ID:          in[i].ID,
			Title:       in[i].Title,
			Description: in[i].Description,
			Summary:     in[i].Summary,
		}
	}
	return out
}
