package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

var (
	checkTitle       string
	checkDescription string
	checkJSON        bool
)

var checkCmd = &cobra.Command{
	Use:   "check [project-id]",
	Short: "Grade a draft proposal against existing ones",
	Long: `Compares a draft proposal against every stored proposal in a project
and reports a 0-100 similarity score with a short explanation per pair.

Scores come from the configured AI provider when one responds; otherwise a
deterministic keyword-overlap score is used, so the command always produces
one result per existing proposal.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkTitle, "title", "t", "", "draft proposal title (required)")
	checkCmd.Flags().StringVarP(&checkDescription, "description", "d", "", "draft proposal body")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output results as JSON")
	checkCmd.MarkFlagRequired("title") //nolint:errcheck
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if similarityService == nil {
		return errors.New("similarity service not configured")
	}
	if proposalStore == nil {
		return errors.New("proposal store not configured")
	}

	ctx := cmd.Context()
	projectID := args[0]

	project, err := proposalStore.GetProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	existing, err := proposalStore.ListProposals(ctx, projectID)
	if err != nil {
		return fmt.Errorf("loading proposals: %w", err)
	}

	draft := domain.ProposalDraft{Title: checkTitle, Description: checkDescription}
	matches := similarityService.Assess(ctx, project.Context(), draft, existing)

	if checkJSON {
		data, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(matches) == 0 {
		cmd.Println("No existing proposals to compare against.")
		return nil
	}

	titles := make(map[string]string, len(existing))
	for i := range existing {
		titles[existing[i].ID] = existing[i].Title
	}

	cmd.Printf("Similarity against %d proposal(s):\n\n", len(matches))
	for i := range matches {
		cmd.Printf("  [%3.0f] %s\n", matches[i].Similarity, titles[matches[i].ID])
		if matches[i].Explanation != "" {
			cmd.Printf("        %s\n", matches[i].Explanation)
		}
	}

	return nil
}
