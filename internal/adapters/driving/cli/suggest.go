package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest [project-id]",
	Short: "Generate new proposal candidates for a project",
	Long: `Asks the configured AI provider for up to three new proposal
candidates that fit the project and do not duplicate existing proposals.

There is no fallback generation: when no provider responds or the output
is unusable, the command reports that no suggestions are available.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if suggestionService == nil {
		return errors.New("suggestion service not configured")
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

	suggestions := suggestionService.Suggest(ctx, project.Context(), existing)

	if suggestJSON {
		data, err := json.MarshalIndent(suggestions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal suggestions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(suggestions) == 0 {
		cmd.Println("No suggestions available.")
		return nil
	}

	cmd.Printf("Suggestions for %q:\n\n", project.Title)
	for i := range suggestions {
		cmd.Printf("  [%d] %s\n", i+1, suggestions[i].Title)
		cmd.Printf("      %s\n", suggestions[i].Summary)
		cmd.Println()
	}
	cmd.Println("Use 'ideaflux suggest --json' to get the full details for submission.")

	return nil
}
