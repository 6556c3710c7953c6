package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

var (
	submitUser string
	submitFile string
)

var submitCmd = &cobra.Command{
	Use:   "submit [project-id]",
	Short: "Submit accepted suggestions as real proposals",
	Long: `Persists accepted suggestions as proposals, each with the
submitter's initial up or down vote.

Input is a JSON array read from --file (or stdin when omitted):

  [{"title": "...", "details": "...", "summary": "...", "vote": 1}]

Entries without a title, body, or valid vote are skipped. A missing
summary is generated, falling back to truncated details when no AI
provider responds.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitUser, "user", "u", "", "submitting user ID (required)")
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "JSON file with entries (default: stdin)")
	submitCmd.MarkFlagRequired("user") //nolint:errcheck
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if submissionService == nil {
		return errors.New("submission service not configured")
	}

	var reader io.Reader = cmd.InOrStdin()
	if submitFile != "" {
		f, err := os.Open(submitFile)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var entries []domain.SuggestedSubmission
	if err := json.NewDecoder(reader).Decode(&entries); err != nil {
		return fmt.Errorf("decoding entries: %w", err)
	}

	created, err := submissionService.SubmitSuggested(cmd.Context(), args[0], submitUser, entries)
	if err != nil {
		return fmt.Errorf("submitting proposals: %w", err)
	}

	cmd.Printf("Created %d proposal(s):\n", len(created))
	for i := range created {
		cmd.Printf("  %s  %s\n", created[i].ID, created[i].Title)
	}

	return nil
}
