package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

var (
	summarizeTitle       string
	summarizeDescription string
	summarizeWords       int
	summarizeChars       int
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Generate short summaries",
	Long: `Condenses titles and descriptions into bounded summaries for cards
and previews. When no AI provider responds, the source text is truncated
instead, so a non-empty input always yields a summary.`,
}

var summarizeProjectCmd = &cobra.Command{
	Use:   "project [project-id]",
	Short: "Summarize a stored project and persist the result",
	Long: `Generates a summary for a stored project and saves it. A project
that already has a summary is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarizeProject,
}

var summarizeTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Summarize an ad-hoc title and description",
	Args:  cobra.NoArgs,
	RunE:  runSummarizeText,
}

func init() {
	summarizeTextCmd.Flags().StringVarP(&summarizeTitle, "title", "t", "", "title of the text (required)")
	summarizeTextCmd.Flags().StringVarP(&summarizeDescription, "description", "d", "", "long-form body")
	summarizeTextCmd.Flags().IntVar(&summarizeWords, "words", 0, "word budget hint (default 42)")
	summarizeTextCmd.Flags().IntVar(&summarizeChars, "chars", 0, "hard character limit (default 260)")
	summarizeTextCmd.MarkFlagRequired("title") //nolint:errcheck

	summarizeCmd.AddCommand(summarizeProjectCmd)
	summarizeCmd.AddCommand(summarizeTextCmd)
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarizeProject(cmd *cobra.Command, args []string) error {
	if summaryService == nil {
		return errors.New("summary service not configured")
	}

	summary, err := summaryService.SummarizeProject(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("summarizing project: %w", err)
	}

	cmd.Println(summary)
	return nil
}

func runSummarizeText(cmd *cobra.Command, _ []string) error {
	if summaryService == nil {
		return errors.New("summary service not configured")
	}

	budget := domain.ProposalSummaryBudget
	if summarizeWords > 0 {
		budget.MaxWords = summarizeWords
	}
	if summarizeChars > 0 {
		budget.MaxChars = summarizeChars
	}

	summary := summaryService.Summarize(cmd.Context(), summarizeTitle, summarizeDescription, budget)
	if summary == "" {
		cmd.Println("Nothing to summarize.")
		return nil
	}

	cmd.Println(summary)
	return nil
}
