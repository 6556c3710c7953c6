package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ideaflux/ideaflux/internal/core/domain"
)

var (
	projectTitle       string
	projectDescription string
	projectDeadline    string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage stored projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [project-id]",
	Short: "Create or update a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project and its proposals",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

func init() {
	projectAddCmd.Flags().StringVarP(&projectTitle, "title", "t", "", "project title (required)")
	projectAddCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "project description")
	projectAddCmd.Flags().StringVar(&projectDeadline, "deadline", "", "submission deadline (RFC 3339)")
	projectAddCmd.MarkFlagRequired("title") //nolint:errcheck

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectShowCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	if proposalStore == nil {
		return errors.New("proposal store not configured")
	}

	project := domain.Project{
		ID:          args[0],
		Title:       projectTitle,
		Description: projectDescription,
	}

	if projectDeadline != "" {
		deadline, err := time.Parse(time.RFC3339, projectDeadline)
		if err != nil {
			return fmt.Errorf("parsing deadline: %w", err)
		}
		project.Deadline = deadline
	}

	if err := proposalStore.SaveProject(cmd.Context(), project); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	cmd.Printf("Saved project: %s\n", project.ID)
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	if proposalStore == nil {
		return errors.New("proposal store not configured")
	}

	ctx := cmd.Context()
	project, err := proposalStore.GetProject(ctx, args[0])
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	cmd.Printf("%s  %s\n", project.ID, project.Title)
	if project.Description != "" {
		cmd.Printf("  %s\n", project.Description)
	}
	if project.Summary != "" {
		cmd.Printf("  Summary: %s\n", project.Summary)
	}
	if !project.Deadline.IsZero() {
		cmd.Printf("  Deadline: %s\n", project.Deadline.Format(time.RFC3339))
	}

	proposals, err := proposalStore.ListProposals(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("loading proposals: %w", err)
	}

	cmd.Printf("\nProposals (%d):\n", len(proposals))
	for i := range proposals {
		cmd.Printf("  %s  %s\n", proposals[i].ID, proposals[i].Title)
		if proposals[i].Summary != "" {
			cmd.Printf("      %s\n", proposals[i].Summary)
		}
	}

	return nil
}
