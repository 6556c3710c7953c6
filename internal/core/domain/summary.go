package domain

// SummaryBudget bounds a generated summary. MaxWords constrains the model;
// MaxChars is enforced locally with a hard cut. A zero MaxChars means the
// caller accepts the service default.
type SummaryBudget struct {
	MaxWords int
	MaxChars int
}

// Summary budgets used by the different callers. These are configuration,
// not behavioral differences.
var (
	// ProjectSummaryBudget sizes dashboard project cards.
	ProjectSummaryBudget = SummaryBudget{MaxWords: 48, MaxChars: 320}

	// ProposalSummaryBudget sizes proposal cards within a project page.
	ProposalSummaryBudget = SummaryBudget{MaxWords: 42, MaxChars: 260}

	// QuickSummaryBudget sizes inline previews.
	QuickSummaryBudget = SummaryBudget{MaxWords: 36, MaxChars: 200}
)
