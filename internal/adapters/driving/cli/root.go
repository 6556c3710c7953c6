// Package cli provides the ideaflux command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/ideaflux/ideaflux/internal/adapters/driven/config/file"
	"github.com/ideaflux/ideaflux/internal/adapters/driven/llm/gemini"
	"github.com/ideaflux/ideaflux/internal/adapters/driven/llm/openai"
	"github.com/ideaflux/ideaflux/internal/adapters/driven/storage/sqlite"
	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
	"github.com/ideaflux/ideaflux/internal/core/ports/driving"
	"github.com/ideaflux/ideaflux/internal/core/services"
	"github.com/ideaflux/ideaflux/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging for all commands.
var verbose bool

// Services used by the commands. Wired in initServices; tests swap in mocks.
var (
	configStore       driven.ConfigStore
	proposalStore     driven.ProposalStore
	similarityService driving.SimilarityService
	summaryService    driving.SummaryService
	suggestionService driving.SuggestionService
	submissionService driving.SubmissionService
)

var rootCmd = &cobra.Command{
	Use:   "ideaflux",
	Short: "AI-assisted proposal triage for team idea boards",
	Long: `ideaflux grades draft proposals against existing ones, generates
short summaries for project and proposal cards, and suggests new proposal
candidates from project context.

AI output is best-effort: when no provider is configured or reachable,
similarity falls back to keyword overlap scoring, summaries fall back to
truncated source text, and suggestions come back empty.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if servicesReady() {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if proposalStore != nil {
		proposalStore.Close() //nolint:errcheck
	}
	if err != nil {
		os.Exit(1)
	}
}

// servicesReady reports whether all command dependencies are wired.
func servicesReady() bool {
	return similarityService != nil &&
		summaryService != nil &&
		suggestionService != nil &&
		submissionService != nil
}

// initServices wires the full dependency graph: config, storage, providers,
// and the core services.
func initServices() error {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		return err
	}
	configStore = store

	db, err := sqlite.NewStore(configStore.GetString("storage.path"))
	if err != nil {
		return err
	}
	proposalStore = db

	buildAIServices()
	return nil
}

// apiKey resolves a provider credential. The environment variable wins over
// the config file so keys can stay out of it entirely.
func apiKey(envVar, configKey string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return configStore.GetString(configKey)
}

// localeFromConfig reads the output locale, defaulting to English.
func localeFromConfig() domain.Locale {
	return domain.Locale(configStore.GetString("locale")).OrDefault()
}

// buildAIServices assembles the provider chain and the core services from
// the current configuration. Called again when the config file changes.
func buildAIServices() {
	locale := localeFromConfig()

	geminiProvider := gemini.New(gemini.Config{
		APIKey:  apiKey("GEMINI_API_KEY", "gemini.api_key"),
		BaseURL: configStore.GetString("gemini.base_url"),
		Model:   configStore.GetString("gemini.model"),
	})
	openaiProvider := openai.New(openai.Config{
		APIKey:  apiKey("OPENAI_API_KEY", "openai.api_key"),
		BaseURL: configStore.GetString("openai.base_url"),
		Model:   configStore.GetString("openai.model"),
	})

	health := services.NewHealthTracker(services.HealthTrackerConfig{})
	completer := services.NewCompletionGateway(health, geminiProvider, openaiProvider)

	similarityService = services.NewSimilarityService(completer, locale)
	summaryService = services.NewSummaryService(completer, locale, proposalStore)
	suggestionService = services.NewSuggestionService(completer, locale)
	submissionService = services.NewSubmissionService(proposalStore, summaryService)
}
