package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fweber/lexiscope/internal/app"
	"github.com/fweber/lexiscope/internal/grader"
	"github.com/fweber/lexiscope/internal/llm"
	reviewscreen "github.com/fweber/lexiscope/internal/screens/review"
	"github.com/fweber/lexiscope/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start a review session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func init() {
	addReviewFlags(reviewCmd)
}

// addReviewFlags registers the session flags. They live on both the
// root command and the review subcommand, so `lexiscope --words x.csv`
// and `lexiscope review --words x.csv` behave the same.
func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("words", "w", "words.csv", "Path to the word-list CSV (columns: word, pos_title, optional_category)")
	cmd.Flags().Bool("keep-optional", false, "Include words flagged as optional/rare")
	cmd.Flags().Int64("seed", 0, "Fix the shuffle order (0 = random each run)")
	cmd.Flags().Bool("two-category", false, "Quick mode: only know / don't know")
	cmd.Flags().String("provider", "", "LLM provider for definition grading (anthropic, openai, gemini, openrouter, mock)")
	cmd.Flags().String("api-key", "", "API key for the selected provider (session only, overrides env)")
	cmd.Flags().String("model", "", "Model ID override for the selected provider")
}

func runReview(cmd *cobra.Command) error {
	wordsPath, _ := cmd.Flags().GetString("words")
	keepOptional, _ := cmd.Flags().GetBool("keep-optional")
	seed, _ := cmd.Flags().GetInt64("seed")
	twoCategory, _ := cmd.Flags().GetBool("two-category")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	g := buildGrader(cmd, st)

	return app.Run(reviewscreen.Options{
		WordsPath:    wordsPath,
		KeepOptional: keepOptional,
		Seed:         seed,
		TwoCategory:  twoCategory,
		Grader:       g,
	})
}

// buildGrader wires the LLM grader. Flags take precedence over env
// vars and apply to this session only. A missing credential is not an
// error: the session runs with the definition challenge disabled.
func buildGrader(cmd *cobra.Command, st *store.Store) *grader.Grader {
	ctx := cmd.Context()
	events := st.EventRepo()

	providerFlag, _ := cmd.Flags().GetString("provider")
	apiKeyFlag, _ := cmd.Flags().GetString("api-key")
	modelFlag, _ := cmd.Flags().GetString("model")

	var provider llm.Provider
	var err error

	if providerFlag != "" {
		cfg := llm.ConfigFromEnv()
		cfg.Provider = providerFlag
		applyFlagOverrides(&cfg, providerFlag, apiKeyFlag, modelFlag)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not usable:", err)
			fmt.Fprintln(os.Stderr, "Definition challenges will be unavailable.")
			return grader.New(nil, grader.DefaultConfig())
		}
		provider, err = llm.NewProvider(ctx, cfg, events)
	} else {
		provider, err = llm.NewProviderFromEnv(ctx, events)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Definition challenges will be unavailable.")
		return grader.New(nil, grader.DefaultConfig())
	}
	if provider == nil {
		return grader.New(nil, grader.DefaultConfig())
	}
	return grader.New(provider, grader.DefaultConfig())
}

func applyFlagOverrides(cfg *llm.Config, provider, apiKey, model string) {
	switch provider {
	case "anthropic":
		if apiKey != "" {
			cfg.Anthropic.APIKey = apiKey
		}
		if model != "" {
			cfg.Anthropic.Model = model
		}
	case "openai":
		if apiKey != "" {
			cfg.OpenAI.APIKey = apiKey
		}
		if model != "" {
			cfg.OpenAI.Model = model
		}
	case "gemini":
		if apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		}
		if model != "" {
			cfg.Gemini.Model = model
		}
	case "openrouter":
		if apiKey != "" {
			cfg.OpenRouter.APIKey = apiKey
		}
		if model != "" {
			cfg.OpenRouter.Model = model
		}
	}
}
