package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/pipeline"
)

var (
	timeout     time.Duration
	noCache     bool
	cacheDir    string
	gatherMode  string
	noSocial    bool
	llmProvider string
	llmModel    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Verify a single claim and print the verdict as JSON",
	Long: `Check runs the full verification pipeline for one claim:
- Structure the claim (entities, location, time period, scope)
- Gather evidence from deep research and social media in parallel
- Synthesize a strict TRUE / FALSE / UNVERIFIED verdict

Credentials are read from the environment:
  GEMINI_API_KEY      reasoning capability (required, or OPENAI_API_KEY with --llm-provider openai)
  PERPLEXITY_API_KEY  deep research (optional; degrades to fallback without it)
  X_BEARER_TOKEN      social media search (optional)

Example:
  unmai check "Schools in Madurai were closed today due to heavy rain"
  unmai check --mode social_first "..." `,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "overall check timeout")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the claim cache (force fresh research)")
	checkCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist the claim cache to this directory")
	checkCmd.Flags().StringVar(&gatherMode, "mode", string(model.GatherParallel), "evidence gathering mode (parallel, social_first)")
	checkCmd.Flags().BoolVar(&noSocial, "no-social", false, "skip social media analysis")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "gemini", "reasoning provider (gemini, openai)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "", "reasoning model name (provider default if empty)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	claim := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	checker, err := pipeline.NewChecker(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", claim)
		fmt.Fprintf(os.Stderr, "Mode: %s\n\n", cfg.Orchestrator.Mode)
	}

	response, err := checker.CheckFact(ctx, claim)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

// buildConfig assembles pipeline configuration from defaults, flags, and
// environment credentials. A missing reasoning credential is fatal; the
// other credentials degrade their gatherers to fallback mode.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.LLM.Provider = llmProvider
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	}

	cfg.Research.APIKey = os.Getenv("PERPLEXITY_API_KEY")
	cfg.Social.BearerToken = os.Getenv("X_BEARER_TOKEN")

	cfg.Cache.Enabled = !noCache
	if cacheDir != "" {
		cfg.Cache.Backend = "disk"
		cfg.Cache.Dir = cacheDir
	}

	switch gatherMode {
	case string(model.GatherParallel), "":
		cfg.Orchestrator.Mode = model.GatherParallel
	case string(model.GatherSocialFirst):
		cfg.Orchestrator.Mode = model.GatherSocialFirst
	default:
		return nil, fmt.Errorf("unknown gathering mode %q (want parallel or social_first)", gatherMode)
	}

	if noSocial {
		cfg.Social.Enabled = false
	}

	return cfg, nil
}
