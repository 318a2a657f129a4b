package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/unmai/unmai/internal/pipeline"
	"github.com/unmai/unmai/internal/worker"
)

var (
	concurrency  int
	outputPath   string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple claims from a file in parallel",
	Long: `Batch verifies multiple claims concurrently:
- Read claims from the input file (one per line, # for comments)
- Verify claims in parallel with a configurable worker count
- Write one JSON result per line (JSON Lines)

All claims share the checker and its cache, so duplicate claims in a
batch are researched once.

Example:
  unmai batch claims.txt
  unmai batch claims.txt --concurrency 8 --output results.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputPath, "output", "", "output file for JSON Lines results (default: stdout)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the claim cache")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist the claim cache to this directory")
	batchCmd.Flags().BoolVar(&noSocial, "no-social", false, "skip social media analysis")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "gemini", "reasoning provider (gemini, openai)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "reasoning model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	checker, err := pipeline.NewChecker(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	fmt.Fprintf(os.Stderr, "Reading claims from %s\n", file)

	processor := worker.NewBatchProcessor(checker, concurrency)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processed %d claims with %d workers\n", len(results), concurrency)

	encoder := json.NewEncoder(out)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAILED %q: %v\n", result.Claim, result.Error)
			continue
		}
		successCount++
		if err := encoder.Encode(result.Response); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed\n", successCount, failureCount)
	return nil
}
