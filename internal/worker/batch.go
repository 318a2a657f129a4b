package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/unmai/unmai/internal/model"
)

// FactChecker defines the interface for verifying a single claim
type FactChecker interface {
	CheckFact(ctx context.Context, claimText string) (model.VerdictResponse, error)
}

// CheckJob represents a single claim verification job
type CheckJob struct {
	Claim   string
	Checker FactChecker
}

// Execute executes the check job
func (j *CheckJob) Execute(ctx context.Context) Result {
	response, err := j.Checker.CheckFact(ctx, j.Claim)
	if err != nil {
		return &CheckResult{
			Claim: j.Claim,
			Error: err,
		}
	}
	return &CheckResult{
		Claim:    j.Claim,
		Response: &response,
	}
}

// CheckResult represents the result of one claim verification
type CheckResult struct {
	Claim    string
	Response *model.VerdictResponse
	Error    error
}

// GetError returns the error from the check result
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor verifies multiple claims concurrently
type BatchProcessor struct {
	checker     FactChecker
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(checker FactChecker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessClaims verifies multiple claims concurrently
func (b *BatchProcessor) ProcessClaims(ctx context.Context, claims []string) []*CheckResult {
	if len(claims) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, claim := range claims {
		job := &CheckJob{
			Claim:   claim,
			Checker: b.checker,
		}
		if !pool.Submit(job) {
			break
		}
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}

	return checkResults
}

// ProcessFile reads claims from a file and verifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CheckResult, error) {
	claims, err := ReadClaimsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}

	return b.ProcessClaims(ctx, claims), nil
}

// ReadClaimsFromFile reads claims from a file (one per line)
func ReadClaimsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var claims []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate claims
		if !seen[line] {
			seen[line] = true
			claims = append(claims, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return claims, nil
}
