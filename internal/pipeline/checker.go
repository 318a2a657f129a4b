package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/cache"
	"github.com/unmai/unmai/internal/llm"
	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/research"
	"github.com/unmai/unmai/internal/social"
	"github.com/unmai/unmai/internal/structurer"
	"github.com/unmai/unmai/internal/verdict"
	"github.com/unmai/unmai/internal/worker"
)

const cacheNote = "Retrieved from previous research"

// Checker runs the complete claim verification pipeline:
// cache lookup, structuring, evidence gathering, verdict synthesis,
// and the conditional cache write.
type Checker struct {
	cache        *cache.ClaimCache // nil when caching is disabled
	structurer   *structurer.Structurer
	orchestrator *Orchestrator
	synthesizer  *verdict.Synthesizer
	logger       *zap.Logger
}

// NewChecker wires a checker from configuration. A missing reasoning
// credential is fatal; missing research or social credentials put those
// gatherers in fallback mode.
func NewChecker(cfg *model.Config, logger *zap.Logger) (*Checker, error) {
	reasoner, err := llm.NewReasoner(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize reasoner: %w", err)
	}

	researchGatherer := research.NewGatherer(completerOrNil(cfg.Research), logger)

	limiter := worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	socialGatherer := social.NewGatherer(searcherOrNil(cfg.Social, limiter), cfg.Social, logger)

	var claimCache *cache.ClaimCache
	if cfg.Cache.Enabled {
		var store cache.Store
		switch cfg.Cache.Backend {
		case "disk":
			store = cache.NewDiskStore(cfg.Cache.Dir, cfg.Cache.TTL)
		default:
			store = cache.NewMemoryStore(cfg.Cache.TTL, 0)
		}
		claimCache = cache.NewClaimCache(store, cfg.Cache.TTL, logger)
	}

	return &Checker{
		cache:        claimCache,
		structurer:   structurer.New(reasoner, cfg.LLM.MaxRetries, logger),
		orchestrator: NewOrchestrator(researchGatherer, socialGatherer, cfg.Orchestrator, logger),
		synthesizer:  verdict.NewSynthesizer(reasoner, cfg.LLM.MaxRetries, logger),
		logger:       logger,
	}, nil
}

// completerOrNil returns nil when the research credential is absent, which
// NewClient signals by returning a nil *Client. A typed nil must not leak
// into the interface.
func completerOrNil(cfg model.ResearchConfig) research.Completer {
	if client := research.NewClient(cfg); client != nil {
		return client
	}
	return nil
}

func searcherOrNil(cfg model.SocialConfig, limiter *worker.Limiter) social.Searcher {
	if client := social.NewClient(cfg, limiter); client != nil {
		return client
	}
	return nil
}

// CheckFact verifies one claim end to end
func (c *Checker) CheckFact(ctx context.Context, claimText string) (model.VerdictResponse, error) {
	if err := ctx.Err(); err != nil {
		return model.VerdictResponse{}, err
	}

	if c.cache != nil {
		if entry, ok := c.cache.Lookup(claimText); ok {
			c.logger.Info("cache hit", zap.String("fingerprint", entry.Fingerprint))
			response := entry.Response
			response.Cached = true
			response.CacheNote = cacheNote
			return response, nil
		}
	}

	claim := c.structurer.Structure(ctx, claimText)
	query := structurer.BuildPrimaryQuery(claim)
	c.logger.Info("claim structured",
		zap.String("type", string(claim.ClaimType)),
		zap.String("scope", string(claim.GeographicScope)),
		zap.String("query", query))

	researchEv, socialEv := c.orchestrator.Gather(ctx, query, claim)

	result := c.synthesizer.Synthesize(ctx, claimText, claim, researchEv, socialEv)

	response := buildResponse(claimText, claim, researchEv, socialEv, result)

	if c.cache != nil {
		if id, err := c.cache.StoreResult(claimText, claim, researchEv, result, response); err != nil {
			c.logger.Warn("cache write failed", zap.Error(err))
		} else if id != "" {
			c.logger.Debug("cached result", zap.String("id", id))
		}
	}

	return response, nil
}

func buildResponse(claimText string, claim model.StructuredClaim, researchEv model.ResearchEvidence, socialEv model.SocialEvidence, result model.Verdict) model.VerdictResponse {
	return model.VerdictResponse{
		ClaimText:           claimText,
		Status:              result.Status,
		Explanation:         result.Explanation,
		Sources:             emptyNotNil(result.Sources),
		ResearchSummary:     researchEv.Summary,
		Findings:            emptyNotNil(researchEv.Findings),
		ResearchLimitations: researchEv.Limitations,
		StructuredClaim:     claim,
		SocialAnalysis: model.SocialAnalysis{
			PostsAnalyzed:        socialEv.PostsAnalyzed,
			ExternalSourcesFound: len(socialEv.ExternalSources),
			Sources:              emptyNotNil(socialEv.ExternalSources),
			DiscussionSummary:    socialEv.DiscussionSummary,
			Note:                 socialEv.AnalysisNote,
		},
	}
}

func emptyNotNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
