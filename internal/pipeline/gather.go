package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/research"
	"github.com/unmai/unmai/internal/social"
	"github.com/unmai/unmai/internal/structurer"
)

// Orchestrator schedules the two evidence gatherers and applies the
// relevance check with a single alternate-query retry.
type Orchestrator struct {
	research         *research.Gatherer
	social           *social.Gatherer
	mode             model.GatherMode
	primaryTimeout   time.Duration
	secondaryTimeout time.Duration
	logger           *zap.Logger
}

// NewOrchestrator creates an evidence orchestrator
func NewOrchestrator(researchGatherer *research.Gatherer, socialGatherer *social.Gatherer, cfg model.OrchestratorConfig, logger *zap.Logger) *Orchestrator {
	primaryTimeout := cfg.PrimaryTimeout
	if primaryTimeout == 0 {
		primaryTimeout = 60 * time.Second
	}
	secondaryTimeout := cfg.SecondaryTimeout
	if secondaryTimeout == 0 {
		secondaryTimeout = 30 * time.Second
	}
	mode := cfg.Mode
	if mode == "" {
		mode = model.GatherParallel
	}
	return &Orchestrator{
		research:         researchGatherer,
		social:           socialGatherer,
		mode:             mode,
		primaryTimeout:   primaryTimeout,
		secondaryTimeout: secondaryTimeout,
		logger:           logger,
	}
}

// Gather runs both gatherers under the configured mode and returns their
// evidence. Deep research is required but degrades to a fallback shape on
// failure; social evidence is optional and degrades independently.
func (o *Orchestrator) Gather(ctx context.Context, query string, claim model.StructuredClaim) (model.ResearchEvidence, model.SocialEvidence) {
	var researchEv model.ResearchEvidence
	var socialEv model.SocialEvidence

	switch o.mode {
	case model.GatherSocialFirst:
		socialEv = o.gatherSocial(ctx, claim, query)
		researchEv = o.gatherResearch(ctx, query, claim, socialEv.Posts)
	default:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			researchEv = o.gatherResearch(gctx, query, claim, nil)
			return nil
		})
		g.Go(func() error {
			socialEv = o.gatherSocial(gctx, claim, query)
			return nil
		})
		_ = g.Wait()
	}

	if !research.AssessRelevance(researchEv) {
		altQuery := structurer.BuildAlternateQuery(claim)
		if altQuery != "" && altQuery != query {
			o.logger.Info("research not relevant, retrying with alternate query",
				zap.String("alternate_query", altQuery))
			retry := o.gatherResearch(ctx, altQuery, claim, socialEv.Posts)
			if research.AssessRelevance(retry) {
				researchEv = retry
			}
		}
	}

	return researchEv, socialEv
}

func (o *Orchestrator) gatherResearch(ctx context.Context, query string, claim model.StructuredClaim, leads []model.SocialPost) model.ResearchEvidence {
	ctx, cancel := context.WithTimeout(ctx, o.primaryTimeout)
	defer cancel()
	return o.research.Research(ctx, query, claim, leads)
}

func (o *Orchestrator) gatherSocial(ctx context.Context, claim model.StructuredClaim, query string) model.SocialEvidence {
	ctx, cancel := context.WithTimeout(ctx, o.secondaryTimeout)
	defer cancel()
	return o.social.Gather(ctx, claim, query)
}
