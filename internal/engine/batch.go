package engine

import (
	"context"
	"fmt"
	"maps"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/hh-scorer/internal/logger"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/ranking"
)

// EvaluateBatch scores every candidate against job with bounded concurrency
// and ranks the outcome by criterion. A candidate that cannot be evaluated is
// reported in Errors and left out of the ranking; it never aborts the batch.
// Results keep the input order.
func (s *Service) EvaluateBatch(ctx context.Context, job model.Record, candidates []model.Record, criterion ranking.Criterion) *model.BatchResult {
	out := &model.BatchResult{
		JobID:   job.ID(),
		Results: []*model.AssessmentResult{},
		Errors:  []model.BatchError{},
		Ranking: []model.RankedCandidate{},
	}
	if len(candidates) == 0 {
		return out
	}

	log := logger.WithCommonFields(s.log, "", job.ID()).With(zap.Int("candidates", len(candidates)))
	log.Info("starting batch evaluation", zap.Int("workers", s.workers), zap.String("criterion", string(criterion)))

	results := make([]*model.AssessmentResult, len(candidates))
	errs := make([]error, len(candidates))
	ids := make([]string, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, cand := range candidates {
		if cand.ID() == "" {
			cand = maps.Clone(cand)
			if cand == nil {
				cand = model.Record{}
			}
			cand["id"] = fmt.Sprintf("candidate-%d", i+1)
		}
		ids[i] = cand.ID()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = s.evaluate(gctx, cand, job)
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		if errs[i] != nil {
			log.Error("candidate evaluation failed", zap.String(logger.FieldCandidate, ids[i]), zap.Error(errs[i]))
			if s.metrics != nil {
				s.metrics.BatchFailures.Inc()
			}
			out.Errors = append(out.Errors, model.BatchError{CandidateID: ids[i], Index: i, Error: errs[i].Error()})
			continue
		}
		out.Results = append(out.Results, res)
	}

	out.Ranking = ranking.Rank(out.Results, criterion)
	out.Matrix = ranking.Matrix(out.Ranking, criterion)

	log.Info("batch evaluation finished",
		zap.Int("evaluated", len(out.Results)),
		zap.Int("failed", len(out.Errors)),
	)
	return out
}
