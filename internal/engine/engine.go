// Package engine wires the scoring pipeline into a service that evaluates one
// candidate or a whole batch against a job.
package engine

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/growth"
	"github.com/spigell/hh-scorer/internal/insights"
	"github.com/spigell/hh-scorer/internal/metrics"
	"github.com/spigell/hh-scorer/internal/model"
	"github.com/spigell/hh-scorer/internal/recommendation"
	"github.com/spigell/hh-scorer/internal/rejection"
	"github.com/spigell/hh-scorer/internal/scoring"
	"github.com/spigell/hh-scorer/internal/skills"
	"github.com/spigell/hh-scorer/internal/taxonomy"
)

// ModelVersion tags every assessment produced by this engine.
const ModelVersion = "2.0.0"

var (
	// ErrNotReady is returned when the scoring backend has no taxonomy.
	ErrNotReady = errors.New("scoring engine not ready")
	// ErrEvaluationPanic wraps a recovered panic in the core pipeline.
	ErrEvaluationPanic = errors.New("evaluation panicked")
)

// Options configures a Service.
type Options struct {
	// Taxonomy is required for real scoring. Without it every evaluation is a mock.
	Taxonomy *taxonomy.Taxonomy
	// Embedder enables semantic skill matching. Nil disables it.
	Embedder skills.Embedder
	Logger   *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Workers bounds batch concurrency, defaulting to GOMAXPROCS.
	Workers int
	// Metrics is optional.
	Metrics *metrics.Metrics
	// DisabledRules maps hard rule names to the reason they are disabled.
	DisabledRules map[string]string
}

// Service evaluates candidates. It holds only read-only configuration after
// construction and is safe for concurrent use.
type Service struct {
	tax      *taxonomy.Taxonomy
	embedder skills.Embedder
	log      *zap.Logger
	now      func() time.Time
	workers  int
	metrics  *metrics.Metrics

	rules       []rejection.Rule
	scorer      *scoring.Scorer
	growth      *growth.Analyzer
	insights    *insights.Generator
	recommender *recommendation.Engine
}

// New builds a service from opts.
func New(opts Options) *Service {
	s := &Service{
		tax:      opts.Taxonomy,
		embedder: opts.Embedder,
		log:      opts.Logger,
		now:      opts.Clock,
		workers:  opts.Workers,
		metrics:  opts.Metrics,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}

	if s.tax == nil {
		s.log.Warn("no taxonomy loaded, evaluations will be mocked")
		return s
	}

	s.rules = rejection.DefaultRules(s.tax.Thresholds())
	for name, reason := range opts.DisabledRules {
		rejection.DisableByName(s.rules, name, reason)
	}
	s.scorer = scoring.NewScorer(s.tax, skills.NewMatcher(s.tax, s.embedder, s.log), s.log)
	s.growth = growth.NewAnalyzer(s.now)
	s.insights = insights.NewGenerator(s.tax.Thresholds(), s.now)
	s.recommender = recommendation.NewEngine(s.tax.Intervals())

	return s
}

// Rules describes the hard rejection rules and whether they are enabled.
func (s *Service) Rules() []rejection.Status {
	return rejection.Describe(s.rules)
}

// Health reports whether the scoring backend is usable. The embedder is
// probed with a short text.
func (s *Service) Health(ctx context.Context) model.Health {
	h := model.Health{Status: model.HealthHealthy, Embedder: "none"}

	if s.tax == nil {
		h.Status = model.HealthUnavailable
		h.Issues = append(h.Issues, "taxonomy not loaded, evaluations are mocked")
	} else {
		h.TaxonomyLoaded = true
		h.TaxonomyVersion = s.tax.Version()
	}

	if named, ok := s.embedder.(interface{ Name() string }); ok {
		h.Embedder = named.Name()
	}

	switch {
	case s.embedder == nil:
		h.Issues = append(h.Issues, "semantic skill matching disabled")
	default:
		if _, err := s.embedder.Embed(ctx, "health check"); err != nil {
			h.Issues = append(h.Issues, "embedder unavailable: "+err.Error())
		} else {
			h.EmbedderReady = true
		}
	}

	if h.Status == model.HealthHealthy && !h.EmbedderReady {
		h.Status = model.HealthDegraded
	}
	return h
}
