package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/hh-scorer/internal/logger"
	"github.com/spigell/hh-scorer/internal/model"
)

// Stage is an optional enrichment step of the pipeline. When Run fails or
// panics the result of Fallback is used instead and the failure is recorded
// on the assessment.
type Stage[T any] struct {
	Name     string
	Run      func() (T, error)
	Fallback func() T
}

// runStage executes st. It never panics and never returns an error.
func runStage[T any](s *Service, log *zap.Logger, res *model.AssessmentResult, st Stage[T]) (out T) {
	defer func() {
		if r := recover(); r != nil {
			out = fallback(s, log, res, st, fmt.Errorf("panic: %v", r))
		}
	}()

	v, err := st.Run()
	if err != nil {
		return fallback(s, log, res, st, err)
	}
	log.Debug("stage completed", logger.Stage(st.Name))
	return v
}

func fallback[T any](s *Service, log *zap.Logger, res *model.AssessmentResult, st Stage[T], err error) T {
	log.Warn("stage failed, using neutral default", logger.Stage(st.Name), zap.Error(err))
	if s.metrics != nil {
		s.metrics.StageFallbacks.WithLabelValues(st.Name).Inc()
	}
	res.Fallbacks = append(res.Fallbacks, fmt.Sprintf("%s: %v", st.Name, err))
	return st.Fallback()
}
