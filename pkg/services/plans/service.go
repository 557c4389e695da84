package plans

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/observability/metrics"
	"github.com/de-tools/finance-atlas/pkg/services/analysis"
	"github.com/rs/zerolog"
)

// Evaluator runs plan analyses.
type Evaluator interface {
	// Evaluate analyzes a single plan against the given benchmark APR.
	Evaluate(ctx context.Context, plan domain.PaymentPlan, regularAPR float64) (*domain.PlanAnalysis, error)
	// EvaluateAll analyzes every plan in the config against its APR.
	EvaluateAll(ctx context.Context, cfg domain.AnalysisConfig) ([]*domain.PlanAnalysis, error)
}

type service struct{}

// NewService creates the default evaluator.
func NewService() Evaluator {
	return &service{}
}

func (s *service) Evaluate(
	ctx context.Context,
	plan domain.PaymentPlan,
	regularAPR float64,
) (*domain.PlanAnalysis, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	a, err := analysis.Analyze(plan, regularAPR)
	if err != nil {
		metrics.ObserveAnalysis(metrics.ResultError, time.Since(start))
		return nil, err
	}

	metrics.ObserveAnalysis(metrics.ResultSuccess, time.Since(start))
	metrics.ObserveSolverIterations(a.EquivalentRate.Iterations)

	logger.Debug().
		Str("plan", plan.String()).
		Float64("equivalent_apr", a.EquivalentRate.AnnualPercent).
		Int("high_cost_months", len(a.HighCostMonths)).
		Msg("plan analyzed")

	return a, nil
}

func (s *service) EvaluateAll(
	ctx context.Context,
	cfg domain.AnalysisConfig,
) ([]*domain.PlanAnalysis, error) {
	results := make([]*domain.PlanAnalysis, 0, len(cfg.PaymentPlans))
	for i, plan := range cfg.PaymentPlans {
		a, err := s.Evaluate(ctx, plan, cfg.RegularAPR)
		if err != nil {
			return nil, fmt.Errorf("plan %d of %d: %w", i+1, len(cfg.PaymentPlans), err)
		}
		results = append(results, a)
	}
	return results, nil
}
