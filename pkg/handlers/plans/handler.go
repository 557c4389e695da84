package plans

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/de-tools/finance-atlas/pkg/adapters"
	"github.com/de-tools/finance-atlas/pkg/export"
	"github.com/de-tools/finance-atlas/pkg/models/api"
	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/observability/metrics"
	"github.com/de-tools/finance-atlas/pkg/services/analysis"
	"github.com/de-tools/finance-atlas/pkg/services/plans"
	"github.com/de-tools/finance-atlas/pkg/services/rates"
	"github.com/rs/zerolog"
)

const (
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

type Handler struct {
	evaluator  plans.Evaluator
	defaultAPR float64
}

func NewHandler(evaluator plans.Evaluator) *Handler {
	return &Handler{
		evaluator:  evaluator,
		defaultAPR: domain.DefaultRegularAPR,
	}
}

// GetSamplePlans returns the built-in demonstration plans.
func (h *Handler) GetSamplePlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	samples := domain.SamplePlans()
	response := make([]api.PaymentPlan, 0, len(samples))
	for _, plan := range samples {
		response = append(response, adapters.MapPaymentPlanDomainToApi(plan))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode sample plans")
	}
}

// AnalyzePlan runs the full analysis for one plan. A missing or zero
// regular_apr falls back to the server default.
func (h *Handler) AnalyzePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	req, err := decodeAnalyzeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.evaluator.Evaluate(ctx, adapters.MapPaymentPlanApiToDomain(req.Plan), req.RegularAPR)
	if err != nil {
		writeAnalysisError(w, logger, err)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapPlanAnalysisDomainToApi(result)); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode plan analysis")
	}
}

// SolveRate returns only the plan's equivalent interest rate.
func (h *Handler) SolveRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	plan := adapters.MapPaymentPlanApiToDomain(req.Plan)
	if err := plan.Validate(); err != nil {
		writeAnalysisError(w, logger, err)
		return
	}

	solved, err := rates.SolveEquivalentRate(plan.PurchaseAmount, plan.MonthlyPayment, plan.NumPayments)
	if err != nil {
		writeAnalysisError(w, logger, err)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapSolvedRateDomainToApi(solved)); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode solved rate")
	}
}

// ExportAnalysis runs the analysis and streams it back as an XLSX workbook
// or a PDF, selected by the `format` query parameter.
func (h *Handler) ExportAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatXLSX
	}
	if format != formatXLSX && format != formatPDF {
		http.Error(w, fmt.Sprintf("unsupported export format %q", format), http.StatusBadRequest)
		return
	}

	req, err := decodeAnalyzeRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.evaluator.Evaluate(ctx, adapters.MapPaymentPlanApiToDomain(req.Plan), req.RegularAPR)
	if err != nil {
		metrics.IncExport(format, metrics.ResultError)
		writeAnalysisError(w, logger, err)
		return
	}

	var data []byte
	var contentType string
	switch format {
	case formatXLSX:
		data, err = export.BuildXLSX([]*domain.PlanAnalysis{result})
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case formatPDF:
		data, err = export.BuildPDF([]*domain.PlanAnalysis{result})
		contentType = "application/pdf"
	}
	if err != nil {
		metrics.IncExport(format, metrics.ResultError)
		logger.Error().Err(err).Str("format", format).Msg("failed to build export")
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}

	metrics.IncExport(format, metrics.ResultSuccess)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=plan-analysis.%s", format))
	if _, err := w.Write(data); err != nil {
		logger.Error().
			Err(err).
			Str("format", format).
			Msg("failed to write export")
	}
}

func decodeAnalyzeRequest(r *http.Request) (api.AnalyzeRequest, error) {
	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return api.AnalyzeRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	if req.RegularAPR == 0 {
		req.RegularAPR = domain.DefaultRegularAPR
	}
	return req, nil
}

func writeAnalysisError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var convErr *rates.ConvergenceError
	switch {
	case errors.Is(err, domain.ErrInvalidPlan):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &convErr), errors.Is(err, analysis.ErrReferenceNonConvergent):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Error().Err(err).Msg("plan analysis failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
