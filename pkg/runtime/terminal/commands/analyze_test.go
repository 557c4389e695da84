package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/services/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEvaluator struct {
	mock.Mock
}

func (m *mockEvaluator) Evaluate(
	ctx context.Context,
	plan domain.PaymentPlan,
	regularAPR float64,
) (*domain.PlanAnalysis, error) {
	args := m.Called(ctx, plan, regularAPR)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanAnalysis), args.Error(1)
}

func (m *mockEvaluator) EvaluateAll(
	ctx context.Context,
	cfg domain.AnalysisConfig,
) ([]*domain.PlanAnalysis, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlanAnalysis), args.Error(1)
}

type countingReporter struct {
	handled int
}

func (r *countingReporter) Handle(_ *domain.PlanAnalysis) error {
	r.handled++
	return nil
}

func writeConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.json")
	content := `{
		"regular_apr": 27.0,
		"payment_plans": [
			{"purchase_amount": 1196.00, "num_payments": 18, "monthly_payment": 80.73, "monthly_fee": 14.28}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func publishedResults(t *testing.T) []*domain.PlanAnalysis {
	t.Helper()
	a, err := analysis.Analyze(domain.PaymentPlan{
		PurchaseAmount: 1196.00,
		NumPayments:    18,
		MonthlyPayment: 80.73,
		MonthlyFee:     14.28,
	}, 27.0)
	require.NoError(t, err)
	return []*domain.PlanAnalysis{a}
}

func TestAnalyzeCmd_ConsoleDefault(t *testing.T) {
	evaluator := new(mockEvaluator)
	evaluator.On("EvaluateAll", mock.Anything, mock.Anything).
		Return(publishedResults(t), nil)

	console := &countingReporter{}
	markdown := &countingReporter{}

	cmd := NewAnalyzeCmd(evaluator, console, markdown, "")
	cmd.SetArgs([]string{"--config", writeConfigFile(t)})
	cmd.SetOut(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 1, console.handled)
	assert.Equal(t, 0, markdown.handled)
	evaluator.AssertExpectations(t)
}

func TestAnalyzeCmd_MarkdownFlag(t *testing.T) {
	evaluator := new(mockEvaluator)
	evaluator.On("EvaluateAll", mock.Anything, mock.Anything).
		Return(publishedResults(t), nil)

	console := &countingReporter{}
	markdown := &countingReporter{}

	cmd := NewAnalyzeCmd(evaluator, console, markdown, "")
	cmd.SetArgs([]string{"--config", writeConfigFile(t), "--markdown"})
	cmd.SetOut(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 0, console.handled)
	assert.Equal(t, 1, markdown.handled)
}

func TestAnalyzeCmd_XLSXExport(t *testing.T) {
	evaluator := new(mockEvaluator)
	evaluator.On("EvaluateAll", mock.Anything, mock.Anything).
		Return(publishedResults(t), nil)

	xlsxPath := filepath.Join(t.TempDir(), "analysis.xlsx")
	cmd := NewAnalyzeCmd(evaluator, &countingReporter{}, &countingReporter{}, "")
	cmd.SetArgs([]string{"--config", writeConfigFile(t), "--xlsx", xlsxPath})
	cmd.SetOut(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestAnalyzeCmd_Profile(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(profilePath, []byte("[strict]\nregular_apr = 19.5\nformat = markdown\n"), 0o644))

	evaluator := new(mockEvaluator)
	evaluator.On("EvaluateAll", mock.Anything, mock.MatchedBy(func(cfg domain.AnalysisConfig) bool {
		return cfg.RegularAPR == 19.5
	})).Return(publishedResults(t), nil)

	console := &countingReporter{}
	markdown := &countingReporter{}

	cmd := NewAnalyzeCmd(evaluator, console, markdown, profilePath)
	cmd.SetArgs([]string{"--config", writeConfigFile(t), "--profile", "strict"})
	cmd.SetOut(new(bytes.Buffer))

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 1, markdown.handled)
	evaluator.AssertExpectations(t)
}

func TestAnalyzeCmd_UnknownProfile(t *testing.T) {
	profilePath := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(profilePath, []byte("[strict]\nregular_apr = 19.5\n"), 0o644))

	cmd := NewAnalyzeCmd(new(mockEvaluator), &countingReporter{}, &countingReporter{}, profilePath)
	cmd.SetArgs([]string{"--config", writeConfigFile(t), "--profile", "missing"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}
