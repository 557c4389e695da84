package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/finance-atlas/pkg/export"
	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/services/config"
	"github.com/de-tools/finance-atlas/pkg/services/plans"
	"github.com/spf13/cobra"
)

// Reporter renders one plan analysis.
type Reporter interface {
	Handle(a *domain.PlanAnalysis) error
}

type AnalyzeCmd struct {
	configPath  string
	profile     string
	asMarkdown  bool
	xlsxPath    string
	pdfPath     string
	profilePath string
	evaluator   plans.Evaluator
	console     Reporter
	markdown    Reporter
}

func NewAnalyzeCmd(evaluator plans.Evaluator, console, markdown Reporter, profilePath string) *cobra.Command {
	ac := &AnalyzeCmd{
		evaluator:   evaluator,
		console:     console,
		markdown:    markdown,
		profilePath: profilePath,
	}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze installment plan costs",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to a JSON plan config (default is the built-in samples)")
	cmd.Flags().StringVar(&ac.profile, "profile", "", "Named profile providing the benchmark APR and output format")
	cmd.Flags().BoolVarP(&ac.asMarkdown, "markdown", "m", false, "Render the report as Markdown")
	cmd.Flags().StringVar(&ac.xlsxPath, "xlsx", "", "Also write the analyses to an XLSX workbook at this path")
	cmd.Flags().StringVar(&ac.pdfPath, "pdf", "", "Also write the analyses to a PDF at this path")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadAnalysisConfig(ac.configPath)
	if err != nil {
		return fmt.Errorf("failed to load plan config: %w", err)
	}

	format := domain.FormatConsole
	if ac.profile != "" {
		registry, err := config.NewRegistry(ac.profilePath)
		if err != nil {
			return fmt.Errorf("failed to open profile file %s: %w", ac.profilePath, err)
		}
		profile, err := registry.GetProfile(ctx, ac.profile)
		if err != nil {
			return err
		}
		cfg.RegularAPR = profile.RegularAPR
		format = profile.Format
	}
	if ac.asMarkdown {
		format = domain.FormatMarkdown
	}

	results, err := ac.evaluator.EvaluateAll(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to analyze plans: %w", err)
	}

	reporter := ac.console
	if format == domain.FormatMarkdown {
		reporter = ac.markdown
	}
	for _, a := range results {
		if err := reporter.Handle(a); err != nil {
			return fmt.Errorf("failed to render analysis: %w", err)
		}
	}

	if ac.xlsxPath != "" {
		data, err := export.BuildXLSX(results)
		if err != nil {
			return fmt.Errorf("failed to build XLSX export: %w", err)
		}
		if err := os.WriteFile(ac.xlsxPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", ac.xlsxPath, err)
		}
		cmd.Printf("XLSX export written to %s\n", ac.xlsxPath)
	}
	if ac.pdfPath != "" {
		data, err := export.BuildPDF(results)
		if err != nil {
			return fmt.Errorf("failed to build PDF export: %w", err)
		}
		if err := os.WriteFile(ac.pdfPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", ac.pdfPath, err)
		}
		cmd.Printf("PDF export written to %s\n", ac.pdfPath)
	}

	return nil
}
