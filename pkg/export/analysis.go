package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
)

// BuildXLSX renders analyses into a workbook, one summary and one schedule
// sheet per plan.
func BuildXLSX(analyses []*domain.PlanAnalysis) ([]byte, error) {
	if len(analyses) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}

	f := excelize.NewFile()
	for i, a := range analyses {
		summarySheet := fmt.Sprintf("summary %d", i+1)
		scheduleSheet := fmt.Sprintf("schedule %d", i+1)
		if i == 0 {
			f.SetSheetName("Sheet1", summarySheet)
		} else {
			if _, err := f.NewSheet(summarySheet); err != nil {
				return nil, fmt.Errorf("failed to add sheet %s: %w", summarySheet, err)
			}
		}
		if _, err := f.NewSheet(scheduleSheet); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", scheduleSheet, err)
		}

		writeSummarySheet(f, summarySheet, a)
		writeScheduleSheet(f, scheduleSheet, a)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet string, a *domain.PlanAnalysis) {
	rows := [][2]any{
		{"Fixed Payment Plan Analysis", ""},
		{"", ""},
		{"Purchase Amount", a.Plan.PurchaseAmount},
		{"Number of Payments", a.Plan.NumPayments},
		{"Monthly Payment", a.Plan.MonthlyPayment},
		{"Monthly Fee", a.Plan.MonthlyFee},
		{"Total Cost", a.TotalCost},
		{"Total Fees", a.TotalFees},
		{"Equivalent APR (%)", a.EquivalentRate.AnnualPercent},
		{"", ""},
		{"Regular APR (%)", a.RegularAPR},
		{"Regular Interest Paid", a.Reference.TotalInterest},
		{"Regular Total Cost", a.Reference.TotalCost},
		{"Regular Payments Needed", a.Reference.Periods},
		{"Difference (Plan - Regular)", a.Difference},
		{"", ""},
		{"Simple Interest Equivalent (% APR)", a.Metrics.SimpleAnnualPct},
		{"Fee as % of Purchase (per month)", a.Metrics.FeePerMonthPct},
		{"Average Balance", a.Metrics.AvgBalance},
		{"Effective Rate on Avg Balance (% APR)", a.Metrics.EffectiveAnnualPct},
		{"Fee-Only Rate on Avg Balance (% APR)", a.Metrics.FeeOnlyAnnualPct},
	}
	if a.Recommendation != nil {
		rows = append(rows,
			[2]any{"", ""},
			[2]any{"Pay Off After Month", a.Recommendation.PayoffAfterMonth},
			[2]any{"Remaining Balance At Payoff", a.Recommendation.RemainingBalance},
			[2]any{"High-Cost Months Avoided", a.Recommendation.HighCostMonthsAvoided},
		)
	}

	for i, row := range rows {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), row[0])
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), row[1])
	}
}

func writeScheduleSheet(f *excelize.File, sheet string, a *domain.PlanAnalysis) {
	headers := []string{
		"Month", "Principal", "Fee", "Balance",
		"Effective Monthly Rate (%)", "Effective Annual Rate (%)",
		"Regular Interest", "Difference", "High Cost",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, row := range a.Rows {
		values := []any{
			row.Month, row.Principal, row.Fee, row.Balance,
			row.EffectiveMonthlyRate, row.EffectiveAnnualRate,
			row.RegularInterest, row.Difference, row.HighCost,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
}

// BuildPDF renders analyses into a PDF, one page run per plan.
func BuildPDF(analyses []*domain.PlanAnalysis) ([]byte, error) {
	if len(analyses) == 0 {
		return nil, fmt.Errorf("nothing to export")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	for i, a := range analyses {
		writeAnalysisPage(pdf, i+1, a)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAnalysisPage(pdf *gofpdf.Fpdf, number int, a *domain.PlanAnalysis) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Fixed Payment Plan Analysis #%d", number))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	lines := []string{
		fmt.Sprintf("Plan: %s", a.Plan),
		fmt.Sprintf("Total Cost: %.2f (fees %.2f)", a.TotalCost, a.TotalFees),
		fmt.Sprintf("Equivalent APR: %.2f%%", a.EquivalentRate.AnnualPercent),
		fmt.Sprintf("Regular %.2f%% APR: %d payments, interest %.2f, total %.2f",
			a.RegularAPR, a.Reference.Periods, a.Reference.TotalInterest, a.Reference.TotalCost),
		fmt.Sprintf("Difference (Plan - Regular): %.2f", a.Difference),
	}
	if a.Recommendation != nil {
		lines = append(lines, fmt.Sprintf("Recommended payoff after month %d, remaining balance %.2f",
			a.Recommendation.PayoffAfterMonth, a.Recommendation.RemainingBalance))
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	// Schedule table
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(18, 6, "Month", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Principal", "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 6, "Fee", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Balance", "1", 0, "C", false, 0, "")
	pdf.CellFormat(28, 6, "Eff. Rate/mo", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Reg. Interest", "1", 0, "C", false, 0, "")
	pdf.CellFormat(24, 6, "High Cost", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range a.Rows {
		highCost := ""
		if row.HighCost {
			highCost = "*"
		}
		pdf.CellFormat(18, 6, fmt.Sprintf("%d", row.Month), "1", 0, "C", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f", row.Principal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, fmt.Sprintf("%.2f", row.Fee), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f", row.Balance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(28, 6, fmt.Sprintf("%.2f%%", row.EffectiveMonthlyRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", row.RegularInterest), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, highCost, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}
