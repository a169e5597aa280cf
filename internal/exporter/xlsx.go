package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// WorkbookWriter builds a single xlsx workbook with the full analysis spread
// over Summary, Breakdowns, Sell Plans and Files sheets.
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates an xlsx report writer.
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// Write saves the complete analysis workbook at path.
func (w *WorkbookWriter) Write(path string, parse domain.ExchangeParseResult, output *domain.AnalyzerOutput, diagnosis domain.FarmDiagnosis) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummarySheet(f, output, diagnosis); err != nil {
		return err
	}
	if err := w.writeBreakdownsSheet(f, output.Trading); err != nil {
		return err
	}
	if err := w.writeSellPlansSheet(f, output.SellPlans); err != nil {
		return err
	}
	if err := w.writeFilesSheet(f, parse); err != nil {
		return err
	}

	// The default sheet is replaced by Summary.
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("wrote analysis workbook",
		slog.String("path", path),
		slog.Int("files", len(parse.Files)),
		slog.Int("sell_plans", len(output.SellPlans)))

	return nil
}

func (w *WorkbookWriter) writeSummarySheet(f *excelize.File, output *domain.AnalyzerOutput, diagnosis domain.FarmDiagnosis) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	m := output.Metrics
	rows := [][]any{
		{"Metric", "Value"},
		{"Points total", output.Tokens.PointsTotal},
		{"Tokens total", output.Tokens.TokensTotal},
		{"Tokens free", output.Tokens.TokensFree},
		{"Tokens paid", output.Tokens.TokensPaid},
		{"Volume total (USD)", output.Trading.VolumeTotalUsd},
		{"PnL total (USD)", output.Trading.PnlTotalUsd},
		{"Fees total (USD)", output.Trading.FeesTotalUsd},
		{"Cost (USD)", m.CostUsd},
		{"Value (USD)", m.ValueUsd},
		{"Net profit (USD)", m.NetProfitUsd},
		{"ROI", optionalCell(m.Roi)},
		{"Cost per token (total)", optionalCell(m.CostPerTokenTotal)},
		{"Cost per token (paid)", optionalCell(m.CostPerTokenPaid)},
		{"Break-even price", optionalCell(m.BreakEvenPrice)},
		{"Points per $1M volume", optionalCell(m.PointsPer1mVolume)},
		{"Farm health", string(diagnosis.Health)},
		{"Gap to zero", optionalCell(diagnosis.GapToZero)},
	}
	return writeSheetRows(f, sheet, rows)
}

func (w *WorkbookWriter) writeBreakdownsSheet(f *excelize.File, trading domain.TradingTotals) error {
	const sheet = "Breakdowns"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]any{{"Scope", "Key", "Volume (USD)", "PnL (USD)", "Fees (USD)", "Rows"}}
	for _, entry := range trading.ByFile {
		rows = append(rows, []any{"file", entry.Key, entry.VolumeUsd, entry.PnlUsd, entry.FeesUsd, entry.RowsCount})
	}
	for _, entry := range trading.ByMarket {
		rows = append(rows, []any{"market", entry.Key, entry.VolumeUsd, entry.PnlUsd, entry.FeesUsd, entry.RowsCount})
	}
	return writeSheetRows(f, sheet, rows)
}

func (w *WorkbookWriter) writeSellPlansSheet(f *excelize.File, plans []domain.SellPlan) error {
	const sheet = "Sell Plans"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]any{{
		"Profile", "Sell %", "Hold %", "Tokens sell", "Tokens hold",
		"Value sell now", "Cost allocated", "Locked profit",
		"Scenario", "Scenario price", "Future value hold", "Future total value", "Future net profit",
	}}
	for _, plan := range plans {
		for _, scenario := range plan.Scenarios {
			rows = append(rows, []any{
				string(plan.Profile), plan.SellPct, plan.HoldPct,
				plan.TokensSell, plan.TokensHold,
				plan.ValueSellNow, plan.CostAllocatedToSell, plan.LockedProfit,
				string(scenario.ScenarioKey), scenario.ScenarioPrice,
				scenario.FutureValueHold, scenario.FutureTotalValue, scenario.FutureNetProfit,
			})
		}
	}
	return writeSheetRows(f, sheet, rows)
}

func (w *WorkbookWriter) writeFilesSheet(f *excelize.File, parse domain.ExchangeParseResult) error {
	const sheet = "Files"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]any{{
		"Source file", "Status", "Rows total", "Rows valid", "Rows invalid",
		"First opened", "Last closed", "Errors",
	}}
	for _, file := range parse.Files {
		rows = append(rows, []any{
			file.SourceFile, string(file.Status),
			file.RowsTotal, file.RowsValid, file.RowsInvalid,
			formatOptionalString(file.MinOpenedAt), formatOptionalString(file.MaxClosedAt),
			strings.Join(file.Errors, "; "),
		})
	}
	return writeSheetRows(f, sheet, rows)
}

func writeSheetRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to resolve cell (%d,%d): %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// optionalCell leaves undefined metrics as blank cells instead of zeroes.
func optionalCell(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
