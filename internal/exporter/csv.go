// Package exporter renders analysis results into report files consumed
// outside the core: CSV reports for spreadsheet import and an xlsx workbook
// with the full analysis. Nullable metrics render as empty cells, never as
// zero.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// CSVWriter writes the CSV report files.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV report writer.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// writeCSV writes one CSV file with a UTF-8 BOM so Excel opens it correctly.
func (w *CSVWriter) writeCSV(path string, headers []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	w.logger.Info("wrote CSV report",
		slog.String("path", path),
		slog.Int("records", len(records)))

	return writer.Error()
}

// WriteSummary writes the metric/value summary of one analysis.
func (w *CSVWriter) WriteSummary(path string, output *domain.AnalyzerOutput, diagnosis domain.FarmDiagnosis) error {
	m := output.Metrics
	records := [][]string{
		{"points_total", formatAmount(output.Tokens.PointsTotal)},
		{"tokens_total", formatAmount(output.Tokens.TokensTotal)},
		{"tokens_free", formatAmount(output.Tokens.TokensFree)},
		{"tokens_paid", formatAmount(output.Tokens.TokensPaid)},
		{"volume_total_usd", formatUSD(output.Trading.VolumeTotalUsd)},
		{"pnl_total_usd", formatUSD(output.Trading.PnlTotalUsd)},
		{"fees_total_usd", formatUSD(output.Trading.FeesTotalUsd)},
		{"cost_usd", formatUSD(m.CostUsd)},
		{"value_usd", formatUSD(m.ValueUsd)},
		{"net_profit_usd", formatUSD(m.NetProfitUsd)},
		{"roi", formatOptional(m.Roi, formatAmount)},
		{"cost_per_token_total", formatOptional(m.CostPerTokenTotal, formatPrice)},
		{"cost_per_token_paid", formatOptional(m.CostPerTokenPaid, formatPrice)},
		{"break_even_price", formatOptional(m.BreakEvenPrice, formatPrice)},
		{"points_per_1m_volume", formatOptional(m.PointsPer1mVolume, formatAmount)},
		{"farm_health", string(diagnosis.Health)},
		{"gap_to_zero", formatOptional(diagnosis.GapToZero, formatAmount)},
	}
	return w.writeCSV(path, []string{"metric", "value"}, records)
}

// WriteBreakdowns writes the per-file and per-market trading breakdowns.
func (w *CSVWriter) WriteBreakdowns(path string, trading domain.TradingTotals) error {
	headers := []string{"scope", "key", "volume_usd", "pnl_usd", "fees_usd", "rows_count"}

	var records [][]string
	appendScope := func(scope string, entries []domain.TradingBreakdown) {
		for _, entry := range entries {
			records = append(records, []string{
				scope,
				entry.Key,
				formatUSD(entry.VolumeUsd),
				formatUSD(entry.PnlUsd),
				formatUSD(entry.FeesUsd),
				formatInt(entry.RowsCount),
			})
		}
	}
	appendScope("file", trading.ByFile)
	appendScope("market", trading.ByMarket)

	return w.writeCSV(path, headers, records)
}

// WriteSellPlans writes one row per plan scenario.
func (w *CSVWriter) WriteSellPlans(path string, plans []domain.SellPlan) error {
	headers := []string{
		"profile", "sell_pct", "hold_pct", "tokens_sell", "tokens_hold",
		"value_sell_now", "cost_allocated_to_sell", "locked_profit",
		"scenario", "scenario_price", "future_value_hold", "future_total_value", "future_net_profit",
	}

	var records [][]string
	for _, plan := range plans {
		for _, scenario := range plan.Scenarios {
			records = append(records, []string{
				string(plan.Profile),
				formatPct(plan.SellPct),
				formatPct(plan.HoldPct),
				formatAmount(plan.TokensSell),
				formatAmount(plan.TokensHold),
				formatUSD(plan.ValueSellNow),
				formatUSD(plan.CostAllocatedToSell),
				formatUSD(plan.LockedProfit),
				string(scenario.ScenarioKey),
				formatPrice(scenario.ScenarioPrice),
				formatUSD(scenario.FutureValueHold),
				formatUSD(scenario.FutureTotalValue),
				formatUSD(scenario.FutureNetProfit),
			})
		}
	}

	return w.writeCSV(path, headers, records)
}

// WriteFilesReport writes the per-file import diagnostics.
func (w *CSVWriter) WriteFilesReport(path string, parse domain.ExchangeParseResult) error {
	headers := []string{
		"source_file", "status", "rows_total", "rows_valid", "rows_invalid",
		"min_opened_at", "max_closed_at", "errors",
	}

	records := make([][]string, 0, len(parse.Files))
	for _, file := range parse.Files {
		records = append(records, []string{
			file.SourceFile,
			string(file.Status),
			formatInt(file.RowsTotal),
			formatInt(file.RowsValid),
			formatInt(file.RowsInvalid),
			formatOptionalString(file.MinOpenedAt),
			formatOptionalString(file.MaxClosedAt),
			strings.Join(file.Errors, "; "),
		})
	}

	return w.writeCSV(path, headers, records)
}
