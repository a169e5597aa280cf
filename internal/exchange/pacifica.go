package exchange

import (
	"log/slog"
	"strings"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/numeric"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// PacificaID identifies the Pacifica trade_history adapter.
const PacificaID = "pacifica"

// pacificaColumns is the exact header of a Pacifica trade_history export.
var pacificaColumns = []string{
	"time",
	"symbol",
	"side",
	"type",
	"size",
	"price",
	"trade_value",
	"fee",
	"realized_pnl",
}

var pacificaRequired = []string{
	"time",
	"symbol",
	"trade_value",
	"fee",
	"realized_pnl",
}

var pacificaAliases = map[string]string{
	"time":         "time",
	"symbol":       "symbol",
	"side":         "side",
	"type":         "type",
	"size":         "size",
	"price":        "price",
	"trade_value":  "trade_value",
	"tradevalue":   "trade_value",
	"fee":          "fee",
	"realized_pnl": "realized_pnl",
	"realizedpnl":  "realized_pnl",
}

// NewPacificaAdapter builds the adapter for Pacifica trade history exports.
// Pacifica cells are currency formatted ("$16.8", "-$0.2"), so required
// numeric fields go through the monetary parser, and each trade carries a
// single event time that fills both ends of the row's timestamp pair.
func NewPacificaAdapter(logger *slog.Logger) Adapter {
	return newCSVAdapter(schema{
		exchangeID: PacificaID,
		label:      "Pacifica",
		docKind:    "trade_history",
		columns:    pacificaColumns,
		required:   pacificaRequired,
		aliases:    pacificaAliases,
		buildRow:   buildPacificaRow,
	}, logger)
}

func buildPacificaRow(cells map[string]string, sourceFile string) (domain.NormalizedPositionRow, bool) {
	marketSymbol := strings.TrimSpace(cells["symbol"])
	tradeValue, okValue := numeric.ParseMonetary(cells["trade_value"])
	realizedPnl, okPnl := numeric.ParseMonetary(cells["realized_pnl"])
	fee, okFee := numeric.ParseMonetary(cells["fee"])

	if marketSymbol == "" || !okValue || !okPnl || !okFee {
		return domain.NormalizedPositionRow{}, false
	}

	eventTime := normalizePacificaTime(cells["time"])

	return domain.NormalizedPositionRow{
		SourceFile:            sourceFile,
		MarketSymbol:          marketSymbol,
		NetExposureNotional:   tradeValue,
		CumulativePnlRealized: realizedPnl,
		TotalTradingFees:      fee,
		OpenedAt:              eventTime,
		ClosedAt:              eventTime,
		PositionID:            nil,
	}, true
}

// normalizePacificaTime rewrites "YYYY-MM-DD HH:mm:ss" into the "T"-separated
// form so every timestamp in the pipeline parses the same way.
func normalizePacificaTime(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	if strings.Contains(value, " ") {
		value = strings.Replace(value, " ", "T", 1)
	}
	return &value
}
