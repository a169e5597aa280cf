package exchange

import (
	"log/slog"
	"strings"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/numeric"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// BackpackID identifies the Backpack position_history adapter.
const BackpackID = "backpack"

// backpackColumns is the exact header of a Backpack position_history export.
var backpackColumns = []string{
	"position_id",
	"market_symbol",
	"net_quantity",
	"net_exposure_quantity",
	"net_exposure_notional",
	"net_cost",
	"mark_price",
	"entry_price",
	"cumulative_pnl_realized",
	"total_unrealized_pnl",
	"total_funding_quantity",
	"total_interest",
	"total_liquidated",
	"total_trading_fees",
	"last_event_type",
	"max_net_quantity",
	"max_net_quantity_direction",
	"closing_price",
	"account_leverage",
	"opened_at",
	"closed_at",
}

var backpackRequired = []string{
	"market_symbol",
	"net_exposure_notional",
	"cumulative_pnl_realized",
	"total_trading_fees",
}

var backpackAliases = map[string]string{
	"marketsymbol":            "market_symbol",
	"market_symbol":           "market_symbol",
	"marketsymbolperp":        "market_symbol",
	"netexposurenotional":     "net_exposure_notional",
	"net_exposure_notional":   "net_exposure_notional",
	"cumulativepnlrealized":   "cumulative_pnl_realized",
	"cumulative_pnl_realized": "cumulative_pnl_realized",
	"totaltradingfees":        "total_trading_fees",
	"total_trading_fees":      "total_trading_fees",
	"openedat":                "opened_at",
	"opened_at":               "opened_at",
	"closedat":                "closed_at",
	"closed_at":               "closed_at",
	"positionid":              "position_id",
	"position_id":             "position_id",
}

// NewBackpackAdapter builds the adapter for Backpack position history exports.
func NewBackpackAdapter(logger *slog.Logger) Adapter {
	return newCSVAdapter(schema{
		exchangeID: BackpackID,
		label:      "Backpack",
		docKind:    "position_history",
		columns:    backpackColumns,
		required:   backpackRequired,
		aliases:    backpackAliases,
		buildRow:   buildBackpackRow,
	}, logger)
}

func buildBackpackRow(cells map[string]string, sourceFile string) (domain.NormalizedPositionRow, bool) {
	marketSymbol := strings.TrimSpace(cells["market_symbol"])
	netExposureNotional, okNotional := numeric.Parse(cells["net_exposure_notional"])
	cumulativePnlRealized, okPnl := numeric.Parse(cells["cumulative_pnl_realized"])
	totalTradingFees, okFees := numeric.Parse(cells["total_trading_fees"])

	if marketSymbol == "" || !okNotional || !okPnl || !okFees {
		return domain.NormalizedPositionRow{}, false
	}

	return domain.NormalizedPositionRow{
		SourceFile:            sourceFile,
		MarketSymbol:          marketSymbol,
		NetExposureNotional:   netExposureNotional,
		CumulativePnlRealized: cumulativePnlRealized,
		TotalTradingFees:      totalTradingFees,
		OpenedAt:              optString(cells["opened_at"]),
		ClosedAt:              optString(cells["closed_at"]),
		PositionID:            optString(cells["position_id"]),
	}, true
}
