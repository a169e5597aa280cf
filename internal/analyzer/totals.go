package analyzer

import (
	"math"
	"sort"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// breakdownAccumulator groups row sums by key while remembering first-seen
// order, so equal-volume buckets keep a stable position after sorting.
type breakdownAccumulator struct {
	buckets map[string]*domain.TradingBreakdown
	order   []string
}

func newBreakdownAccumulator() *breakdownAccumulator {
	return &breakdownAccumulator{buckets: make(map[string]*domain.TradingBreakdown)}
}

func (a *breakdownAccumulator) add(key string, volume, pnl, fees float64) {
	bucket, ok := a.buckets[key]
	if !ok {
		bucket = &domain.TradingBreakdown{Key: key}
		a.buckets[key] = bucket
		a.order = append(a.order, key)
	}
	bucket.VolumeUsd += volume
	bucket.PnlUsd += pnl
	bucket.FeesUsd += fees
	bucket.RowsCount++
}

func (a *breakdownAccumulator) sorted() []domain.TradingBreakdown {
	entries := make([]domain.TradingBreakdown, 0, len(a.order))
	for _, key := range a.order {
		entries = append(entries, *a.buckets[key])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].VolumeUsd > entries[j].VolumeUsd
	})
	return entries
}

// ComputeTradingTotals sums volume, realized PnL and fees over every row.
// Volume counts absolute notional exposure; PnL stays signed. The same sums
// are accumulated per source file and per market symbol, and both breakdowns
// come back sorted descending by volume.
func ComputeTradingTotals(rows []domain.NormalizedPositionRow) domain.TradingTotals {
	totals := domain.TradingTotals{}
	byFile := newBreakdownAccumulator()
	byMarket := newBreakdownAccumulator()

	for _, row := range rows {
		volume := math.Abs(row.NetExposureNotional)
		totals.VolumeTotalUsd += volume
		totals.PnlTotalUsd += row.CumulativePnlRealized
		totals.FeesTotalUsd += row.TotalTradingFees

		byFile.add(row.SourceFile, volume, row.CumulativePnlRealized, row.TotalTradingFees)
		byMarket.add(row.MarketSymbol, volume, row.CumulativePnlRealized, row.TotalTradingFees)
	}

	totals.ByFile = byFile.sorted()
	totals.ByMarket = byMarket.sorted()
	return totals
}
