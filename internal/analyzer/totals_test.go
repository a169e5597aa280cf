package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

func TestComputeTradingTotalsBreakdowns(t *testing.T) {
	rows := []domain.NormalizedPositionRow{
		{SourceFile: "a.csv", MarketSymbol: "BTC", NetExposureNotional: -1000, CumulativePnlRealized: -100, TotalTradingFees: 10},
		{SourceFile: "b.csv", MarketSymbol: "ETH", NetExposureNotional: 500, CumulativePnlRealized: 50, TotalTradingFees: 5},
		{SourceFile: "a.csv", MarketSymbol: "ETH", NetExposureNotional: 200, CumulativePnlRealized: 20, TotalTradingFees: 2},
	}

	totals := ComputeTradingTotals(rows)

	assert.InDelta(t, 1700, totals.VolumeTotalUsd, 1e-9)
	assert.InDelta(t, -30, totals.PnlTotalUsd, 1e-9)
	assert.InDelta(t, 17, totals.FeesTotalUsd, 1e-9)

	require.Len(t, totals.ByFile, 2)
	assert.Equal(t, "a.csv", totals.ByFile[0].Key)
	assert.InDelta(t, 1200, totals.ByFile[0].VolumeUsd, 1e-9)
	assert.Equal(t, 2, totals.ByFile[0].RowsCount)
	assert.Equal(t, "b.csv", totals.ByFile[1].Key)

	require.Len(t, totals.ByMarket, 2)
	assert.Equal(t, "BTC", totals.ByMarket[0].Key)
	assert.InDelta(t, 1000, totals.ByMarket[0].VolumeUsd, 1e-9)
	assert.Equal(t, "ETH", totals.ByMarket[1].Key)
	assert.InDelta(t, 700, totals.ByMarket[1].VolumeUsd, 1e-9)
	assert.InDelta(t, 70, totals.ByMarket[1].PnlUsd, 1e-9)
}

func TestComputeTradingTotalsEmpty(t *testing.T) {
	totals := ComputeTradingTotals(nil)

	assert.Zero(t, totals.VolumeTotalUsd)
	assert.Zero(t, totals.PnlTotalUsd)
	assert.Zero(t, totals.FeesTotalUsd)
	assert.Empty(t, totals.ByFile)
	assert.Empty(t, totals.ByMarket)
}

func TestComputeTradingTotalsStableTieOrder(t *testing.T) {
	rows := []domain.NormalizedPositionRow{
		{SourceFile: "first.csv", MarketSymbol: "AAA", NetExposureNotional: 100},
		{SourceFile: "second.csv", MarketSymbol: "BBB", NetExposureNotional: -100},
	}

	totals := ComputeTradingTotals(rows)

	require.Len(t, totals.ByFile, 2)
	assert.Equal(t, "first.csv", totals.ByFile[0].Key)
	assert.Equal(t, "second.csv", totals.ByFile[1].Key)
}
