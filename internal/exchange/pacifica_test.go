package exchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

const pacificaHeader = "Time,Symbol,Side,Type,Size,Price,Trade Value,Fee,Realized PnL"

func pacificaFixture() string {
	return strings.Join([]string{
		pacificaHeader,
		`"2026-01-25 00:20:54","ETH","Close Long","Fulfill Taker","0.0057 ETH","2,946.5","$16.8","$0.01","+$0.11"`,
		`"2026-01-23 11:39:59","ETH","Close Long","Fulfill Taker","0.0057 ETH","2,892.1","$16.48","$0.01","-$0.2"`,
		`"2026-01-22 11:36:59","ETH","Close Long","Fulfill Taker","0.0063 ETH","2,950.8","$18.59","invalid","-$0.01"`,
	}, "\n")
}

func TestPacificaParseTextMonetaryCells(t *testing.T) {
	adapter := NewPacificaAdapter(nil).(*csvAdapter)

	result := adapter.ParseText(pacificaFixture(), "pacifica-trade-history.csv")

	assert.Equal(t, domain.FileStatusOK, result.Status)
	assert.Equal(t, 3, result.RowsTotal)
	assert.Equal(t, 2, result.RowsValid)
	assert.Equal(t, 1, result.RowsInvalid)

	require.NotNil(t, result.MinOpenedAt)
	require.NotNil(t, result.MaxClosedAt)
	assert.Equal(t, "2026-01-23T11:39:59", *result.MinOpenedAt)
	assert.Equal(t, "2026-01-25T00:20:54", *result.MaxClosedAt)

	require.Len(t, result.Rows, 2)
	first := result.Rows[0]
	assert.Equal(t, "ETH", first.MarketSymbol)
	assert.InDelta(t, 16.8, first.NetExposureNotional, 1e-9)
	assert.InDelta(t, 0.01, first.TotalTradingFees, 1e-9)
	assert.InDelta(t, 0.11, first.CumulativePnlRealized, 1e-9)
	assert.Nil(t, first.PositionID)

	// A single event time fills both ends of the timestamp pair.
	require.NotNil(t, first.OpenedAt)
	require.NotNil(t, first.ClosedAt)
	assert.Equal(t, *first.OpenedAt, *first.ClosedAt)
	assert.Equal(t, "2026-01-25T00:20:54", *first.OpenedAt)

	assert.InDelta(t, -0.2, result.Rows[1].CumulativePnlRealized, 1e-9)
}

func TestPacificaHeaderCountMismatch(t *testing.T) {
	adapter := NewPacificaAdapter(nil).(*csvAdapter)

	result := adapter.ParseText("Time,Symbol,Fee\n\"2026-01-01 10:00:00\",\"BTC\",\"$0.02\"", "bad.csv")

	assert.Equal(t, domain.FileStatusError, result.Status)
	assert.Contains(t, strings.Join(result.Errors, "\n"), "invalid column count: expected 9, received 3")
}

func TestPacificaHeaderSequenceMismatch(t *testing.T) {
	adapter := NewPacificaAdapter(nil).(*csvAdapter)

	swapped := strings.Replace(pacificaHeader, "Time,Symbol", "Symbol,Time", 1)
	csv := swapped + "\n" +
		`"ETH","2026-01-25 00:20:54","Close Long","Fulfill Taker","0.0057 ETH","2,946.5","$16.8","$0.01","+$0.11"`

	result := adapter.ParseText(csv, "bad-order.csv")

	assert.Equal(t, domain.FileStatusError, result.Status)

	joined := strings.Join(result.Errors, "\n")
	assert.Contains(t, joined, "invalid column sequence for a trade_history export from Pacifica")
	assert.Contains(t, joined, "received: symbol,time")
}
