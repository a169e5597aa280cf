package pipeline

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/analyzer"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/internal/exchange"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

func validInputs() domain.AnalyzerInputs {
	return domain.AnalyzerInputs{
		PointsOwn:    1000,
		PointsFree:   200,
		PointToToken: 0.5,
		TokenPrice:   1.2,
		RiskProfile:  domain.RiskProfileModerate,
	}
}

func pacificaSource() domain.SourceFile {
	return domain.SourceFile{
		Name: "trades.csv",
		Content: strings.Join([]string{
			"Time,Symbol,Side,Type,Size,Price,Trade Value,Fee,Realized PnL",
			`"2026-01-25 00:20:54","ETH","Close Long","Fulfill Taker","0.0057 ETH","2,946.5","$16.8","$0.01","+$0.11"`,
		}, "\n"),
	}
}

func newTestSession() *Session {
	return NewSession(exchange.NewRegistry(nil), analyzer.NewEngine(nil), nil)
}

func TestSessionAnalyzeEndToEnd(t *testing.T) {
	session := newTestSession()

	result, err := session.Analyze(context.Background(), Request{
		ExchangeID: exchange.PacificaID,
		Sources:    []domain.SourceFile{pacificaSource()},
		Inputs:     validInputs(),
	})
	require.NoError(t, err)

	require.Len(t, result.Parse.Files, 1)
	assert.Equal(t, domain.FileStatusOK, result.Parse.Files[0].Status)
	require.NotNil(t, result.Output)
	assert.InDelta(t, 16.8, result.Output.Trading.VolumeTotalUsd, 1e-9)
	assert.NotEqual(t, domain.FarmHealthUnknown, result.Diagnosis.Health)
	assert.Empty(t, result.Violations)
}

func TestSessionAnalyzeUnknownExchange(t *testing.T) {
	session := newTestSession()

	_, err := session.Analyze(context.Background(), Request{ExchangeID: "nope", Inputs: validInputs()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown exchange "nope"`)
}

func TestSessionAnalyzeInvalidInputsBlockOutput(t *testing.T) {
	session := newTestSession()

	inputs := validInputs()
	inputs.TokenPrice = 0

	result, err := session.Analyze(context.Background(), Request{
		ExchangeID: exchange.PacificaID,
		Sources:    []domain.SourceFile{pacificaSource()},
		Inputs:     inputs,
	})
	require.NoError(t, err)

	assert.Nil(t, result.Output)
	assert.Equal(t, []string{"token_price must be > 0"}, result.Violations)
	assert.Equal(t, domain.FarmHealthUnknown, result.Diagnosis.Health)
	// Parse diagnostics are still available for the import status view.
	require.Len(t, result.Parse.Files, 1)
}

func TestSessionAnalyzeMergesLoadFailures(t *testing.T) {
	session := newTestSession()

	result, err := session.Analyze(context.Background(), Request{
		ExchangeID: exchange.PacificaID,
		Sources:    []domain.SourceFile{pacificaSource()},
		LoadFailures: []domain.FileParseResult{{
			SourceFile: "unreadable.csv",
			Status:     domain.FileStatusError,
			Errors:     []string{"failed to read file: permission denied"},
		}},
		Inputs: validInputs(),
	})
	require.NoError(t, err)

	require.Len(t, result.Parse.Files, 2)
	assert.Equal(t, "unreadable.csv", result.Parse.Files[0].SourceFile)
	assert.Equal(t, domain.FileStatusError, result.Parse.Files[0].Status)
	assert.Equal(t, "trades.csv", result.Parse.Files[1].SourceFile)
	// Unreadable files contribute no rows.
	assert.Len(t, result.Parse.Rows, 1)
}

// blockingAdapter parks its first ParseFiles call until released, so a test
// can start a second analysis while the first is still in flight.
type blockingAdapter struct {
	inner    exchange.Adapter
	calls    atomic.Int32
	entered  chan struct{}
	released chan struct{}
}

func (b *blockingAdapter) ID() string    { return b.inner.ID() }
func (b *blockingAdapter) Label() string { return b.inner.Label() }

func (b *blockingAdapter) ParseFiles(ctx context.Context, files []domain.SourceFile) domain.ExchangeParseResult {
	if b.calls.Add(1) == 1 {
		close(b.entered)
		<-b.released
	}
	return b.inner.ParseFiles(ctx, files)
}

func TestSessionLastCallWins(t *testing.T) {
	registry := exchange.NewRegistry(nil)
	blocker := &blockingAdapter{
		inner:    exchange.NewPacificaAdapter(nil),
		entered:  make(chan struct{}),
		released: make(chan struct{}),
	}
	registry.Register(blocker)
	session := NewSession(registry, analyzer.NewEngine(nil), nil)

	request := Request{
		ExchangeID: exchange.PacificaID,
		Sources:    []domain.SourceFile{pacificaSource()},
		Inputs:     validInputs(),
	}

	type outcome struct {
		result *Result
		err    error
	}
	firstDone := make(chan outcome, 1)

	go func() {
		result, err := session.Analyze(context.Background(), request)
		firstDone <- outcome{result: result, err: err}
	}()

	// Wait for the first run to be mid-parse, then start a newer one.
	<-blocker.entered
	second, err := session.Analyze(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, second.Output)

	close(blocker.released)
	first := <-firstDone
	assert.Nil(t, first.result)
	assert.ErrorIs(t, first.err, ErrSuperseded)
}
