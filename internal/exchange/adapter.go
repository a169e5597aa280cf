package exchange

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/OvictorVieira/exchange.airdrop.analyzer/internal/errors"
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// Adapter parses a batch of raw export files for one exchange.
// Implementations isolate failures per file: a broken file contributes an
// error FileParseResult and nothing else stops.
type Adapter interface {
	ID() string
	Label() string
	ParseFiles(ctx context.Context, files []domain.SourceFile) domain.ExchangeParseResult
}

// rowBuilder maps the canonical cells of one record onto a normalized row.
// It reports false when a required field is empty or unparseable, which
// invalidates the row without failing the file.
type rowBuilder func(cells map[string]string, sourceFile string) (domain.NormalizedPositionRow, bool)

// schema is the fixed contract one exchange export must match.
type schema struct {
	exchangeID string
	label      string
	docKind    string
	columns    []string
	required   []string
	aliases    map[string]string
	buildRow   rowBuilder
}

// csvAdapter is the shared adapter implementation; exchange variants differ
// only in their schema.
type csvAdapter struct {
	schema schema
	logger *slog.Logger
}

func newCSVAdapter(s schema, logger *slog.Logger) *csvAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &csvAdapter{schema: s, logger: logger}
}

func (a *csvAdapter) ID() string    { return a.schema.exchangeID }
func (a *csvAdapter) Label() string { return a.schema.label }

// ParseFiles processes every file independently and concatenates the rows of
// the ok files in file order.
func (a *csvAdapter) ParseFiles(ctx context.Context, files []domain.SourceFile) domain.ExchangeParseResult {
	result := domain.ExchangeParseResult{ExchangeID: a.schema.exchangeID}

	for _, file := range files {
		if ctx.Err() != nil {
			a.logger.DebugContext(ctx, "parse batch cancelled",
				slog.String("exchange", a.schema.exchangeID),
				slog.Int("files_done", len(result.Files)))
			break
		}

		if !strings.HasSuffix(strings.ToLower(file.Name), ".csv") {
			result.Files = append(result.Files, domain.FileParseResult{
				SourceFile: file.Name,
				Status:     domain.FileStatusError,
				Errors:     apperrors.Render([]apperrors.Diagnostic{apperrors.NotCSV()}),
			})
			continue
		}

		fileResult := a.ParseText(file.Content, file.Name)
		result.Files = append(result.Files, fileResult)
		if fileResult.Status == domain.FileStatusOK {
			result.Rows = append(result.Rows, fileResult.Rows...)
		}

		a.logger.Debug("parsed export file",
			slog.String("exchange", a.schema.exchangeID),
			slog.String("source_file", file.Name),
			slog.String("status", string(fileResult.Status)),
			slog.Int("rows_valid", fileResult.RowsValid),
			slog.Int("rows_invalid", fileResult.RowsInvalid))
	}

	return result
}

// ParseText parses a single CSV document against the adapter schema.
func (a *csvAdapter) ParseText(content, sourceFile string) domain.FileParseResult {
	doc := readDocument(content, a.schema.aliases)

	result := domain.FileParseResult{
		SourceFile: sourceFile,
		RowsTotal:  len(doc.records),
		Status:     domain.FileStatusOK,
	}

	headerDiags := a.validateHeader(doc.headers)
	missing := a.missingRequired(doc.headers)
	if len(headerDiags) > 0 || len(missing) > 0 {
		diags := make([]apperrors.Diagnostic, 0, len(headerDiags)+len(missing)+1)
		diags = append(diags, apperrors.SchemaNotRecognized(a.schema.docKind, a.schema.label))
		diags = append(diags, headerDiags...)
		for _, column := range missing {
			diags = append(diags, apperrors.MissingColumn(column))
		}
		result.Status = domain.FileStatusError
		result.Errors = apperrors.Render(diags)
		return result
	}

	var span dateRange
	for _, cells := range doc.records {
		row, ok := a.schema.buildRow(cells, sourceFile)
		if !ok {
			result.RowsInvalid++
			continue
		}
		result.Rows = append(result.Rows, row)
		span.observe(row)
	}
	result.RowsValid = len(result.Rows)
	result.MinOpenedAt = span.minOpenedAt
	result.MaxClosedAt = span.maxClosedAt

	var diags []apperrors.Diagnostic
	if doc.structuralErr {
		diags = append(diags, apperrors.RawParse())
	}
	if len(result.Rows) == 0 {
		diags = append(diags, apperrors.EmptyResult())
	}
	if len(diags) > 0 {
		result.Status = domain.FileStatusError
		result.Errors = apperrors.Render(diags)
		result.Rows = nil
	}

	return result
}

// validateHeader enforces the exact-count, exact-order schema contract.
func (a *csvAdapter) validateHeader(headers []string) []apperrors.Diagnostic {
	if len(headers) != len(a.schema.columns) {
		return []apperrors.Diagnostic{
			apperrors.ColumnCountMismatch(len(a.schema.columns), len(headers)),
		}
	}

	for i, column := range a.schema.columns {
		if headers[i] != column {
			return []apperrors.Diagnostic{
				apperrors.ColumnSequenceMismatch(a.schema.docKind, a.schema.label),
				apperrors.ExpectedHeader(a.schema.columns),
				apperrors.ReceivedHeader(headers),
			}
		}
	}

	return nil
}

func (a *csvAdapter) missingRequired(headers []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, header := range headers {
		present[header] = struct{}{}
	}

	var missing []string
	for _, column := range a.schema.required {
		if _, ok := present[column]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

// optString trims a raw cell and converts empty values to nil.
func optString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
