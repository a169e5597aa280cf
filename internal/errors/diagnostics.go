// Package errors defines the diagnostic taxonomy of the parsing pipeline.
// Parse failures are data, not Go errors: they are collected into
// FileParseResult.Errors and never abort a batch. Every diagnostic carries a
// stable machine-readable code alongside its English display text, so callers
// that need to translate or branch on a failure kind match on Code instead of
// the message.
package errors

import (
	"fmt"
	"strings"
)

// Diagnostic codes. These are part of the output contract and must not change
// between releases.
const (
	CodeFileNotCSV       = "FILE_NOT_CSV"
	CodeFileRead         = "FILE_READ_FAILED"
	CodeSchemaUnknown    = "SCHEMA_NOT_RECOGNIZED"
	CodeSchemaCount      = "SCHEMA_COLUMN_COUNT"
	CodeSchemaSequence   = "SCHEMA_COLUMN_SEQUENCE"
	CodeSchemaMissing    = "SCHEMA_COLUMN_MISSING"
	CodeRawParse         = "CSV_READ_FAILED"
	CodeEmptyResult      = "NO_VALID_ROWS"
)

// Diagnostic is a single human-readable parse failure with a stable code.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// String returns the display text shown in import status UIs and reports.
func (d Diagnostic) String() string {
	return d.Message
}

// NotCSV reports a file rejected before any parse attempt because its name
// does not end in .csv.
func NotCSV() Diagnostic {
	return Diagnostic{Code: CodeFileNotCSV, Message: "only .csv files are accepted"}
}

// FileRead reports a raw content read failure at the acquisition boundary.
func FileRead(err error) Diagnostic {
	return Diagnostic{Code: CodeFileRead, Message: fmt.Sprintf("failed to read file: %v", err)}
}

// SchemaNotRecognized is the leading diagnostic of every header-level failure.
func SchemaNotRecognized(docKind, exchangeLabel string) Diagnostic {
	return Diagnostic{
		Code:    CodeSchemaUnknown,
		Message: fmt.Sprintf("file does not look like a %s export from %s", docKind, exchangeLabel),
	}
}

// ColumnCountMismatch reports a header with the wrong number of columns.
func ColumnCountMismatch(expected, received int) Diagnostic {
	return Diagnostic{
		Code:    CodeSchemaCount,
		Message: fmt.Sprintf("invalid column count: expected %d, received %d", expected, received),
	}
}

// ColumnSequenceMismatch reports a header whose columns are out of order.
func ColumnSequenceMismatch(docKind, exchangeLabel string) Diagnostic {
	return Diagnostic{
		Code:    CodeSchemaSequence,
		Message: fmt.Sprintf("invalid column sequence for a %s export from %s", docKind, exchangeLabel),
	}
}

// ExpectedHeader renders the canonical column list of a schema.
func ExpectedHeader(columns []string) Diagnostic {
	return Diagnostic{
		Code:    CodeSchemaSequence,
		Message: fmt.Sprintf("expected: %s", strings.Join(columns, ",")),
	}
}

// ReceivedHeader renders the canonicalized header actually found in the file.
func ReceivedHeader(columns []string) Diagnostic {
	return Diagnostic{
		Code:    CodeSchemaSequence,
		Message: fmt.Sprintf("received: %s", strings.Join(columns, ",")),
	}
}

// MissingColumn reports a required canonical column absent from the header.
func MissingColumn(column string) Diagnostic {
	return Diagnostic{
		Code:    CodeSchemaMissing,
		Message: fmt.Sprintf("required column missing: %s", column),
	}
}

// RawParse reports a structural CSV tokenizer failure, e.g. broken quoting.
func RawParse() Diagnostic {
	return Diagnostic{Code: CodeRawParse, Message: "failed to read CSV, check the file format"}
}

// EmptyResult reports a schema-valid file where no row survived validation.
func EmptyResult() Diagnostic {
	return Diagnostic{Code: CodeEmptyResult, Message: "no valid rows found"}
}

// Render flattens diagnostics into the ordered display strings carried by
// FileParseResult.Errors.
func Render(diags []Diagnostic) []string {
	if len(diags) == 0 {
		return nil
	}
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.String()
	}
	return out
}
