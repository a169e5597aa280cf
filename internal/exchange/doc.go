// Package exchange turns raw exchange-exported CSV files into normalized
// position rows with per-file diagnostics.
//
// Each supported exchange is one Adapter variant built from a fixed canonical
// schema: an exact-order column list, a required-column subset, a header alias
// table and a row builder. Validation failures are captured as data in the
// FileParseResult, never returned as errors, and a failing file never aborts
// the rest of its batch. New exchanges register through the Registry without
// touching any caller.
package exchange
