// Package analyzer computes the financial view of an airdrop farming
// campaign: trading totals over normalized rows, point-to-token estimates,
// cost and valuation metrics, sell/hold plans with price scenarios and the
// farm health classification.
//
// Every computation is a pure, deterministic transformation of its inputs
// with no shared state, safe to re-run on every dataset or input change.
// Numeric fields that would require dividing by zero come back as nil
// pointers, never as zero, infinity or NaN.
package analyzer
