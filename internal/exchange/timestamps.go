package exchange

import (
	"time"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// timestampLayouts are tried in order when range-tracking row timestamps.
// Exports carry either RFC 3339 instants or zoneless "YYYY-MM-DDTHH:mm:ss"
// values; anything unparseable is ignored for range tracking without
// invalidating the row it came from.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// dateRange narrows the earliest opened-at and latest closed-at timestamps
// across the valid rows of one file. Only values that parse participate;
// the original strings are kept for the result.
type dateRange struct {
	minOpenedAt *string
	maxClosedAt *string
	minInstant  time.Time
	maxInstant  time.Time
}

func (r *dateRange) observe(row domain.NormalizedPositionRow) {
	if row.OpenedAt != nil {
		if instant, ok := parseTimestamp(*row.OpenedAt); ok {
			if r.minOpenedAt == nil || instant.Before(r.minInstant) {
				r.minOpenedAt = row.OpenedAt
				r.minInstant = instant
			}
		}
	}

	if row.ClosedAt != nil {
		if instant, ok := parseTimestamp(*row.ClosedAt); ok {
			if r.maxClosedAt == nil || instant.After(r.maxInstant) {
				r.maxClosedAt = row.ClosedAt
				r.maxInstant = instant
			}
		}
	}
}
