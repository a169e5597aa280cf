package domain

// SourceFile is one raw exchange export handed to the parsing pipeline as a
// (name, content) pair. Content is the full text of the file; acquisition
// (file dialogs, drag-and-drop, directory scans) happens outside the core.
type SourceFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// FileStatus is the terminal state of a single parsed file.
type FileStatus string

const (
	FileStatusOK    FileStatus = "ok"
	FileStatusError FileStatus = "error"
)

// NormalizedPositionRow is the exchange-agnostic representation of one trade
// or position entry. Rows are immutable once built and owned by the
// FileParseResult that produced them.
type NormalizedPositionRow struct {
	SourceFile            string  `json:"source_file"`
	MarketSymbol          string  `json:"market_symbol"`
	NetExposureNotional   float64 `json:"net_exposure_notional"`
	CumulativePnlRealized float64 `json:"cumulative_pnl_realized"`
	TotalTradingFees      float64 `json:"total_trading_fees"`
	OpenedAt              *string `json:"opened_at"`
	ClosedAt              *string `json:"closed_at"`
	PositionID            *string `json:"position_id"`
}

// FileParseResult carries per-file diagnostics alongside the rows that
// survived validation. Rows is empty whenever Status is FileStatusError.
type FileParseResult struct {
	SourceFile  string                  `json:"source_file"`
	RowsTotal   int                     `json:"rows_total"`
	RowsValid   int                     `json:"rows_valid"`
	RowsInvalid int                     `json:"rows_invalid"`
	MinOpenedAt *string                 `json:"min_opened_at"`
	MaxClosedAt *string                 `json:"max_closed_at"`
	Status      FileStatus              `json:"status"`
	Errors      []string                `json:"errors"`
	Rows        []NormalizedPositionRow `json:"rows"`
}

// ExchangeParseResult aggregates a batch of files parsed by one adapter.
// Rows concatenates the valid rows of every ok file in file-processing order.
type ExchangeParseResult struct {
	ExchangeID string                  `json:"exchange_id"`
	Files      []FileParseResult       `json:"files"`
	Rows       []NormalizedPositionRow `json:"rows"`
}
