package domain

// RiskProfile selects one of the three fixed sell plan strategies.
type RiskProfile string

const (
	RiskProfileConservative RiskProfile = "conservative"
	RiskProfileModerate     RiskProfile = "moderate"
	RiskProfileAggressive   RiskProfile = "aggressive"
)

// AnalyzerInputs are the user-entered values that drive the token valuation.
// They are validated independently of the parsed dataset.
type AnalyzerInputs struct {
	PointsOwn    float64     `json:"points_own" yaml:"points_own" validate:"gte=0"`
	PointsFree   float64     `json:"points_free" yaml:"points_free" validate:"gte=0"`
	PointToToken float64     `json:"point_to_token" yaml:"point_to_token" validate:"gt=0"`
	TokenPrice   float64     `json:"token_price" yaml:"token_price" validate:"gt=0"`
	RiskProfile  RiskProfile `json:"risk_profile" yaml:"risk_profile"`
}

// TradingBreakdown is one grouping bucket of the trading totals, keyed either
// by source file or by market symbol.
type TradingBreakdown struct {
	Key       string  `json:"key"`
	VolumeUsd float64 `json:"volume_usd"`
	PnlUsd    float64 `json:"pnl_usd"`
	FeesUsd   float64 `json:"fees_usd"`
	RowsCount int     `json:"rows_count"`
}

// TradingTotals holds the grand sums over every normalized row plus the
// per-file and per-market breakdowns, each sorted descending by volume.
type TradingTotals struct {
	VolumeTotalUsd float64            `json:"volume_total_usd"`
	PnlTotalUsd    float64            `json:"pnl_total_usd"`
	FeesTotalUsd   float64            `json:"fees_total_usd"`
	ByFile         []TradingBreakdown `json:"by_file"`
	ByMarket       []TradingBreakdown `json:"by_market"`
}

// TokenEstimates converts accumulated points into token amounts.
// Invariant: TokensPaid = max(TokensTotal-TokensFree, 0) <= TokensTotal.
type TokenEstimates struct {
	PointsTotal float64 `json:"points_total"`
	TokensTotal float64 `json:"tokens_total"`
	TokensFree  float64 `json:"tokens_free"`
	TokensPaid  float64 `json:"tokens_paid"`
}

// AnalyzerMetrics are the derived financial figures. Nil pointer fields mean
// "undefined because the denominator was zero"; consumers must render them as
// not applicable, never as zero.
type AnalyzerMetrics struct {
	CostUsd           float64  `json:"cost_usd"`
	ValueUsd          float64  `json:"value_usd"`
	NetProfitUsd      float64  `json:"net_profit_usd"`
	Roi               *float64 `json:"roi"`
	CostPerTokenTotal *float64 `json:"cost_per_token_total"`
	CostPerTokenPaid  *float64 `json:"cost_per_token_paid"`
	BreakEvenPrice    *float64 `json:"break_even_price"`
	PointsPer1mVolume *float64 `json:"points_per_1m_volume"`
}

// ScenarioKey identifies one of the three fixed price scenarios.
type ScenarioKey string

const (
	ScenarioBear ScenarioKey = "bear"
	ScenarioBase ScenarioKey = "base"
	ScenarioBull ScenarioKey = "bull"
)

// ScenarioProjection projects the outcome of a sell plan under one of the
// fixed price scenarios.
type ScenarioProjection struct {
	ScenarioKey      ScenarioKey `json:"scenario_key"`
	ScenarioPrice    float64     `json:"scenario_price"`
	FutureValueHold  float64     `json:"future_value_hold"`
	FutureTotalValue float64     `json:"future_total_value"`
	FutureNetProfit  float64     `json:"future_net_profit"`
}

// SellPlan is a fixed sell/hold split with its immediate and projected values.
type SellPlan struct {
	Profile             RiskProfile          `json:"profile"`
	SellPct             float64              `json:"sell_pct"`
	HoldPct             float64              `json:"hold_pct"`
	TokensSell          float64              `json:"tokens_sell"`
	TokensHold          float64              `json:"tokens_hold"`
	ValueSellNow        float64              `json:"value_sell_now"`
	CostAllocatedToSell float64              `json:"cost_allocated_to_sell"`
	LockedProfit        float64              `json:"locked_profit"`
	Scenarios           []ScenarioProjection `json:"scenarios"`
}

// AnalyzerOutput is the full analysis. It is a pure function of the parsed
// dataset and the user inputs and is recomputed whole on every change,
// never mutated in place.
type AnalyzerOutput struct {
	Trading   TradingTotals   `json:"trading"`
	Tokens    TokenEstimates  `json:"tokens"`
	Metrics   AnalyzerMetrics `json:"metrics"`
	SellPlans []SellPlan      `json:"sell_plans"`
}

// FarmHealth is the qualitative classification of the current token price
// relative to break-even.
type FarmHealth string

const (
	FarmHealthStrong    FarmHealth = "strong"
	FarmHealthOK        FarmHealth = "ok"
	FarmHealthAttention FarmHealth = "attention"
	FarmHealthCritical  FarmHealth = "critical"
	FarmHealthUnknown   FarmHealth = "unknown"
)

// FarmDiagnosis pairs the health classification with the relative gap between
// current price and break-even. GapToZero is nil when health is unknown.
type FarmDiagnosis struct {
	Health    FarmHealth `json:"health"`
	GapToZero *float64   `json:"gap_to_zero"`
}
