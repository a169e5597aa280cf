package analyzer

import (
	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// planDefinitions are the three fixed sell/hold strategies, in the order they
// are always returned.
var planDefinitions = []struct {
	profile domain.RiskProfile
	sellPct float64
	holdPct float64
}{
	{profile: domain.RiskProfileConservative, sellPct: 0.70, holdPct: 0.30},
	{profile: domain.RiskProfileModerate, sellPct: 0.60, holdPct: 0.40},
	{profile: domain.RiskProfileAggressive, sellPct: 0.45, holdPct: 0.55},
}

// scenarioMultipliers are the fixed bear/base/bull price multipliers.
var scenarioMultipliers = []struct {
	key        domain.ScenarioKey
	multiplier float64
}{
	{key: domain.ScenarioBear, multiplier: 0.35},
	{key: domain.ScenarioBase, multiplier: 1.0},
	{key: domain.ScenarioBull, multiplier: 2.0},
}

// ComputeSellPlans builds the conservative, moderate and aggressive sell
// plans. Locked profit nets the sell leg against its share of total cost,
// while the scenario projections subtract the full cost from the combined
// sell-now and hold values.
func ComputeSellPlans(tokensTotal, tokenPrice, costUsd float64) []domain.SellPlan {
	plans := make([]domain.SellPlan, 0, len(planDefinitions))

	for _, def := range planDefinitions {
		tokensSell := tokensTotal * def.sellPct
		tokensHold := tokensTotal - tokensSell
		valueSellNow := tokensSell * tokenPrice

		costAllocatedToSell := 0.0
		if tokensTotal > 0 {
			costAllocatedToSell = costUsd * (tokensSell / tokensTotal)
		}

		plans = append(plans, domain.SellPlan{
			Profile:             def.profile,
			SellPct:             def.sellPct,
			HoldPct:             def.holdPct,
			TokensSell:          tokensSell,
			TokensHold:          tokensHold,
			ValueSellNow:        valueSellNow,
			CostAllocatedToSell: costAllocatedToSell,
			LockedProfit:        valueSellNow - costAllocatedToSell,
			Scenarios:           buildScenarios(tokensHold, valueSellNow, tokenPrice, costUsd),
		})
	}

	return plans
}

func buildScenarios(tokensHold, valueSellNow, tokenPrice, costUsd float64) []domain.ScenarioProjection {
	scenarios := make([]domain.ScenarioProjection, 0, len(scenarioMultipliers))

	for _, sc := range scenarioMultipliers {
		scenarioPrice := tokenPrice * sc.multiplier
		futureValueHold := tokensHold * scenarioPrice
		futureTotalValue := valueSellNow + futureValueHold

		scenarios = append(scenarios, domain.ScenarioProjection{
			ScenarioKey:      sc.key,
			ScenarioPrice:    scenarioPrice,
			FutureValueHold:  futureValueHold,
			FutureTotalValue: futureTotalValue,
			FutureNetProfit:  futureTotalValue - costUsd,
		})
	}

	return scenarios
}
