package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

func TestValidateInputs(t *testing.T) {
	valid := domain.AnalyzerInputs{
		PointsOwn:    1000,
		PointsFree:   0,
		PointToToken: 0.5,
		TokenPrice:   1.2,
		RiskProfile:  domain.RiskProfileConservative,
	}
	assert.Empty(t, ValidateInputs(valid))

	allWrong := domain.AnalyzerInputs{
		PointsOwn:    -1,
		PointsFree:   -2,
		PointToToken: 0,
		TokenPrice:   -0.5,
	}
	assert.Equal(t, []string{
		"points_own must be >= 0",
		"points_free must be >= 0",
		"point_to_token must be > 0",
		"token_price must be > 0",
	}, ValidateInputs(allWrong))

	onlyRate := valid
	onlyRate.PointToToken = -3
	assert.Equal(t, []string{"point_to_token must be > 0"}, ValidateInputs(onlyRate))

	// Zero points are legitimate; only the rate and price must be positive.
	zeroPoints := valid
	zeroPoints.PointsOwn = 0
	assert.Empty(t, ValidateInputs(zeroPoints))
}
