package analyzer

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

var inputValidator = validator.New()

// inputFieldOrder fixes the order of violation messages regardless of how the
// validator reports them.
var inputFieldOrder = []string{"PointsOwn", "PointsFree", "PointToToken", "TokenPrice"}

var inputViolationMessages = map[string]string{
	"PointsOwn":    "points_own must be >= 0",
	"PointsFree":   "points_free must be >= 0",
	"PointToToken": "point_to_token must be > 0",
	"TokenPrice":   "token_price must be > 0",
}

// ValidateInputs checks the user-entered analyzer inputs against their
// declared constraints and returns the ordered violation messages.
// An empty result means the inputs are valid.
func ValidateInputs(inputs domain.AnalyzerInputs) []string {
	err := inputValidator.Struct(inputs)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	failed := make(map[string]bool, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		failed[fieldError.StructField()] = true
	}

	var violations []string
	for _, field := range inputFieldOrder {
		if failed[field] {
			violations = append(violations, inputViolationMessages[field])
		}
	}
	return violations
}
