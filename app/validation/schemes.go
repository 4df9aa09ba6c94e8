package validation

import (
	"encoding/json"
	"fmt"

	"github.com/pmoore111/homeschoolapp/app/models"
)

var weightCategories = map[string]bool{
	"Homework": true,
	"Quiz":     true,
	"Test":     true,
	"Project":  true,
}

// unwrap accepts either a JSON object or a JSON string containing an
// object, which is how grading scheme payloads arrive from the client.
func unwrap(raw json.RawMessage) ([]byte, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		return []byte(inner), nil
	}
	return raw, nil
}

// NormalizeLetterCutoffs validates a letterCutoffs payload and returns the
// canonical JSON text to persist.
func NormalizeLetterCutoffs(raw json.RawMessage) (string, error) {
	data, err := unwrap(raw)
	if err != nil {
		return "", fmt.Errorf("letterCutoffs must be a JSON object: %w", err)
	}

	var cutoffs models.LetterCutoffs
	if err := json.Unmarshal(data, &cutoffs); err != nil {
		return "", fmt.Errorf("letterCutoffs must be a JSON object: %w", err)
	}
	if err := validate.Struct(&cutoffs); err != nil {
		return "", fmt.Errorf("letterCutoffs values must be between 0 and 100")
	}

	out, err := json.Marshal(cutoffs)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NormalizeCategoryWeights validates a categoryWeights payload and returns
// the canonical JSON text to persist. Only the known weight categories are
// accepted; an unknown category is an explicit error rather than being
// silently dropped from aggregation later.
func NormalizeCategoryWeights(raw json.RawMessage) (string, error) {
	data, err := unwrap(raw)
	if err != nil {
		return "", fmt.Errorf("categoryWeights must be a JSON object: %w", err)
	}

	var weights map[string]float64
	if err := json.Unmarshal(data, &weights); err != nil {
		return "", fmt.Errorf("categoryWeights must be a JSON object: %w", err)
	}
	for category, weight := range weights {
		if !weightCategories[category] {
			return "", fmt.Errorf("unknown weight category %q", category)
		}
		if weight < 0 || weight > 100 {
			return "", fmt.Errorf("weight for %s must be between 0 and 100", category)
		}
	}

	out, err := json.Marshal(weights)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
