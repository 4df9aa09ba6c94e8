package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-31", "2024-02-29", "1900-01-01"}
	for _, s := range valid {
		assert.True(t, IsValidDate(s), s)
	}

	invalid := []string{"", "2024-1-1", "2024-13-01", "2023-02-29", "2024-02-30", "not-a-date", "2024/01/01"}
	for _, s := range invalid {
		assert.False(t, IsValidDate(s), s)
	}
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("", ""))
	assert.NoError(t, ValidateDateRange("2024-01-01", ""))
	assert.NoError(t, ValidateDateRange("", "2024-06-30"))
	assert.NoError(t, ValidateDateRange("2024-01-01", "2024-06-30"))
	assert.NoError(t, ValidateDateRange("2024-01-01", "2024-01-01"))

	assert.Error(t, ValidateDateRange("01-01-2024", "2024-06-30"))
	assert.Error(t, ValidateDateRange("2024-01-01", "bogus"))
	assert.Error(t, ValidateDateRange("2024-06-30", "2024-01-01"))
}

func TestValidateYearMonth(t *testing.T) {
	assert.NoError(t, ValidateYearMonth(2024, 1))
	assert.NoError(t, ValidateYearMonth(1900, 12))
	assert.NoError(t, ValidateYearMonth(2100, 6))

	assert.Error(t, ValidateYearMonth(1899, 5))
	assert.Error(t, ValidateYearMonth(2101, 5))
	assert.Error(t, ValidateYearMonth(2024, 0))
	assert.Error(t, ValidateYearMonth(2024, 13))
}

func TestNormalizeLetterCutoffs(t *testing.T) {
	t.Run("object payload", func(t *testing.T) {
		out, err := NormalizeLetterCutoffs(json.RawMessage(`{"A":90,"B":80,"C":70,"D":60}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"A":90,"B":80,"C":70,"D":60}`, out)
	})

	t.Run("string-wrapped payload", func(t *testing.T) {
		out, err := NormalizeLetterCutoffs(json.RawMessage(`"{\"A\":85,\"B\":75,\"C\":65,\"D\":55}"`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"A":85,"B":75,"C":65,"D":55}`, out)
	})

	t.Run("out-of-range cutoff", func(t *testing.T) {
		_, err := NormalizeLetterCutoffs(json.RawMessage(`{"A":150,"B":80,"C":70,"D":60}`))
		assert.Error(t, err)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := NormalizeLetterCutoffs(json.RawMessage(`[90,80,70,60]`))
		assert.Error(t, err)
	})
}

func TestNormalizeCategoryWeights(t *testing.T) {
	t.Run("known categories", func(t *testing.T) {
		out, err := NormalizeCategoryWeights(json.RawMessage(`{"Homework":30,"Test":70}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"Homework":30,"Test":70}`, out)
	})

	t.Run("string-wrapped payload", func(t *testing.T) {
		out, err := NormalizeCategoryWeights(json.RawMessage(`"{\"Quiz\":100}"`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"Quiz":100}`, out)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := NormalizeCategoryWeights(json.RawMessage(`{"Extra Credit":10}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown weight category")
	})

	t.Run("weight out of range", func(t *testing.T) {
		_, err := NormalizeCategoryWeights(json.RawMessage(`{"Homework":120}`))
		assert.Error(t, err)
	})
}
