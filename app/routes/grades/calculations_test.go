package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func fptr(v float64) *float64 {
	return &v
}

func row(earned *float64, max *float64, category string) gradeRow {
	return gradeRow{PointsEarned: earned, MaxPoints: max, Category: category}
}

func TestWeightedAverage(t *testing.T) {
	t.Run("weights applied per category", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(80), fptr(100), "Homework"),
			row(fptr(45), fptr(50), "Test"),
		}
		weights := map[string]float64{"Homework": 30, "Test": 70}

		// Homework 80%, Test 90% -> (80*30 + 90*70) / 100 = 87
		avg := weightedAverage(rows, weights)
		require.NotNil(t, avg)
		assert.InDelta(t, 87.0, *avg, 1e-9)
	})

	t.Run("weights of absent categories excluded from denominator", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(80), fptr(100), "Homework"),
		}
		weights := map[string]float64{"Homework": 50, "Quiz": 50}

		// Only Homework has data, so the result is the Homework
		// percentage, not half of it.
		avg := weightedAverage(rows, weights)
		require.NotNil(t, avg)
		assert.InDelta(t, 80.0, *avg, 1e-9)
	})

	t.Run("no weighted category has data", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(80), fptr(100), "Homework"),
		}
		weights := map[string]float64{"Quiz": 100}

		assert.Nil(t, weightedAverage(rows, weights))
	})

	t.Run("ungraded and zero-max rows skipped", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(80), fptr(100), "Homework"),
			row(nil, fptr(50), "Homework"),
			row(fptr(10), fptr(0), "Homework"),
			row(fptr(10), nil, "Homework"),
		}
		weights := map[string]float64{"Homework": 100}

		avg := weightedAverage(rows, weights)
		require.NotNil(t, avg)
		assert.InDelta(t, 80.0, *avg, 1e-9)
	})

	t.Run("multiple rows accumulate within a category", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(40), fptr(50), "Quiz"),
			row(fptr(50), fptr(50), "Quiz"),
		}
		weights := map[string]float64{"Quiz": 40}

		// 90/100 = 90%; a single populated category carries its own
		// weight as the whole denominator.
		avg := weightedAverage(rows, weights)
		require.NotNil(t, avg)
		assert.InDelta(t, 90.0, *avg, 1e-9)
	})
}

func TestSimpleAverage(t *testing.T) {
	t.Run("plain points ratio", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(80), fptr(100), "Homework"),
			row(fptr(45), fptr(50), "Test"),
		}

		// 125/150
		avg := simpleAverage(rows)
		require.NotNil(t, avg)
		assert.InDelta(t, 83.333333, *avg, 1e-4)
	})

	t.Run("skips ungraded and zero-max rows", func(t *testing.T) {
		rows := []gradeRow{
			row(fptr(80), fptr(100), "Homework"),
			row(nil, fptr(50), "Homework"),
			row(fptr(5), fptr(0), "Quiz"),
		}

		avg := simpleAverage(rows)
		require.NotNil(t, avg)
		assert.InDelta(t, 80.0, *avg, 1e-9)
	})

	t.Run("nothing graded means no average", func(t *testing.T) {
		rows := []gradeRow{
			row(nil, fptr(50), "Homework"),
			row(nil, fptr(100), "Test"),
		}

		assert.Nil(t, simpleAverage(rows))
	})
}

func TestCalculateLetterGrade(t *testing.T) {
	t.Run("nil average is N/A even with a scheme", func(t *testing.T) {
		scheme := &models.GradingScheme{LetterCutoffs: `{"A":90,"B":80,"C":70,"D":60}`}
		assert.Equal(t, "N/A", CalculateLetterGrade(nil, scheme))
		assert.Equal(t, "N/A", CalculateLetterGrade(nil, nil))
	})

	t.Run("fixed scale without a scheme", func(t *testing.T) {
		cases := []struct {
			average float64
			letter  string
		}{
			{95, "A"},
			{90, "A"}, // inclusive boundary
			{89.99, "B"},
			{80, "B"},
			{79.5, "C"},
			{70, "C"},
			{60, "D"},
			{59.99, "F"},
			{0, "F"},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.letter, CalculateLetterGrade(fptr(tc.average), nil), "average %v", tc.average)
		}
	})

	t.Run("custom cutoffs, inclusive comparison", func(t *testing.T) {
		scheme := &models.GradingScheme{LetterCutoffs: `{"A":85,"B":75,"C":65,"D":55}`}
		assert.Equal(t, "A", CalculateLetterGrade(fptr(85), scheme))
		assert.Equal(t, "B", CalculateLetterGrade(fptr(84.9), scheme))
		assert.Equal(t, "D", CalculateLetterGrade(fptr(55), scheme))
		assert.Equal(t, "F", CalculateLetterGrade(fptr(54.9), scheme))
	})

	t.Run("corrupt cutoffs fall back to the fixed scale", func(t *testing.T) {
		scheme := &models.GradingScheme{LetterCutoffs: `{not json`}
		assert.Equal(t, "A", CalculateLetterGrade(fptr(92), scheme))
		assert.Equal(t, "F", CalculateLetterGrade(fptr(40), scheme))
	})
}

func TestPercentageToGPA(t *testing.T) {
	cases := []struct {
		average float64
		gpa     float64
	}{
		{100, 4.0},
		{90.0, 4.0},
		{89.9, 3.0}, // discrete bands, no interpolation
		{80, 3.0},
		{79.9, 2.0},
		{70, 2.0},
		{69.9, 1.0},
		{60, 1.0},
		{59.9, 0.0},
		{0, 0.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.gpa, percentageToGPA(tc.average), "average %v", tc.average)
	}
}

func TestParseCategoryWeights(t *testing.T) {
	weights, err := parseCategoryWeights(`{"Homework":30,"Test":70}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"Homework": 30, "Test": 70}, weights)

	_, err = parseCategoryWeights(`not json`)
	assert.Error(t, err)
}
