package grades

import (
	"database/sql"
	"encoding/json"
	"log"
	"strings"

	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
)

// CalculateSubjectAverage computes the percentage average for a subject,
// optionally narrowed to one term. A nil result means no average is
// computable; callers must render that as "N/A", not as 0.
//
// When the applicable grading scheme carries category weights the average
// is weighted; otherwise it is the plain earned/max ratio. A scheme whose
// stored weights do not parse is treated as no scheme at all.
func CalculateSubjectAverage(db *sql.DB, subjectID string, termID *string) (*float64, error) {
	rows, err := fetchGradeRows(db, subjectID, termID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	scheme, err := database.GetApplicableGradingScheme(db, subjectID)
	if err != nil {
		return nil, err
	}

	if scheme != nil && strings.TrimSpace(scheme.CategoryWeights) != "" {
		weights, err := parseCategoryWeights(scheme.CategoryWeights)
		if err != nil {
			log.Printf("Failed to parse category weights for scheme %s: %v", scheme.ID, err)
		} else {
			return weightedAverage(rows, weights), nil
		}
	}

	return simpleAverage(rows), nil
}

// weightedAverage groups graded rows by category and averages the category
// percentages by their configured weights. Weights of categories with no
// graded rows are excluded from the denominator, so the configured weights
// do not need to sum to 100.
func weightedAverage(rows []gradeRow, weights map[string]float64) *float64 {
	type categoryTotal struct {
		earned float64
		max    float64
	}
	totals := make(map[string]categoryTotal)

	for _, row := range rows {
		if !row.graded() {
			continue
		}
		t := totals[row.Category]
		t.earned += *row.PointsEarned
		t.max += *row.MaxPoints
		totals[row.Category] = t
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for category, weight := range weights {
		t, ok := totals[category]
		if !ok || t.max <= 0 {
			continue
		}
		categoryAverage := t.earned / t.max * 100
		weightedSum += categoryAverage * weight
		totalWeight += weight
	}

	if totalWeight <= 0 {
		return nil
	}
	average := weightedSum / totalWeight
	return &average
}

// simpleAverage is the unweighted earned/max ratio over all graded rows
func simpleAverage(rows []gradeRow) *float64 {
	totalPoints := 0.0
	maxTotalPoints := 0.0

	for _, row := range rows {
		if !row.graded() {
			continue
		}
		totalPoints += *row.PointsEarned
		maxTotalPoints += *row.MaxPoints
	}

	if maxTotalPoints <= 0 {
		return nil
	}
	average := totalPoints / maxTotalPoints * 100
	return &average
}

// CalculateLetterGrade maps a percentage to a letter. Cutoff comparison is
// inclusive and walks A, B, C, D in order. With no scheme, or a scheme
// whose cutoffs do not parse, the fixed 90/80/70/60 scale applies.
func CalculateLetterGrade(average *float64, scheme *models.GradingScheme) string {
	if average == nil {
		return "N/A"
	}

	if scheme != nil && strings.TrimSpace(scheme.LetterCutoffs) != "" {
		var cutoffs models.LetterCutoffs
		if err := json.Unmarshal([]byte(scheme.LetterCutoffs), &cutoffs); err != nil {
			log.Printf("Failed to parse letter cutoffs for scheme %s: %v", scheme.ID, err)
		} else {
			switch {
			case *average >= cutoffs.A:
				return "A"
			case *average >= cutoffs.B:
				return "B"
			case *average >= cutoffs.C:
				return "C"
			case *average >= cutoffs.D:
				return "D"
			default:
				return "F"
			}
		}
	}

	switch {
	case *average >= 90:
		return "A"
	case *average >= 80:
		return "B"
	case *average >= 70:
		return "C"
	case *average >= 60:
		return "D"
	default:
		return "F"
	}
}

// GetSubjectGradeSummary combines the average, letter grade and assignment
// counts for a subject. Percentage is 0 when no average is computable while
// the letter grade stays "N/A"; both halves of that asymmetry are part of
// the API contract.
func GetSubjectGradeSummary(db *sql.DB, subjectID string, termID *string) (*models.SubjectGradeSummary, error) {
	rows, err := fetchGradeRows(db, subjectID, termID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, row := range rows {
		if row.graded() {
			completed++
		}
	}

	average, err := CalculateSubjectAverage(db, subjectID, termID)
	if err != nil {
		return nil, err
	}

	scheme, err := database.GetApplicableGradingScheme(db, subjectID)
	if err != nil {
		return nil, err
	}

	total, err := database.CountAssignmentsBySubject(db, subjectID, termID)
	if err != nil {
		return nil, err
	}

	summary := &models.SubjectGradeSummary{
		LetterGrade:          CalculateLetterGrade(average, scheme),
		TotalAssignments:     total,
		CompletedAssignments: completed,
	}
	if average != nil {
		summary.Percentage = *average
	}
	return summary, nil
}

// CalculateOverallGPA averages every computable subject percentage for the
// student and maps the mean onto the discrete 4-point bands. With no term
// given, each subject contributes one data point per currently active term.
// A nil result means no GPA is computable.
func CalculateOverallGPA(db *sql.DB, studentID string, termID *string) (*float64, error) {
	subjects, err := database.GetSubjectsByStudent(db, studentID)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, nil
	}

	var activeTerms []*models.Term
	if termID == nil {
		activeTerms, err = database.GetActiveTerms(db, studentID)
		if err != nil {
			return nil, err
		}
	}

	var subjectAverages []float64
	for _, subject := range subjects {
		if termID != nil {
			average, err := CalculateSubjectAverage(db, subject.ID, termID)
			if err != nil {
				return nil, err
			}
			if average != nil {
				subjectAverages = append(subjectAverages, *average)
			}
			continue
		}

		for _, term := range activeTerms {
			average, err := CalculateSubjectAverage(db, subject.ID, &term.ID)
			if err != nil {
				return nil, err
			}
			if average != nil {
				subjectAverages = append(subjectAverages, *average)
			}
		}
	}

	if len(subjectAverages) == 0 {
		return nil, nil
	}

	sum := 0.0
	for _, average := range subjectAverages {
		sum += average
	}
	gpa := percentageToGPA(sum / float64(len(subjectAverages)))
	return &gpa, nil
}

// percentageToGPA converts a percentage to the 4-point scale. The bands are
// discrete on purpose: only 4.0, 3.0, 2.0, 1.0 and 0.0 are ever produced.
func percentageToGPA(average float64) float64 {
	switch {
	case average >= 90:
		return 4.0
	case average >= 80:
		return 3.0
	case average >= 70:
		return 2.0
	case average >= 60:
		return 1.0
	default:
		return 0.0
	}
}

func parseCategoryWeights(raw string) (map[string]float64, error) {
	var weights map[string]float64
	if err := json.Unmarshal([]byte(raw), &weights); err != nil {
		return nil, err
	}
	return weights, nil
}
