package grades

import (
	"database/sql"
	"fmt"
)

// gradeRow is one (grade, assignment) pair as the aggregation sees it
type gradeRow struct {
	PointsEarned *float64
	MaxPoints    *float64
	Category     string
}

// graded reports whether the row can contribute to an average
func (r gradeRow) graded() bool {
	return r.PointsEarned != nil && r.MaxPoints != nil && *r.MaxPoints > 0
}

// fetchGradeRows loads every grade row for the subject's assignments,
// optionally narrowed to one term.
func fetchGradeRows(db *sql.DB, subjectID string, termID *string) ([]gradeRow, error) {
	query := `
		SELECT g.points_earned, a.max_points, a.category
		FROM grades g
		JOIN assignments a ON g.assignment_id = a.id
		WHERE a.subject_id = $1
	`
	args := []interface{}{subjectID}

	if termID != nil {
		query += ` AND a.term_id = $2`
		args = append(args, *termID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade data: %w", err)
	}
	defer rows.Close()

	var result []gradeRow
	for rows.Next() {
		var row gradeRow
		var pointsEarned, maxPoints sql.NullFloat64

		if err := rows.Scan(&pointsEarned, &maxPoints, &row.Category); err != nil {
			return nil, fmt.Errorf("failed to scan grade data: %w", err)
		}
		if pointsEarned.Valid {
			row.PointsEarned = &pointsEarned.Float64
		}
		if maxPoints.Valid {
			row.MaxPoints = &maxPoints.Float64
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
