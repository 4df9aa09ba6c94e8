package database

import (
	"database/sql"
	"fmt"

	"github.com/pmoore111/homeschoolapp/app/models"
)

// GetStudentCounts returns the headline numbers for a student's overview
func GetStudentCounts(db *sql.DB, studentID string) (*models.StudentCounts, error) {
	counts := &models.StudentCounts{}

	err := db.QueryRow(
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM subjects WHERE student_id = $1`,
		studentID,
	).Scan(&counts.TotalSubjects, &counts.ActiveSubjects)
	if err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}

	err = db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE EXISTS (
		           SELECT 1 FROM grades g
		           WHERE g.assignment_id = a.id AND g.points_earned IS NOT NULL
		       ))
		FROM assignments a
		JOIN subjects s ON a.subject_id = s.id
		WHERE s.student_id = $1
	`, studentID).Scan(&counts.TotalAssignments, &counts.GradedAssignments)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	return counts, nil
}
