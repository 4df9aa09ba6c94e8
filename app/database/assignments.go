package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

// GetAssignmentsBySubject returns assignments for a subject, optionally
// narrowed to a single term.
func GetAssignmentsBySubject(db *sql.DB, subjectID string, termID *string) ([]*models.Assignment, error) {
	query := `
		SELECT id, subject_id, term_id, title, category, max_points,
		       date_assigned, date_due, lesson_type, status, is_khan_lesson, created_at
		FROM assignments
		WHERE subject_id = $1
	`
	args := []interface{}{subjectID}

	if termID != nil {
		query += ` AND term_id = $2`
		args = append(args, *termID)
	}
	query += ` ORDER BY created_at`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

// CountAssignmentsBySubject counts all assignments (graded or not) for a
// subject, optionally narrowed to a term.
func CountAssignmentsBySubject(db *sql.DB, subjectID string, termID *string) (int, error) {
	query := `SELECT COUNT(*) FROM assignments WHERE subject_id = $1`
	args := []interface{}{subjectID}

	if termID != nil {
		query += ` AND term_id = $2`
		args = append(args, *termID)
	}

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

func GetAssignmentByID(db *sql.DB, id string) (*models.Assignment, error) {
	query := `
		SELECT id, subject_id, term_id, title, category, max_points,
		       date_assigned, date_due, lesson_type, status, is_khan_lesson, created_at
		FROM assignments
		WHERE id = $1
	`

	assignment, err := scanAssignment(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no assignment found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignment: %w", err)
	}
	return assignment, nil
}

func CreateAssignment(db *sql.DB, assignment *models.Assignment) error {
	assignment.ID = uuid.NewString()
	query := `
		INSERT INTO assignments (id, subject_id, term_id, title, category, max_points,
		                         date_assigned, date_due, lesson_type, status, is_khan_lesson)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := db.QueryRow(
		query,
		assignment.ID,
		assignment.SubjectID,
		assignment.TermID,
		assignment.Title,
		assignment.Category,
		assignment.MaxPoints,
		assignment.DateAssigned,
		assignment.DateDue,
		assignment.LessonType,
		assignment.Status,
		assignment.IsKhanLesson,
	).Scan(&assignment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func UpdateAssignment(db *sql.DB, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET title = $1, category = $2, max_points = $3, date_assigned = $4,
		    date_due = $5, lesson_type = $6, status = $7, is_khan_lesson = $8
		WHERE id = $9
	`

	_, err := db.Exec(
		query,
		assignment.Title,
		assignment.Category,
		assignment.MaxPoints,
		assignment.DateAssigned,
		assignment.DateDue,
		assignment.LessonType,
		assignment.Status,
		assignment.IsKhanLesson,
		assignment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

func DeleteAssignment(db *sql.DB, id string) error {
	query := `DELETE FROM assignments WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	var assignment models.Assignment
	var maxPoints sql.NullFloat64
	var dateAssigned, dateDue sql.NullTime
	var lessonType, status sql.NullString

	err := row.Scan(
		&assignment.ID, &assignment.SubjectID, &assignment.TermID,
		&assignment.Title, &assignment.Category, &maxPoints,
		&dateAssigned, &dateDue, &lessonType, &status,
		&assignment.IsKhanLesson, &assignment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignment: %w", err)
	}

	if maxPoints.Valid {
		assignment.MaxPoints = &maxPoints.Float64
	}
	if dateAssigned.Valid {
		assignment.DateAssigned = &models.CustomDate{Time: dateAssigned.Time}
	}
	if dateDue.Valid {
		assignment.DateDue = &models.CustomDate{Time: dateDue.Time}
	}
	if lessonType.Valid {
		assignment.LessonType = &lessonType.String
	}
	if status.Valid {
		assignment.Status = &status.String
	}
	return &assignment, nil
}
