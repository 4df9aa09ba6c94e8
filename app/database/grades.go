package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func GetGradesByAssignment(db *sql.DB, assignmentID string) ([]*models.Grade, error) {
	query := `
		SELECT id, assignment_id, points_earned, comment, graded_at
		FROM grades
		WHERE assignment_id = $1
		ORDER BY graded_at
	`

	rows, err := db.Query(query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}
	return grades, rows.Err()
}

func GetGradeByID(db *sql.DB, id string) (*models.Grade, error) {
	query := `
		SELECT id, assignment_id, points_earned, comment, graded_at
		FROM grades
		WHERE id = $1
	`

	grade, err := scanGrade(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no grade found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade: %w", err)
	}
	return grade, nil
}

func CreateGrade(db *sql.DB, grade *models.Grade) error {
	grade.ID = uuid.NewString()
	query := `
		INSERT INTO grades (id, assignment_id, points_earned, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING graded_at
	`

	err := db.QueryRow(query, grade.ID, grade.AssignmentID, grade.PointsEarned, grade.Comment).Scan(&grade.GradedAt)
	if err != nil {
		return fmt.Errorf("failed to create grade: %w", err)
	}
	return nil
}

func UpdateGrade(db *sql.DB, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET points_earned = $1, comment = $2
		WHERE id = $3
	`

	_, err := db.Exec(query, grade.PointsEarned, grade.Comment, grade.ID)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}
	return nil
}

func DeleteGrade(db *sql.DB, id string) error {
	query := `DELETE FROM grades WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	return nil
}

func scanGrade(row rowScanner) (*models.Grade, error) {
	var grade models.Grade
	var pointsEarned sql.NullFloat64
	var comment sql.NullString

	err := row.Scan(&grade.ID, &grade.AssignmentID, &pointsEarned, &comment, &grade.GradedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan grade: %w", err)
	}

	if pointsEarned.Valid {
		grade.PointsEarned = &pointsEarned.Float64
	}
	if comment.Valid {
		grade.Comment = &comment.String
	}
	return &grade, nil
}
