package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func GetSubjectsByStudent(db *sql.DB, studentID string) ([]*models.Subject, error) {
	query := `
		SELECT id, student_id, name, is_active, created_at
		FROM subjects
		WHERE student_id = $1
		ORDER BY name
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.StudentID, &subject.Name, &subject.IsActive, &subject.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, &subject)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	query := `
		SELECT id, student_id, name, is_active, created_at
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := db.QueryRow(query, id).Scan(&subject.ID, &subject.StudentID, &subject.Name, &subject.IsActive, &subject.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // no subject found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject: %w", err)
	}
	return &subject, nil
}

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	subject.ID = uuid.NewString()
	query := `
		INSERT INTO subjects (id, student_id, name, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := db.QueryRow(query, subject.ID, subject.StudentID, subject.Name, subject.IsActive).Scan(&subject.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, is_active = $2
		WHERE id = $3
	`

	_, err := db.Exec(query, subject.Name, subject.IsActive, subject.ID)
	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
	}
	return nil
}

func DeleteSubject(db *sql.DB, id string) error {
	query := `DELETE FROM subjects WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}
