package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func GetTermsByStudent(db *sql.DB, studentID string) ([]*models.Term, error) {
	query := `
		SELECT id, student_id, name, start_date, end_date, is_active, created_at
		FROM terms
		WHERE student_id = $1
		ORDER BY start_date DESC
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch terms: %w", err)
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		term, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// GetActiveTerms returns every term currently flagged active for the student.
// The data model allows more than one at a time.
func GetActiveTerms(db *sql.DB, studentID string) ([]*models.Term, error) {
	query := `
		SELECT id, student_id, name, start_date, end_date, is_active, created_at
		FROM terms
		WHERE student_id = $1 AND is_active = true
		ORDER BY start_date DESC
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active terms: %w", err)
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		term, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// GetActiveTerm returns the most recently started active term, or nil
func GetActiveTerm(db *sql.DB, studentID string) (*models.Term, error) {
	terms, err := GetActiveTerms(db, studentID)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return terms[0], nil
}

func GetTermByID(db *sql.DB, id string) (*models.Term, error) {
	query := `
		SELECT id, student_id, name, start_date, end_date, is_active, created_at
		FROM terms
		WHERE id = $1
	`

	term, err := scanTerm(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no term found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch term: %w", err)
	}
	return term, nil
}

func CreateTerm(db *sql.DB, term *models.Term) error {
	term.ID = uuid.NewString()
	query := `
		INSERT INTO terms (id, student_id, name, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := db.QueryRow(
		query,
		term.ID,
		term.StudentID,
		term.Name,
		term.StartDate,
		term.EndDate,
		term.IsActive,
	).Scan(&term.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create term: %w", err)
	}
	return nil
}

func UpdateTerm(db *sql.DB, term *models.Term) error {
	query := `
		UPDATE terms
		SET name = $1, start_date = $2, end_date = $3, is_active = $4
		WHERE id = $5
	`

	_, err := db.Exec(query, term.Name, term.StartDate, term.EndDate, term.IsActive, term.ID)
	if err != nil {
		return fmt.Errorf("failed to update term: %w", err)
	}
	return nil
}

func DeleteTerm(db *sql.DB, id string) error {
	query := `DELETE FROM terms WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete term: %w", err)
	}
	return nil
}

func scanTerm(row rowScanner) (*models.Term, error) {
	var term models.Term
	err := row.Scan(&term.ID, &term.StudentID, &term.Name, &term.StartDate, &term.EndDate, &term.IsActive, &term.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan term: %w", err)
	}
	return &term, nil
}
