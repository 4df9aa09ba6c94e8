package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func GetGradingSchemesByStudent(db *sql.DB, studentID string) ([]*models.GradingScheme, error) {
	query := `
		SELECT id, student_id, subject_id, letter_cutoffs, category_weights, created_at
		FROM grading_schemes
		WHERE student_id = $1
		ORDER BY created_at
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grading schemes: %w", err)
	}
	defer rows.Close()

	var schemes []*models.GradingScheme
	for rows.Next() {
		scheme, err := scanGradingScheme(rows)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, scheme)
	}
	return schemes, rows.Err()
}

func GetGradingSchemeByID(db *sql.DB, id string) (*models.GradingScheme, error) {
	query := `
		SELECT id, student_id, subject_id, letter_cutoffs, category_weights, created_at
		FROM grading_schemes
		WHERE id = $1
	`

	scheme, err := scanGradingScheme(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no scheme found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grading scheme: %w", err)
	}
	return scheme, nil
}

// GetApplicableGradingScheme resolves the scheme to use for a subject:
// a scheme bound to the subject wins, else the owning student's default
// scheme (subject_id IS NULL), else nil. An unknown subject also resolves
// to nil so grading degrades to the fixed scale instead of erroring.
func GetApplicableGradingScheme(db *sql.DB, subjectID string) (*models.GradingScheme, error) {
	query := `
		SELECT id, student_id, subject_id, letter_cutoffs, category_weights, created_at
		FROM grading_schemes
		WHERE subject_id = $1
		LIMIT 1
	`

	scheme, err := scanGradingScheme(db.QueryRow(query, subjectID))
	if err == nil {
		return scheme, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to fetch grading scheme: %w", err)
	}

	subject, err := GetSubjectByID(db, subjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, nil
	}

	query = `
		SELECT id, student_id, subject_id, letter_cutoffs, category_weights, created_at
		FROM grading_schemes
		WHERE student_id = $1 AND subject_id IS NULL
		LIMIT 1
	`

	scheme, err = scanGradingScheme(db.QueryRow(query, subject.StudentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch default grading scheme: %w", err)
	}
	return scheme, nil
}

func CreateGradingScheme(db *sql.DB, scheme *models.GradingScheme) error {
	scheme.ID = uuid.NewString()
	query := `
		INSERT INTO grading_schemes (id, student_id, subject_id, letter_cutoffs, category_weights)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := db.QueryRow(
		query,
		scheme.ID,
		scheme.StudentID,
		scheme.SubjectID,
		scheme.LetterCutoffs,
		scheme.CategoryWeights,
	).Scan(&scheme.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create grading scheme: %w", err)
	}
	return nil
}

func UpdateGradingScheme(db *sql.DB, scheme *models.GradingScheme) error {
	query := `
		UPDATE grading_schemes
		SET subject_id = $1, letter_cutoffs = $2, category_weights = $3
		WHERE id = $4
	`

	_, err := db.Exec(query, scheme.SubjectID, scheme.LetterCutoffs, scheme.CategoryWeights, scheme.ID)
	if err != nil {
		return fmt.Errorf("failed to update grading scheme: %w", err)
	}
	return nil
}

func DeleteGradingScheme(db *sql.DB, id string) error {
	query := `DELETE FROM grading_schemes WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete grading scheme: %w", err)
	}
	return nil
}

func scanGradingScheme(row rowScanner) (*models.GradingScheme, error) {
	var scheme models.GradingScheme
	var subjectID sql.NullString

	err := row.Scan(&scheme.ID, &scheme.StudentID, &subjectID, &scheme.LetterCutoffs, &scheme.CategoryWeights, &scheme.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan grading scheme: %w", err)
	}

	if subjectID.Valid {
		scheme.SubjectID = &subjectID.String
	}
	return &scheme, nil
}
