package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func GetServiceHoursByStudent(db *sql.DB, studentID string) ([]*models.ServiceHour, error) {
	query := `
		SELECT id, student_id, date, hours, description, category, created_at
		FROM service_hours
		WHERE student_id = $1
		ORDER BY date DESC
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service hours: %w", err)
	}
	defer rows.Close()

	var serviceHours []*models.ServiceHour
	for rows.Next() {
		sh, err := scanServiceHour(rows)
		if err != nil {
			return nil, err
		}
		serviceHours = append(serviceHours, sh)
	}
	return serviceHours, rows.Err()
}

// GetServiceHourTotals sums hours for a student, overall and per category
func GetServiceHourTotals(db *sql.DB, studentID string) (float64, map[string]float64, error) {
	query := `
		SELECT category, COALESCE(SUM(hours), 0)
		FROM service_hours
		WHERE student_id = $1
		GROUP BY category
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to total service hours: %w", err)
	}
	defer rows.Close()

	total := 0.0
	byCategory := make(map[string]float64)
	for rows.Next() {
		var category string
		var hours float64
		if err := rows.Scan(&category, &hours); err != nil {
			return 0, nil, fmt.Errorf("failed to scan service hour totals: %w", err)
		}
		byCategory[category] = hours
		total += hours
	}
	return total, byCategory, rows.Err()
}

func GetServiceHourByID(db *sql.DB, id string) (*models.ServiceHour, error) {
	query := `
		SELECT id, student_id, date, hours, description, category, created_at
		FROM service_hours
		WHERE id = $1
	`

	sh, err := scanServiceHour(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no record found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service hour: %w", err)
	}
	return sh, nil
}

func CreateServiceHour(db *sql.DB, sh *models.ServiceHour) error {
	sh.ID = uuid.NewString()
	if sh.Category == "" {
		sh.Category = "Community Service"
	}
	query := `
		INSERT INTO service_hours (id, student_id, date, hours, description, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := db.QueryRow(query, sh.ID, sh.StudentID, sh.Date, sh.Hours, sh.Description, sh.Category).Scan(&sh.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create service hour: %w", err)
	}
	return nil
}

func UpdateServiceHour(db *sql.DB, sh *models.ServiceHour) error {
	query := `
		UPDATE service_hours
		SET date = $1, hours = $2, description = $3, category = $4
		WHERE id = $5
	`

	_, err := db.Exec(query, sh.Date, sh.Hours, sh.Description, sh.Category, sh.ID)
	if err != nil {
		return fmt.Errorf("failed to update service hour: %w", err)
	}
	return nil
}

func DeleteServiceHour(db *sql.DB, id string) error {
	query := `DELETE FROM service_hours WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete service hour: %w", err)
	}
	return nil
}

func scanServiceHour(row rowScanner) (*models.ServiceHour, error) {
	var sh models.ServiceHour
	err := row.Scan(&sh.ID, &sh.StudentID, &sh.Date, &sh.Hours, &sh.Description, &sh.Category, &sh.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan service hour: %w", err)
	}
	return &sh, nil
}
