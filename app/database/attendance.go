package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// isValidDateFormat reports whether s is a real calendar date in YYYY-MM-DD
func isValidDateFormat(s string) bool {
	if !isoDateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// GetAttendanceByStudent returns attendance records newest first. Date
// filters that are not valid YYYY-MM-DD dates are ignored rather than
// rejected; the HTTP layer is responsible for strict validation.
func GetAttendanceByStudent(db *sql.DB, studentID, startDate, endDate string) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, date, status, time_of_day, minutes, notes, created_at
		FROM attendance
		WHERE student_id = $1
	`
	args := []interface{}{studentID}

	if startDate != "" && isValidDateFormat(startDate) {
		args = append(args, startDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if endDate != "" && isValidDateFormat(endDate) {
		args = append(args, endDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += ` ORDER BY date DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func GetAttendanceByID(db *sql.DB, id string) (*models.Attendance, error) {
	query := `
		SELECT id, student_id, date, status, time_of_day, minutes, notes, created_at
		FROM attendance
		WHERE id = $1
	`

	record, err := scanAttendance(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no record found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance record: %w", err)
	}
	return record, nil
}

// CreateAttendance inserts one day of attendance. The UNIQUE(student_id,
// date) constraint makes a second record for the same day fail; callers
// can detect that through pq.Error code 23505.
func CreateAttendance(db *sql.DB, record *models.Attendance) error {
	record.ID = uuid.NewString()
	query := `
		INSERT INTO attendance (id, student_id, date, status, time_of_day, minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := db.QueryRow(
		query,
		record.ID,
		record.StudentID,
		record.Date,
		record.Status,
		record.TimeOfDay,
		record.Minutes,
		record.Notes,
	).Scan(&record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

func UpdateAttendance(db *sql.DB, record *models.Attendance) error {
	query := `
		UPDATE attendance
		SET date = $1, status = $2, time_of_day = $3, minutes = $4, notes = $5
		WHERE id = $6
	`

	_, err := db.Exec(query, record.Date, record.Status, record.TimeOfDay, record.Minutes, record.Notes, record.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	return nil
}

func DeleteAttendance(db *sql.DB, id string) error {
	query := `DELETE FROM attendance WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

func scanAttendance(row rowScanner) (*models.Attendance, error) {
	var record models.Attendance
	var timeOfDay, notes sql.NullString
	var minutes sql.NullInt64

	err := row.Scan(&record.ID, &record.StudentID, &record.Date, &record.Status, &timeOfDay, &minutes, &notes, &record.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance record: %w", err)
	}

	if timeOfDay.Valid {
		record.TimeOfDay = &timeOfDay.String
	}
	if minutes.Valid {
		m := int(minutes.Int64)
		record.Minutes = &m
	}
	if notes.Valid {
		record.Notes = &notes.String
	}
	return &record, nil
}
