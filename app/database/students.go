package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmoore111/homeschoolapp/app/models"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, grade_level, date_of_birth, created_at
		FROM students
		ORDER BY first_name, last_name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, grade_level, date_of_birth, created_at
		FROM students
		WHERE id = $1
	`

	student, err := scanStudent(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // no student found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	student.ID = uuid.NewString()
	query := `
		INSERT INTO students (id, first_name, last_name, grade_level, date_of_birth)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := db.QueryRow(
		query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.GradeLevel,
		student.DateOfBirth,
	).Scan(&student.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, grade_level = $3, date_of_birth = $4
		WHERE id = $5
	`

	_, err := db.Exec(query, student.FirstName, student.LastName, student.GradeLevel, student.DateOfBirth, student.ID)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

// DeleteStudent removes the student; subjects, terms, assignments, grades,
// attendance, service hours and grading schemes go with it via FK cascades.
func DeleteStudent(db *sql.DB, id string) error {
	query := `DELETE FROM students WHERE id = $1`
	_, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var student models.Student
	var gradeLevel sql.NullString
	var dateOfBirth sql.NullTime

	err := row.Scan(&student.ID, &student.FirstName, &student.LastName, &gradeLevel, &dateOfBirth, &student.CreatedAt)
	if err != nil {
		return nil, err
	}

	if gradeLevel.Valid {
		student.GradeLevel = &gradeLevel.String
	}
	if dateOfBirth.Valid {
		student.DateOfBirth = &models.CustomDate{Time: dateOfBirth.Time}
	}
	return &student, nil
}
