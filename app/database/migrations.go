package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Every child
// table cascades on student deletion, directly or through its parent.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			grade_level TEXT,
			date_of_birth DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS terms (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id UUID PRIMARY KEY,
			subject_id UUID NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
			term_id UUID NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			max_points REAL,
			date_assigned DATE,
			date_due DATE,
			lesson_type TEXT,
			status TEXT,
			is_khan_lesson BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS grades (
			id UUID PRIMARY KEY,
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			points_earned REAL,
			comment TEXT,
			graded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			time_of_day TEXT,
			minutes INTEGER,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS service_hours (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			hours REAL NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'Community Service',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS grading_schemes (
			id UUID PRIMARY KEY,
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			subject_id UUID REFERENCES subjects(id) ON DELETE CASCADE,
			letter_cutoffs TEXT NOT NULL,
			category_weights TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_subjects_student ON subjects(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_terms_student ON terms(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_subject ON assignments(subject_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_term ON assignments(term_id)`,
		`CREATE INDEX IF NOT EXISTS idx_grades_assignment ON grades(assignment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student_date ON attendance(student_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_service_hours_student ON service_hours(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_grading_schemes_student ON grading_schemes(student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run migration: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
