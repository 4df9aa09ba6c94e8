package models

import "time"

// GradingScheme holds the letter cutoffs and category weights for grading.
// SubjectID nil means the scheme is the student-wide default; a scheme with
// SubjectID set takes precedence for that subject.
//
// LetterCutoffs and CategoryWeights are stored as JSON text, e.g.
// {"A": 90, "B": 80, "C": 70, "D": 60} and {"Homework": 30, "Test": 70}.
type GradingScheme struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID       string    `json:"studentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID       *string   `json:"subjectId" gorm:"index;type:uuid"`
	LetterCutoffs   string    `json:"letterCutoffs" gorm:"not null"`
	CategoryWeights string    `json:"categoryWeights" gorm:"not null"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Student         *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject         *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

// LetterCutoffs is the parsed shape of GradingScheme.LetterCutoffs
type LetterCutoffs struct {
	A float64 `json:"A" validate:"gte=0,lte=100"`
	B float64 `json:"B" validate:"gte=0,lte=100"`
	C float64 `json:"C" validate:"gte=0,lte=100"`
	D float64 `json:"D" validate:"gte=0,lte=100"`
}

// SubjectGradeSummary is the aggregation result for one subject
type SubjectGradeSummary struct {
	Percentage           float64 `json:"percentage"`
	LetterGrade          string  `json:"letterGrade"`
	TotalAssignments     int     `json:"totalAssignments"`
	CompletedAssignments int     `json:"completedAssignments"`
}
