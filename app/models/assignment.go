package models

import "time"

// Assignment belongs to one subject and one term. Khan Academy lessons are
// stored as assignments with the lesson fields set.
type Assignment struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SubjectID    string      `json:"subjectId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID       string      `json:"termId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title        string      `json:"title" gorm:"not null" validate:"required"`
	Category     string      `json:"category" gorm:"not null" validate:"required,oneof=Homework Quiz Test Project Practice Lesson"`
	MaxPoints    *float64    `json:"maxPoints,omitempty" gorm:"type:real"`
	DateAssigned *CustomDate `json:"dateAssigned,omitempty" gorm:"type:date"`
	DateDue      *CustomDate `json:"dateDue,omitempty" gorm:"type:date"`
	LessonType   *string     `json:"lessonType,omitempty" validate:"omitempty,oneof=practice quiz test lesson"`
	Status       *string     `json:"status,omitempty" validate:"omitempty,oneof=unfamiliar familiar proficient mastered 'not started' attempted"`
	IsKhanLesson bool        `json:"isKhanLesson" gorm:"default:false"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	Subject      *Subject    `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Term         *Term       `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}
