package models

import "time"

// Grade holds the points earned for one assignment submission. PointsEarned
// stays nil until the assignment is actually graded.
type Grade struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AssignmentID string      `json:"assignmentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PointsEarned *float64    `json:"pointsEarned" gorm:"type:real"`
	Comment      *string     `json:"comment,omitempty"`
	GradedAt     time.Time   `json:"gradedAt" gorm:"autoCreateTime"`
	Assignment   *Assignment `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID;references:ID"`
}
