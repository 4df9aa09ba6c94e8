package models

import "time"

// Student is the root of the domain model; deleting a student cascades to
// every record that belongs to them.
type Student struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FirstName   string      `json:"firstName" gorm:"not null" validate:"required"`
	LastName    string      `json:"lastName" gorm:"not null" validate:"required"`
	GradeLevel  *string     `json:"gradeLevel,omitempty"` // K, 1-12
	DateOfBirth *CustomDate `json:"dateOfBirth,omitempty" gorm:"type:date"`
	CreatedAt   time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}
