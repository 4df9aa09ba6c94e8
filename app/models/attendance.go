package models

import "time"

// Attendance represents one school day for a student. The database enforces
// a single record per (student, date).
type Attendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string           `json:"studentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      CustomDate       `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=Present Absent Excused"`
	TimeOfDay *string          `json:"timeOfDay,omitempty"` // e.g. "9:00 AM - 2:00 PM"
	Minutes   *int             `json:"minutes,omitempty"`
	Notes     *string          `json:"notes,omitempty"` // what was worked on
	CreatedAt time.Time        `json:"createdAt" gorm:"autoCreateTime"`
	Student   *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
