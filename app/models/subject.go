package models

import "time"

// Subject represents one course of study for a student, e.g. Reading or Math
type Subject struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string    `json:"studentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Student   *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
