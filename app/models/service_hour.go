package models

import "time"

// ServiceHour tracks "good citizenship" hours for a student
type ServiceHour struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID   string     `json:"studentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date        CustomDate `json:"date" gorm:"not null;type:date" validate:"required"`
	Hours       float64    `json:"hours" gorm:"not null;type:real" validate:"gt=0"`
	Description string     `json:"description" gorm:"not null" validate:"required"`
	Category    string     `json:"category" gorm:"default:'Community Service'"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	Student     *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
