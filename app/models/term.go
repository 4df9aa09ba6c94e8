package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CustomDate handles date-only JSON parsing and DATE column scanning
type CustomDate struct {
	time.Time
}

func (cd *CustomDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	cd.Time = t
	return nil
}

func (cd CustomDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + cd.Time.Format("2006-01-02") + `"`), nil
}

// Scan implements sql.Scanner so DATE columns load directly into CustomDate
func (cd *CustomDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		cd.Time = v
		return nil
	case []byte:
		t, err := time.Parse("2006-01-02", string(v))
		if err != nil {
			return err
		}
		cd.Time = t
		return nil
	case string:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return err
		}
		cd.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CustomDate", value)
	}
}

// Value implements driver.Valuer for DATE column writes
func (cd CustomDate) Value() (driver.Value, error) {
	return cd.Time.Format("2006-01-02"), nil
}

// Term represents a term/semester for a student
type Term struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string     `json:"studentId" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	StartDate CustomDate `json:"startDate" gorm:"not null;type:date" validate:"required"`
	EndDate   CustomDate `json:"endDate" gorm:"not null;type:date" validate:"required"`
	IsActive  bool       `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	Student   *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// IsCurrentByDate checks if the term covers today's date
func (t *Term) IsCurrentByDate() bool {
	now := time.Now()
	return !now.Before(t.StartDate.Time) && !now.After(t.EndDate.Time.AddDate(0, 0, 1))
}
