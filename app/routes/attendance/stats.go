package attendance

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pmoore111/homeschoolapp/app/database"
	"github.com/pmoore111/homeschoolapp/app/models"
)

// Statistics summarizes a student's attendance over a period
type Statistics struct {
	TotalDays      int     `json:"totalDays"`
	PresentDays    int     `json:"presentDays"`
	AbsentDays     int     `json:"absentDays"`
	ExcusedDays    int     `json:"excusedDays"`
	AttendanceRate float64 `json:"attendanceRate"`
	CurrentStreak  int     `json:"currentStreak"`
	LongestStreak  int     `json:"longestStreak"`
}

// DailyRecord is one attendance day as reported to the client
type DailyRecord struct {
	Date    models.CustomDate `json:"date"`
	Status  string            `json:"status"`
	Minutes *int              `json:"minutes,omitempty"`
	Notes   *string           `json:"notes,omitempty"`
}

// MonthlyReport is the statistics plus day-level detail for one month
type MonthlyReport struct {
	Month          string        `json:"month"`
	Year           int           `json:"year"`
	TotalDays      int           `json:"totalDays"`
	PresentDays    int           `json:"presentDays"`
	AbsentDays     int           `json:"absentDays"`
	ExcusedDays    int           `json:"excusedDays"`
	AttendanceRate float64       `json:"attendanceRate"`
	DailyRecords   []DailyRecord `json:"dailyRecords"`
}

// RangeReport is the statistics plus day-level detail for a date range
type RangeReport struct {
	Period struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"period"`
	Summary struct {
		TotalDays      int     `json:"totalDays"`
		PresentDays    int     `json:"presentDays"`
		AbsentDays     int     `json:"absentDays"`
		ExcusedDays    int     `json:"excusedDays"`
		AttendanceRate float64 `json:"attendanceRate"`
	} `json:"summary"`
	DailyRecords []DailyRecord `json:"dailyRecords"`
}

// GetStatistics tallies attendance for the period and computes the Present
// streaks. Empty periods produce zeroes, not an error.
func GetStatistics(db *sql.DB, studentID, startDate, endDate string) (*Statistics, error) {
	records, err := database.GetAttendanceByStudent(db, studentID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	stats := &Statistics{TotalDays: len(records)}
	for _, record := range records {
		switch record.Status {
		case models.Present:
			stats.PresentDays++
		case models.Absent:
			stats.AbsentDays++
		case models.Excused:
			stats.ExcusedDays++
		}
	}

	if stats.TotalDays > 0 {
		rate := float64(stats.PresentDays) / float64(stats.TotalDays) * 100
		stats.AttendanceRate = math.Round(rate*100) / 100
	}

	// Streaks need the records oldest first
	chronological := make([]*models.Attendance, len(records))
	copy(chronological, records)
	sort.Slice(chronological, func(i, j int) bool {
		return chronological[i].Date.Time.Before(chronological[j].Date.Time)
	})
	stats.CurrentStreak, stats.LongestStreak = calculateStreaks(chronological)

	return stats, nil
}

// calculateStreaks scans chronologically sorted records from the most
// recent backwards. The current streak only counts a Present run that
// includes the most recent record; the longest streak is the longest
// Present run anywhere in the period.
func calculateStreaks(sorted []*models.Attendance) (currentStreak, longestStreak int) {
	if len(sorted) == 0 {
		return 0, 0
	}

	// inCurrentRun stays true while the scan is still inside the Present
	// run that contains the most recent record
	inCurrentRun := true
	tempStreak := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Status == models.Present {
			tempStreak++
			if inCurrentRun {
				currentStreak = tempStreak
			}
		} else {
			inCurrentRun = false
			if tempStreak > longestStreak {
				longestStreak = tempStreak
			}
			tempStreak = 0
		}
	}

	if tempStreak > longestStreak {
		longestStreak = tempStreak
	}
	return currentStreak, longestStreak
}

// GetMonthlyReport builds the report for one calendar month
func GetMonthlyReport(db *sql.DB, studentID string, year, month int) (*MonthlyReport, error) {
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)

	records, err := database.GetAttendanceByStudent(db, studentID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats, err := GetStatistics(db, studentID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &MonthlyReport{
		Month:          time.Month(month).String(),
		Year:           year,
		TotalDays:      stats.TotalDays,
		PresentDays:    stats.PresentDays,
		AbsentDays:     stats.AbsentDays,
		ExcusedDays:    stats.ExcusedDays,
		AttendanceRate: stats.AttendanceRate,
		DailyRecords:   toDailyRecords(records),
	}, nil
}

// GetRangeReport builds the report for an arbitrary date range
func GetRangeReport(db *sql.DB, studentID, startDate, endDate string) (*RangeReport, error) {
	records, err := database.GetAttendanceByStudent(db, studentID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	stats, err := GetStatistics(db, studentID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	report := &RangeReport{DailyRecords: toDailyRecords(records)}
	report.Period.StartDate = startDate
	report.Period.EndDate = endDate
	report.Summary.TotalDays = stats.TotalDays
	report.Summary.PresentDays = stats.PresentDays
	report.Summary.AbsentDays = stats.AbsentDays
	report.Summary.ExcusedDays = stats.ExcusedDays
	report.Summary.AttendanceRate = stats.AttendanceRate
	return report, nil
}

func toDailyRecords(records []*models.Attendance) []DailyRecord {
	daily := make([]DailyRecord, 0, len(records))
	for _, record := range records {
		daily = append(daily, DailyRecord{
			Date:    record.Date,
			Status:  string(record.Status),
			Minutes: record.Minutes,
			Notes:   record.Notes,
		})
	}
	return daily
}
