package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pmoore111/homeschoolapp/app/models"
)

// days builds chronologically ordered records, one per status, starting
// from an arbitrary fixed date.
func days(statuses ...models.AttendanceStatus) []*models.Attendance {
	start := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	records := make([]*models.Attendance, 0, len(statuses))
	for i, status := range statuses {
		records = append(records, &models.Attendance{
			ID:        fmt.Sprintf("att-%d", i),
			StudentID: "student-1",
			Date:      models.CustomDate{Time: start.AddDate(0, 0, i)},
			Status:    status,
		})
	}
	return records
}

func TestCalculateStreaks(t *testing.T) {
	cases := []struct {
		name     string
		statuses []models.AttendanceStatus
		current  int
		longest  int
	}{
		{"empty", nil, 0, 0},
		{"single present", []models.AttendanceStatus{models.Present}, 1, 1},
		{"single absent", []models.AttendanceStatus{models.Absent}, 0, 0},
		{
			"current streak runs back from the latest day",
			[]models.AttendanceStatus{models.Present, models.Absent, models.Present, models.Present},
			2, 2,
		},
		{
			"absence on the latest day zeroes the current streak",
			[]models.AttendanceStatus{models.Present, models.Present, models.Absent},
			0, 2,
		},
		{
			"longest streak can predate the current one",
			[]models.AttendanceStatus{models.Present, models.Present, models.Present, models.Absent, models.Present},
			1, 3,
		},
		{
			"excused breaks a streak like an absence",
			[]models.AttendanceStatus{models.Present, models.Excused, models.Present},
			1, 1,
		},
		{
			"trailing run longer than two",
			[]models.AttendanceStatus{models.Absent, models.Present, models.Present, models.Present, models.Present},
			4, 4,
		},
		{
			"all present",
			[]models.AttendanceStatus{models.Present, models.Present, models.Present},
			3, 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current, longest := calculateStreaks(days(tc.statuses...))
			assert.Equal(t, tc.current, current, "current streak")
			assert.Equal(t, tc.longest, longest, "longest streak")
		})
	}
}

func TestToDailyRecords(t *testing.T) {
	t.Run("empty input stays a non-nil slice", func(t *testing.T) {
		daily := toDailyRecords(nil)
		assert.NotNil(t, daily)
		assert.Len(t, daily, 0)
	})

	t.Run("copies per-day detail", func(t *testing.T) {
		minutes := 240
		notes := "field trip"
		records := days(models.Present)
		records[0].Minutes = &minutes
		records[0].Notes = &notes

		daily := toDailyRecords(records)
		assert.Len(t, daily, 1)
		assert.Equal(t, "Present", daily[0].Status)
		assert.Equal(t, &minutes, daily[0].Minutes)
		assert.Equal(t, &notes, daily[0].Notes)
	})
}
