package attendance

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise the request validation paths, which reject bad
// input before any database access happens.

func newTestApp() *fiber.App {
	app := fiber.New()
	SetupAttendanceRoutes(app)
	return app
}

func errorBody(t *testing.T, resp io.Reader) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body["error"]
}

func TestGetStatisticsAPIValidation(t *testing.T) {
	app := newTestApp()

	t.Run("malformed start date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/students/s1/attendance/statistics?startDate=01-02-2024", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, errorBody(t, resp.Body), "YYYY-MM-DD")
	})

	t.Run("start after end", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/students/s1/attendance/statistics?startDate=2024-06-30&endDate=2024-01-01", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, errorBody(t, resp.Body), "before end date")
	})
}

func TestGetMonthlyReportAPIValidation(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name  string
		query string
	}{
		{"missing params", ""},
		{"month out of range", "?year=2024&month=13"},
		{"year out of range", "?year=1800&month=5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/students/s1/attendance/report/monthly"+tc.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
			assert.Contains(t, errorBody(t, resp.Body), "invalid year or month")
		})
	}
}

func TestGetRangeReportAPIValidation(t *testing.T) {
	app := newTestApp()

	t.Run("both dates required", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/students/s1/attendance/report?startDate=2024-01-01", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Contains(t, errorBody(t, resp.Body), "required")
	})

	t.Run("malformed end date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/students/s1/attendance/report?startDate=2024-01-01&endDate=bogus", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestCreateAttendanceAPIValidation(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"missing status", `{"date":"2024-09-01"}`},
		{"bad status value", `{"date":"2024-09-01","status":"Tardy"}`},
		{"bad date format", `{"date":"09/01/2024","status":"Present"}`},
		{"negative minutes", `{"date":"2024-09-01","status":"Present","minutes":-5}`},
		{"not json", `date=2024-09-01`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/students/s1/attendance", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}
