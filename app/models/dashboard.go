package models

// StudentCounts holds the headline numbers shown on a student's overview
type StudentCounts struct {
	TotalSubjects     int `json:"totalSubjects"`
	ActiveSubjects    int `json:"activeSubjects"`
	TotalAssignments  int `json:"totalAssignments"`
	GradedAssignments int `json:"gradedAssignments"`
}
