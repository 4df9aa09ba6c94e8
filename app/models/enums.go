package models

// AttendanceStatus defines the possible status values for a day of attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	Excused AttendanceStatus = "Excused"
)

// AssignmentCategory defines the closed set of assignment categories.
// Free-text categories are rejected at the API boundary.
type AssignmentCategory string

const (
	CategoryHomework AssignmentCategory = "Homework"
	CategoryQuiz     AssignmentCategory = "Quiz"
	CategoryTest     AssignmentCategory = "Test"
	CategoryProject  AssignmentCategory = "Project"
	CategoryPractice AssignmentCategory = "Practice"
	CategoryLesson   AssignmentCategory = "Lesson"
)

// LessonType defines the Khan Academy lesson types an assignment can track.
type LessonType string

const (
	LessonPractice LessonType = "practice"
	LessonQuiz     LessonType = "quiz"
	LessonTest     LessonType = "test"
	LessonLesson   LessonType = "lesson"
)

// MasteryStatus defines the Khan Academy mastery progression for a lesson.
type MasteryStatus string

const (
	MasteryUnfamiliar MasteryStatus = "unfamiliar"
	MasteryFamiliar   MasteryStatus = "familiar"
	MasteryProficient MasteryStatus = "proficient"
	MasteryMastered   MasteryStatus = "mastered"
	MasteryNotStarted MasteryStatus = "not started"
	MasteryAttempted  MasteryStatus = "attempted"
)
