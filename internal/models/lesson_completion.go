package models

import "time"

// CompletionRecord represents a viewer's completion of a lesson
//
// A record is unique per (ViewerID, LessonID). CompletedAt keeps the first completion time.
type CompletionRecord struct {
	ID          int       `json:"id"`
	ViewerID    int       `json:"viewerId"`
	CourseID    int       `json:"courseId"`
	LessonID    int       `json:"lessonId"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}
