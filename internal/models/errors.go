package models

import "errors"

var (
	// ErrCourseNotFound is returned when a course slug does not resolve
	ErrCourseNotFound = errors.New("course not found")
	// ErrLessonNotFound is returned when a lesson slug does not resolve within a course
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrUnauthenticated is returned when a viewer identity is required but missing
	ErrUnauthenticated = errors.New("viewer is not authenticated")
	// ErrLessonLocked is returned when a locked lesson is completed through the API
	ErrLessonLocked = errors.New("lesson is locked")
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}
