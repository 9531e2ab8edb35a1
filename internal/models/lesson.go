package models

// Lesson represents one playable lesson of a course
//
// Position is the course-wide order of the lesson. It is unique within a course
// and defines both lock evaluation order and previous/next navigation.
type Lesson struct {
	ID              int
	CourseID        int
	Slug            string
	Title           string
	ChapterID       int
	ChapterTitle    string
	Position        int
	DurationText    string
	DurationSeconds int
	Video           VideoSource
	Completed       bool // Derived per viewer
}

// LessonOutlineItem represents a lesson in the course outline
type LessonOutlineItem struct {
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Position        int    `json:"position"`
	DurationText    string `json:"durationText"`
	DurationSeconds int    `json:"durationSeconds"`
	Completed       bool   `json:"completed"`
	Locked          bool   `json:"locked"`
}

// LessonNavItem represents a previous/next navigation link
type LessonNavItem struct {
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Locked bool   `json:"locked"`
}

// LessonDetail represents a lesson on the lesson page
type LessonDetail struct {
	Slug            string         `json:"slug"`
	Title           string         `json:"title"`
	ChapterID       int            `json:"chapterId"`
	ChapterTitle    string         `json:"chapterTitle"`
	Position        int            `json:"position"`
	DurationText    string         `json:"durationText"`
	DurationSeconds int            `json:"durationSeconds"`
	Completed       bool           `json:"completed"`
	Locked          bool           `json:"locked"`
	Video           *VideoResponse `json:"video,omitempty"` // Omitted while the lesson is locked
}

// LessonViewResponse represents the lesson page with navigation and course progress
type LessonViewResponse struct {
	Lesson   LessonDetail     `json:"lesson"`
	Previous *LessonNavItem   `json:"previous,omitempty"`
	Next     *LessonNavItem   `json:"next,omitempty"`
	Progress ProgressResponse `json:"progress"`
}

// CompletionResponse represents the result of completing a lesson
type CompletionResponse struct {
	Progress ProgressResponse `json:"progress"`
	Next     *LessonNavItem   `json:"next,omitempty"`
}
