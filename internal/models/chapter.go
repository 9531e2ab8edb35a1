package models

// Chapter groups consecutive lessons of a course under one chapter identifier
type Chapter struct {
	ID      int
	Title   string
	Lessons []Lesson
}

// ChapterResponse represents a chapter in the course outline
type ChapterResponse struct {
	ID      int                 `json:"id"`
	Title   string              `json:"title"`
	Lessons []LessonOutlineItem `json:"lessons"`
}
