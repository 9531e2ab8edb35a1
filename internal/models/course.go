package models

// Course represents a course in the catalog
//
// TotalLessons is a denormalized counter maintained by the catalog administration.
// Progress percentages are computed against it.
type Course struct {
	ID           int    `json:"id"`
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	TotalLessons int    `json:"totalLessons"`
}

// CourseOutlineResponse represents a course with its chapters and the viewer's progress
type CourseOutlineResponse struct {
	Slug             string            `json:"slug"`
	Title            string            `json:"title"`
	TotalLessons     int               `json:"totalLessons"`
	CompletedLessons int               `json:"completedLessons"`
	ProgressPercent  int               `json:"progressPercent"`
	Chapters         []ChapterResponse `json:"chapters"`
	ResumeLesson     *LessonNavItem    `json:"resumeLesson,omitempty"` // First unlocked lesson that is not completed
}

// ProgressResponse represents the viewer's progress in a course
type ProgressResponse struct {
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	ProgressPercent  int `json:"progressPercent"`
}
