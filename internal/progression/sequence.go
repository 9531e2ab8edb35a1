package progression

import (
	"errors"
	"fmt"

	"github.com/coursestore/backend/internal/models"
)

// ErrLessonNotInSequence is returned when a lesson is looked up in a course it does not belong to.
// It indicates a caller bug, not a runtime condition.
var ErrLessonNotInSequence = errors.New("lesson is not part of the course sequence")

// Sequence is a course's lessons in global order with a cached ID to index lookup
type Sequence struct {
	lessons []models.Lesson
	index   map[int]int
}

// NewSequence creates a sequence from lessons already sorted by position
func NewSequence(lessons []models.Lesson) *Sequence {
	index := make(map[int]int, len(lessons))
	for i, l := range lessons {
		index[l.ID] = i
	}
	return &Sequence{lessons: lessons, index: index}
}

// Lessons returns the lessons in global order
func (s *Sequence) Lessons() []models.Lesson {
	return s.lessons
}

// Len returns the number of lessons
func (s *Sequence) Len() int {
	return len(s.lessons)
}

// IndexOf returns the global index of a lesson
func (s *Sequence) IndexOf(lessonID int) (int, error) {
	i, ok := s.index[lessonID]
	if !ok {
		return 0, fmt.Errorf("%w: lesson %d", ErrLessonNotInSequence, lessonID)
	}
	return i, nil
}

// IsLocked reports whether a lesson is locked for the given completed set
//
// The first lesson is never locked. Any other lesson is locked if at least one lesson
// before it is not completed. IDs in completed that are not part of the sequence are ignored.
func (s *Sequence) IsLocked(lessonID int, completed CompletedSet) (bool, error) {
	i, err := s.IndexOf(lessonID)
	if err != nil {
		return false, err
	}
	for _, prev := range s.lessons[:i] {
		if !completed.Has(prev.ID) {
			return true, nil
		}
	}
	return false, nil
}

// LockStates returns the lock state of every lesson, index-aligned with Lessons()
func (s *Sequence) LockStates(completed CompletedSet) []bool {
	states := make([]bool, len(s.lessons))
	prefixDone := true
	for i, l := range s.lessons {
		states[i] = !prefixDone
		if !completed.Has(l.ID) {
			prefixDone = false
		}
	}
	return states
}

// CompletedCount returns how many lessons of the sequence are in the completed set
func (s *Sequence) CompletedCount(completed CompletedSet) int {
	count := 0
	for _, l := range s.lessons {
		if completed.Has(l.ID) {
			count++
		}
	}
	return count
}

// Previous returns the lesson before the given one, or nil for the first lesson
func (s *Sequence) Previous(lessonID int) (*models.Lesson, error) {
	i, err := s.IndexOf(lessonID)
	if err != nil {
		return nil, err
	}
	if i == 0 {
		return nil, nil
	}
	return &s.lessons[i-1], nil
}

// Next returns the lesson after the given one, or nil for the last lesson
func (s *Sequence) Next(lessonID int) (*models.Lesson, error) {
	i, err := s.IndexOf(lessonID)
	if err != nil {
		return nil, err
	}
	if i == len(s.lessons)-1 {
		return nil, nil
	}
	return &s.lessons[i+1], nil
}

// IsLocked reports whether lesson is locked within lessons (global order) for the completed set
func IsLocked(lesson models.Lesson, lessons []models.Lesson, completed CompletedSet) (bool, error) {
	return NewSequence(lessons).IsLocked(lesson.ID, completed)
}

// PreviousLesson returns the lesson preceding current in lessons, or nil if current is first
func PreviousLesson(current models.Lesson, lessons []models.Lesson) (*models.Lesson, error) {
	return NewSequence(lessons).Previous(current.ID)
}

// NextLesson returns the lesson following current in lessons, or nil if current is last
func NextLesson(current models.Lesson, lessons []models.Lesson) (*models.Lesson, error) {
	return NewSequence(lessons).Next(current.ID)
}
