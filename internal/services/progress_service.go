package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/coursestore/backend/internal/models"
	"github.com/coursestore/backend/internal/progression"
	"go.uber.org/zap"
)

// CourseRepository defines methods for course data access
type CourseRepository interface {
	// GetBySlug retrieves a course by slug
	//
	// "ctx" is the context for the request.
	// "slug" is the slug of the course.
	//
	// Returns the course, or models.ErrCourseNotFound if the slug does not resolve.
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
}

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByCourseID retrieves the lessons of a course
	//
	// "ctx" is the context for the request.
	// "courseID" is the ID of the course.
	//
	// Returns a list of lessons and an error if any.
	GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error)
}

// LessonCompletionRepository defines methods for lesson completion data access
type LessonCompletionRepository interface {
	// GetByViewerAndLessons retrieves completion records of a viewer
	//
	// "ctx" is the context for the request.
	// "viewerID" is the ID of the viewer.
	// "lessonIDs" restricts the result to these lessons.
	//
	// Returns the completed records and an error if any.
	GetByViewerAndLessons(ctx context.Context, viewerID int, lessonIDs []int) ([]models.CompletionRecord, error)
	// Upsert marks a lesson as completed for a viewer
	//
	// "ctx" is the context for the request.
	// "record" is the completion to persist. Repeated calls must not fail.
	//
	// Returns an error if any.
	Upsert(ctx context.Context, record *models.CompletionRecord) error
}

// CompletionCache defines methods for caching viewers' completed sets
//
// Writes only ever add lesson IDs. Set merges into what is already cached, so a set
// read from the store before a concurrent Add cannot drop the added lesson.
type CompletionCache interface {
	// Get returns the cached completed set and whether a full set loaded from the store is cached
	Get(ctx context.Context, viewerID, courseID int) (progression.CompletedSet, bool, error)
	// Set merges a completed set loaded from the store into the cache
	Set(ctx context.Context, viewerID, courseID int, completed progression.CompletedSet) error
	// Add records one newly completed lesson
	Add(ctx context.Context, viewerID, courseID, lessonID int) error
	// Invalidate drops the cached set
	Invalidate(ctx context.Context, viewerID, courseID int) error
}

// CourseState is a loaded course ready for lock and progress evaluation
type CourseState struct {
	Course    *models.Course
	Sequence  *progression.Sequence
	Completed progression.CompletedSet
}

type progressService struct {
	courseRepo     CourseRepository
	lessonRepo     LessonRepository
	completionRepo LessonCompletionRepository
	cache          CompletionCache
	logger         *zap.Logger
	mediaBaseURL   string
	storeTimeout   time.Duration
	now            func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	completionRepo LessonCompletionRepository,
	cache CompletionCache,
	logger *zap.Logger,
	mediaBaseURL string,
	storeTimeout time.Duration,
) *progressService {
	return &progressService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		completionRepo: completionRepo,
		cache:          cache,
		logger:         logger,
		mediaBaseURL:   mediaBaseURL,
		storeTimeout:   storeTimeout,
		now:            time.Now,
	}
}

// LoadCourse fetches a course, its lessons in global order and the viewer's completed set
//
// viewerID 0 is the anonymous viewer and gets an empty completed set.
func (s *progressService) LoadCourse(ctx context.Context, courseSlug string, viewerID int) (*CourseState, error) {
	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	lessons, err := s.lessonRepo.GetByCourseID(ctx, course.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Position < lessons[j].Position
	})
	for i := 1; i < len(lessons); i++ {
		if lessons[i].Position == lessons[i-1].Position {
			s.logger.Warn("duplicate lesson position",
				zap.Int("course_id", course.ID),
				zap.Int("position", lessons[i].Position),
				zap.Int("lesson_id", lessons[i-1].ID),
				zap.Int("other_lesson_id", lessons[i].ID),
			)
		}
	}

	completed, err := s.completedSet(ctx, viewerID, course.ID, lessons)
	if err != nil {
		return nil, err
	}

	for i := range lessons {
		lessons[i].Completed = completed.Has(lessons[i].ID)
	}

	return &CourseState{
		Course:    course,
		Sequence:  progression.NewSequence(lessons),
		Completed: completed,
	}, nil
}

// completedSet returns the viewer's completed set, from the cache when possible
func (s *progressService) completedSet(ctx context.Context, viewerID, courseID int, lessons []models.Lesson) (progression.CompletedSet, error) {
	if viewerID <= 0 || len(lessons) == 0 {
		return progression.NewCompletedSet(), nil
	}

	cached, ok, err := s.cache.Get(ctx, viewerID, courseID)
	if err != nil {
		s.logger.Warn("failed to read completion cache", zap.Int("viewer_id", viewerID), zap.Int("course_id", courseID), zap.Error(err))
	}
	if ok {
		return cached, nil
	}

	lessonIDs := make([]int, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}
	records, err := s.completionRepo.GetByViewerAndLessons(ctx, viewerID, lessonIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get completions: %w", err)
	}

	completed := progression.NewCompletedSet()
	for _, r := range records {
		if r.Completed {
			completed.Add(r.LessonID)
		}
	}

	if err := s.cache.Set(ctx, viewerID, courseID, completed); err != nil {
		s.logger.Warn("failed to write completion cache", zap.Int("viewer_id", viewerID), zap.Int("course_id", courseID), zap.Error(err))
	}

	return completed, nil
}

// GetCourseOutline retrieves a course grouped by chapters with lock states and progress
func (s *progressService) GetCourseOutline(ctx context.Context, courseSlug string, viewerID int) (*models.CourseOutlineResponse, error) {
	state, err := s.LoadCourse(ctx, courseSlug, viewerID)
	if err != nil {
		return nil, err
	}

	locks := state.Sequence.LockStates(state.Completed)
	lockByID := make(map[int]bool, len(locks))
	var resume *models.LessonNavItem
	for i, l := range state.Sequence.Lessons() {
		lockByID[l.ID] = locks[i]
		if resume == nil && !locks[i] && !l.Completed {
			resume = navItem(l, false)
		}
	}

	chapters := progression.GroupByChapter(state.Sequence.Lessons())
	chapterResponses := make([]models.ChapterResponse, 0, len(chapters))
	for _, c := range chapters {
		items := make([]models.LessonOutlineItem, 0, len(c.Lessons))
		for _, l := range c.Lessons {
			items = append(items, models.LessonOutlineItem{
				Slug:            l.Slug,
				Title:           l.Title,
				Position:        l.Position,
				DurationText:    l.DurationText,
				DurationSeconds: l.DurationSeconds,
				Completed:       l.Completed,
				Locked:          lockByID[l.ID],
			})
		}
		chapterResponses = append(chapterResponses, models.ChapterResponse{
			ID:      c.ID,
			Title:   c.Title,
			Lessons: items,
		})
	}

	progress := s.progress(state)
	return &models.CourseOutlineResponse{
		Slug:             state.Course.Slug,
		Title:            state.Course.Title,
		TotalLessons:     progress.TotalLessons,
		CompletedLessons: progress.CompletedLessons,
		ProgressPercent:  progress.ProgressPercent,
		Chapters:         chapterResponses,
		ResumeLesson:     resume,
	}, nil
}

// GetLesson retrieves a lesson with its lock state, navigation and course progress
//
// A locked lesson is returned without its video.
func (s *progressService) GetLesson(ctx context.Context, courseSlug, lessonSlug string, viewerID int) (*models.LessonViewResponse, error) {
	state, err := s.LoadCourse(ctx, courseSlug, viewerID)
	if err != nil {
		return nil, err
	}

	lesson, err := findLesson(state.Sequence, lessonSlug)
	if err != nil {
		return nil, err
	}

	locked, err := state.Sequence.IsLocked(lesson.ID, state.Completed)
	if err != nil {
		return nil, err
	}

	detail := models.LessonDetail{
		Slug:            lesson.Slug,
		Title:           lesson.Title,
		ChapterID:       lesson.ChapterID,
		ChapterTitle:    lesson.ChapterTitle,
		Position:        lesson.Position,
		DurationText:    lesson.DurationText,
		DurationSeconds: lesson.DurationSeconds,
		Completed:       lesson.Completed,
		Locked:          locked,
	}
	if !locked {
		detail.Video = s.videoResponse(lesson.Video)
	}

	prev, next, err := s.neighbours(state, lesson.ID)
	if err != nil {
		return nil, err
	}

	return &models.LessonViewResponse{
		Lesson:   detail,
		Previous: prev,
		Next:     next,
		Progress: s.progress(state),
	}, nil
}

// CompleteLesson marks a lesson complete for the viewer and returns the re-derived progress
//
// Locked lessons are refused with models.ErrLessonLocked. The returned next lesson is
// evaluated against the completed set that includes the new completion.
func (s *progressService) CompleteLesson(ctx context.Context, courseSlug, lessonSlug string, viewerID int) (*models.CompletionResponse, error) {
	if viewerID <= 0 {
		return nil, models.ErrUnauthenticated
	}

	state, err := s.LoadCourse(ctx, courseSlug, viewerID)
	if err != nil {
		return nil, err
	}

	lesson, err := findLesson(state.Sequence, lessonSlug)
	if err != nil {
		return nil, err
	}

	locked, err := state.Sequence.IsLocked(lesson.ID, state.Completed)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, models.ErrLessonLocked
	}

	if err := s.MarkComplete(ctx, viewerID, state.Course.ID, lesson.ID); err != nil {
		return nil, err
	}
	state.Completed.Add(lesson.ID)

	_, next, err := s.neighbours(state, lesson.ID)
	if err != nil {
		return nil, err
	}

	return &models.CompletionResponse{
		Progress: s.progress(state),
		Next:     next,
	}, nil
}

// MarkComplete records a lesson as completed for the viewer
//
// The write is idempotent and keeps the first completion time. It is detached from the
// caller's cancellation so it still finishes if the viewer goes away mid-request.
func (s *progressService) MarkComplete(ctx context.Context, viewerID, courseID, lessonID int) error {
	if viewerID <= 0 {
		return models.ErrUnauthenticated
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.storeTimeout)
	defer cancel()

	record := &models.CompletionRecord{
		ViewerID:    viewerID,
		CourseID:    courseID,
		LessonID:    lessonID,
		CompletedAt: s.now().UTC(),
	}
	if err := s.completionRepo.Upsert(ctx, record); err != nil {
		s.logger.Error("failed to mark lesson complete",
			zap.Int("viewer_id", viewerID),
			zap.Int("lesson_id", lessonID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save completion: %w", err)
	}

	if err := s.cache.Add(ctx, viewerID, courseID, lessonID); err != nil {
		s.logger.Warn("failed to add completion to cache", zap.Int("viewer_id", viewerID), zap.Int("course_id", courseID), zap.Error(err))
		if err := s.cache.Invalidate(ctx, viewerID, courseID); err != nil {
			s.logger.Warn("failed to invalidate completion cache", zap.Int("viewer_id", viewerID), zap.Int("course_id", courseID), zap.Error(err))
		}
	}

	return nil
}

// progress computes the course progress of a loaded state
func (s *progressService) progress(state *CourseState) models.ProgressResponse {
	total := state.Course.TotalLessons
	if total != state.Sequence.Len() {
		s.logger.Warn("course lesson counter out of sync",
			zap.Int("course_id", state.Course.ID),
			zap.Int("total_lessons", total),
			zap.Int("lessons", state.Sequence.Len()),
		)
	}
	completed := state.Sequence.CompletedCount(state.Completed)

	return models.ProgressResponse{
		TotalLessons:     total,
		CompletedLessons: completed,
		ProgressPercent:  progression.ProgressPercent(total, completed),
	}
}

// neighbours returns the previous and next navigation items of a lesson
func (s *progressService) neighbours(state *CourseState, lessonID int) (*models.LessonNavItem, *models.LessonNavItem, error) {
	var prevItem, nextItem *models.LessonNavItem

	prev, err := state.Sequence.Previous(lessonID)
	if err != nil {
		return nil, nil, err
	}
	if prev != nil {
		locked, err := state.Sequence.IsLocked(prev.ID, state.Completed)
		if err != nil {
			return nil, nil, err
		}
		prevItem = navItem(*prev, locked)
	}

	next, err := state.Sequence.Next(lessonID)
	if err != nil {
		return nil, nil, err
	}
	if next != nil {
		locked, err := state.Sequence.IsLocked(next.ID, state.Completed)
		if err != nil {
			return nil, nil, err
		}
		nextItem = navItem(*next, locked)
	}

	return prevItem, nextItem, nil
}

// videoResponse resolves a video reference to a playable URL
func (s *progressService) videoResponse(video models.VideoSource) *models.VideoResponse {
	switch v := video.(type) {
	case models.EmbeddedVideo:
		return &models.VideoResponse{Kind: v.Kind(), URL: v.URL}
	case models.HostedVideo:
		return &models.VideoResponse{
			Kind:    v.Kind(),
			URL:     fmt.Sprintf("%s/lesson_video/%s", s.mediaBaseURL, v.AssetID),
			AssetID: v.AssetID,
		}
	default:
		return nil
	}
}

// findLesson finds a lesson of the sequence by slug
func findLesson(seq *progression.Sequence, slug string) (models.Lesson, error) {
	for _, l := range seq.Lessons() {
		if l.Slug == slug {
			return l, nil
		}
	}
	return models.Lesson{}, models.ErrLessonNotFound
}

func navItem(l models.Lesson, locked bool) *models.LessonNavItem {
	return &models.LessonNavItem{
		Slug:   l.Slug,
		Title:  l.Title,
		Locked: locked,
	}
}
