package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/coursestore/backend/internal/auth"
	"github.com/coursestore/backend/internal/middleware"
	"github.com/coursestore/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps methods for course progression
type ProgressService interface {
	// GetCourseOutline retrieves a course grouped by chapters for a viewer
	//
	// "ctx" is the context for the request.
	// "courseSlug" is the slug of the course.
	// "viewerID" is the ID of the viewer, 0 for an anonymous viewer.
	//
	// Returns the outline with lock states and progress, or models.ErrCourseNotFound.
	GetCourseOutline(ctx context.Context, courseSlug string, viewerID int) (*models.CourseOutlineResponse, error)
	// GetLesson retrieves a lesson page for a viewer
	//
	// "ctx" is the context for the request.
	// "courseSlug" is the slug of the course.
	// "lessonSlug" is the slug of the lesson within the course.
	// "viewerID" is the ID of the viewer, 0 for an anonymous viewer.
	//
	// Returns the lesson with navigation and progress, or a not found error.
	GetLesson(ctx context.Context, courseSlug, lessonSlug string, viewerID int) (*models.LessonViewResponse, error)
	// CompleteLesson marks a lesson complete for a viewer
	//
	// "ctx" is the context for the request.
	// "courseSlug" is the slug of the course.
	// "lessonSlug" is the slug of the lesson within the course.
	// "viewerID" is the ID of the viewer.
	//
	// Returns the updated progress and next lesson. Fails with models.ErrLessonLocked
	// if the lesson is not reachable yet.
	CompleteLesson(ctx context.Context, courseSlug, lessonSlug string, viewerID int) (*models.CompletionResponse, error)
}

// ProgressHandler handles HTTP requests for course progression
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all progress handler routes
//
// Read routes run behind optionalAuth so anonymous viewers get the locked view.
// Completion requires authentication.
func (h *ProgressHandler) RegisterRoutes(r chi.Router, optionalAuth, requiredAuth func(http.Handler) http.Handler) {
	r.Route("/courses/{courseSlug}", func(r chi.Router) {
		r.With(optionalAuth).Get("/", h.GetCourseOutline)
		r.With(optionalAuth).Get("/lessons/{lessonSlug}", h.GetLesson)
		r.With(requiredAuth).Post("/lessons/{lessonSlug}/complete", h.CompleteLesson)
	})
}

// GetCourseOutline handles GET /courses/{courseSlug}
// @Summary Get course outline
// @Description Get a course grouped by chapters with completion and lock state of every lesson
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseSlug path string true "Course slug"
// @Success 200 {object} models.CourseOutlineResponse "Course outline"
// @Failure 404 {object} models.ErrorResponse "Course not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /courses/{courseSlug} [get]
func (h *ProgressHandler) GetCourseOutline(w http.ResponseWriter, r *http.Request) {
	courseSlug := chi.URLParam(r, "courseSlug")
	viewerID, _ := auth.GetViewerID(r.Context())

	outline, err := h.service.GetCourseOutline(r.Context(), courseSlug, viewerID)
	if err != nil {
		h.respondServiceError(w, r, "failed to get course outline", err, zap.String("course", courseSlug))
		return
	}

	h.RespondJSON(w, http.StatusOK, outline)
}

// GetLesson handles GET /courses/{courseSlug}/lessons/{lessonSlug}
// @Summary Get lesson
// @Description Get a lesson with its lock state, previous/next navigation and course progress. Locked lessons have no video.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseSlug path string true "Course slug"
// @Param lessonSlug path string true "Lesson slug"
// @Success 200 {object} models.LessonViewResponse "Lesson"
// @Failure 404 {object} models.ErrorResponse "Course or lesson not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /courses/{courseSlug}/lessons/{lessonSlug} [get]
func (h *ProgressHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	courseSlug := chi.URLParam(r, "courseSlug")
	lessonSlug := chi.URLParam(r, "lessonSlug")
	viewerID, _ := auth.GetViewerID(r.Context())

	lesson, err := h.service.GetLesson(r.Context(), courseSlug, lessonSlug, viewerID)
	if err != nil {
		h.respondServiceError(w, r, "failed to get lesson", err,
			zap.String("course", courseSlug),
			zap.String("lesson", lessonSlug),
		)
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}

// CompleteLesson handles POST /courses/{courseSlug}/lessons/{lessonSlug}/complete
// @Summary Complete lesson
// @Description Mark a lesson as completed. Repeated calls succeed and keep the first completion time.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseSlug path string true "Course slug"
// @Param lessonSlug path string true "Lesson slug"
// @Success 200 {object} models.CompletionResponse "Updated progress"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Course or lesson not found"
// @Failure 409 {object} models.ErrorResponse "Lesson is locked"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /courses/{courseSlug}/lessons/{lessonSlug}/complete [post]
func (h *ProgressHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.GetViewerID(r.Context())
	if !ok {
		h.Logger.Warn("viewer ID not found in context", zap.String("request_id", middleware.GetRequestID(r.Context())))
		h.RespondError(w, r, http.StatusUnauthorized, "viewer ID not found in context")
		return
	}

	courseSlug := chi.URLParam(r, "courseSlug")
	lessonSlug := chi.URLParam(r, "lessonSlug")

	result, err := h.service.CompleteLesson(r.Context(), courseSlug, lessonSlug, viewerID)
	if err != nil {
		h.respondServiceError(w, r, "failed to complete lesson", err,
			zap.Int("viewer_id", viewerID),
			zap.String("course", courseSlug),
			zap.String("lesson", lessonSlug),
		)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// respondServiceError maps service errors to HTTP statuses and logs the outcome
//
// Expected client outcomes are logged at Info; only store failures are logged at
// Error, and their details are not exposed to the client.
func (h *ProgressHandler) respondServiceError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	status, message := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, models.ErrCourseNotFound):
		status, message = http.StatusNotFound, models.ErrCourseNotFound.Error()
	case errors.Is(err, models.ErrLessonNotFound):
		status, message = http.StatusNotFound, models.ErrLessonNotFound.Error()
	case errors.Is(err, models.ErrUnauthenticated):
		status, message = http.StatusUnauthorized, models.ErrUnauthenticated.Error()
	case errors.Is(err, models.ErrLessonLocked):
		status, message = http.StatusConflict, models.ErrLessonLocked.Error()
	}

	fields = append(fields,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	)
	if status == http.StatusInternalServerError {
		h.Logger.Error(msg, fields...)
	} else {
		h.Logger.Info(msg, fields...)
	}

	h.RespondError(w, r, status, message)
}
