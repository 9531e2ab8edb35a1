package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coursestore/backend/internal/auth"
	"github.com/coursestore/backend/internal/middleware"
	"github.com/coursestore/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct {
	outline    *models.CourseOutlineResponse
	lesson     *models.LessonViewResponse
	completion *models.CompletionResponse
	err        error

	gotCourse string
	gotLesson string
	gotViewer int
}

func (m *mockProgressService) GetCourseOutline(ctx context.Context, courseSlug string, viewerID int) (*models.CourseOutlineResponse, error) {
	m.gotCourse, m.gotViewer = courseSlug, viewerID
	if m.err != nil {
		return nil, m.err
	}
	return m.outline, nil
}

func (m *mockProgressService) GetLesson(ctx context.Context, courseSlug, lessonSlug string, viewerID int) (*models.LessonViewResponse, error) {
	m.gotCourse, m.gotLesson, m.gotViewer = courseSlug, lessonSlug, viewerID
	if m.err != nil {
		return nil, m.err
	}
	return m.lesson, nil
}

func (m *mockProgressService) CompleteLesson(ctx context.Context, courseSlug, lessonSlug string, viewerID int) (*models.CompletionResponse, error) {
	m.gotCourse, m.gotLesson, m.gotViewer = courseSlug, lessonSlug, viewerID
	if m.err != nil {
		return nil, m.err
	}
	return m.completion, nil
}

func setupTestRouter(t *testing.T, svc ProgressService) (chi.Router, string) {
	t.Helper()
	tg := auth.NewTokenGenerator("handler-test-secret", time.Hour)
	token, err := tg.GenerateAccessToken(7)
	require.NoError(t, err)

	h := NewProgressHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		h.RegisterRoutes(r, auth.OptionalAuthMiddleware(tg), auth.AuthMiddleware(tg))
	})
	return r, token
}

func TestNewProgressHandler(t *testing.T) {
	logger := zap.NewNop()
	svc := &mockProgressService{}

	h := NewProgressHandler(svc, logger)

	assert.NotNil(t, h)
	assert.Equal(t, svc, h.service)
	assert.Equal(t, logger, h.Logger)
}

func TestProgressHandler_GetCourseOutline(t *testing.T) {
	outline := &models.CourseOutlineResponse{
		Slug:            "go-basics",
		Title:           "Go basics",
		TotalLessons:    2,
		ProgressPercent: 50,
		Chapters: []models.ChapterResponse{
			{ID: 1, Title: "Basics", Lessons: []models.LessonOutlineItem{
				{Slug: "welcome", Title: "Welcome", Position: 1, Completed: true},
				{Slug: "setup", Title: "Setup", Position: 2},
			}},
		},
		ResumeLesson: &models.LessonNavItem{Slug: "setup", Title: "Setup"},
	}

	tests := []struct {
		name           string
		withToken      bool
		serviceErr     error
		expectedStatus int
		expectedViewer int
	}{
		{
			name:           "authenticated viewer",
			withToken:      true,
			expectedStatus: http.StatusOK,
			expectedViewer: 7,
		},
		{
			name:           "anonymous viewer",
			expectedStatus: http.StatusOK,
			expectedViewer: 0,
		},
		{
			name:           "course not found",
			serviceErr:     models.ErrCourseNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "store error",
			serviceErr:     errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProgressService{outline: outline, err: tt.serviceErr}
			r, token := setupTestRouter(t, svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/go-basics", nil)
			if tt.withToken {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "go-basics", svc.gotCourse)
			if tt.serviceErr != nil {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
				assert.NotContains(t, body["error"], "connection refused")
				return
			}

			assert.Equal(t, tt.expectedViewer, svc.gotViewer)
			var got models.CourseOutlineResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *outline, got)
		})
	}
}

func TestProgressHandler_GetLesson(t *testing.T) {
	view := &models.LessonViewResponse{
		Lesson:   models.LessonDetail{Slug: "setup", Title: "Setup", Position: 2, Locked: true},
		Previous: &models.LessonNavItem{Slug: "welcome", Title: "Welcome"},
		Progress: models.ProgressResponse{TotalLessons: 2},
	}

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "success",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "lesson not found",
			serviceErr:     models.ErrLessonNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped course not found",
			serviceErr:     errors.Join(errors.New("failed to get course"), models.ErrCourseNotFound),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProgressService{lesson: view, err: tt.serviceErr}
			r, _ := setupTestRouter(t, svc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses/go-basics/lessons/setup", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "go-basics", svc.gotCourse)
			assert.Equal(t, "setup", svc.gotLesson)
			if tt.serviceErr != nil {
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			lesson := body["lesson"].(map[string]any)
			assert.Equal(t, true, lesson["locked"])
			assert.NotContains(t, lesson, "video")
			assert.NotContains(t, body, "next")
		})
	}
}

func TestProgressHandler_CompleteLesson(t *testing.T) {
	completion := &models.CompletionResponse{
		Progress: models.ProgressResponse{TotalLessons: 2, CompletedLessons: 1, ProgressPercent: 50},
		Next:     &models.LessonNavItem{Slug: "setup", Title: "Setup"},
	}

	tests := []struct {
		name           string
		withToken      bool
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "success",
			withToken:      true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "locked lesson",
			withToken:      true,
			serviceErr:     models.ErrLessonLocked,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown lesson",
			withToken:      true,
			serviceErr:     models.ErrLessonNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unauthenticated from service",
			withToken:      true,
			serviceErr:     models.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "store error",
			withToken:      true,
			serviceErr:     errors.New("deadlock"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProgressService{completion: completion, err: tt.serviceErr}
			r, token := setupTestRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/courses/go-basics/lessons/welcome/complete", nil)
			if tt.withToken {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if !tt.withToken {
				assert.Equal(t, "", svc.gotLesson)
				return
			}
			assert.Equal(t, 7, svc.gotViewer)
			assert.Equal(t, "welcome", svc.gotLesson)
			if tt.serviceErr != nil {
				return
			}

			var got models.CompletionResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *completion, got)
		})
	}
}

func TestProgressHandler_CompleteLesson_WithoutMiddleware(t *testing.T) {
	h := NewProgressHandler(&mockProgressService{}, zap.NewNop())
	w := httptest.NewRecorder()

	h.CompleteLesson(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProgressHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name            string
		serviceErr      error
		expectedStatus  int
		expectedMessage string
		expectedLevel   zapcore.Level
	}{
		{
			name:            "course not found",
			serviceErr:      fmt.Errorf("failed to get course: %w", models.ErrCourseNotFound),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "course not found",
			expectedLevel:   zapcore.InfoLevel,
		},
		{
			name:            "lesson not found",
			serviceErr:      models.ErrLessonNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "lesson not found",
			expectedLevel:   zapcore.InfoLevel,
		},
		{
			name:            "lesson locked",
			serviceErr:      models.ErrLessonLocked,
			expectedStatus:  http.StatusConflict,
			expectedMessage: "lesson is locked",
			expectedLevel:   zapcore.InfoLevel,
		},
		{
			name:            "unauthenticated",
			serviceErr:      models.ErrUnauthenticated,
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "viewer is not authenticated",
			expectedLevel:   zapcore.InfoLevel,
		},
		{
			name:            "store error",
			serviceErr:      errors.New("failed to save completion: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
			expectedLevel:   zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			tg := auth.NewTokenGenerator("handler-test-secret", time.Hour)
			token, err := tg.GenerateAccessToken(7)
			require.NoError(t, err)

			h := NewProgressHandler(&mockProgressService{err: tt.serviceErr}, zap.New(core))
			r := chi.NewRouter()
			r.Use(middleware.RequestIDMiddleware)
			h.RegisterRoutes(r, auth.OptionalAuthMiddleware(tg), auth.AuthMiddleware(tg))

			req := httptest.NewRequest(http.MethodPost, "/courses/go-basics/lessons/setup/complete", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set(middleware.RequestIDHeader, "req-42")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body.Error)
			assert.Equal(t, "req-42", body.RequestID)

			entries := logs.FilterMessage("failed to complete lesson").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, "req-42", fields["request_id"])
			assert.Equal(t, int64(tt.expectedStatus), fields["status"])
			assert.Equal(t, int64(7), fields["viewer_id"])
		})
	}
}
