package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coursestore/backend/internal/models"
)

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetBySlug retrieves a course by its slug
func (r *courseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	query := `
		SELECT id, slug, title, total_lessons
		FROM courses
		WHERE slug = ?
		LIMIT 1
	`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&course.ID,
		&course.Slug,
		&course.Title,
		&course.TotalLessons,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by slug: %w", err)
	}

	return &course, nil
}
