package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coursestore/backend/internal/models"
)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByCourseID retrieves all lessons of a course, sorted by position
func (r *lessonRepository) GetByCourseID(ctx context.Context, courseID int) ([]models.Lesson, error) {
	query := `
		SELECT
			id,
			course_id,
			slug,
			title,
			chapter_id,
			chapter_title,
			position,
			duration_text,
			duration_seconds,
			video_kind,
			video_url,
			video_asset_id
		FROM lessons
		WHERE course_id = ?
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		var lesson models.Lesson
		var videoKind string
		var videoURL, videoAssetID sql.NullString
		err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Slug,
			&lesson.Title,
			&lesson.ChapterID,
			&lesson.ChapterTitle,
			&lesson.Position,
			&lesson.DurationText,
			&lesson.DurationSeconds,
			&videoKind,
			&videoURL,
			&videoAssetID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}

		lesson.Video, err = models.NewVideoSource(models.VideoKind(videoKind), videoURL.String, videoAssetID.String)
		if err != nil {
			return nil, fmt.Errorf("invalid video of lesson %d: %w", lesson.ID, err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
