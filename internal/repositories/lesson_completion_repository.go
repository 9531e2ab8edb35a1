package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/coursestore/backend/internal/models"
)

type lessonCompletionRepository struct {
	db *sql.DB
}

// NewLessonCompletionRepository creates a new lesson completion repository
func NewLessonCompletionRepository(db *sql.DB) *lessonCompletionRepository {
	return &lessonCompletionRepository{
		db: db,
	}
}

// GetByViewerAndLessons retrieves the completed records of a viewer among the given lessons
func (r *lessonCompletionRepository) GetByViewerAndLessons(ctx context.Context, viewerID int, lessonIDs []int) ([]models.CompletionRecord, error) {
	if len(lessonIDs) == 0 {
		return []models.CompletionRecord{}, nil
	}

	placeholders := strings.Repeat("?, ", len(lessonIDs)-1) + "?"
	query := fmt.Sprintf(`
		SELECT id, user_id, course_id, lesson_id, completed, completed_at
		FROM lesson_completions
		WHERE user_id = ? AND completed = 1 AND lesson_id IN (%s)
	`, placeholders)

	args := make([]any, 0, len(lessonIDs)+1)
	args = append(args, viewerID)
	for _, id := range lessonIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	records := []models.CompletionRecord{}
	for rows.Next() {
		var record models.CompletionRecord
		err := rows.Scan(
			&record.ID,
			&record.ViewerID,
			&record.CourseID,
			&record.LessonID,
			&record.Completed,
			&record.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Upsert marks a lesson as completed for a viewer
//
// Repeated calls keep the completed_at of the first completion. completed_at is assigned
// before completed so the IF still sees the old row value.
func (r *lessonCompletionRepository) Upsert(ctx context.Context, record *models.CompletionRecord) error {
	query := `
		INSERT INTO lesson_completions (user_id, course_id, lesson_id, completed, completed_at)
		VALUES (?, ?, ?, 1, ?)
		ON DUPLICATE KEY UPDATE
			completed_at = IF(completed = 1, completed_at, VALUES(completed_at)),
			completed = 1
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ViewerID,
		record.CourseID,
		record.LessonID,
		record.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert completion: %w", err)
	}

	record.Completed = true
	return nil
}
