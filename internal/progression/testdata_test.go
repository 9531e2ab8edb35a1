package progression

import (
	"fmt"
	"math/rand/v2"

	"github.com/coursestore/backend/internal/models"
)

// makeLessons creates n lessons with IDs 101.. and positions 1..n, chapters of two lessons
func makeLessons(n int) []models.Lesson {
	lessons := make([]models.Lesson, n)
	for i := range lessons {
		lessons[i] = models.Lesson{
			ID:           101 + i,
			Slug:         fmt.Sprintf("lesson-%d", i),
			Title:        fmt.Sprintf("Lesson %d", i),
			ChapterID:    i/2 + 1,
			ChapterTitle: fmt.Sprintf("Chapter %d", i/2+1),
			Position:     i + 1,
		}
	}
	return lessons
}

// randomCourse creates a random course with contiguous chapters in shuffled ID order
func randomCourse(rng *rand.Rand) []models.Lesson {
	n := rng.IntN(30)
	lessons := make([]models.Lesson, n)
	// every lesson may start a chapter, so n+1 ids are enough
	pool := rng.Perm(n + 1)
	chapterID := pool[0] + 1
	for i := range lessons {
		if i > 0 && rng.IntN(3) == 0 {
			pool = pool[1:]
			chapterID = pool[0] + 1
		}
		lessons[i] = models.Lesson{
			ID:           rng.IntN(10) + 100*(i+1),
			Slug:         fmt.Sprintf("l-%d", i),
			ChapterID:    chapterID,
			ChapterTitle: fmt.Sprintf("Chapter %d", chapterID),
			Position:     2*i + rng.IntN(2),
		}
	}
	return lessons
}
