package progression

import "github.com/coursestore/backend/internal/models"

// GroupByChapter partitions lessons (global order) into chapters
//
// Chapters come out in order of first appearance, not in chapter ID order, and each
// chapter keeps its lessons in global order. No lessons means no chapters.
func GroupByChapter(lessons []models.Lesson) []models.Chapter {
	chapters := []models.Chapter{}
	bucket := make(map[int]int)
	for _, l := range lessons {
		i, ok := bucket[l.ChapterID]
		if !ok {
			i = len(chapters)
			bucket[l.ChapterID] = i
			chapters = append(chapters, models.Chapter{ID: l.ChapterID, Title: l.ChapterTitle})
		}
		chapters[i].Lessons = append(chapters[i].Lessons, l)
	}
	return chapters
}

// Flatten concatenates chapter lessons back into a single sequence
func Flatten(chapters []models.Chapter) []models.Lesson {
	var lessons []models.Lesson
	for _, c := range chapters {
		lessons = append(lessons, c.Lessons...)
	}
	return lessons
}
