package progression

import (
	"math/rand/v2"
	"testing"

	"github.com/coursestore/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByChapter(t *testing.T) {
	tests := []struct {
		name             string
		lessons          []models.Lesson
		expectedChapters []int
		expectedSizes    []int
	}{
		{
			name:             "no lessons",
			lessons:          nil,
			expectedChapters: []int{},
			expectedSizes:    []int{},
		},
		{
			name: "single chapter",
			lessons: []models.Lesson{
				{ID: 1, ChapterID: 5},
				{ID: 2, ChapterID: 5},
			},
			expectedChapters: []int{5},
			expectedSizes:    []int{2},
		},
		{
			name: "first appearance order with non monotonic ids",
			lessons: []models.Lesson{
				{ID: 1, ChapterID: 3, ChapterTitle: "Intro"},
				{ID: 2, ChapterID: 1, ChapterTitle: "Basics"},
				{ID: 3, ChapterID: 1, ChapterTitle: "Basics"},
				{ID: 4, ChapterID: 2, ChapterTitle: "Advanced"},
			},
			expectedChapters: []int{3, 1, 2},
			expectedSizes:    []int{1, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chapters := GroupByChapter(tt.lessons)

			require.NotNil(t, chapters)
			ids := []int{}
			sizes := []int{}
			for _, c := range chapters {
				ids = append(ids, c.ID)
				sizes = append(sizes, len(c.Lessons))
			}
			assert.Equal(t, tt.expectedChapters, ids)
			assert.Equal(t, tt.expectedSizes, sizes)
		})
	}
}

func TestGroupByChapter_KeepsChapterTitle(t *testing.T) {
	chapters := GroupByChapter([]models.Lesson{
		{ID: 1, ChapterID: 9, ChapterTitle: "Getting started"},
		{ID: 2, ChapterID: 9, ChapterTitle: "Getting started"},
	})

	require.Len(t, chapters, 1)
	assert.Equal(t, "Getting started", chapters[0].Title)
}

func TestGroupByChapter_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 23))

	for iter := 0; iter < 300; iter++ {
		lessons := randomCourse(rng)

		flat := Flatten(GroupByChapter(lessons))

		require.Len(t, flat, len(lessons), "iteration %d", iter)
		for i := range lessons {
			assert.Equal(t, lessons[i], flat[i], "iteration %d index %d", iter, i)
		}
	}
}

func TestGroupByChapter_FirstAppearanceOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	descending := 0

	for iter := 0; iter < 300; iter++ {
		lessons := randomCourse(rng)

		expected := []int{}
		for i, l := range lessons {
			if i == 0 || l.ChapterID != lessons[i-1].ChapterID {
				expected = append(expected, l.ChapterID)
			}
		}
		for i := 1; i < len(expected); i++ {
			if expected[i] < expected[i-1] {
				descending++
			}
		}

		chapters := GroupByChapter(lessons)
		ids := make([]int, len(chapters))
		for i, c := range chapters {
			ids[i] = c.ID
		}

		assert.Equal(t, expected, ids, "iteration %d", iter)
	}

	assert.Positive(t, descending)
}
