package progression

// CompletedSet is the set of lesson IDs a viewer has completed
//
// The nil set is valid and empty, which is what an anonymous viewer gets.
type CompletedSet map[int]struct{}

// NewCompletedSet creates a set from lesson IDs
func NewCompletedSet(lessonIDs ...int) CompletedSet {
	s := make(CompletedSet, len(lessonIDs))
	for _, id := range lessonIDs {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether the lesson is completed
func (s CompletedSet) Has(lessonID int) bool {
	_, ok := s[lessonID]
	return ok
}

// Add marks the lesson as completed
func (s CompletedSet) Add(lessonID int) {
	s[lessonID] = struct{}{}
}

// IDs returns the lesson IDs of the set in no particular order
func (s CompletedSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
