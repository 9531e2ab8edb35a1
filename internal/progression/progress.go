package progression

import "math"

// ProgressPercent returns round(100 * completed / total) clamped to [0, 100]
//
// A course without lessons has 0 progress.
func ProgressPercent(total, completed int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
