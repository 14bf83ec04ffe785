package service

import "math"

const noAnswerPlaceholder = "No answer"

// percentScore converts a correct/total ratio to a rounded integer percentage
// in [0,100]. A zero total scores zero rather than dividing by zero.
func percentScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
