package domain

// ComputeScore sums the point values of the recorded answers. A question
// with no recorded answer, or with a choice index outside its scores,
// contributes nothing.
func ComputeScore(quiz *QuizDefinition, answers map[string]int) int {
	total := 0
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		choice, ok := answers[question.ID]
		if !ok {
			continue
		}
		if choice >= 0 && choice < len(question.Scores) {
			total += question.Scores[choice]
		}
	}
	return total
}

// ResolveResult returns the first band, in authored order, whose inclusive
// range contains score. The boolean is false when no band matches.
func ResolveResult(quiz *QuizDefinition, score int) (*ResultBand, bool) {
	for i := range quiz.Results {
		if quiz.Results[i].Contains(score) {
			band := quiz.Results[i]
			return &band, true
		}
	}
	return nil, false
}

// ScoreBounds returns the lowest and highest totals a full pass can produce.
func ScoreBounds(quiz *QuizDefinition) (int, int) {
	lo, hi := 0, 0
	for i := range quiz.Questions {
		scores := quiz.Questions[i].Scores
		if len(scores) == 0 {
			continue
		}
		qMin, qMax := scores[0], scores[0]
		for _, s := range scores[1:] {
			if s < qMin {
				qMin = s
			}
			if s > qMax {
				qMax = s
			}
		}
		lo += qMin
		hi += qMax
	}
	return lo, hi
}
