package interview

import (
	"math"

	"github.com/shettyrawat/anjob-backend/internal/entity"
)

// staticTransition reports the status implied by the exchange slots after an
// answer lands. The interview completes once every slot holds an answer; the
// returned score is set only on completion.
func staticTransition(exchanges []entity.Exchange) (entity.InterviewStatus, *int) {
	for _, ex := range exchanges {
		if !ex.Answered() {
			return entity.InterviewStatusOngoing, nil
		}
	}

	score := overallScore(exchanges)
	return entity.InterviewStatusCompleted, &score
}

// adaptiveTransition decides the adaptive interview's status after an
// exchange was appended. interviewerDone is the completion signal from the
// model; the exchange cap forces completion regardless of it.
func adaptiveTransition(exchanges []entity.Exchange, interviewerDone bool, maxExchanges int) (entity.InterviewStatus, *int) {
	if interviewerDone || len(exchanges) >= maxExchanges {
		score := overallScore(exchanges)
		return entity.InterviewStatusCompleted, &score
	}

	return entity.InterviewStatusOngoing, nil
}

// overallScore is the rounded mean of the exchange scores. Degraded
// zero-score evaluations count toward the mean.
func overallScore(exchanges []entity.Exchange) int {
	if len(exchanges) == 0 {
		return 0
	}

	sum := 0
	for _, ex := range exchanges {
		sum += ex.Score
	}

	return int(math.Round(float64(sum) / float64(len(exchanges))))
}
