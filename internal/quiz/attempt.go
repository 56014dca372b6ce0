// Package quiz scores one attempt at a quiz.
package quiz

import (
	"classroom-player/internal/domain"
)

// Attempt tracks the submitted answers of a quiz for the current try.
// It is not safe for concurrent use; the owning classroom serializes access.
type Attempt struct {
	questions []domain.QuizQuestion
	results   map[int]bool
	number    int
}

// Result summarizes an attempt.
type Result struct {
	AttemptNo    int
	Total        int
	Answered     int
	Correct      int
	Finished     bool
	FullyCorrect bool
	// PerQuestion holds the correctness of every answered question by index.
	PerQuestion map[int]bool
}

// NewAttempt starts the first attempt at questions.
func NewAttempt(questions []domain.QuizQuestion) *Attempt {
	return &Attempt{
		questions: questions,
		results:   make(map[int]bool, len(questions)),
	}
}

// Submit records the answer for question index. An answer cannot be changed
// until Retry.
func (a *Attempt) Submit(index int, option string) (bool, error) {
	if index < 0 || index >= len(a.questions) {
		return false, domain.ValidationErrors{domain.NewOutOfRangeError("question_index", index, 0, len(a.questions)-1)}
	}
	if _, done := a.results[index]; done {
		return false, domain.NewAnswerAlreadySubmittedError(index)
	}
	correct := a.questions[index].IsCorrect(option)
	a.results[index] = correct
	return correct, nil
}

// Retry wipes every answer and starts the next attempt.
func (a *Attempt) Retry() {
	a.results = make(map[int]bool, len(a.questions))
	a.number++
}

// Number is the zero-based attempt counter.
func (a *Attempt) Number() int { return a.number }

func (a *Attempt) Total() int { return len(a.questions) }

func (a *Attempt) Answered() int { return len(a.results) }

func (a *Attempt) Finished() bool { return a.Answered() == a.Total() }

func (a *Attempt) Correct() int {
	n := 0
	for _, ok := range a.results {
		if ok {
			n++
		}
	}
	return n
}

// FullyCorrect is true once every question is answered correctly.
func (a *Attempt) FullyCorrect() bool {
	return a.Finished() && a.Correct() == a.Total()
}

// Result snapshots the attempt.
func (a *Attempt) Result() Result {
	per := make(map[int]bool, len(a.results))
	for k, v := range a.results {
		per[k] = v
	}
	return Result{
		AttemptNo:    a.number,
		Total:        a.Total(),
		Answered:     a.Answered(),
		Correct:      a.Correct(),
		Finished:     a.Finished(),
		FullyCorrect: a.FullyCorrect(),
		PerQuestion:  per,
	}
}
