package quiz

import (
	"errors"
	"testing"

	"classroom-player/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{Question: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A", Type: domain.QuestionMultipleChoice},
		{Question: "Q2", Options: []string{"True", "False"}, CorrectAnswer: "True", Type: domain.QuestionTrueFalse},
	}
}

func TestAttempt_ScoreRetryScenario(t *testing.T) {
	a := NewAttempt(twoQuestions())

	ok, err := a.Submit(0, "A")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = a.Submit(1, "False")
	require.NoError(t, err)
	assert.False(t, ok)

	res := a.Result()
	assert.True(t, res.Finished)
	assert.Equal(t, 1, res.Correct)
	assert.False(t, res.FullyCorrect)
	assert.Equal(t, map[int]bool{0: true, 1: false}, res.PerQuestion)

	a.Retry()
	assert.Equal(t, 0, a.Answered())
	assert.False(t, a.FullyCorrect())
	assert.Equal(t, 1, a.Number())

	_, err = a.Submit(0, "A")
	require.NoError(t, err)
	_, err = a.Submit(1, "True")
	require.NoError(t, err)
	assert.True(t, a.FullyCorrect())
}

func TestAttempt_AnswerIsImmutableUntilRetry(t *testing.T) {
	a := NewAttempt(twoQuestions())
	_, err := a.Submit(0, "B")
	require.NoError(t, err)

	_, err = a.Submit(0, "A")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAnswerAlreadySubmitted, domainErr.Code)
	assert.Equal(t, 0, a.Correct())

	a.Retry()
	ok, err := a.Submit(0, "A")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAttempt_OutOfRange(t *testing.T) {
	a := NewAttempt(twoQuestions())
	for _, idx := range []int{-1, 2} {
		_, err := a.Submit(idx, "A")
		var verrs domain.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, domain.CodeOutOfRange, verrs[0].Code)
	}
	assert.Equal(t, 0, a.Answered())
}

func TestAttempt_RetryAlwaysResets(t *testing.T) {
	a := NewAttempt(twoQuestions())
	a.Retry()
	assert.Equal(t, 0, a.Answered())
	assert.False(t, a.FullyCorrect())

	_, _ = a.Submit(0, "A")
	_, _ = a.Submit(1, "True")
	require.True(t, a.FullyCorrect())
	a.Retry()
	assert.Equal(t, 0, a.Answered())
	assert.False(t, a.FullyCorrect())
	assert.Equal(t, 2, a.Number())
}

func TestAttempt_EmptyQuizIsFullyCorrect(t *testing.T) {
	a := NewAttempt(nil)
	assert.True(t, a.Finished())
	assert.True(t, a.FullyCorrect())
}
