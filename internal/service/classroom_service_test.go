package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"classroom-player/internal/catalog"
	"classroom-player/internal/classroom"
	"classroom-player/internal/config"
	"classroom-player/internal/document"
	"classroom-player/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classroomFixture struct {
	sessions  SessionService
	notices   *recordingNoticeService
	svc       ClassroomService
	learner   LearnerService
	sessionID string
}

func newClassroomFixture(t *testing.T) *classroomFixture {
	t.Helper()
	cat, err := catalog.Load(context.Background(), catalog.EmbeddedSource{})
	require.NoError(t, err)

	f := &classroomFixture{notices: newRecordingNoticeService()}
	f.sessions = NewSessionService(config.SessionConfig{}, f.notices)
	f.svc = NewClassroomService(cat, f.sessions, f.notices, 50*time.Millisecond)
	f.learner = NewLearnerService(cat, f.sessions)

	sess, err := f.sessions.Create(context.Background())
	require.NoError(t, err)
	f.sessionID = sess.ID
	return f
}

func TestClassroomService_ReactCourseWalkthrough(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	state, err := f.svc.Open(ctx, f.sessionID, "react-mastery", 99)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Index)
	assert.Equal(t, 4, state.Total)
	assert.Equal(t, "c1", state.Item.ContentID())

	for _, want := range []string{"c2", "c3", "c4"} {
		res, err := f.svc.Advance(ctx, f.sessionID)
		require.NoError(t, err)
		assert.Equal(t, classroom.OutcomeMoved, res.Outcome)
		assert.Equal(t, want, res.State.Item.ContentID())
	}

	ans, err := f.svc.Answer(ctx, f.sessionID, 0, "Meta")
	require.NoError(t, err)
	assert.True(t, ans.Correct)
	ans, err = f.svc.Answer(ctx, f.sessionID, 1, "False")
	require.NoError(t, err)
	assert.True(t, ans.Quiz.FullyCorrect)

	assert.Eventually(t, func() bool { return f.notices.count(f.sessionID) == 1 }, time.Second, 5*time.Millisecond)
	notice, err := f.notices.Consume(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, "react-mastery", notice.CourseID)
	assert.Equal(t, "React Mastery 2024", notice.CourseTitle)

	progress, err := f.learner.Progress(ctx, f.sessionID)
	require.NoError(t, err)
	for _, p := range progress {
		if p.CourseID == "react-mastery" {
			assert.Equal(t, 100, p.Percent)
		}
	}
}

func TestClassroomService_HeldExit(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sessionID, "react-mastery", 3)
	require.NoError(t, err)

	res, err := f.svc.Exit(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, classroom.OutcomeHeld, res.Outcome)
	assert.Equal(t, classroom.PendingExit, res.State.Pending)

	res, err = f.svc.Cancel(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, classroom.OutcomeCanceled, res.Outcome)

	_, err = f.svc.Exit(ctx, f.sessionID)
	require.NoError(t, err)
	res, err = f.svc.Confirm(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, classroom.OutcomeExited, res.Outcome)

	_, err = f.svc.Current(ctx, f.sessionID)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNoClassroom, domainErr.Code)
}

func TestClassroomService_ReopenCancelsCompletion(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sessionID, "react-mastery", 3)
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, f.sessionID, 0, "Meta")
	require.NoError(t, err)
	_, err = f.svc.Answer(ctx, f.sessionID, 1, "False")
	require.NoError(t, err)

	_, err = f.svc.Open(ctx, f.sessionID, "digital-marketing", -1)
	require.NoError(t, err)
	assert.Never(t, func() bool { return f.notices.count(f.sessionID) > 0 }, 200*time.Millisecond, 5*time.Millisecond)
}

func TestClassroomService_Errors(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()
	var domainErr *domain.DomainError

	_, err := f.svc.Open(ctx, f.sessionID, "missing-course", 0)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeCourseNotFound, domainErr.Code)

	_, err = f.svc.Advance(ctx, f.sessionID)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNoClassroom, domainErr.Code)

	_, err = f.svc.Open(ctx, "no-such-session", "react-mastery", 0)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeSessionNotFound, domainErr.Code)

	_, err = f.svc.Open(ctx, f.sessionID, "react-mastery", 0)
	require.NoError(t, err)
	_, err = f.svc.Retry(ctx, f.sessionID)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNotAQuiz, domainErr.Code)
}

func TestClassroomService_DocumentAndBookmark(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sessionID, "react-mastery", 2)
	require.NoError(t, err)

	vp, err := f.svc.Document(ctx, f.sessionID, document.Command{Action: document.ActionLoaded, PageCount: 12})
	require.NoError(t, err)
	assert.Equal(t, document.StatusReady, vp.Status)
	vp, err = f.svc.Document(ctx, f.sessionID, document.Command{Action: document.ActionZoomIn})
	require.NoError(t, err)
	assert.Equal(t, 1.75, vp.Zoom)

	on, err := f.learner.ToggleBookmark(ctx, f.sessionID, "c3")
	require.NoError(t, err)
	assert.True(t, on)
	state, err := f.svc.Current(ctx, f.sessionID)
	require.NoError(t, err)
	assert.True(t, state.Bookmarked)
	require.NotNil(t, state.Document)
	assert.Equal(t, 12, state.Document.PageCount)
}
