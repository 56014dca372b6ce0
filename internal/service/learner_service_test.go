package service

import (
	"context"
	"errors"
	"testing"

	"classroom-player/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnerService_Notes(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	note, err := f.learner.SaveNote(ctx, f.sessionID, "c6", "kerning matters")
	require.NoError(t, err)
	assert.Equal(t, "Typography and Hierarchy", note.ContentTitle)

	_, err = f.learner.SaveNote(ctx, f.sessionID, "c1", "intro")
	require.NoError(t, err)
	_, err = f.learner.SaveNote(ctx, f.sessionID, "c6", "leading too")
	require.NoError(t, err)

	notes, err := f.learner.Notes(ctx, f.sessionID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "c6", notes[0].ContentID)
	assert.Equal(t, "leading too", notes[0].Text)

	got, err := f.learner.Note(ctx, f.sessionID, "c1")
	require.NoError(t, err)
	assert.Equal(t, "intro", got.Text)

	var domainErr *domain.DomainError
	_, err = f.learner.Note(ctx, f.sessionID, "c2")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)

	_, err = f.learner.SaveNote(ctx, f.sessionID, "nope", "x")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeContentNotFound, domainErr.Code)
}

func TestLearnerService_Bookmarks(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	for _, id := range []string{"c12", "c4"} {
		on, err := f.learner.ToggleBookmark(ctx, f.sessionID, id)
		require.NoError(t, err)
		assert.True(t, on)
	}

	details, err := f.learner.Bookmarks(ctx, f.sessionID)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, "Prototyping Best Practices", details[0].Bookmark.ContentTitle)
	assert.Equal(t, "design-principles", details[0].Location.Course.ID)
	assert.Equal(t, "Advanced Design Techniques", details[0].Location.Module.Title)
	assert.Equal(t, 6, details[0].Location.Index)
	assert.Equal(t, 3, details[1].Location.Index)

	on, err := f.learner.ToggleBookmark(ctx, f.sessionID, "c12")
	require.NoError(t, err)
	assert.False(t, on)

	_, err = f.learner.ToggleBookmark(ctx, f.sessionID, "missing")
	assert.Error(t, err)
}

func TestLearnerService_ProgressSummaries(t *testing.T) {
	f := newClassroomFixture(t)
	ctx := context.Background()

	_, err := f.svc.Open(ctx, f.sessionID, "design-principles", 0)
	require.NoError(t, err)
	_, err = f.svc.Advance(ctx, f.sessionID)
	require.NoError(t, err)

	progress, err := f.learner.Progress(ctx, f.sessionID)
	require.NoError(t, err)
	require.Len(t, progress, 3)

	byID := map[string]CourseProgress{}
	for _, p := range progress {
		byID[p.CourseID] = p
	}
	assert.Equal(t, 2, byID["design-principles"].Completed)
	assert.Equal(t, 8, byID["design-principles"].Total)
	assert.Equal(t, 25, byID["design-principles"].Percent)
	assert.Equal(t, 0, byID["digital-marketing"].Percent)
	assert.Equal(t, "Digital Marketing Fundamentals", byID["digital-marketing"].CourseTitle)
}
