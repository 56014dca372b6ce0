package service

import (
	"context"

	"classroom-player/internal/catalog"
	"classroom-player/internal/domain"
	"classroom-player/internal/learner"
)

// BookmarkDetail is a bookmark resolved against the catalog.
type BookmarkDetail struct {
	Bookmark domain.Bookmark
	Location catalog.Location
}

// CourseProgress is the completion summary of one catalog course.
type CourseProgress struct {
	CourseTitle string
	learner.Summary
}

// LearnerService reads and changes the notes, bookmarks and progress of a session.
type LearnerService interface {
	SaveNote(ctx context.Context, sessionID, contentID, text string) (domain.Note, error)
	Note(ctx context.Context, sessionID, contentID string) (domain.Note, error)
	Notes(ctx context.Context, sessionID string) ([]domain.Note, error)
	ToggleBookmark(ctx context.Context, sessionID, contentID string) (bool, error)
	Bookmarks(ctx context.Context, sessionID string) ([]BookmarkDetail, error)
	Progress(ctx context.Context, sessionID string) ([]CourseProgress, error)
}

type learnerServiceImpl struct {
	catalog  CourseCatalog
	sessions SessionService
}

// NewLearnerService creates a new LearnerService.
func NewLearnerService(cat CourseCatalog, sessions SessionService) LearnerService {
	return &learnerServiceImpl{catalog: cat, sessions: sessions}
}

func (s *learnerServiceImpl) store(ctx context.Context, sessionID string) (*learner.Store, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Learner, nil
}

func (s *learnerServiceImpl) SaveNote(ctx context.Context, sessionID, contentID, text string) (domain.Note, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return domain.Note{}, err
	}
	loc, ok := s.catalog.Locate(contentID)
	if !ok {
		return domain.Note{}, domain.NewContentNotFoundError(contentID)
	}
	note := domain.Note{ContentID: contentID, ContentTitle: loc.Item.ContentTitle(), Text: text}
	store.SaveNote(note)
	return note, nil
}

func (s *learnerServiceImpl) Note(ctx context.Context, sessionID, contentID string) (domain.Note, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return domain.Note{}, err
	}
	note, ok := store.Note(contentID)
	if !ok {
		notFound := domain.NewNotFoundError("No note for content " + contentID)
		return domain.Note{}, notFound.WithContext("content_id", contentID)
	}
	return note, nil
}

func (s *learnerServiceImpl) Notes(ctx context.Context, sessionID string) ([]domain.Note, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return store.Notes(), nil
}

func (s *learnerServiceImpl) ToggleBookmark(ctx context.Context, sessionID, contentID string) (bool, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return false, err
	}
	loc, ok := s.catalog.Locate(contentID)
	if !ok {
		return false, domain.NewContentNotFoundError(contentID)
	}
	return store.ToggleBookmark(domain.Bookmark{ContentID: contentID, ContentTitle: loc.Item.ContentTitle()}), nil
}

// Bookmarks skips bookmarks whose content left the catalog.
func (s *learnerServiceImpl) Bookmarks(ctx context.Context, sessionID string) ([]BookmarkDetail, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	bookmarks := store.Bookmarks()
	details := make([]BookmarkDetail, 0, len(bookmarks))
	for _, b := range bookmarks {
		loc, ok := s.catalog.Locate(b.ContentID)
		if !ok {
			continue
		}
		details = append(details, BookmarkDetail{Bookmark: b, Location: loc})
	}
	return details, nil
}

func (s *learnerServiceImpl) Progress(ctx context.Context, sessionID string) ([]CourseProgress, error) {
	store, err := s.store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	courses := s.catalog.Courses()
	out := make([]CourseProgress, 0, len(courses))
	for _, c := range courses {
		out = append(out, CourseProgress{CourseTitle: c.Title, Summary: store.Summary(c)})
	}
	return out, nil
}
