// Package learner keeps the notes, bookmarks and progress of one learner.
package learner

import (
	"math"
	"sync"

	"classroom-player/internal/catalog"
	"classroom-player/internal/domain"
)

// Summary is the completion of one course.
type Summary struct {
	CourseID  string `json:"course_id"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// Store is the in-memory learner state. Writes are visible to the next read.
type Store struct {
	mu        sync.RWMutex
	notes     []domain.Note
	bookmarks []domain.Bookmark
	progress  map[string]map[string]domain.ProgressEntry
}

func NewStore() *Store {
	return &Store{progress: make(map[string]map[string]domain.ProgressEntry)}
}

// SaveNote replaces the note of the same content item or appends a new one.
func (s *Store) SaveNote(note domain.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ContentID == note.ContentID {
			s.notes[i] = note
			return
		}
	}
	s.notes = append(s.notes, note)
}

func (s *Store) Note(contentID string) (domain.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notes {
		if n.ContentID == contentID {
			return n, true
		}
	}
	return domain.Note{}, false
}

// Notes returns the notes in the order they were first saved.
func (s *Store) Notes() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Note(nil), s.notes...)
}

// ToggleBookmark removes the bookmark when present, adds it otherwise, and
// reports whether the content is bookmarked afterwards.
func (s *Store) ToggleBookmark(b domain.Bookmark) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookmarks {
		if s.bookmarks[i].ContentID == b.ContentID {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			return false
		}
	}
	s.bookmarks = append(s.bookmarks, b)
	return true
}

func (s *Store) IsBookmarked(contentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookmarks {
		if b.ContentID == contentID {
			return true
		}
	}
	return false
}

func (s *Store) Bookmarks() []domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Bookmark(nil), s.bookmarks...)
}

// RecordProgress marks the content as completed. Completion is never undone.
func (s *Store) RecordProgress(courseID, contentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, ok := s.progress[courseID]
	if !ok {
		entries = make(map[string]domain.ProgressEntry)
		s.progress[courseID] = entries
	}
	entries[contentID] = domain.ProgressEntry{Completed: true}
}

// Progress returns a copy of the entries recorded for a course.
func (s *Store) Progress(courseID string) map[string]domain.ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.ProgressEntry, len(s.progress[courseID]))
	for k, v := range s.progress[courseID] {
		out[k] = v
	}
	return out
}

func (s *Store) Completed(courseID, contentID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress[courseID][contentID].Completed
}

// Summary counts the completed items of course. Entries for content that is
// no longer part of the course are ignored.
func (s *Store) Summary(course *domain.Course) Summary {
	seq := catalog.Flatten(course)
	sum := Summary{Total: len(seq)}
	if course != nil {
		sum.CourseID = course.ID
	}

	s.mu.RLock()
	entries := s.progress[sum.CourseID]
	for _, item := range seq {
		if entries[item.ContentID()].Completed {
			sum.Completed++
		}
	}
	s.mu.RUnlock()

	if sum.Total > 0 {
		sum.Percent = int(math.Round(float64(sum.Completed) / float64(sum.Total) * 100))
	}
	return sum
}
