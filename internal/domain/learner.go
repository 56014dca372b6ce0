package domain

import "time"

// Note is a learner annotation; at most one per content item.
type Note struct {
	ContentID    string
	ContentTitle string
	Text         string
}

// Bookmark marks a content item; presence is all that matters.
type Bookmark struct {
	ContentID    string
	ContentTitle string
}

// ProgressEntry is the completion marker of one content item.
type ProgressEntry struct {
	Completed bool
}

// CompletionNotice is the one-shot signal emitted when a course is finished.
type CompletionNotice struct {
	CourseID    string    `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	CompletedAt time.Time `json:"completed_at"`
}
