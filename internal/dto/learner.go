package dto

// SaveNoteRequest replaces the note of a content item
type SaveNoteRequest struct {
	Text string `json:"text"`
}

type NoteResponse struct {
	ContentID    string `json:"content_id"`
	ContentTitle string `json:"content_title"`
	Text         string `json:"text"`
}

// ToggleBookmarkRequest toggles the bookmark of a content item
type ToggleBookmarkRequest struct {
	ContentID string `json:"content_id"`
}

type ToggleBookmarkResponse struct {
	ContentID  string `json:"content_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// BookmarkResponse locates a bookmarked item in the catalog. ContentIndex
// is the deep link into the course.
type BookmarkResponse struct {
	ContentID    string `json:"content_id"`
	ContentTitle string `json:"content_title"`
	ContentType  string `json:"content_type"`
	CourseID     string `json:"course_id"`
	CourseTitle  string `json:"course_title"`
	ModuleTitle  string `json:"module_title"`
	ContentIndex int    `json:"content_index"`
}

// CourseProgressResponse is the completion of one course
type CourseProgressResponse struct {
	CourseID    string `json:"course_id"`
	CourseTitle string `json:"course_title"`
	Completed   int    `json:"completed"`
	Total       int    `json:"total"`
	Percent     int    `json:"percent"`
}
