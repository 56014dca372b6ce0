package dto

import (
	"classroom-player/internal/classroom"
	"classroom-player/internal/document"
	"classroom-player/internal/quiz"
)

// OpenClassroomRequest opens a course, optionally at a deep-linked item
// @Description Request body for opening a course
type OpenClassroomRequest struct {
	CourseID     string `json:"course_id"`
	ContentIndex *int   `json:"content_index,omitempty"`
}

// JumpRequest moves straight to an item of the open course
type JumpRequest struct {
	Index *int `json:"index"`
}

// AnswerRequest submits one quiz answer
// @Description Request body for answering a quiz question
type AnswerRequest struct {
	QuestionIndex *int   `json:"question_index"`
	Option        string `json:"option"`
}

// DocumentRequest is a document viewer command
type DocumentRequest struct {
	Action    string `json:"action"`
	Page      int    `json:"page,omitempty"`
	PageCount int    `json:"page_count,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

type QuizStateResponse struct {
	AttemptNo    int          `json:"attempt_no"`
	Total        int          `json:"total"`
	Answered     int          `json:"answered"`
	Correct      int          `json:"correct"`
	Finished     bool         `json:"finished"`
	FullyCorrect bool         `json:"fully_correct"`
	Results      map[int]bool `json:"results"`
}

type DocumentStateResponse struct {
	Page      int     `json:"page"`
	PageCount int     `json:"page_count"`
	Zoom      float64 `json:"zoom"`
	Status    string  `json:"status"`
	Error     string  `json:"error,omitempty"`
}

// ClassroomResponse is the current state of the open course
// @Description Classroom view
type ClassroomResponse struct {
	CourseID            string                 `json:"course_id"`
	CourseTitle         string                 `json:"course_title"`
	Index               int                    `json:"index"`
	Total               int                    `json:"total"`
	Item                *ContentItemResponse   `json:"item"`
	Blocked             bool                   `json:"blocked"`
	Pending             string                 `json:"pending"`
	Bookmarked          bool                   `json:"bookmarked"`
	Quiz                *QuizStateResponse     `json:"quiz,omitempty"`
	Document            *DocumentStateResponse `json:"document,omitempty"`
	CompletionScheduled bool                   `json:"completion_scheduled"`
	Exited              bool                   `json:"exited"`
}

// NavigationResponse reports what a navigation request did
type NavigationResponse struct {
	Outcome   string             `json:"outcome"`
	Classroom *ClassroomResponse `json:"classroom,omitempty"`
}

// AnswerResponse reports the scoring of one answer
type AnswerResponse struct {
	Correct bool              `json:"correct"`
	Quiz    QuizStateResponse `json:"quiz"`
}

func NewQuizStateResponse(r quiz.Result) QuizStateResponse {
	return QuizStateResponse{
		AttemptNo:    r.AttemptNo,
		Total:        r.Total,
		Answered:     r.Answered,
		Correct:      r.Correct,
		Finished:     r.Finished,
		FullyCorrect: r.FullyCorrect,
		Results:      r.PerQuestion,
	}
}

func NewDocumentStateResponse(v document.Viewport) DocumentStateResponse {
	return DocumentStateResponse{
		Page:      v.Page,
		PageCount: v.PageCount,
		Zoom:      v.Zoom,
		Status:    string(v.Status),
		Error:     v.Error,
	}
}

// NewClassroomResponse converts a view. bookmarked is the bookmark state of
// the current item.
func NewClassroomResponse(v classroom.View, bookmarked bool) *ClassroomResponse {
	resp := &ClassroomResponse{
		CourseID:            v.CourseID,
		CourseTitle:         v.CourseTitle,
		Index:               v.Index,
		Total:               v.Total,
		Item:                NewContentItemResponse(v.Item),
		Blocked:             v.Blocked,
		Pending:             string(v.Pending),
		Bookmarked:          bookmarked,
		CompletionScheduled: v.CompletionScheduled,
		Exited:              v.Exited,
	}
	if v.Quiz != nil {
		q := NewQuizStateResponse(*v.Quiz)
		resp.Quiz = &q
	}
	if v.Document != nil {
		d := NewDocumentStateResponse(*v.Document)
		resp.Document = &d
	}
	return resp
}
