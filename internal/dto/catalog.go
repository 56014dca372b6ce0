package dto

import (
	"classroom-player/internal/catalog"
	"classroom-player/internal/domain"
)

// CourseSummaryResponse is one entry of the course list
// @Description Course card information
type CourseSummaryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	ItemCount   int    `json:"item_count"`
}

// CourseResponse is a course with its modules
// @Description Course with modules and content items
type CourseResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Modules     []ModuleResponse `json:"modules"`
}

type ModuleResponse struct {
	ID      string                `json:"id"`
	Title   string                `json:"title"`
	Content []ContentItemResponse `json:"content"`
}

// ContentItemResponse carries the fields of whichever kind the item is.
// Correct answers are never sent to the client.
type ContentItemResponse struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	Title       string             `json:"title"`
	Paragraphs  []string           `json:"paragraphs,omitempty"`
	URL         string             `json:"url,omitempty"`
	Description string             `json:"description,omitempty"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
}

type QuestionResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Type     string   `json:"type"`
}

type contentResponseBuilder struct {
	out ContentItemResponse
}

func (b *contentResponseBuilder) VisitText(c *domain.TextContent) error {
	b.out.Paragraphs = c.Paragraphs
	return nil
}

func (b *contentResponseBuilder) VisitVideo(c *domain.VideoContent) error {
	b.out.URL = c.URL
	return nil
}

func (b *contentResponseBuilder) VisitPDF(c *domain.PDFContent) error {
	b.out.URL = c.URL
	return nil
}

func (b *contentResponseBuilder) VisitImage(c *domain.ImageContent) error {
	b.out.URL = c.URL
	b.out.Description = c.Description
	return nil
}

func (b *contentResponseBuilder) VisitQuiz(c *domain.QuizContent) error {
	b.out.Questions = make([]QuestionResponse, len(c.Questions))
	for i, q := range c.Questions {
		b.out.Questions[i] = QuestionResponse{Question: q.Question, Options: q.Options, Type: string(q.Type)}
	}
	return nil
}

// NewContentItemResponse converts any content item. A nil item gives nil.
func NewContentItemResponse(item domain.ContentItem) *ContentItemResponse {
	if item == nil {
		return nil
	}
	b := &contentResponseBuilder{out: ContentItemResponse{
		ID:    item.ContentID(),
		Type:  string(item.Kind()),
		Title: item.ContentTitle(),
	}}
	_ = item.Accept(b)
	return &b.out
}

func NewCourseSummaryResponse(c *domain.Course) CourseSummaryResponse {
	return CourseSummaryResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ItemCount:   len(catalog.Flatten(c)),
	}
}

func NewCourseResponse(c *domain.Course) CourseResponse {
	resp := CourseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Modules:     make([]ModuleResponse, 0, len(c.Modules)),
	}
	for _, m := range c.Modules {
		mr := ModuleResponse{ID: m.ID, Title: m.Title, Content: make([]ContentItemResponse, 0, len(m.Content))}
		for _, item := range m.Content {
			mr.Content = append(mr.Content, *NewContentItemResponse(item))
		}
		resp.Modules = append(resp.Modules, mr)
	}
	return resp
}
