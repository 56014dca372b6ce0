package domain

import "fmt"

// ContentKind tags the variant of a ContentItem.
type ContentKind string

const (
	KindText  ContentKind = "text"
	KindVideo ContentKind = "video"
	KindPDF   ContentKind = "pdf"
	KindImage ContentKind = "image"
	KindQuiz  ContentKind = "quiz"
)

// ParseContentKind converts a catalog type tag into a ContentKind.
func ParseContentKind(s string) (ContentKind, error) {
	switch k := ContentKind(s); k {
	case KindText, KindVideo, KindPDF, KindImage, KindQuiz:
		return k, nil
	default:
		return "", fmt.Errorf("unknown content type %q", s)
	}
}

// ContentItem is a single learning unit. The set of implementations is closed:
// callers dispatch on it through Accept so that adding a kind breaks every
// ContentVisitor at compile time.
type ContentItem interface {
	ContentID() string
	ContentTitle() string
	Kind() ContentKind
	Accept(v ContentVisitor) error
	sealed()
}

// ContentVisitor handles every ContentItem variant.
type ContentVisitor interface {
	VisitText(c *TextContent) error
	VisitVideo(c *VideoContent) error
	VisitPDF(c *PDFContent) error
	VisitImage(c *ImageContent) error
	VisitQuiz(c *QuizContent) error
}

// TextContent is a list of paragraphs.
type TextContent struct {
	ID         string
	Title      string
	Paragraphs []string
}

func (c *TextContent) ContentID() string             { return c.ID }
func (c *TextContent) ContentTitle() string          { return c.Title }
func (c *TextContent) Kind() ContentKind             { return KindText }
func (c *TextContent) Accept(v ContentVisitor) error { return v.VisitText(c) }
func (c *TextContent) sealed()                       {}

// VideoContent points at a streamable video.
type VideoContent struct {
	ID    string
	Title string
	URL   string
}

func (c *VideoContent) ContentID() string             { return c.ID }
func (c *VideoContent) ContentTitle() string          { return c.Title }
func (c *VideoContent) Kind() ContentKind             { return KindVideo }
func (c *VideoContent) Accept(v ContentVisitor) error { return v.VisitVideo(c) }
func (c *VideoContent) sealed()                       {}

// PDFContent points at a document rendered by the client.
type PDFContent struct {
	ID    string
	Title string
	URL   string
}

func (c *PDFContent) ContentID() string             { return c.ID }
func (c *PDFContent) ContentTitle() string          { return c.Title }
func (c *PDFContent) Kind() ContentKind             { return KindPDF }
func (c *PDFContent) Accept(v ContentVisitor) error { return v.VisitPDF(c) }
func (c *PDFContent) sealed()                       {}

// ImageContent is an image with a caption.
type ImageContent struct {
	ID          string
	Title       string
	URL         string
	Description string
}

func (c *ImageContent) ContentID() string             { return c.ID }
func (c *ImageContent) ContentTitle() string          { return c.Title }
func (c *ImageContent) Kind() ContentKind             { return KindImage }
func (c *ImageContent) Accept(v ContentVisitor) error { return v.VisitImage(c) }
func (c *ImageContent) sealed()                       {}

// QuizContent is an ordered list of questions.
type QuizContent struct {
	ID        string
	Title     string
	Questions []QuizQuestion
}

func (c *QuizContent) ContentID() string             { return c.ID }
func (c *QuizContent) ContentTitle() string          { return c.Title }
func (c *QuizContent) Kind() ContentKind             { return KindQuiz }
func (c *QuizContent) Accept(v ContentVisitor) error { return v.VisitQuiz(c) }
func (c *QuizContent) sealed()                       {}

// QuestionType is recorded for presentation; it does not change evaluation.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionShortAnswer    QuestionType = "short-answer"
)

// QuizQuestion represents one question of a quiz.
type QuizQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer string
	Type          QuestionType
}

// IsCorrect reports whether option is the correct answer.
func (q QuizQuestion) IsCorrect(option string) bool {
	return option == q.CorrectAnswer
}

// Validate validates the question
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError("question text is required")
	}
	switch q.Type {
	case QuestionMultipleChoice, QuestionTrueFalse, QuestionShortAnswer:
	default:
		return NewValidationError(fmt.Sprintf("unknown question type %q", q.Type))
	}
	if len(q.Options) == 0 {
		return NewValidationError(fmt.Sprintf("question %q has no options", q.Question))
	}
	for _, o := range q.Options {
		if o == q.CorrectAnswer {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("correct answer of question %q is not one of its options", q.Question))
}
