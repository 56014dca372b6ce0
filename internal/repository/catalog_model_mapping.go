package repository

import (
	"classroom-player/internal/domain"
	"classroom-player/internal/repository/models"
	"classroom-player/internal/util"
)

func toDomainQuestion(q models.QuizQuestion) domain.QuizQuestion {
	return domain.QuizQuestion{
		Question:      q.Question,
		Options:       []string(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Type:          domain.QuestionType(q.QuestionType),
	}
}

func toDomainContentItem(row models.ContentItem, questions []domain.QuizQuestion) (domain.ContentItem, error) {
	kind, err := domain.ParseContentKind(row.ContentType)
	if err != nil {
		return nil, err
	}
	url := util.NullStringToString(row.URL)
	switch kind {
	case domain.KindText:
		return &domain.TextContent{ID: row.ID, Title: row.Title, Paragraphs: []string(row.Paragraphs)}, nil
	case domain.KindVideo:
		return &domain.VideoContent{ID: row.ID, Title: row.Title, URL: url}, nil
	case domain.KindPDF:
		return &domain.PDFContent{ID: row.ID, Title: row.Title, URL: url}, nil
	case domain.KindImage:
		return &domain.ImageContent{ID: row.ID, Title: row.Title, URL: url, Description: util.NullStringToString(row.Description)}, nil
	default:
		if questions == nil {
			questions = []domain.QuizQuestion{}
		}
		return &domain.QuizContent{ID: row.ID, Title: row.Title, Questions: questions}, nil
	}
}

// contentRowBuilder fills the kind-specific columns of a content row.
type contentRowBuilder struct {
	row       models.ContentItem
	questions []models.QuizQuestion
}

func (b *contentRowBuilder) VisitText(c *domain.TextContent) error {
	b.row.Paragraphs = models.StringSlice(c.Paragraphs)
	return nil
}

func (b *contentRowBuilder) VisitVideo(c *domain.VideoContent) error {
	b.row.URL = util.StringToNullString(c.URL)
	return nil
}

func (b *contentRowBuilder) VisitPDF(c *domain.PDFContent) error {
	b.row.URL = util.StringToNullString(c.URL)
	return nil
}

func (b *contentRowBuilder) VisitImage(c *domain.ImageContent) error {
	b.row.URL = util.StringToNullString(c.URL)
	b.row.Description = util.StringToNullString(c.Description)
	return nil
}

func (b *contentRowBuilder) VisitQuiz(c *domain.QuizContent) error {
	b.questions = make([]models.QuizQuestion, len(c.Questions))
	for i, q := range c.Questions {
		b.questions[i] = models.QuizQuestion{
			ContentID:     c.ID,
			Position:      i,
			Question:      q.Question,
			Options:       models.StringSlice(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			QuestionType:  string(q.Type),
		}
	}
	return nil
}

func toModelContentItem(courseID, moduleID string, position int, item domain.ContentItem) (models.ContentItem, []models.QuizQuestion) {
	b := &contentRowBuilder{row: models.ContentItem{
		ID:          item.ContentID(),
		CourseID:    courseID,
		ModuleID:    moduleID,
		Position:    position,
		ContentType: string(item.Kind()),
		Title:       item.ContentTitle(),
	}}
	_ = item.Accept(b)
	return b.row, b.questions
}
