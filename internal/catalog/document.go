package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"classroom-player/internal/domain"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

type catalogDocument struct {
	Courses []courseDocument `yaml:"courses"`
}

type courseDocument struct {
	ID          string           `yaml:"id"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	ImageURL    string           `yaml:"image_url"`
	Modules     []moduleDocument `yaml:"modules"`
}

type moduleDocument struct {
	ID      string            `yaml:"id"`
	Title   string            `yaml:"title"`
	Content []contentDocument `yaml:"content"`
}

type contentDocument struct {
	ID          string             `yaml:"id"`
	Type        string             `yaml:"type"`
	Title       string             `yaml:"title"`
	Paragraphs  []string           `yaml:"paragraphs,omitempty"`
	URL         string             `yaml:"url,omitempty"`
	Description string             `yaml:"description,omitempty"`
	Questions   []questionDocument `yaml:"questions,omitempty"`
}

type questionDocument struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correct_answer"`
	Type          string   `yaml:"type"`
}

// DecodeYAML validates a YAML catalog document against the catalog schema and
// converts it into domain courses.
func DecodeYAML(data []byte) ([]*domain.Course, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewInvalidCatalogError("catalog is not valid YAML", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewInvalidCatalogError("failed to decode catalog", err)
	}

	courses := make([]*domain.Course, 0, len(doc.Courses))
	for _, cd := range doc.Courses {
		course := &domain.Course{
			ID:          cd.ID,
			Title:       cd.Title,
			Description: cd.Description,
			ImageURL:    cd.ImageURL,
			Modules:     make([]*domain.Module, 0, len(cd.Modules)),
		}
		for _, md := range cd.Modules {
			module := &domain.Module{ID: md.ID, Title: md.Title, Content: make([]domain.ContentItem, 0, len(md.Content))}
			for _, item := range md.Content {
				ci, err := item.toDomain()
				if err != nil {
					return nil, domain.NewInvalidCatalogError(fmt.Sprintf("content %q of course %q", item.ID, cd.ID), err)
				}
				module.Content = append(module.Content, ci)
			}
			course.Modules = append(course.Modules, module)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func validateDocument(raw interface{}) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(raw))
	if err != nil {
		return domain.NewInvalidCatalogError("failed to validate catalog", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return domain.NewInvalidCatalogError("catalog does not match schema", fmt.Errorf("%s", strings.Join(msgs, "; ")))
}

func (d contentDocument) toDomain() (domain.ContentItem, error) {
	kind, err := domain.ParseContentKind(d.Type)
	if err != nil {
		return nil, err
	}
	switch kind {
	case domain.KindText:
		return &domain.TextContent{ID: d.ID, Title: d.Title, Paragraphs: d.Paragraphs}, nil
	case domain.KindVideo:
		return &domain.VideoContent{ID: d.ID, Title: d.Title, URL: d.URL}, nil
	case domain.KindPDF:
		return &domain.PDFContent{ID: d.ID, Title: d.Title, URL: d.URL}, nil
	case domain.KindImage:
		return &domain.ImageContent{ID: d.ID, Title: d.Title, URL: d.URL, Description: d.Description}, nil
	case domain.KindQuiz:
		questions := make([]domain.QuizQuestion, len(d.Questions))
		for i, q := range d.Questions {
			questions[i] = domain.QuizQuestion{
				Question:      q.Question,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Type:          domain.QuestionType(q.Type),
			}
		}
		return &domain.QuizContent{ID: d.ID, Title: d.Title, Questions: questions}, nil
	}
	return nil, fmt.Errorf("unhandled content type %q", d.Type)
}
