package domain

import "context"

// Course represents a course of the catalog.
type Course struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Modules     []*Module
}

// Module groups content items of a course.
type Module struct {
	ID      string
	Title   string
	Content []ContentItem
}

// ItemCount returns the number of content items across all modules.
func (c *Course) ItemCount() int {
	n := 0
	for _, m := range c.Modules {
		n += len(m.Content)
	}
	return n
}

// Validate validates the course and everything it contains. Cross-course
// uniqueness of ids is checked by the catalog.
func (c *Course) Validate() error {
	if c.ID == "" {
		return NewValidationError("course id is required")
	}
	if c.Title == "" {
		return NewValidationError("course title is required")
	}
	for _, m := range c.Modules {
		if m == nil || m.ID == "" {
			return NewValidationError("module id is required in course " + c.ID)
		}
		for _, item := range m.Content {
			if item == nil || item.ContentID() == "" {
				return NewValidationError("content id is required in module " + m.ID)
			}
			if quiz, ok := item.(*QuizContent); ok {
				for _, q := range quiz.Questions {
					if err := q.Validate(); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// CourseSource loads the whole catalog from some backing store.
type CourseSource interface {
	LoadCourses(ctx context.Context) ([]*Course, error)
}

// CatalogRepository persists catalog data.
type CatalogRepository interface {
	CourseSource

	// SaveCourse inserts a course with its modules, items and questions.
	SaveCourse(ctx context.Context, course *Course) error
	// DeleteCourse removes a course and everything it contains. Deleting an
	// unknown course is not an error.
	DeleteCourse(ctx context.Context, courseID string) error
}

// TransactionManager runs fn inside one database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
