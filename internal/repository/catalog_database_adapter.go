package repository

import (
	"context"
	"fmt"

	"classroom-player/internal/domain"
	"classroom-player/internal/repository/models"
	"classroom-player/internal/util"
)

const (
	selectCoursesQuery = `SELECT id "ID", title "TITLE", description "DESCRIPTION", image_url "IMAGE_URL", position "POSITION"
	FROM courses
	ORDER BY position`

	selectModulesQuery = `SELECT id "ID", course_id "COURSE_ID", title "TITLE", position "POSITION"
	FROM modules
	ORDER BY course_id, position`

	selectContentItemsQuery = `SELECT id "ID", course_id "COURSE_ID", module_id "MODULE_ID", position "POSITION",
		content_type "CONTENT_TYPE", title "TITLE", url "URL", description "DESCRIPTION", paragraphs "PARAGRAPHS"
	FROM content_items
	ORDER BY course_id, module_id, position`

	selectQuizQuestionsQuery = `SELECT content_id "CONTENT_ID", position "POSITION", question "QUESTION",
		options "OPTIONS", correct_answer "CORRECT_ANSWER", question_type "QUESTION_TYPE"
	FROM quiz_questions
	ORDER BY content_id, position`

	nextCoursePositionQuery = `SELECT NVL(MAX(position), -1) + 1 FROM courses`

	insertCourseQuery = `INSERT INTO courses (id, title, description, image_url, position)
	VALUES (:1, :2, :3, :4, :5)`

	insertModuleQuery = `INSERT INTO modules (id, course_id, title, position)
	VALUES (:1, :2, :3, :4)`

	insertContentItemQuery = `INSERT INTO content_items (id, course_id, module_id, position, content_type, title, url, description, paragraphs)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`

	insertQuizQuestionQuery = `INSERT INTO quiz_questions (content_id, position, question, options, correct_answer, question_type)
	VALUES (:1, :2, :3, :4, :5, :6)`

	deleteCourseQuery = `DELETE FROM courses WHERE id = :1`
)

// CatalogDatabaseAdapter implements domain.CatalogRepository on Oracle.
type CatalogDatabaseAdapter struct {
	db DBTX
}

// NewCatalogDatabaseAdapter creates a new instance of CatalogDatabaseAdapter
func NewCatalogDatabaseAdapter(db DBTX) domain.CatalogRepository {
	return &CatalogDatabaseAdapter{db: db}
}

type moduleKey struct {
	courseID string
	moduleID string
}

// LoadCourses implements domain.CourseSource. Courses, modules, items and
// questions are read with one query each and assembled in memory.
func (a *CatalogDatabaseAdapter) LoadCourses(ctx context.Context) ([]*domain.Course, error) {
	exec := GetExecutor(ctx, a.db)

	var courseRows []models.Course
	if err := exec.SelectContext(ctx, &courseRows, selectCoursesQuery); err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	var moduleRows []models.Module
	if err := exec.SelectContext(ctx, &moduleRows, selectModulesQuery); err != nil {
		return nil, fmt.Errorf("failed to load modules: %w", err)
	}
	var itemRows []models.ContentItem
	if err := exec.SelectContext(ctx, &itemRows, selectContentItemsQuery); err != nil {
		return nil, fmt.Errorf("failed to load content items: %w", err)
	}
	var questionRows []models.QuizQuestion
	if err := exec.SelectContext(ctx, &questionRows, selectQuizQuestionsQuery); err != nil {
		return nil, fmt.Errorf("failed to load quiz questions: %w", err)
	}

	questions := make(map[string][]domain.QuizQuestion)
	for _, q := range questionRows {
		questions[q.ContentID] = append(questions[q.ContentID], toDomainQuestion(q))
	}

	items := make(map[moduleKey][]domain.ContentItem)
	for _, row := range itemRows {
		item, err := toDomainContentItem(row, questions[row.ID])
		if err != nil {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("content %q of course %q", row.ID, row.CourseID), err)
		}
		key := moduleKey{courseID: row.CourseID, moduleID: row.ModuleID}
		items[key] = append(items[key], item)
	}

	modules := make(map[string][]*domain.Module)
	for _, row := range moduleRows {
		content := items[moduleKey{courseID: row.CourseID, moduleID: row.ID}]
		if content == nil {
			content = []domain.ContentItem{}
		}
		modules[row.CourseID] = append(modules[row.CourseID], &domain.Module{
			ID:      row.ID,
			Title:   row.Title,
			Content: content,
		})
	}

	courses := make([]*domain.Course, 0, len(courseRows))
	for _, row := range courseRows {
		courses = append(courses, &domain.Course{
			ID:          row.ID,
			Title:       row.Title,
			Description: util.NullStringToString(row.Description),
			ImageURL:    util.NullStringToString(row.ImageURL),
			Modules:     modules[row.ID],
		})
	}
	return courses, nil
}

// SaveCourse implements domain.CatalogRepository. The course is appended
// after the existing ones. Run it inside a transaction so a failed insert
// leaves nothing behind.
func (a *CatalogDatabaseAdapter) SaveCourse(ctx context.Context, course *domain.Course) error {
	if course == nil {
		return fmt.Errorf("cannot save nil course")
	}
	if err := course.Validate(); err != nil {
		return err
	}
	exec := GetExecutor(ctx, a.db)

	var position int
	if err := exec.GetContext(ctx, &position, nextCoursePositionQuery); err != nil {
		return fmt.Errorf("failed to compute course position: %w", err)
	}
	if _, err := exec.ExecContext(ctx, insertCourseQuery,
		course.ID,
		course.Title,
		util.StringToNullString(course.Description),
		util.StringToNullString(course.ImageURL),
		position,
	); err != nil {
		return fmt.Errorf("failed to save course %s: %w", course.ID, err)
	}

	for mi, m := range course.Modules {
		if _, err := exec.ExecContext(ctx, insertModuleQuery, m.ID, course.ID, m.Title, mi); err != nil {
			return fmt.Errorf("failed to save module %s: %w", m.ID, err)
		}
		for ci, item := range m.Content {
			row, questions := toModelContentItem(course.ID, m.ID, ci, item)
			if _, err := exec.ExecContext(ctx, insertContentItemQuery,
				row.ID,
				row.CourseID,
				row.ModuleID,
				row.Position,
				row.ContentType,
				row.Title,
				row.URL,
				row.Description,
				row.Paragraphs,
			); err != nil {
				return fmt.Errorf("failed to save content item %s: %w", row.ID, err)
			}
			for _, q := range questions {
				if _, err := exec.ExecContext(ctx, insertQuizQuestionQuery,
					q.ContentID,
					q.Position,
					q.Question,
					q.Options,
					q.CorrectAnswer,
					q.QuestionType,
				); err != nil {
					return fmt.Errorf("failed to save question %d of %s: %w", q.Position, q.ContentID, err)
				}
			}
		}
	}
	return nil
}

// DeleteCourse implements domain.CatalogRepository. Modules, items and
// questions go with the course through ON DELETE CASCADE.
func (a *CatalogDatabaseAdapter) DeleteCourse(ctx context.Context, courseID string) error {
	if _, err := GetExecutor(ctx, a.db).ExecContext(ctx, deleteCourseQuery, courseID); err != nil {
		return fmt.Errorf("failed to delete course %s: %w", courseID, err)
	}
	return nil
}
