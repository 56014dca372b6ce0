package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"classroom-player/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

func TestLoadCourses(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	// Column names for sqlmock.NewRows are uppercase to match the db tags.
	mock.ExpectQuery(q(selectCoursesQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"ID", "TITLE", "DESCRIPTION", "IMAGE_URL", "POSITION"}).
			AddRow("react-mastery", "React Mastery 2024", "Become a React expert.", nil, 0).
			AddRow("empty", "Empty Course", nil, nil, 1),
	)
	mock.ExpectQuery(q(selectModulesQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"ID", "COURSE_ID", "TITLE", "POSITION"}).
			AddRow("m1", "react-mastery", "Introduction", 0).
			AddRow("m2", "react-mastery", "State", 1),
	)
	mock.ExpectQuery(q(selectContentItemsQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"ID", "COURSE_ID", "MODULE_ID", "POSITION", "CONTENT_TYPE", "TITLE", "URL", "DESCRIPTION", "PARAGRAPHS"}).
			AddRow("c1", "react-mastery", "m1", 0, "text", "What is React?", nil, nil, `["one","two"]`).
			AddRow("c2", "react-mastery", "m1", 1, "video", "First Component", "https://example.com/v.mp4", nil, nil).
			AddRow("c4", "react-mastery", "m2", 0, "quiz", "Module Quiz", nil, nil, nil),
	)
	mock.ExpectQuery(q(selectQuizQuestionsQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"CONTENT_ID", "POSITION", "QUESTION", "OPTIONS", "CORRECT_ANSWER", "QUESTION_TYPE"}).
			AddRow("c4", 0, "Who maintains React?", `["Google","Meta"]`, "Meta", "multiple-choice").
			AddRow("c4", 1, "React is a backend framework.", `["True","False"]`, "False", "true-false"),
	)

	courses, err := repo.LoadCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	react := courses[0]
	assert.Equal(t, "Become a React expert.", react.Description)
	assert.Equal(t, "", react.ImageURL)
	require.Len(t, react.Modules, 2)
	require.Len(t, react.Modules[0].Content, 2)

	text, ok := react.Modules[0].Content[0].(*domain.TextContent)
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two"}, text.Paragraphs)

	video, ok := react.Modules[0].Content[1].(*domain.VideoContent)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/v.mp4", video.URL)

	quiz, ok := react.Modules[1].Content[0].(*domain.QuizContent)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, "False", quiz.Questions[1].CorrectAnswer)
	assert.Equal(t, domain.QuestionTrueFalse, quiz.Questions[1].Type)

	assert.Empty(t, courses[1].Modules)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCourses_UnknownContentType(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	mock.ExpectQuery(q(selectCoursesQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"ID", "TITLE", "DESCRIPTION", "IMAGE_URL", "POSITION"}).AddRow("c", "C", nil, nil, 0))
	mock.ExpectQuery(q(selectModulesQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"ID", "COURSE_ID", "TITLE", "POSITION"}).AddRow("m", "c", "M", 0))
	mock.ExpectQuery(q(selectContentItemsQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"ID", "COURSE_ID", "MODULE_ID", "POSITION", "CONTENT_TYPE", "TITLE", "URL", "DESCRIPTION", "PARAGRAPHS"}).
			AddRow("x", "c", "m", 0, "hologram", "X", nil, nil, nil))
	mock.ExpectQuery(q(selectQuizQuestionsQuery)).WillReturnRows(
		sqlmock.NewRows([]string{"CONTENT_ID", "POSITION", "QUESTION", "OPTIONS", "CORRECT_ANSWER", "QUESTION_TYPE"}))

	_, err := repo.LoadCourses(context.Background())
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInvalidCatalog, domainErr.Code)
}

func TestLoadCourses_QueryError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	mock.ExpectQuery(q(selectCoursesQuery)).WillReturnError(errors.New("ORA-12541: no listener"))

	_, err := repo.LoadCourses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load courses")
}

func TestSaveCourse(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	course := &domain.Course{
		ID:    "go-basics",
		Title: "Go Basics",
		Modules: []*domain.Module{{
			ID:    "m1",
			Title: "Start",
			Content: []domain.ContentItem{
				&domain.ImageContent{ID: "g1", Title: "Gopher", URL: "https://example.com/gopher.png", Description: "The mascot"},
				&domain.QuizContent{ID: "g2", Title: "Check", Questions: []domain.QuizQuestion{
					{Question: "Go has generics.", Options: []string{"True", "False"}, CorrectAnswer: "True", Type: domain.QuestionTrueFalse},
				}},
			},
		}},
	}

	mock.ExpectQuery(q(nextCoursePositionQuery)).WillReturnRows(sqlmock.NewRows([]string{"POSITION"}).AddRow(3))
	mock.ExpectExec(q(insertCourseQuery)).
		WithArgs("go-basics", "Go Basics", nil, nil, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertModuleQuery)).
		WithArgs("m1", "go-basics", "Start", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertContentItemQuery)).
		WithArgs("g1", "go-basics", "m1", 0, "image", "Gopher", "https://example.com/gopher.png", "The mascot", "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertContentItemQuery)).
		WithArgs("g2", "go-basics", "m1", 1, "quiz", "Check", nil, nil, "[]").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertQuizQuestionQuery)).
		WithArgs("g2", 0, "Go has generics.", `["True","False"]`, "True", "true-false").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveCourse(context.Background(), course))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCourse_RejectsInvalid(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	assert.Error(t, repo.SaveCourse(context.Background(), &domain.Course{ID: "no-title"}))
	assert.Error(t, repo.SaveCourse(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCourse(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCatalogDatabaseAdapter(db)

	mock.ExpectExec(q(deleteCourseQuery)).WithArgs("go-basics").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteCourse(context.Background(), "go-basics"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction(t *testing.T) {
	t.Run("commits and routes through the transaction", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)
		repo := NewCatalogDatabaseAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(q(deleteCourseQuery)).WithArgs("c").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			_, inTx := GetExecutor(ctx, db).(*sqlx.Tx)
			assert.True(t, inTx)
			return repo.DeleteCourse(ctx, "c")
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)
		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
