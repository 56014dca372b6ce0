package handler_test

import (
	"context"
	"time"

	"classroom-player/internal/catalog"
	"classroom-player/internal/document"
	"classroom-player/internal/domain"
	"classroom-player/internal/dto"
	"classroom-player/internal/quiz"
	"classroom-player/internal/service"
)

// --- Manual Mocks ---

type MockTokenService struct {
	CreateTokenFunc   func(ctx context.Context, sessionID string) (string, time.Time, error)
	ValidateTokenFunc func(ctx context.Context, token string) (*dto.SessionClaims, error)
}

func (m *MockTokenService) CreateToken(ctx context.Context, sessionID string) (string, time.Time, error) {
	if m.CreateTokenFunc != nil {
		return m.CreateTokenFunc(ctx, sessionID)
	}
	panic("MockTokenService.CreateTokenFunc not implemented")
}

// ValidateToken accepts any token as the session it names unless overridden.
func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*dto.SessionClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return &dto.SessionClaims{SessionID: token}, nil
}

type MockCourseCatalog struct {
	CoursesFunc func() []*domain.Course
	CourseFunc  func(id string) (*domain.Course, error)
}

func (m *MockCourseCatalog) Courses() []*domain.Course {
	if m.CoursesFunc != nil {
		return m.CoursesFunc()
	}
	panic("MockCourseCatalog.CoursesFunc not implemented")
}

func (m *MockCourseCatalog) Course(id string) (*domain.Course, error) {
	if m.CourseFunc != nil {
		return m.CourseFunc(id)
	}
	panic("MockCourseCatalog.CourseFunc not implemented")
}

func (m *MockCourseCatalog) Locate(contentID string) (catalog.Location, bool) {
	panic("MockCourseCatalog.Locate not implemented")
}

type MockClassroomService struct {
	OpenFunc     func(ctx context.Context, sessionID, courseID string, deepLink int) (service.ClassroomState, error)
	CurrentFunc  func(ctx context.Context, sessionID string) (service.ClassroomState, error)
	NavigateFunc func(ctx context.Context, sessionID string) (service.NavigationResult, error)
	JumpToFunc   func(ctx context.Context, sessionID string, index int) (service.NavigationResult, error)
	AnswerFunc   func(ctx context.Context, sessionID string, questionIndex int, option string) (service.AnswerResult, error)
	RetryFunc    func(ctx context.Context, sessionID string) (quiz.Result, error)
	DocumentFunc func(ctx context.Context, sessionID string, cmd document.Command) (document.Viewport, error)
}

func (m *MockClassroomService) Open(ctx context.Context, sessionID, courseID string, deepLink int) (service.ClassroomState, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, sessionID, courseID, deepLink)
	}
	panic("MockClassroomService.OpenFunc not implemented")
}

func (m *MockClassroomService) Current(ctx context.Context, sessionID string) (service.ClassroomState, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, sessionID)
	}
	panic("MockClassroomService.CurrentFunc not implemented")
}

func (m *MockClassroomService) navigate(ctx context.Context, sessionID string) (service.NavigationResult, error) {
	if m.NavigateFunc != nil {
		return m.NavigateFunc(ctx, sessionID)
	}
	panic("MockClassroomService.NavigateFunc not implemented")
}

func (m *MockClassroomService) Advance(ctx context.Context, sessionID string) (service.NavigationResult, error) {
	return m.navigate(ctx, sessionID)
}

func (m *MockClassroomService) Retreat(ctx context.Context, sessionID string) (service.NavigationResult, error) {
	return m.navigate(ctx, sessionID)
}

func (m *MockClassroomService) Exit(ctx context.Context, sessionID string) (service.NavigationResult, error) {
	return m.navigate(ctx, sessionID)
}

func (m *MockClassroomService) Confirm(ctx context.Context, sessionID string) (service.NavigationResult, error) {
	return m.navigate(ctx, sessionID)
}

func (m *MockClassroomService) Cancel(ctx context.Context, sessionID string) (service.NavigationResult, error) {
	return m.navigate(ctx, sessionID)
}

func (m *MockClassroomService) JumpTo(ctx context.Context, sessionID string, index int) (service.NavigationResult, error) {
	if m.JumpToFunc != nil {
		return m.JumpToFunc(ctx, sessionID, index)
	}
	panic("MockClassroomService.JumpToFunc not implemented")
}

func (m *MockClassroomService) Answer(ctx context.Context, sessionID string, questionIndex int, option string) (service.AnswerResult, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, sessionID, questionIndex, option)
	}
	panic("MockClassroomService.AnswerFunc not implemented")
}

func (m *MockClassroomService) Retry(ctx context.Context, sessionID string) (quiz.Result, error) {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, sessionID)
	}
	panic("MockClassroomService.RetryFunc not implemented")
}

func (m *MockClassroomService) Document(ctx context.Context, sessionID string, cmd document.Command) (document.Viewport, error) {
	if m.DocumentFunc != nil {
		return m.DocumentFunc(ctx, sessionID, cmd)
	}
	panic("MockClassroomService.DocumentFunc not implemented")
}
