package service

import (
	"context"
	"time"

	"classroom-player/internal/catalog"
	"classroom-player/internal/classroom"
	"classroom-player/internal/document"
	"classroom-player/internal/domain"
	"classroom-player/internal/logger"
	"classroom-player/internal/quiz"

	"go.uber.org/zap"
)

// CourseCatalog is the read side of the course catalog.
type CourseCatalog interface {
	Courses() []*domain.Course
	Course(id string) (*domain.Course, error)
	Locate(contentID string) (catalog.Location, bool)
}

// ClassroomState is a classroom view plus the learner state shown with it.
type ClassroomState struct {
	classroom.View
	Bookmarked bool
}

// NavigationResult reports what a navigation request did and where it left
// the learner.
type NavigationResult struct {
	Outcome classroom.Outcome
	State   ClassroomState
}

// AnswerResult is the scoring of one submitted answer.
type AnswerResult struct {
	Correct bool
	Quiz    quiz.Result
}

// ClassroomService drives the classroom of a session.
type ClassroomService interface {
	Open(ctx context.Context, sessionID, courseID string, deepLink int) (ClassroomState, error)
	Current(ctx context.Context, sessionID string) (ClassroomState, error)
	Advance(ctx context.Context, sessionID string) (NavigationResult, error)
	Retreat(ctx context.Context, sessionID string) (NavigationResult, error)
	Exit(ctx context.Context, sessionID string) (NavigationResult, error)
	JumpTo(ctx context.Context, sessionID string, index int) (NavigationResult, error)
	Confirm(ctx context.Context, sessionID string) (NavigationResult, error)
	Cancel(ctx context.Context, sessionID string) (NavigationResult, error)
	Answer(ctx context.Context, sessionID string, questionIndex int, option string) (AnswerResult, error)
	Retry(ctx context.Context, sessionID string) (quiz.Result, error)
	Document(ctx context.Context, sessionID string, cmd document.Command) (document.Viewport, error)
}

type classroomServiceImpl struct {
	catalog         CourseCatalog
	sessions        SessionService
	notices         NoticeService
	completionDelay time.Duration
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(cat CourseCatalog, sessions SessionService, notices NoticeService, completionDelay time.Duration) ClassroomService {
	return &classroomServiceImpl{
		catalog:         cat,
		sessions:        sessions,
		notices:         notices,
		completionDelay: completionDelay,
	}
}

func (s *classroomServiceImpl) Open(ctx context.Context, sessionID, courseID string, deepLink int) (ClassroomState, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return ClassroomState{}, err
	}
	course, err := s.catalog.Course(courseID)
	if err != nil {
		return ClassroomState{}, err
	}

	cr := classroom.Open(course, deepLink, sess.Learner, classroom.Options{
		CompletionDelay: s.completionDelay,
		OnComplete:      s.completionHandler(sessionID),
	})
	sess.replaceClassroom(cr)

	logger.Get().Info("Classroom opened",
		zap.String("sessionID", sessionID),
		zap.String("courseID", courseID),
		zap.Int("deepLink", deepLink),
	)
	return stateOf(sess, cr.View()), nil
}

func (s *classroomServiceImpl) completionHandler(sessionID string) func(domain.CompletionNotice) {
	return func(notice domain.CompletionNotice) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notices.Put(ctx, sessionID, notice); err != nil {
			logger.Get().Error("Failed to publish completion notice",
				zap.String("sessionID", sessionID),
				zap.String("courseID", notice.CourseID),
				zap.Error(err),
			)
			return
		}
		logger.Get().Info("Course completed",
			zap.String("sessionID", sessionID),
			zap.String("courseID", notice.CourseID),
		)
	}
}

func (s *classroomServiceImpl) open(ctx context.Context, sessionID string) (*Session, *classroom.Classroom, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	cr := sess.Classroom()
	if cr == nil {
		return nil, nil, domain.NewNoClassroomError()
	}
	return sess, cr, nil
}

func (s *classroomServiceImpl) Current(ctx context.Context, sessionID string) (ClassroomState, error) {
	sess, cr, err := s.open(ctx, sessionID)
	if err != nil {
		return ClassroomState{}, err
	}
	return stateOf(sess, cr.View()), nil
}

func (s *classroomServiceImpl) navigate(ctx context.Context, sessionID string, move func(*classroom.Classroom) classroom.Outcome) (NavigationResult, error) {
	sess, cr, err := s.open(ctx, sessionID)
	if err != nil {
		return NavigationResult{}, err
	}
	outcome := move(cr)
	if outcome == classroom.OutcomeExited {
		sess.dropClassroom(cr)
		logger.Get().Info("Classroom exited", zap.String("sessionID", sessionID), zap.String("courseID", cr.CourseID()))
	}
	return NavigationResult{Outcome: outcome, State: stateOf(sess, cr.View())}, nil
}

func (s *classroomServiceImpl) Advance(ctx context.Context, sessionID string) (NavigationResult, error) {
	return s.navigate(ctx, sessionID, (*classroom.Classroom).Advance)
}

func (s *classroomServiceImpl) Retreat(ctx context.Context, sessionID string) (NavigationResult, error) {
	return s.navigate(ctx, sessionID, (*classroom.Classroom).Retreat)
}

func (s *classroomServiceImpl) Exit(ctx context.Context, sessionID string) (NavigationResult, error) {
	return s.navigate(ctx, sessionID, (*classroom.Classroom).Exit)
}

func (s *classroomServiceImpl) Confirm(ctx context.Context, sessionID string) (NavigationResult, error) {
	return s.navigate(ctx, sessionID, (*classroom.Classroom).Confirm)
}

func (s *classroomServiceImpl) Cancel(ctx context.Context, sessionID string) (NavigationResult, error) {
	return s.navigate(ctx, sessionID, (*classroom.Classroom).Cancel)
}

func (s *classroomServiceImpl) JumpTo(ctx context.Context, sessionID string, index int) (NavigationResult, error) {
	return s.navigate(ctx, sessionID, func(cr *classroom.Classroom) classroom.Outcome {
		return cr.JumpTo(index)
	})
}

func (s *classroomServiceImpl) Answer(ctx context.Context, sessionID string, questionIndex int, option string) (AnswerResult, error) {
	_, cr, err := s.open(ctx, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}
	res, err := cr.Answer(questionIndex, option)
	if err != nil {
		return AnswerResult{}, err
	}
	return AnswerResult{Correct: res.PerQuestion[questionIndex], Quiz: res}, nil
}

func (s *classroomServiceImpl) Retry(ctx context.Context, sessionID string) (quiz.Result, error) {
	_, cr, err := s.open(ctx, sessionID)
	if err != nil {
		return quiz.Result{}, err
	}
	return cr.Retry()
}

func (s *classroomServiceImpl) Document(ctx context.Context, sessionID string, cmd document.Command) (document.Viewport, error) {
	_, cr, err := s.open(ctx, sessionID)
	if err != nil {
		return document.Viewport{}, err
	}
	vp, err := cr.Document(cmd)
	if err == nil && cmd.Action == document.ActionFailed {
		logger.Get().Warn("Document failed to load",
			zap.String("sessionID", sessionID),
			zap.String("reason", cmd.Reason),
		)
	}
	return vp, err
}

func stateOf(sess *Session, v classroom.View) ClassroomState {
	state := ClassroomState{View: v}
	if v.Item != nil {
		state.Bookmarked = sess.Learner.IsBookmarked(v.Item.ContentID())
	}
	return state
}
