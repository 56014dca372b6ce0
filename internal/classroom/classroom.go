// Package classroom runs the linear walk through one course: the quiz gate,
// held navigation requests, progress recording and the completion signal.
package classroom

import (
	"sync"
	"time"

	"classroom-player/internal/catalog"
	"classroom-player/internal/document"
	"classroom-player/internal/domain"
	"classroom-player/internal/quiz"
)

// DefaultCompletionDelay separates the final correct answer from the
// completion signal.
const DefaultCompletionDelay = 2 * time.Second

// Outcome is the result of a navigation request.
type Outcome string

const (
	OutcomeMoved    Outcome = "moved"
	OutcomeHeld     Outcome = "held"
	OutcomeIgnored  Outcome = "ignored"
	OutcomeExited   Outcome = "exited"
	OutcomeCanceled Outcome = "canceled"
)

// PendingAction is the navigation held while the current quiz blocks.
type PendingAction string

const (
	PendingNone    PendingAction = "none"
	PendingAdvance PendingAction = "advance"
	PendingRetreat PendingAction = "retreat"
	PendingExit    PendingAction = "exit"
)

// ProgressRecorder receives a completion mark whenever an item settles. Pass
// a nil interface, not a typed nil pointer, to skip recording.
type ProgressRecorder interface {
	RecordProgress(courseID, contentID string)
}

// Options tune a Classroom. The zero value uses DefaultCompletionDelay and
// drops completion signals.
type Options struct {
	CompletionDelay time.Duration
	OnComplete      func(domain.CompletionNotice)
	Now             func() time.Time
}

// View is a snapshot of the classroom.
type View struct {
	CourseID            string
	CourseTitle         string
	Index               int
	Total               int
	Item                domain.ContentItem
	Blocked             bool
	Pending             PendingAction
	Quiz                *quiz.Result
	Document            *document.Viewport
	CompletionScheduled bool
	Exited              bool
}

// Classroom is safe for concurrent use.
type Classroom struct {
	mu       sync.Mutex
	course   *domain.Course
	seq      []domain.ContentItem
	index    int
	attempt  *quiz.Attempt
	viewport *document.Viewport
	pending  PendingAction
	exited   bool

	progress ProgressRecorder
	opts     Options
	timer    completionTimer
}

// Open enters course at deepLink. A deep link outside the sequence, including
// a negative one for "none", starts at the first item.
func Open(course *domain.Course, deepLink int, progress ProgressRecorder, opts Options) *Classroom {
	if opts.CompletionDelay == 0 {
		opts.CompletionDelay = DefaultCompletionDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	c := &Classroom{
		course:   course,
		seq:      catalog.Flatten(course),
		pending:  PendingNone,
		progress: progress,
		opts:     opts,
	}
	if deepLink < 0 || deepLink >= len(c.seq) {
		deepLink = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seq) > 0 {
		c.settleLocked(deepLink)
	}
	return c
}

func (c *Classroom) CourseID() string { return c.course.ID }

// View returns the current state.
func (c *Classroom) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

// Advance moves to the next item unless the current quiz blocks, in which
// case the request is held for Confirm or Cancel.
func (c *Classroom) Advance() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited || c.index >= len(c.seq)-1 {
		return OutcomeIgnored
	}
	if c.blockedLocked() {
		c.pending = PendingAdvance
		return OutcomeHeld
	}
	c.settleLocked(c.index + 1)
	return OutcomeMoved
}

// Retreat moves to the previous item under the same gate as Advance.
func (c *Classroom) Retreat() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited || c.index <= 0 {
		return OutcomeIgnored
	}
	if c.blockedLocked() {
		c.pending = PendingRetreat
		return OutcomeHeld
	}
	c.settleLocked(c.index - 1)
	return OutcomeMoved
}

// Exit leaves the classroom under the same gate as Advance.
func (c *Classroom) Exit() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited {
		return OutcomeIgnored
	}
	if c.blockedLocked() {
		c.pending = PendingExit
		return OutcomeHeld
	}
	c.closeLocked()
	return OutcomeExited
}

// Confirm carries out the held request past the gate.
func (c *Classroom) Confirm() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	action := c.pending
	c.pending = PendingNone
	if c.exited {
		return OutcomeIgnored
	}

	switch action {
	case PendingAdvance:
		if c.index >= len(c.seq)-1 {
			return OutcomeIgnored
		}
		c.settleLocked(c.index + 1)
		return OutcomeMoved
	case PendingRetreat:
		if c.index <= 0 {
			return OutcomeIgnored
		}
		c.settleLocked(c.index - 1)
		return OutcomeMoved
	case PendingExit:
		c.closeLocked()
		return OutcomeExited
	default:
		return OutcomeIgnored
	}
}

// Cancel discards the held request. Without one it is ignored.
func (c *Classroom) Cancel() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == PendingNone {
		return OutcomeIgnored
	}
	c.pending = PendingNone
	return OutcomeCanceled
}

// JumpTo settles on index without consulting the gate. Indexes outside the
// sequence and the current index are ignored.
func (c *Classroom) JumpTo(index int) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited || index < 0 || index >= len(c.seq) || index == c.index {
		return OutcomeIgnored
	}
	c.settleLocked(index)
	return OutcomeMoved
}

// Answer submits option for question index of the current quiz. An accepted
// answer drops the held request, which was made against the earlier answers.
func (c *Classroom) Answer(index int, option string) (quiz.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited {
		return quiz.Result{}, domain.NewNoClassroomError()
	}
	if c.attempt == nil {
		return quiz.Result{}, domain.NewNotAQuizError(c.currentIDLocked())
	}

	wasComplete := c.attempt.FullyCorrect()
	if _, err := c.attempt.Submit(index, option); err != nil {
		return quiz.Result{}, err
	}
	c.pending = PendingNone
	if !wasComplete && c.attempt.FullyCorrect() {
		c.quizPassedLocked()
	}
	return c.attempt.Result(), nil
}

// Retry clears the current quiz attempt, any held request and any completion
// the attempt had scheduled.
func (c *Classroom) Retry() (quiz.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited {
		return quiz.Result{}, domain.NewNoClassroomError()
	}
	if c.attempt == nil {
		return quiz.Result{}, domain.NewNotAQuizError(c.currentIDLocked())
	}
	c.timer.Cancel()
	c.pending = PendingNone
	c.attempt.Retry()
	return c.attempt.Result(), nil
}

// Document applies a viewer command to the current document item. Load
// failures stay local to the viewport and never block navigation.
func (c *Classroom) Document(cmd document.Command) (document.Viewport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.exited {
		return document.Viewport{}, domain.NewNoClassroomError()
	}
	if c.viewport == nil {
		return document.Viewport{}, domain.NewNotADocumentError(c.currentIDLocked())
	}
	if err := c.viewport.Apply(cmd); err != nil {
		return *c.viewport, domain.NewInvalidInputError(err.Error())
	}
	return *c.viewport, nil
}

// Close stops any scheduled completion. It is idempotent.
func (c *Classroom) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

func (c *Classroom) closeLocked() {
	c.timer.Cancel()
	c.pending = PendingNone
	c.exited = true
}

func (c *Classroom) blockedLocked() bool {
	return c.attempt != nil && !c.attempt.FullyCorrect()
}

func (c *Classroom) currentIDLocked() string {
	if len(c.seq) == 0 {
		return ""
	}
	return c.seq[c.index].ContentID()
}

// settleLocked makes index the current item.
func (c *Classroom) settleLocked(index int) {
	c.timer.Cancel()
	c.pending = PendingNone
	c.index = index
	c.attempt = nil
	c.viewport = nil

	item := c.seq[index]
	switch v := item.(type) {
	case *domain.QuizContent:
		c.attempt = quiz.NewAttempt(v.Questions)
	case *domain.PDFContent:
		c.viewport = document.NewViewport()
	}

	if c.progress != nil {
		c.progress.RecordProgress(c.course.ID, item.ContentID())
	}
	if c.attempt != nil && c.attempt.FullyCorrect() {
		c.quizPassedLocked()
	}
}

func (c *Classroom) quizPassedLocked() {
	if c.progress != nil {
		c.progress.RecordProgress(c.course.ID, c.currentIDLocked())
	}
	if c.index != len(c.seq)-1 || c.opts.OnComplete == nil {
		return
	}
	notice := domain.CompletionNotice{CourseID: c.course.ID, CourseTitle: c.course.Title}
	onComplete, now := c.opts.OnComplete, c.opts.Now
	c.timer.Schedule(c.opts.CompletionDelay, func() {
		notice.CompletedAt = now().UTC()
		onComplete(notice)
	})
}

func (c *Classroom) viewLocked() View {
	v := View{
		CourseID:            c.course.ID,
		CourseTitle:         c.course.Title,
		Index:               c.index,
		Total:               len(c.seq),
		Blocked:             c.blockedLocked(),
		Pending:             c.pending,
		CompletionScheduled: c.timer.Pending(),
		Exited:              c.exited,
	}
	if len(c.seq) > 0 {
		v.Item = c.seq[c.index]
	}
	if c.attempt != nil {
		res := c.attempt.Result()
		v.Quiz = &res
	}
	if c.viewport != nil {
		vp := *c.viewport
		v.Document = &vp
	}
	return v
}
