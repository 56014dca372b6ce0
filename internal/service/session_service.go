package service

import (
	"context"
	"sync"
	"time"

	"classroom-player/internal/classroom"
	"classroom-player/internal/config"
	"classroom-player/internal/domain"
	"classroom-player/internal/learner"
	"classroom-player/internal/logger"
	"classroom-player/internal/util"

	"go.uber.org/zap"
)

// Session is one learner: its state store and at most one open classroom.
type Session struct {
	ID        string
	CreatedAt time.Time
	Learner   *learner.Store

	mu        sync.Mutex
	lastSeen  time.Time
	classroom *classroom.Classroom
}

// Classroom returns the open classroom, or nil.
func (s *Session) Classroom() *classroom.Classroom {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classroom
}

// replaceClassroom installs c and closes the one it replaces.
func (s *Session) replaceClassroom(c *classroom.Classroom) {
	s.mu.Lock()
	old := s.classroom
	s.classroom = c
	s.mu.Unlock()
	if old != nil {
		old.Close()
	}
}

// dropClassroom forgets c if it is still the open classroom.
func (s *Session) dropClassroom(c *classroom.Classroom) {
	s.mu.Lock()
	if s.classroom == c {
		s.classroom = nil
	}
	s.mu.Unlock()
	c.Close()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionService owns the live sessions.
type SessionService interface {
	Create(ctx context.Context) (*Session, error)
	// Get returns the session and marks it as active.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Sweep(now time.Time) int
	// Run sweeps idle sessions until ctx is done.
	Run(ctx context.Context) error
	Count() int
}

type sessionServiceImpl struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	interval time.Duration
	notices  NoticeService
	now      func() time.Time
}

// NewSessionService creates an in-memory SessionService. notices is told to
// drop the pending notice of every swept session.
func NewSessionService(cfg config.SessionConfig, notices NoticeService) SessionService {
	ttl, interval := cfg.TTL, cfg.SweepInterval
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &sessionServiceImpl{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		interval: interval,
		notices:  notices,
		now:      time.Now,
	}
}

func (s *sessionServiceImpl) Create(_ context.Context) (*Session, error) {
	now := s.now()
	sess := &Session{
		ID:        util.NewULID(),
		CreatedAt: now,
		Learner:   learner.NewStore(),
		lastSeen:  now,
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	logger.Get().Info("Session created", zap.String("sessionID", sess.ID))
	return sess, nil
}

func (s *sessionServiceImpl) Get(_ context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	sess.touch(s.now())
	return sess, nil
}

func (s *sessionServiceImpl) Sweep(now time.Time) int {
	var expired []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.ttl {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		if c := sess.Classroom(); c != nil {
			sess.dropClassroom(c)
		}
		if s.notices != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.notices.Discard(ctx, sess.ID); err != nil {
				logger.Get().Warn("Failed to discard notice of expired session", zap.String("sessionID", sess.ID), zap.Error(err))
			}
			cancel()
		}
	}
	if len(expired) > 0 {
		logger.Get().Info("Expired sessions swept", zap.Int("count", len(expired)))
	}
	return len(expired)
}

func (s *sessionServiceImpl) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

func (s *sessionServiceImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
