package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"classroom-player/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	GetDelFunc func(ctx context.Context, key string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) GetDel(ctx context.Context, key string) (string, error) {
	if m.GetDelFunc != nil {
		return m.GetDelFunc(ctx, key)
	}
	return "", errors.New("GetDelFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockNoticeService is a mock type for NoticeService
type MockNoticeService struct {
	mock.Mock
}

func (m *MockNoticeService) Put(ctx context.Context, sessionID string, notice domain.CompletionNotice) error {
	args := m.Called(ctx, sessionID, notice)
	return args.Error(0)
}

func (m *MockNoticeService) Consume(ctx context.Context, sessionID string) (*domain.CompletionNotice, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionNotice), args.Error(1)
}

func (m *MockNoticeService) Discard(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// recordingNoticeService keeps every notice it is given.
type recordingNoticeService struct {
	mu      sync.Mutex
	notices map[string][]domain.CompletionNotice
}

func newRecordingNoticeService() *recordingNoticeService {
	return &recordingNoticeService{notices: make(map[string][]domain.CompletionNotice)}
}

func (r *recordingNoticeService) Put(_ context.Context, sessionID string, notice domain.CompletionNotice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices[sessionID] = append(r.notices[sessionID], notice)
	return nil
}

func (r *recordingNoticeService) Consume(_ context.Context, sessionID string) (*domain.CompletionNotice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.notices[sessionID]
	if len(list) == 0 {
		return nil, ErrNoticeNotFound
	}
	n := list[0]
	r.notices[sessionID] = list[1:]
	return &n, nil
}

func (r *recordingNoticeService) Discard(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notices, sessionID)
	return nil
}

func (r *recordingNoticeService) count(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notices[sessionID])
}
