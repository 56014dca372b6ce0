package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"classroom-player/internal/cache"
	"classroom-player/internal/domain"
	"classroom-player/internal/logger"

	"go.uber.org/zap"
)

// ErrNoticeNotFound is returned when no completion notice is waiting.
var ErrNoticeNotFound = errors.New("completion notice not found")

// NoticeService stores the one-shot course completion signal of a session.
type NoticeService interface {
	Put(ctx context.Context, sessionID string, notice domain.CompletionNotice) error
	// Consume returns the waiting notice and removes it, so it is delivered once.
	Consume(ctx context.Context, sessionID string) (*domain.CompletionNotice, error)
	Discard(ctx context.Context, sessionID string) error
}

type noticeServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewNoticeService creates a NoticeService backed by cache.
func NewNoticeService(cache domain.Cache, ttl time.Duration) NoticeService {
	if cache == nil {
		logger.Get().Warn("NoticeService initialized with nil cache. Service will be no-op.")
		return &noopNoticeService{}
	}
	return &noticeServiceImpl{cache: cache, ttl: ttl}
}

func (s *noticeServiceImpl) Put(ctx context.Context, sessionID string, notice domain.CompletionNotice) error {
	key := cache.NoticeKey(sessionID)
	data, err := json.Marshal(notice)
	if err != nil {
		return domain.NewInternalError("failed to marshal completion notice", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store completion notice", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store completion notice for key %s", key), err)
	}
	logger.Get().Debug("Stored completion notice", zap.String("key", key), zap.String("courseID", notice.CourseID))
	return nil
}

func (s *noticeServiceImpl) Consume(ctx context.Context, sessionID string) (*domain.CompletionNotice, error) {
	key := cache.NoticeKey(sessionID)
	data, err := s.cache.GetDel(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrNoticeNotFound
		}
		logger.Get().Error("Failed to read completion notice", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read completion notice for key %s", key), err)
	}
	if data == "" {
		return nil, ErrNoticeNotFound
	}

	var notice domain.CompletionNotice
	if err := json.Unmarshal([]byte(data), &notice); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal completion notice for key %s", key), err)
	}
	return &notice, nil
}

func (s *noticeServiceImpl) Discard(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, cache.NoticeKey(sessionID))
}

type noopNoticeService struct{}

func (s *noopNoticeService) Put(_ context.Context, sessionID string, _ domain.CompletionNotice) error {
	logger.Get().Debug("No-op NoticeService: Put called", zap.String("sessionID", sessionID))
	return nil
}

func (s *noopNoticeService) Consume(_ context.Context, _ string) (*domain.CompletionNotice, error) {
	return nil, ErrNoticeNotFound
}

func (s *noopNoticeService) Discard(_ context.Context, _ string) error {
	return nil
}
