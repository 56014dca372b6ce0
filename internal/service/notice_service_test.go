package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"classroom-player/internal/adapter"
	"classroom-player/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeService_PutConsume(t *testing.T) {
	ctx := context.Background()
	notice := domain.CompletionNotice{
		CourseID:    "react-mastery",
		CourseTitle: "React Mastery 2024",
		CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		var storedKey, storedValue string
		var storedTTL time.Duration
		mockCache := &ManualMockCache{
			SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error {
				storedKey, storedValue, storedTTL = key, value, ttl
				return nil
			},
			GetDelFunc: func(ctx context.Context, key string) (string, error) {
				assert.Equal(t, storedKey, key)
				return storedValue, nil
			},
		}
		svc := NewNoticeService(mockCache, 10*time.Minute)

		require.NoError(t, svc.Put(ctx, "s1", notice))
		assert.Equal(t, "classroom:session:notice:s1", storedKey)
		assert.Equal(t, 10*time.Minute, storedTTL)

		got, err := svc.Consume(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, notice, *got)
	})

	t.Run("Miss", func(t *testing.T) {
		mockCache := &ManualMockCache{
			GetDelFunc: func(ctx context.Context, key string) (string, error) {
				return "", domain.ErrCacheMiss
			},
		}
		_, err := NewNoticeService(mockCache, time.Minute).Consume(ctx, "s1")
		assert.ErrorIs(t, err, ErrNoticeNotFound)
	})

	t.Run("CacheError", func(t *testing.T) {
		mockCache := &ManualMockCache{
			SetFunc: func(ctx context.Context, key string, value string, ttl time.Duration) error {
				return errors.New("redis down")
			},
			GetDelFunc: func(ctx context.Context, key string) (string, error) {
				return "", errors.New("redis down")
			},
		}
		svc := NewNoticeService(mockCache, time.Minute)

		var domainErr *domain.DomainError
		require.True(t, errors.As(svc.Put(ctx, "s1", notice), &domainErr))
		assert.Equal(t, domain.CodeInternal, domainErr.Code)

		_, err := svc.Consume(ctx, "s1")
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		mockCache := &ManualMockCache{
			GetDelFunc: func(ctx context.Context, key string) (string, error) {
				return "{not json", nil
			},
		}
		_, err := NewNoticeService(mockCache, time.Minute).Consume(ctx, "s1")
		var syntaxErr *json.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})
}

func TestNoticeService_DeliveredOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewNoticeService(adapter.NewMemoryCacheAdapter(), time.Minute)

	require.NoError(t, svc.Put(ctx, "s1", domain.CompletionNotice{CourseID: "c"}))
	_, err := svc.Consume(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.Consume(ctx, "s1")
	assert.ErrorIs(t, err, ErrNoticeNotFound)

	require.NoError(t, svc.Put(ctx, "s2", domain.CompletionNotice{CourseID: "c"}))
	require.NoError(t, svc.Discard(ctx, "s2"))
	_, err = svc.Consume(ctx, "s2")
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

func TestNoticeService_NilCacheIsNoop(t *testing.T) {
	svc := NewNoticeService(nil, time.Minute)
	assert.NoError(t, svc.Put(context.Background(), "s1", domain.CompletionNotice{}))
	_, err := svc.Consume(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}
