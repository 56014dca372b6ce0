package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"classroom-player/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "classroom:session:notice:s1"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("payload")
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, "payload", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet("k", "v", 10*time.Minute).SetVal("OK")
		assert.NoError(t, adapter.Set(ctx, "k", "v", 10*time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectSet("k", "v", time.Minute).SetErr(redisErr)
		assert.ErrorIs(t, adapter.Set(ctx, "k", "v", time.Minute), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_GetDel(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGetDel("k").SetVal("v")
		val, err := adapter.GetDel(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, "v", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGetDel("k").SetErr(redis.Nil)
		_, err := adapter.GetDel(ctx, "k")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_DeleteAndPing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectDel("k").SetVal(1)
	assert.NoError(t, adapter.Delete(ctx, "k"))

	mock.ExpectDel("missing").SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, "missing"))

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, adapter.Ping(ctx))

	assert.NoError(t, mock.ExpectationsWereMet())
}
