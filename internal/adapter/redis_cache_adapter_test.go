package adapter

import (
	"context"
	"testing"
	"time"

	"forceskill/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectGet("existing").SetVal("value")
	val, err := cache.Get(ctx, "existing")
	assert.NoError(t, err)
	assert.Equal(t, "value", val)

	mock.ExpectGet("missing").RedisNil()
	_, err = cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("key", "value", time.Minute).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, "key", "value", time.Minute))

	mock.ExpectDel("key").SetVal(1)
	assert.NoError(t, cache.Delete(ctx, "key"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
