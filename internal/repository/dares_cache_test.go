package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/dailydare/internal/repository"
	"github.com/limbo/dailydare/internal/repository/mocks"
	"github.com/limbo/dailydare/pkg/entity"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// fakeRedis implements the few commands the catalog cache uses
type fakeRedis struct {
	redis.Cmdable
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	down bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestCachedDaresReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := mocks.NewMockDaresRepositoryI(ctrl)
	rdb := newFakeRedis()
	repo := repository.NewCachedDaresRepo(base, rdb, time.Minute)
	ctx := context.Background()
	easy := []entity.Dare{{ID: uuid.New(), Title: "Eat a Veggie", Points: 5, Difficulty: entity.DifficultyEasy, Tags: []string{"Health"}}}

	base.EXPECT().ListByDifficulty(gomock.Any(), entity.DifficultyEasy).Return(easy, nil).Times(1)
	first, err := repo.ListByDifficulty(ctx, entity.DifficultyEasy)
	require.NoError(t, err)
	second, err := repo.ListByDifficulty(ctx, entity.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, easy, first)
	assert.Equal(t, easy, second)
	assert.Equal(t, time.Minute, rdb.ttls["dares:difficulty:Easy"])

	t.Run("replace invalidates", func(t *testing.T) {
		base.EXPECT().ReplaceAll(gomock.Any(), easy).Return(nil)
		require.NoError(t, repo.ReplaceAll(ctx, easy))
		assert.Empty(t, rdb.data)
	})
	t.Run("failed replace keeps cache", func(t *testing.T) {
		rdb.data["dares:difficulty:Easy"] = "[]"
		base.EXPECT().ReplaceAll(gomock.Any(), easy).Return(errors.New("db error"))
		assert.Error(t, repo.ReplaceAll(ctx, easy))
		assert.Len(t, rdb.data, 1)
	})
}

func TestCachedDaresFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	base := mocks.NewMockDaresRepositoryI(ctrl)
	rdb := newFakeRedis()
	repo := repository.NewCachedDaresRepo(base, rdb, time.Minute)
	ctx := context.Background()
	hard := []entity.Dare{{ID: uuid.New(), Title: "Cold Shower Shock", Points: 30, Difficulty: entity.DifficultyHard}}

	t.Run("redis down", func(t *testing.T) {
		rdb.down = true
		defer func() { rdb.down = false }()
		base.EXPECT().ListByDifficulty(gomock.Any(), entity.DifficultyHard).Return(hard, nil)
		dares, err := repo.ListByDifficulty(ctx, entity.DifficultyHard)
		require.NoError(t, err)
		assert.Equal(t, hard, dares)
	})
	t.Run("malformed entry", func(t *testing.T) {
		rdb.data["dares:difficulty:Hard"] = "{garbage"
		base.EXPECT().ListByDifficulty(gomock.Any(), entity.DifficultyHard).Return(hard, nil)
		dares, err := repo.ListByDifficulty(ctx, entity.DifficultyHard)
		require.NoError(t, err)
		assert.Equal(t, hard, dares)
	})
	t.Run("db error is surfaced", func(t *testing.T) {
		delete(rdb.data, "dares:difficulty:Hard")
		base.EXPECT().ListByDifficulty(gomock.Any(), entity.DifficultyHard).Return(nil, errors.New("db error"))
		_, err := repo.ListByDifficulty(ctx, entity.DifficultyHard)
		assert.Error(t, err)
	})
	t.Run("count passes through", func(t *testing.T) {
		base.EXPECT().Count(gomock.Any()).Return(6, nil)
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
	})
}

func TestCachedDaresWithRedisContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	ctrl := gomock.NewController(t)
	base := mocks.NewMockDaresRepositoryI(ctrl)
	repo := repository.NewCachedDaresRepo(base, client, time.Minute)
	medium := []entity.Dare{{ID: uuid.New(), Title: "Learn a Fun Fact", Points: 15, Difficulty: entity.DifficultyMedium, Tags: []string{"Knowledge"}}}
	base.EXPECT().ListByDifficulty(gomock.Any(), entity.DifficultyMedium).Return(medium, nil).Times(1)

	for range 3 {
		dares, err := repo.ListByDifficulty(ctx, entity.DifficultyMedium)
		require.NoError(t, err)
		assert.Equal(t, medium, dares)
	}
	ttl, err := client.TTL(ctx, "dares:difficulty:Medium").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	require.NoError(t, repo.Invalidate(ctx))
	assert.Equal(t, int64(0), client.Exists(ctx, "dares:difficulty:Medium").Val())
}
