package repository

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/dailydare/pkg/cleanup"
	"github.com/limbo/dailydare/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const daresCacheKeyPrefix = "dares:difficulty:"

// CachedDaresRepository is a read-through redis cache over catalog reads.
// Redis failures are logged and the call falls through to the wrapped repository.
type CachedDaresRepository struct {
	DaresRepositoryI
	rdb redis.Cmdable
	ttl time.Duration
}

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisCfg) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return client
}

func NewCachedDaresRepo(base DaresRepositoryI, rdb redis.Cmdable, ttl time.Duration) *CachedDaresRepository {
	return &CachedDaresRepository{
		DaresRepositoryI: base,
		rdb:              rdb,
		ttl:              ttl,
	}
}

func (cr *CachedDaresRepository) ListByDifficulty(ctx context.Context, difficulty entity.Difficulty) ([]entity.Dare, error) {
	key := daresCacheKeyPrefix + string(difficulty)
	data, err := cr.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var dares []entity.Dare
		if err = sonic.Unmarshal(data, &dares); err == nil {
			return dares, nil
		}
		slog.Warn("dropping malformed catalog cache entry", slog.String("key", key), slog.String("error", err.Error()))
	case errors.Is(err, redis.Nil):
	default:
		slog.Warn("catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	dares, err := cr.DaresRepositoryI.ListByDifficulty(ctx, difficulty)
	if err != nil {
		return nil, err
	}
	data, err = sonic.Marshal(dares)
	if err != nil {
		return dares, nil
	}
	if err = cr.rdb.Set(ctx, key, data, cr.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return dares, nil
}

func (cr *CachedDaresRepository) ReplaceAll(ctx context.Context, dares []entity.Dare) error {
	if err := cr.DaresRepositoryI.ReplaceAll(ctx, dares); err != nil {
		return err
	}
	return cr.Invalidate(ctx)
}

// Invalidate drops cached catalog of every difficulty
func (cr *CachedDaresRepository) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(entity.Difficulties))
	for _, d := range entity.Difficulties {
		keys = append(keys, daresCacheKeyPrefix+string(d))
	}
	if err := cr.rdb.Del(ctx, keys...).Err(); err != nil {
		return errors.New("invalidating catalog cache error: " + err.Error())
	}
	return nil
}
