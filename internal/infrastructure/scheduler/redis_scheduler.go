// Package scheduler holds the delayed rejected->pending reversals.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"linkpago/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultKey          = "linkpago:reversals"
	DefaultPollInterval = time.Second

	batchSize = 100
)

// RedisScheduler keeps due reversals in a sorted set scored by unix milliseconds.
// Jobs survive restarts and several instances may poll the same key: a member is
// handled only by the instance whose ZREM removed it.
type RedisScheduler struct {
	client       redis.UniversalClient
	key          string
	pollInterval time.Duration
	now          func() time.Time
}

var _ interfaces.IReversalScheduler = (*RedisScheduler)(nil)

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	zap.S().Infof("[scheduler] connected to redis addr=%s db=%d", addr, db)
	return client, nil
}

func NewRedisScheduler(client redis.UniversalClient, key string, pollInterval time.Duration) *RedisScheduler {
	if key == "" {
		key = DefaultKey
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &RedisScheduler{client: client, key: key, pollInterval: pollInterval, now: time.Now}
}

func (s *RedisScheduler) Schedule(ctx context.Context, orderID string, at time.Time) error {
	err := s.client.ZAdd(ctx, s.key, redis.Z{Score: float64(at.UnixMilli()), Member: orderID}).Err()
	if err != nil {
		return fmt.Errorf("schedule reversal %s: %w", orderID, err)
	}
	zap.S().Infof("[scheduler][redis] scheduled order_id=%s at=%s", orderID, at.UTC().Format(time.RFC3339))
	return nil
}

func (s *RedisScheduler) Cancel(ctx context.Context, orderID string) error {
	removed, err := s.client.ZRem(ctx, s.key, orderID).Result()
	if err != nil {
		return fmt.Errorf("cancel reversal %s: %w", orderID, err)
	}
	if removed > 0 {
		zap.S().Infof("[scheduler][redis] cancelled order_id=%s", orderID)
	}
	return nil
}

// Run polls until ctx is done. A failed job is put back one poll interval later.
func (s *RedisScheduler) Run(ctx context.Context, handler interfaces.ReversalHandler) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	zap.S().Infof("[scheduler][redis] polling key=%s every=%s", s.key, s.pollInterval)
	for {
		if err := s.poll(ctx, handler); err != nil && ctx.Err() == nil {
			zap.S().Errorf("[scheduler][redis] poll failed key=%s err=%v", s.key, err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *RedisScheduler) poll(ctx context.Context, handler interfaces.ReversalHandler) error {
	due, err := s.client.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(s.now().UnixMilli(), 10),
		Count: batchSize,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	for _, orderID := range due {
		claimed, err := s.client.ZRem(ctx, s.key, orderID).Result()
		if err != nil {
			return err
		}
		if claimed == 0 {
			continue
		}
		if err := handler(ctx, orderID); err != nil {
			zap.S().Errorf("[scheduler][redis] reversal failed order_id=%s err=%v", orderID, err)
			s.retry(ctx, orderID)
		}
	}
	return nil
}

// retry re-adds a claimed job unless a newer Schedule already did. It runs even
// when ctx is cancelled so a shutdown during the handler does not lose the job.
func (s *RedisScheduler) retry(ctx context.Context, orderID string) {
	at := s.now().Add(s.pollInterval)
	err := s.client.ZAddNX(context.WithoutCancel(ctx), s.key, redis.Z{Score: float64(at.UnixMilli()), Member: orderID}).Err()
	if err != nil {
		zap.S().Errorf("[scheduler][redis] requeue failed, job lost order_id=%s err=%v", orderID, err)
		return
	}
	zap.S().Infof("[scheduler][redis] requeued order_id=%s at=%s", orderID, at.UTC().Format(time.RFC3339))
}
