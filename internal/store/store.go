package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/config"

	"github.com/redis/go-redis/v9"
)

func New(cfg *config.Config, password string) *Store {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       cfg.Redis.DB,
	})
	return &Store{
		cfg:    cfg,
		rdb:    rdb,
		prefix: cfg.Redis.Prefix,
	}
}

func (s *Store) key(parts ...string) string {
	return s.prefix + strings.Join(parts, ":")
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// GetSigningKey returns the user's signing secret, or "" if none exists.
func (s *Store) GetSigningKey(ctx context.Context, userID string) (string, error) {
	val, err := s.rdb.Get(ctx, s.key("signing_key", userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetSigningKey overwrites the user's signing secret. Last writer wins;
// there is exactly one active key per user.
func (s *Store) SetSigningKey(ctx context.Context, userID, secretHex string) error {
	return s.rdb.Set(ctx, s.key("signing_key", userID), secretHex, 0).Err()
}
