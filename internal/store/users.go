package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CreateUser persists a new user keyed by normalized email. First write
// wins; a second registration for the same email returns false.
func (s *Store) CreateUser(ctx context.Context, u User) (bool, error) {
	if u.Created == 0 {
		u.Created = time.Now().Unix()
	}
	b, err := json.Marshal(u)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, s.key("user", u.Email), string(b), 0).Result()
}

// GetUserByEmail returns nil when no user is registered for the email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	val, err := s.rdb.Get(ctx, s.key("user", email)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u User
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		return nil, err
	}
	return &u, nil
}
