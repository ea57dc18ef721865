package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "auth:otp:"

// RedisOtpStore keeps pending registration codes in Redis.
// SET with TTL gives both the per-email overwrite and the native expiry the
// OTP flow relies on; nothing here polls for expiration.
type RedisOtpStore struct {
	client *redis.Client
}

// NewRedisOtpStore creates the OTP cache adapter.
func NewRedisOtpStore(client *redis.Client) *RedisOtpStore {
	return &RedisOtpStore{client: client}
}

func (s *RedisOtpStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKeyPrefix+email, code, ttl).Err()
}

func (s *RedisOtpStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.client.Get(ctx, otpKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return code, nil
}

func (s *RedisOtpStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKeyPrefix+email).Err()
}
