package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"xisms.app/internal/config"
	"xisms.app/internal/ports"
	"xisms.app/pkg/errors"
)

// RedisCodeStoreAdapter implements CodeStore port using Redis. Each code is a
// JSON value under prefix+email whose key TTL matches the code's expiry.
type RedisCodeStoreAdapter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

const maxWatchRetries = 10

type redisCodeRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CodeHash  string    `json:"code_hash"`
	Attempts  int       `json:"attempts"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRedisCodeStoreAdapter creates a new Redis code store adapter
func NewRedisCodeStoreAdapter(config *config.RedisConfig) (*RedisCodeStoreAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	return &RedisCodeStoreAdapter{
		client: client,
		prefix: config.KeyPrefix,
		now:    time.Now,
	}, nil
}

func (r *RedisCodeStoreAdapter) key(email string) string {
	return r.prefix + email
}

// Save stores the code, replacing any live code for the same email
func (r *RedisCodeStoreAdapter) Save(ctx context.Context, code *ports.CodeData) error {
	if code == nil {
		return errors.NewInvalidInputError("code cannot be nil")
	}
	if code.Email == "" {
		return errors.NewInvalidInputError("code email cannot be empty")
	}

	ttl := code.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return errors.NewInvalidInputError("code is already expired")
	}

	payload, err := json.Marshal(recordFromData(code))
	if err != nil {
		return errors.NewCacheError("failed to encode code", err)
	}

	if err := r.client.Set(ctx, r.key(code.Email), payload, ttl).Err(); err != nil {
		return errors.NewCacheError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisCodeStoreAdapter) FindByEmail(ctx context.Context, email string) (*ports.CodeData, error) {
	if email == "" {
		return nil, errors.NewInvalidInputError("email cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(email)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("code not found")
		}
		return nil, errors.NewCacheError("redis get operation failed", err)
	}

	var record redisCodeRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return nil, errors.NewCacheError("failed to decode code", err)
	}

	return record.toData(), nil
}

// ConsumeByEmail deletes the code in a WATCH transaction so only one caller
// can redeem it
func (r *RedisCodeStoreAdapter) ConsumeByEmail(ctx context.Context, email, codeHash string) error {
	if email == "" {
		return errors.NewInvalidInputError("email cannot be empty")
	}

	key := r.key(email)
	return r.watch(ctx, key, func(tx *redis.Tx) error {
		record, err := r.load(ctx, tx, key)
		if err != nil {
			return err
		}
		if record.CodeHash != codeHash {
			return errors.NewNotFoundError("code not found")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	})
}

// RecordFailedAttempt increments the attempt counter, keeping the key TTL,
// and deletes the code once maxAttempts is reached
func (r *RedisCodeStoreAdapter) RecordFailedAttempt(ctx context.Context, email string, maxAttempts int) (int, error) {
	if email == "" {
		return 0, errors.NewInvalidInputError("email cannot be empty")
	}

	key := r.key(email)
	var attempts int
	err := r.watch(ctx, key, func(tx *redis.Tx) error {
		record, err := r.load(ctx, tx, key)
		if err != nil {
			return err
		}

		ttl, err := tx.PTTL(ctx, key).Result()
		if err != nil {
			return err
		}
		if ttl <= 0 {
			return errors.NewNotFoundError("code not found")
		}

		record.Attempts++
		payload, err := json.Marshal(record)
		if err != nil {
			return errors.NewCacheError("failed to encode code", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if maxAttempts > 0 && record.Attempts >= maxAttempts {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, payload, ttl)
			}
			return nil
		})
		if err == nil {
			attempts = record.Attempts
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

// watch runs fn under WATCH key, retrying when a concurrent writer touched the key
func (r *RedisCodeStoreAdapter) watch(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, fn, key)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			if _, ok := err.(*errors.AppError); ok {
				return err
			}
			return errors.NewCacheError("redis transaction failed", err)
		}
		return nil
	}
	return errors.NewCacheError("redis transaction aborted after concurrent updates", redis.TxFailedErr)
}

func (r *RedisCodeStoreAdapter) load(ctx context.Context, tx *redis.Tx, key string) (*redisCodeRecord, error) {
	val, err := tx.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NewNotFoundError("code not found")
		}
		return nil, err
	}

	var record redisCodeRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return nil, errors.NewCacheError("failed to decode code", err)
	}
	return &record, nil
}

func recordFromData(code *ports.CodeData) redisCodeRecord {
	return redisCodeRecord{
		ID:        code.ID,
		Email:     code.Email,
		CodeHash:  code.CodeHash,
		Attempts:  code.Attempts,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
}

func (rec redisCodeRecord) toData() *ports.CodeData {
	return &ports.CodeData{
		ID:        rec.ID,
		Email:     rec.Email,
		CodeHash:  rec.CodeHash,
		Attempts:  rec.Attempts,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}
}

func (r *RedisCodeStoreAdapter) DeleteByEmail(ctx context.Context, email string) error {
	if email == "" {
		return errors.NewInvalidInputError("email cannot be empty")
	}

	if err := r.client.Del(ctx, r.key(email)).Err(); err != nil {
		return errors.NewCacheError("redis delete operation failed", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts keys when their TTL elapses
func (r *RedisCodeStoreAdapter) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

// Ping checks if Redis connection is alive
func (r *RedisCodeStoreAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("Redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisCodeStoreAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}
