package session

import (
	"context"
	"fmt"
	"time"

	domainRepo "ehr-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session"

type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionRepository{client: client}
}

func sessionKey(doctorID int64, sessionID string) string {
	return fmt.Sprintf("%s:%d:%s", sessionKeyPrefix, doctorID, sessionID)
}

func (r *redisSessionRepository) Create(ctx context.Context, doctorID int64, sessionID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(doctorID, sessionID), "valid", ttl).Err()
}

func (r *redisSessionRepository) Exists(ctx context.Context, doctorID int64, sessionID string) (bool, error) {
	exists, err := r.client.Exists(ctx, sessionKey(doctorID, sessionID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, doctorID int64, sessionID string) error {
	return r.client.Del(ctx, sessionKey(doctorID, sessionID)).Err()
}
