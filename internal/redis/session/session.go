package session

import (
	e "adikart/internal/core/domain/errors"
	"adikart/internal/core/domain/user"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v9"
)

// RedisSessionRepository keeps session tokens in Redis with a TTL and
// resolves them to users through the user repository.
type RedisSessionRepository struct {
	redisClient    *redis.Client
	userRepository user.UserRepository
	sessionTTL     time.Duration
}

func NewRedisSessionRepository(
	redisClient *redis.Client,
	userRepository user.UserRepository,
	sessionTTL time.Duration,
) *RedisSessionRepository {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &RedisSessionRepository{
		redisClient:    redisClient,
		userRepository: userRepository,
		sessionTTL:     sessionTTL,
	}
}

func sessionKey(token user.SessionToken) string {
	return fmt.Sprintf("session::%s", string(token))
}

func (r *RedisSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	return r.redisClient.Set(
		ctx,
		sessionKey(input.Token),
		int64(input.UserID),
		r.sessionTTL,
	).Err()
}

func (r *RedisSessionRepository) GetUserByToken(
	ctx context.Context,
	token user.SessionToken,
) (u user.User, err error) {
	rawUserID, err := r.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		return u, err
	}
	return r.userRepository.GetByID(ctx, user.ID(userID))
}

func (r *RedisSessionRepository) Delete(
	ctx context.Context,
	token user.SessionToken,
) (userID user.ID, err error) {
	rawUserID, err := r.redisClient.GetDel(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	parsedUserID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		return userID, err
	}
	return user.ID(parsedUserID), nil
}
