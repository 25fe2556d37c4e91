package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"critichub/models"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes the Redis connection. The cache is optional: every
// caller checks IsRedisAvailable first and falls through to the database.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

const (
	// Home page: games with more than two reviews
	HomeGamesKey = "games:home"

	// Per-game visible reviews
	GameReviewsPrefix = "reviews:game:" // reviews:game:123

	// Distinct genre list for the discover filter
	GenresKey = "games:genres"
)

// Set stores any value in cache with TTL
func Set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// Get retrieves a value from cache into dest
func Get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return nil
}

// Delete removes key from cache
func Delete(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// ==================== HOME LIST CACHING ====================

func GetHomeGames() ([]models.Game, error) {
	var games []models.Game
	if err := Get(HomeGamesKey, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func SetHomeGames(games []models.Game) error {
	return Set(HomeGamesKey, games, 5*time.Minute)
}

// InvalidateGames drops the home list and genre caches after any write that
// can change them (game add/delete, review insert/delete, user delete).
func InvalidateGames() error {
	if err := Delete(HomeGamesKey); err != nil {
		return err
	}
	return Delete(GenresKey)
}

// ==================== REVIEW CACHING ====================

func GetGameReviews(gameID uint) ([]models.Review, error) {
	key := fmt.Sprintf("%s%d", GameReviewsPrefix, gameID)
	var reviews []models.Review
	if err := Get(key, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func SetGameReviews(gameID uint, reviews []models.Review) error {
	key := fmt.Sprintf("%s%d", GameReviewsPrefix, gameID)
	return Set(key, reviews, 5*time.Minute)
}

func InvalidateGameReviews(gameID uint) error {
	key := fmt.Sprintf("%s%d", GameReviewsPrefix, gameID)
	return Delete(key)
}

// ==================== GENRE CACHING ====================

func GetGenres() ([]string, error) {
	var genres []string
	if err := Get(GenresKey, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func SetGenres(genres []string) error {
	return Set(GenresKey, genres, 30*time.Minute)
}
