package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Record is the logged-in identity kept server-side for the lifetime of a
// refresh token: the token, serialized user and role-specific employee id
// as one atomic value. Storing the triple as a single key means a logout
// can never leave a half-cleared session behind.
type Record struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	EmployeeID   *string   `json:"employee_id,omitempty"`
	RefreshToken string    `json:"refresh_token"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("session not found")

// Store keeps session records in Redis keyed by user id, with the TTL of
// the refresh token.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(addr, password string, db int, ttl time.Duration) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Store{client: client, ttl: ttl}, nil
}

func key(userID string) string {
	return "session:" + userID
}

// Save writes the whole record in one SET, replacing any previous session
// for the user.
func (s *Store) Save(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, key(rec.UserID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get reads the session for a user, ErrNotFound when none exists.
func (s *Store) Get(ctx context.Context, userID string) (Record, error) {
	payload, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("get session: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, fmt.Errorf("decode session: %w", err)
	}
	return rec, nil
}

// Clear removes the session atomically. A missing key is not an error;
// logout is idempotent.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
