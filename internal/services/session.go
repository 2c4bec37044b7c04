package services

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/manideepv28/TravelCompanion/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// SessionTTL is the fixed lifetime of a session. There is no refresh; after
// 24 hours the token is treated as absent.
const SessionTTL = 24 * time.Hour

const sessionKeyPrefix = "session:"

// SessionStore persists the token -> user binding.
type SessionStore interface {
	Set(ctx context.Context, token string, userID uint, ttl time.Duration) error
	// Get returns the bound user ID, or ok=false if the token is unknown or
	// expired. An error means the store itself failed.
	Get(ctx context.Context, token string) (userID uint, ok bool, err error)
	Delete(ctx context.Context, token string) error
}

// RedisSessionStore keeps sessions in redis; expiry rides on the key TTL.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func (s *RedisSessionStore) Set(ctx context.Context, token string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+token, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemorySessionStore is the fallback when redis is unreachable, and the store
// used by tests. Expired entries are dropped lazily on Get; Reap sweeps the
// rest so the map does not grow without bound.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Set(_ context.Context, token string, userID uint, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, false, nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, false, nil
	}
	return sess.userID, true, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Reap removes all expired sessions.
func (s *MemorySessionStore) Reap() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

// StartReaper sweeps expired sessions until ctx is cancelled. Correctness does
// not depend on it; Get already treats expired sessions as absent.
func (s *MemorySessionStore) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Reap()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// SessionService issues, resolves and destroys the opaque tokens carried in
// the session cookie.
type SessionService struct {
	store  SessionStore
	logger *slog.Logger
	ttl    time.Duration
}

func NewSessionService(store SessionStore, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:  store,
		logger: logger,
		ttl:    SessionTTL,
	}
}

// Create binds a fresh token to userID with expiry now + 24h.
func (s *SessionService) Create(ctx context.Context, userID uint) (string, error) {
	token := utils.GenerateSessionToken()
	if err := s.store.Set(ctx, token, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user bound to token. Unknown, expired and destroyed
// tokens are indistinguishable: all yield ok=false.
func (s *SessionService) Resolve(ctx context.Context, token string) (uint, bool) {
	if token == "" {
		return 0, false
	}
	userID, ok, err := s.store.Get(ctx, token)
	if err != nil {
		s.logger.Error("Session lookup failed", "error", err)
		return 0, false
	}
	return userID, ok
}

// Destroy removes the binding. Destroying an absent session is not an error;
// only a storage failure is.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Delete(ctx, token)
}
