package wizard

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/crgw/reservation-wizard/internal/tools/caching"
	"github.com/redis/go-redis/v9"
)

// SessionTTL is how long an untouched wizard session survives. Expiry
// behaves exactly like cancel: the transient state is discarded.
const SessionTTL = 2 * time.Hour

const submitLockTTL = 1 * time.Minute

// Store keeps wizard sessions in redis and owns the submission lock that
// keeps a session from being submitted twice concurrently.
type Store struct {
	cache *caching.Cacher
	redis *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		cache: caching.NewRedisCache(redisClient),
		redis: redisClient,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("wizard-session:%s", sessionID)
}

func submitLockKey(sessionID string) string {
	return fmt.Sprintf("wizard-submit-lock:%s", sessionID)
}

func (s *Store) Save(ctx context.Context, session *Session) error {
	return s.cache.Store(ctx, sessionKey(session.SessionID), session, SessionTTL)
}

func (s *Store) Find(ctx context.Context, sessionID string) (*Session, bool) {
	session := Session{}
	if !s.cache.Fetch(ctx, sessionKey(sessionID), &session) {
		return nil, false
	}

	return &session, true
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKey(sessionID))
}

// AcquireSubmitLock guards the submission sequence against re-entry while a
// request chain is outstanding.
func (s *Store) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	response := s.redis.SetNX(ctx, submitLockKey(sessionID), "", submitLockTTL)
	lockAcquired, err := response.Result()
	return lockAcquired, err
}

func (s *Store) ReleaseSubmitLock(ctx context.Context, sessionID string) {
	s.redis.Del(ctx, submitLockKey(sessionID))
}
