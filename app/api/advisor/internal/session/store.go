package session

import (
	"context"
	"encoding/json"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"FinNavi/app/api/advisor/internal/agent/dialog"
	"FinNavi/app/common/consts/biz"
)

// Store keeps per-conversation dialogue state by session id. Get returns
// (nil, nil) for an unknown id; the caller starts a fresh conversation.
type Store interface {
	Get(ctx context.Context, sessionID string) (*dialog.State, error)
	Put(ctx context.Context, sessionID string, st *dialog.State) error
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct {
	rds        *redis.Redis
	ttlSeconds int
}

// NewRedisStore returns a Store backed by redis with a sliding expiry: every
// Put renews the TTL, so a session dies only after the user goes quiet.
func NewRedisStore(rds *redis.Redis, ttlSeconds int) Store {
	return &redisStore{rds: rds, ttlSeconds: ttlSeconds}
}

func key(sessionID string) string {
	return biz.SessionKeyPrefix + sessionID
}

func (s *redisStore) Get(ctx context.Context, sessionID string) (*dialog.State, error) {
	raw, err := s.rds.GetCtx(ctx, key(sessionID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var st dialog.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		// A corrupt record is unrecoverable; drop it and restart the
		// conversation rather than fail every subsequent turn.
		_ = s.Delete(ctx, sessionID)
		return nil, nil
	}
	st.Normalize()
	return &st, nil
}

func (s *redisStore) Put(ctx context.Context, sessionID string, st *dialog.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.rds.SetexCtx(ctx, key(sessionID), string(raw), s.ttlSeconds)
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.rds.DelCtx(ctx, key(sessionID))
	return err
}
