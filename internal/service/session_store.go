package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"psychotest/internal/cache"
	"psychotest/internal/domain"
	"psychotest/internal/logger"
	"time"

	"go.uber.org/zap"
)

// cacheSessionStore keeps session states as JSON documents behind a
// domain.Cache. Every Load decodes a private copy, so two sessions never
// share maps or result bands.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionStore creates a domain.SessionStore over cache. Each Save
// refreshes the TTL, so idle sessions expire ttl after their last change.
func NewSessionStore(c domain.Cache, ttl time.Duration) domain.SessionStore {
	if c == nil {
		logger.Get().Warn("SessionStore initialized with nil cache. Progress will not be kept between requests.")
		return &noopSessionStore{}
	}
	return &cacheSessionStore{cache: c, ttl: ttl}
}

func (s *cacheSessionStore) Load(ctx context.Context, sessionID, quizID string) (*domain.SessionState, error) {
	key := cache.SessionStateKey(sessionID, quizID)

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.ErrSessionNotFound
		}
		logger.Get().Error("Failed to load session state", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load session state for key %s", key), err)
	}
	if data == "" {
		return nil, domain.ErrSessionNotFound
	}

	var state domain.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		logger.Get().Error("Failed to unmarshal session state", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session state for key %s", key), err)
	}
	if state.QuizID != quizID {
		logger.Get().Warn("Stored session state belongs to another quiz; discarding",
			zap.String("key", key), zap.String("storedQuizID", state.QuizID))
		return nil, domain.ErrSessionNotFound
	}
	return &state, nil
}

func (s *cacheSessionStore) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	if state == nil {
		return domain.NewInvalidInputError("cannot save nil session state")
	}
	key := cache.SessionStateKey(sessionID, state.QuizID)

	data, err := json.Marshal(state)
	if err != nil {
		return domain.NewInternalError("failed to marshal session state", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to save session state", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to save session state for key %s", key), err)
	}
	return nil
}

func (s *cacheSessionStore) Delete(ctx context.Context, sessionID, quizID string) error {
	key := cache.SessionStateKey(sessionID, quizID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete session state for key %s", key), err)
	}
	return nil
}

// noopSessionStore forgets everything. Every request then sees a fresh pass.
type noopSessionStore struct{}

func (s *noopSessionStore) Load(ctx context.Context, sessionID, quizID string) (*domain.SessionState, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *noopSessionStore) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	logger.Get().Debug("No-op SessionStore: Save called", zap.String("sessionID", sessionID))
	return nil
}

func (s *noopSessionStore) Delete(ctx context.Context, sessionID, quizID string) error {
	return nil
}
