package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"psychotest/internal/domain"
	"psychotest/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return errors.New("PingFunc not set")
}

const (
	testSessionID = "01J9Z3V6Q0M5F4W1C8N2R7T3KX"
	expectedKey   = "psychotest:session:state:" + testSessionID + ":personality_test"
)

func TestSessionStore_Save(t *testing.T) {
	mockCache := &ManualMockCache{}
	ttl := 30 * time.Minute
	store := service.NewSessionStore(mockCache, ttl)
	ctx := context.Background()

	state := domain.NewSessionState("personality_test")
	state.Answers["q1"] = 2
	state.CurrentQuestionIndex = 1
	expectedJSON, _ := json.Marshal(state)

	mockCache.SetFunc = func(ctx context.Context, key string, value string, duration time.Duration) error {
		assert.Equal(t, expectedKey, key)
		assert.JSONEq(t, string(expectedJSON), value)
		assert.Equal(t, ttl, duration)
		return nil
	}
	require.NoError(t, store.Save(ctx, testSessionID, state))

	mockCache.SetFunc = func(ctx context.Context, key string, value string, duration time.Duration) error {
		return errors.New("cache unavailable")
	}
	err := store.Save(ctx, testSessionID, state)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)

	var inputErr *domain.DomainError
	require.ErrorAs(t, store.Save(ctx, testSessionID, nil), &inputErr)
	assert.Equal(t, domain.CodeInvalidInput, inputErr.Code)
}

func TestSessionStore_Load(t *testing.T) {
	mockCache := &ManualMockCache{}
	store := service.NewSessionStore(mockCache, time.Minute)
	ctx := context.Background()

	t.Run("Hit returns a private copy", func(t *testing.T) {
		stored := `{"quiz_id":"personality_test","current_question_index":1,"answers":{"q1":0},"completed":false,"score":0}`
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			assert.Equal(t, expectedKey, key)
			return stored, nil
		}

		first, err := store.Load(ctx, testSessionID, "personality_test")
		require.NoError(t, err)
		assert.Equal(t, 1, first.CurrentQuestionIndex)
		assert.Equal(t, map[string]int{"q1": 0}, first.Answers)

		first.Answers["q2"] = 3
		second, err := store.Load(ctx, testSessionID, "personality_test")
		require.NoError(t, err)
		assert.NotContains(t, second.Answers, "q2")
	})

	t.Run("Miss", func(t *testing.T) {
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "", domain.ErrCacheMiss
		}
		state, err := store.Load(ctx, testSessionID, "personality_test")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Nil(t, state)
	})

	t.Run("State for another quiz is ignored", func(t *testing.T) {
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return `{"quiz_id":"stress_resilience_test","answers":{}}`, nil
		}
		_, err := store.Load(ctx, testSessionID, "personality_test")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Corrupt data", func(t *testing.T) {
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "not json", nil
		}
		_, err := store.Load(ctx, testSessionID, "personality_test")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})

	t.Run("Cache error", func(t *testing.T) {
		cacheErr := errors.New("timeout")
		mockCache.GetFunc = func(ctx context.Context, key string) (string, error) {
			return "", cacheErr
		}
		_, err := store.Load(ctx, testSessionID, "personality_test")
		assert.ErrorIs(t, err, cacheErr)
		assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestSessionStore_Delete(t *testing.T) {
	mockCache := &ManualMockCache{}
	store := service.NewSessionStore(mockCache, time.Minute)

	var deleted string
	mockCache.DeleteFunc = func(ctx context.Context, key string) error {
		deleted = key
		return nil
	}
	require.NoError(t, store.Delete(context.Background(), testSessionID, "personality_test"))
	assert.Equal(t, expectedKey, deleted)
}

func TestSessionStore_NilCacheIsNoop(t *testing.T) {
	store := service.NewSessionStore(nil, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSessionID, domain.NewSessionState("personality_test")))
	_, err := store.Load(ctx, testSessionID, "personality_test")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.NoError(t, store.Delete(ctx, testSessionID, "personality_test"))
}
