package cache

import "strings"

const (
	GlobalKeyPrefix = "psychotest"

	sessionServiceName = "session"
	sessionObjectType  = "state"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SessionStateKey addresses one browser session's progress through one quiz.
// A session taking two quizzes owns two independent keys.
func SessionStateKey(sessionID, quizID string) string {
	return GenerateCacheKey(sessionServiceName, sessionObjectType, sessionID, quizID)
}
