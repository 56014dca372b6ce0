package cache

import "strings"

const (
	GlobalKeyPrefix = "classroom"
)

// GenerateCacheKey joins the global prefix, service, object type and identifier
// with ":". Extra params are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// NoticeKey is where the completion notice of a session waits to be read.
func NoticeKey(sessionID string) string {
	return GenerateCacheKey("session", "notice", sessionID)
}
