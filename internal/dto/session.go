package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims of a session token.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// CreateSessionResponse is returned when a new learning session starts
// @Description Session token
type CreateSessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CompletionNoticeResponse is the one-shot course completion signal
type CompletionNoticeResponse struct {
	CourseID    string    `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	CompletedAt time.Time `json:"completed_at"`
}
