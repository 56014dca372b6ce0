package handler

import (
	"errors"

	"classroom-player/internal/dto"
	"classroom-player/internal/logger"
	"classroom-player/internal/middleware"
	"classroom-player/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler starts learning sessions and delivers completion notices
type SessionHandler struct {
	sessions service.SessionService
	tokens   service.TokenService
	notices  service.NoticeService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.SessionService, tokens service.TokenService, notices service.NoticeService) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens, notices: notices}
}

// CreateSession godoc
// @Summary Start a session
// @Description Creates an anonymous learning session and returns its bearer token
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.CreateSessionResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	sess, err := h.sessions.Create(c.UserContext())
	if err != nil {
		return err
	}
	token, expiresAt, err := h.tokens.CreateToken(c.UserContext(), sess.ID)
	if err != nil {
		logger.Get().Error("Failed to sign session token", zap.String("sessionID", sess.ID), zap.Error(err))
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// ConsumeNotice godoc
// @Summary Consume the completion notice
// @Description Returns the pending course completion notice once, then forgets it. 204 when there is none.
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.CompletionNoticeResponse
// @Success 204
// @Failure 401 {object} middleware.ErrorResponse
// @Router /sessions/me/notice [get]
func (h *SessionHandler) ConsumeNotice(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	if _, err := h.sessions.Get(c.UserContext(), sessionID); err != nil {
		return err
	}

	notice, err := h.notices.Consume(c.UserContext(), sessionID)
	if errors.Is(err, service.ErrNoticeNotFound) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.CompletionNoticeResponse{
		CourseID:    notice.CourseID,
		CourseTitle: notice.CourseTitle,
		CompletedAt: notice.CompletedAt,
	})
}
