package handler

import (
	"context"

	"classroom-player/internal/classroom"
	"classroom-player/internal/document"
	"classroom-player/internal/domain"
	"classroom-player/internal/dto"
	"classroom-player/internal/middleware"
	"classroom-player/internal/service"
	"classroom-player/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ClassroomHandler drives the open course of a session
type ClassroomHandler struct {
	service   service.ClassroomService
	validator *validation.Validator
}

// NewClassroomHandler creates a new ClassroomHandler instance
func NewClassroomHandler(service service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Open godoc
// @Summary Open a course
// @Description Opens a course in the classroom, at content_index when it is a valid deep link
// @Tags classroom
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.OpenClassroomRequest true "Course to open"
// @Success 200 {object} dto.ClassroomResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /classroom [post]
func (h *ClassroomHandler) Open(c *fiber.Ctx) error {
	var req dto.OpenClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateOpenClassroom(&req); len(errs) > 0 {
		return errs
	}

	deepLink := -1
	if req.ContentIndex != nil {
		deepLink = *req.ContentIndex
	}
	state, err := h.service.Open(c.UserContext(), middleware.SessionID(c), req.CourseID, deepLink)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassroomResponse(state.View, state.Bookmarked))
}

// Current godoc
// @Summary Current classroom
// @Description Returns the current item and gating state of the open course
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ClassroomResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom [get]
func (h *ClassroomHandler) Current(c *fiber.Ctx) error {
	state, err := h.service.Current(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewClassroomResponse(state.View, state.Bookmarked))
}

// Advance godoc
// @Summary Next item
// @Description Moves forward, or holds the request while a quiz is unfinished
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NavigationResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/advance [post]
func (h *ClassroomHandler) Advance(c *fiber.Ctx) error {
	return h.navigation(c, h.service.Advance)
}

// Retreat godoc
// @Summary Previous item
// @Description Moves back, or holds the request while a quiz is unfinished
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NavigationResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/retreat [post]
func (h *ClassroomHandler) Retreat(c *fiber.Ctx) error {
	return h.navigation(c, h.service.Retreat)
}

// Exit godoc
// @Summary Leave the course
// @Description Closes the classroom, or holds the request while a quiz is unfinished
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NavigationResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/exit [post]
func (h *ClassroomHandler) Exit(c *fiber.Ctx) error {
	return h.navigation(c, h.service.Exit)
}

// Confirm godoc
// @Summary Confirm the held action
// @Description Abandons the unfinished quiz and performs the held navigation
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NavigationResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/pending/confirm [post]
func (h *ClassroomHandler) Confirm(c *fiber.Ctx) error {
	return h.navigation(c, h.service.Confirm)
}

// Cancel godoc
// @Summary Cancel the held action
// @Description Drops the held navigation and stays on the quiz
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NavigationResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/pending/cancel [post]
func (h *ClassroomHandler) Cancel(c *fiber.Ctx) error {
	return h.navigation(c, h.service.Cancel)
}

// Jump godoc
// @Summary Jump to an item
// @Description Moves straight to an item of the open course. Out-of-range indexes are ignored.
// @Tags classroom
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.JumpRequest true "Target index"
// @Success 200 {object} dto.NavigationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/jump [post]
func (h *ClassroomHandler) Jump(c *fiber.Ctx) error {
	var req dto.JumpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateJump(&req); len(errs) > 0 {
		return errs
	}
	res, err := h.service.JumpTo(c.UserContext(), middleware.SessionID(c), *req.Index)
	if err != nil {
		return err
	}
	return c.JSON(newNavigationResponse(res))
}

// Answer godoc
// @Summary Answer a quiz question
// @Description Scores one answer of the current quiz attempt
// @Tags classroom
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.AnswerRequest true "Answer"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/quiz/answers [post]
func (h *ClassroomHandler) Answer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateAnswer(&req); len(errs) > 0 {
		return errs
	}
	res, err := h.service.Answer(c.UserContext(), middleware.SessionID(c), *req.QuestionIndex, req.Option)
	if err != nil {
		return err
	}
	return c.JSON(dto.AnswerResponse{
		Correct: res.Correct,
		Quiz:    dto.NewQuizStateResponse(res.Quiz),
	})
}

// Retry godoc
// @Summary Retry the quiz
// @Description Starts a fresh attempt of the current quiz
// @Tags classroom
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizStateResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/quiz/retry [post]
func (h *ClassroomHandler) Retry(c *fiber.Ctx) error {
	res, err := h.service.Retry(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizStateResponse(res))
}

// Document godoc
// @Summary Control the document viewer
// @Description Applies a paging, zoom or load command to the current document
// @Tags classroom
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.DocumentRequest true "Viewer command"
// @Success 200 {object} dto.DocumentStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /classroom/document [post]
func (h *ClassroomHandler) Document(c *fiber.Ctx) error {
	var req dto.DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateDocument(&req); len(errs) > 0 {
		return errs
	}
	vp, err := h.service.Document(c.UserContext(), middleware.SessionID(c), document.Command{
		Action:    document.Action(req.Action),
		Page:      req.Page,
		PageCount: req.PageCount,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDocumentStateResponse(vp))
}

type navigationFunc func(ctx context.Context, sessionID string) (service.NavigationResult, error)

func (h *ClassroomHandler) navigation(c *fiber.Ctx, move navigationFunc) error {
	res, err := move(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(newNavigationResponse(res))
}

// newNavigationResponse leaves out the classroom once it has been exited.
func newNavigationResponse(res service.NavigationResult) dto.NavigationResponse {
	resp := dto.NavigationResponse{Outcome: string(res.Outcome)}
	if res.Outcome != classroom.OutcomeExited {
		resp.Classroom = dto.NewClassroomResponse(res.State.View, res.State.Bookmarked)
	}
	return resp
}
