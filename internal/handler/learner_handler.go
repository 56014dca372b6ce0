package handler

import (
	"classroom-player/internal/domain"
	"classroom-player/internal/dto"
	"classroom-player/internal/middleware"
	"classroom-player/internal/service"
	"classroom-player/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// LearnerHandler handles notes, bookmarks and progress of a session
type LearnerHandler struct {
	service   service.LearnerService
	validator *validation.Validator
}

// NewLearnerHandler creates a new LearnerHandler instance
func NewLearnerHandler(service service.LearnerService) *LearnerHandler {
	return &LearnerHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// ListNotes godoc
// @Summary List notes
// @Description Returns every note of the session, most recently saved first
// @Tags learner
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.NoteResponse
// @Router /notes [get]
func (h *LearnerHandler) ListNotes(c *fiber.Ctx) error {
	notes, err := h.service.Notes(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	resp := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, newNoteResponse(n))
	}
	return c.JSON(resp)
}

// GetNote godoc
// @Summary Get a note
// @Description Returns the note of one content item
// @Tags learner
// @Produce json
// @Security ApiKeyAuth
// @Param contentID path string true "Content ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /notes/{contentID} [get]
func (h *LearnerHandler) GetNote(c *fiber.Ctx) error {
	note, err := h.service.Note(c.UserContext(), middleware.SessionID(c), utils.CopyString(c.Params("contentID")))
	if err != nil {
		return err
	}
	return c.JSON(newNoteResponse(note))
}

// SaveNote godoc
// @Summary Save a note
// @Description Replaces the note of one content item
// @Tags learner
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param contentID path string true "Content ID"
// @Param request body dto.SaveNoteRequest true "Note text"
// @Success 200 {object} dto.NoteResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /notes/{contentID} [put]
func (h *LearnerHandler) SaveNote(c *fiber.Ctx) error {
	var req dto.SaveNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	contentID := utils.CopyString(c.Params("contentID"))
	if errs := h.validator.ValidateNote(contentID, &req); len(errs) > 0 {
		return errs
	}
	note, err := h.service.SaveNote(c.UserContext(), middleware.SessionID(c), contentID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(newNoteResponse(note))
}

// ListBookmarks godoc
// @Summary List bookmarks
// @Description Returns bookmarked items with the course position to deep link into
// @Tags learner
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.BookmarkResponse
// @Router /bookmarks [get]
func (h *LearnerHandler) ListBookmarks(c *fiber.Ctx) error {
	details, err := h.service.Bookmarks(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	resp := make([]dto.BookmarkResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, dto.BookmarkResponse{
			ContentID:    d.Bookmark.ContentID,
			ContentTitle: d.Bookmark.ContentTitle,
			ContentType:  string(d.Location.Item.Kind()),
			CourseID:     d.Location.Course.ID,
			CourseTitle:  d.Location.Course.Title,
			ModuleTitle:  d.Location.Module.Title,
			ContentIndex: d.Location.Index,
		})
	}
	return c.JSON(resp)
}

// ToggleBookmark godoc
// @Summary Toggle a bookmark
// @Description Bookmarks the item, or removes its bookmark
// @Tags learner
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ToggleBookmarkRequest true "Content to toggle"
// @Success 200 {object} dto.ToggleBookmarkResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /bookmarks/toggle [post]
func (h *LearnerHandler) ToggleBookmark(c *fiber.Ctx) error {
	var req dto.ToggleBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateIdentifier("content_id", req.ContentID); len(errs) > 0 {
		return errs
	}
	on, err := h.service.ToggleBookmark(c.UserContext(), middleware.SessionID(c), req.ContentID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToggleBookmarkResponse{ContentID: req.ContentID, Bookmarked: on})
}

// Progress godoc
// @Summary Course progress
// @Description Returns the completion of every catalog course
// @Tags learner
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.CourseProgressResponse
// @Router /progress [get]
func (h *LearnerHandler) Progress(c *fiber.Ctx) error {
	progress, err := h.service.Progress(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	resp := make([]dto.CourseProgressResponse, 0, len(progress))
	for _, p := range progress {
		resp = append(resp, dto.CourseProgressResponse{
			CourseID:    p.CourseID,
			CourseTitle: p.CourseTitle,
			Completed:   p.Completed,
			Total:       p.Total,
			Percent:     p.Percent,
		})
	}
	return c.JSON(resp)
}

func newNoteResponse(n domain.Note) dto.NoteResponse {
	return dto.NoteResponse{ContentID: n.ContentID, ContentTitle: n.ContentTitle, Text: n.Text}
}
