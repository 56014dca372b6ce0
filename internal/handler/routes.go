package handler

import (
	"classroom-player/internal/middleware"
	"classroom-player/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Catalog   *CatalogHandler
	Session   *SessionHandler
	Classroom *ClassroomHandler
	Learner   *LearnerHandler
}

// RegisterRoutes mounts the API under /api. Everything except the catalog
// reads and session creation requires a session token.
func RegisterRoutes(app *fiber.App, h Handlers, tokens service.TokenService) {
	vm := middleware.NewValidationMiddleware()
	auth := middleware.SessionAuth(tokens)

	api := app.Group("/api")

	// Catalog routes
	api.Get("/courses", h.Catalog.ListCourses)
	api.Get("/courses/:courseID", vm.ValidateIDParam("courseID", "course_id"), h.Catalog.GetCourse)

	// Session routes
	api.Post("/sessions", h.Session.CreateSession)
	api.Get("/sessions/me/notice", auth, h.Session.ConsumeNotice)

	// Classroom routes
	room := api.Group("/classroom", auth)
	room.Post("/", h.Classroom.Open)
	room.Get("/", h.Classroom.Current)
	room.Post("/advance", h.Classroom.Advance)
	room.Post("/retreat", h.Classroom.Retreat)
	room.Post("/exit", h.Classroom.Exit)
	room.Post("/jump", h.Classroom.Jump)
	room.Post("/pending/confirm", h.Classroom.Confirm)
	room.Post("/pending/cancel", h.Classroom.Cancel)
	room.Post("/quiz/answers", h.Classroom.Answer)
	room.Post("/quiz/retry", h.Classroom.Retry)
	room.Post("/document", h.Classroom.Document)

	// Learner routes
	api.Get("/notes", auth, h.Learner.ListNotes)
	api.Get("/notes/:contentID", auth, vm.ValidateIDParam("contentID", "content_id"), h.Learner.GetNote)
	api.Put("/notes/:contentID", auth, h.Learner.SaveNote)
	api.Get("/bookmarks", auth, h.Learner.ListBookmarks)
	api.Post("/bookmarks/toggle", auth, h.Learner.ToggleBookmark)
	api.Get("/progress", auth, h.Learner.Progress)
}
