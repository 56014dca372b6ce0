package handler

import (
	"classroom-player/internal/dto"
	"classroom-player/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only course catalog
type CatalogHandler struct {
	catalog service.CourseCatalog
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(catalog service.CourseCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCourses godoc
// @Summary List courses
// @Description Returns every course of the catalog with its item count
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CourseSummaryResponse
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	courses := h.catalog.Courses()
	resp := make([]dto.CourseSummaryResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.NewCourseSummaryResponse(course))
	}
	return c.JSON(resp)
}

// GetCourse godoc
// @Summary Get a course
// @Description Returns a course with its modules and content items
// @Tags catalog
// @Produce json
// @Param courseID path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /courses/{courseID} [get]
func (h *CatalogHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.catalog.Course(c.Params("courseID"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCourseResponse(course))
}
