// Package catalog holds the read-only course catalog and the derived
// navigable sequence of a course.
package catalog

import (
	"context"
	"fmt"

	"classroom-player/internal/domain"
	"classroom-player/internal/logger"

	"go.uber.org/zap"
)

// Location resolves a content id back to its place in the catalog.
type Location struct {
	Course *domain.Course
	Module *domain.Module
	Item   domain.ContentItem
	// Index is the position of Item in the flattened sequence of Course.
	Index int
}

// Catalog is immutable after construction and safe for concurrent reads.
type Catalog struct {
	courses   []*domain.Course
	byID      map[string]*domain.Course
	locations map[string]Location
}

// New indexes courses. Content ids must be unique across the whole catalog,
// course ids across courses.
func New(courses []*domain.Course) (*Catalog, error) {
	c := &Catalog{
		courses:   courses,
		byID:      make(map[string]*domain.Course, len(courses)),
		locations: make(map[string]Location),
	}

	for i, course := range courses {
		if course == nil {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("course at position %d is missing", i), nil)
		}
		if err := course.Validate(); err != nil {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("invalid course %q", course.ID), err)
		}
		if _, dup := c.byID[course.ID]; dup {
			return nil, domain.NewInvalidCatalogError(fmt.Sprintf("duplicate course id %q", course.ID), nil)
		}
		c.byID[course.ID] = course

		index := 0
		for _, module := range course.Modules {
			for _, item := range module.Content {
				if prev, dup := c.locations[item.ContentID()]; dup {
					return nil, domain.NewInvalidCatalogError(
						fmt.Sprintf("duplicate content id %q in courses %q and %q", item.ContentID(), prev.Course.ID, course.ID), nil)
				}
				c.locations[item.ContentID()] = Location{Course: course, Module: module, Item: item, Index: index}
				index++
			}
		}
	}
	return c, nil
}

// Load builds a catalog from src.
func Load(ctx context.Context, src domain.CourseSource) (*Catalog, error) {
	courses, err := src.LoadCourses(ctx)
	if err != nil {
		return nil, err
	}
	c, err := New(courses)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Catalog loaded",
		zap.Int("courses", len(c.courses)),
		zap.Int("content_items", len(c.locations)),
	)
	return c, nil
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []*domain.Course {
	return c.courses
}

// Course returns a course by id.
func (c *Catalog) Course(id string) (*domain.Course, error) {
	course, ok := c.byID[id]
	if !ok {
		return nil, domain.NewCourseNotFoundError(id)
	}
	return course, nil
}

// Locate finds the course, module and sequence index of a content item.
func (c *Catalog) Locate(contentID string) (Location, bool) {
	loc, ok := c.locations[contentID]
	return loc, ok
}
