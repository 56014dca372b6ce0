package catalog

import (
	"context"
	"embed"
	"fmt"
	"os"

	"classroom-player/internal/domain"
)

//go:embed data/courses.yaml
var embeddedData embed.FS

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// LoadCourses implements domain.CourseSource.
func (EmbeddedSource) LoadCourses(_ context.Context) ([]*domain.Course, error) {
	data, err := embeddedData.ReadFile("data/courses.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return DecodeYAML(data)
}

// FileSource reads a YAML catalog from disk.
type FileSource struct {
	Path string
}

// LoadCourses implements domain.CourseSource.
func (s FileSource) LoadCourses(_ context.Context) ([]*domain.Course, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.Path, err)
	}
	return DecodeYAML(data)
}
