package catalog

import "classroom-player/internal/domain"

// Flatten returns the navigable sequence of a course: each module's content
// in module order, then item order. A course without modules yields an empty
// sequence.
func Flatten(course *domain.Course) []domain.ContentItem {
	if course == nil {
		return nil
	}
	seq := make([]domain.ContentItem, 0, course.ItemCount())
	for _, m := range course.Modules {
		seq = append(seq, m.Content...)
	}
	return seq
}

// IndexOf returns the first index of contentID in seq.
func IndexOf(seq []domain.ContentItem, contentID string) (int, bool) {
	for i, item := range seq {
		if item.ContentID() == contentID {
			return i, true
		}
	}
	return -1, false
}
