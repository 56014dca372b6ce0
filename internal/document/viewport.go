// Package document holds the page and zoom state of a paged document viewer.
package document

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	ZoomStep    = 0.25
	DefaultZoom = 1.5
)

// Status of the document behind a viewport.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Viewport is the per-item view state. Page is 1-based and only meaningful
// once the document has reported its page count.
type Viewport struct {
	Page      int     `json:"page"`
	PageCount int     `json:"page_count"`
	Zoom      float64 `json:"zoom"`
	Status    Status  `json:"status"`
	Error     string  `json:"error,omitempty"`
}

// NewViewport returns a viewport waiting for its document.
func NewViewport() *Viewport {
	return &Viewport{Page: 1, Zoom: DefaultZoom, Status: StatusLoading}
}

// Loaded records a successful load. A non-positive page count is a failure.
func (v *Viewport) Loaded(pageCount int) {
	if pageCount < 1 {
		v.Failed("document has no pages")
		return
	}
	v.PageCount = pageCount
	v.Status = StatusReady
	v.Error = ""
	v.Page = clampPage(v.Page, pageCount)
}

// Failed puts the viewport into its inline error state.
func (v *Viewport) Failed(reason string) {
	v.Status = StatusFailed
	v.Error = reason
	v.PageCount = 0
	v.Page = 1
}

func (v *Viewport) Ready() bool { return v.Status == StatusReady }

func (v *Viewport) Next() { v.GoTo(v.Page + 1) }

func (v *Viewport) Prev() { v.GoTo(v.Page - 1) }

// GoTo moves to page, clamped to the document. Ignored until the document is ready.
func (v *Viewport) GoTo(page int) {
	if !v.Ready() {
		return
	}
	v.Page = clampPage(page, v.PageCount)
}

func (v *Viewport) ZoomIn() { v.setZoom(v.Zoom + ZoomStep) }

func (v *Viewport) ZoomOut() { v.setZoom(v.Zoom - ZoomStep) }

// Reset restores the default zoom.
func (v *Viewport) Reset() { v.Zoom = DefaultZoom }

func (v *Viewport) setZoom(z float64) {
	// keep the value on the step grid
	z = math.Round(z/ZoomStep) * ZoomStep
	v.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

func clampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

// Action names a viewer command sent by the client.
type Action string

const (
	ActionLoaded  Action = "loaded"
	ActionFailed  Action = "failed"
	ActionNext    Action = "next"
	ActionPrev    Action = "prev"
	ActionPage    Action = "page"
	ActionZoomIn  Action = "zoom_in"
	ActionZoomOut Action = "zoom_out"
	ActionReset   Action = "reset"
)

// Command is one viewer event. Page is read by ActionPage, PageCount by
// ActionLoaded and Reason by ActionFailed.
type Command struct {
	Action    Action
	Page      int
	PageCount int
	Reason    string
}

// ErrUnknownAction is returned by Apply for an unrecognized action.
var ErrUnknownAction = errors.New("unknown document action")

// Apply dispatches cmd to the matching viewport operation.
func (v *Viewport) Apply(cmd Command) error {
	switch cmd.Action {
	case ActionLoaded:
		v.Loaded(cmd.PageCount)
	case ActionFailed:
		v.Failed(cmd.Reason)
	case ActionNext:
		v.Next()
	case ActionPrev:
		v.Prev()
	case ActionPage:
		v.GoTo(cmd.Page)
	case ActionZoomIn:
		v.ZoomIn()
	case ActionZoomOut:
		v.ZoomOut()
	case ActionReset:
		v.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return nil
}
