package validation

import (
	"regexp"
	"strings"

	"classroom-player/internal/document"
	"classroom-player/internal/domain"
	"classroom-player/internal/dto"
)

const (
	maxNoteLength   = 10000
	maxOptionLength = 1000
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateIdentifier checks a course or content id.
func (v *Validator) ValidateIdentifier(field, value string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(value) == "" {
		errs = append(errs, domain.NewMissingFieldError(field))
	} else if !identifierPattern.MatchString(value) {
		errs = append(errs, domain.NewInvalidFormatError(field, value))
	}
	return errs
}

// ValidateOpenClassroom checks the course id. The content index is not
// checked; an unusable deep link falls back to the first item.
func (v *Validator) ValidateOpenClassroom(req *dto.OpenClassroomRequest) domain.ValidationErrors {
	return v.ValidateIdentifier("course_id", req.CourseID)
}

func (v *Validator) ValidateJump(req *dto.JumpRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if req.Index == nil {
		errs = append(errs, domain.NewMissingFieldError("index"))
	}
	return errs
}

func (v *Validator) ValidateAnswer(req *dto.AnswerRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if req.QuestionIndex == nil {
		errs = append(errs, domain.NewMissingFieldError("question_index"))
	}
	if req.Option == "" {
		errs = append(errs, domain.NewMissingFieldError("option"))
	} else if len(req.Option) > maxOptionLength {
		errs = append(errs, domain.NewOutOfRangeError("option", len(req.Option), 1, maxOptionLength))
	}
	return errs
}

func (v *Validator) ValidateDocument(req *dto.DocumentRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	switch document.Action(req.Action) {
	case "":
		errs = append(errs, domain.NewMissingFieldError("action"))
	case document.ActionLoaded, document.ActionFailed, document.ActionNext, document.ActionPrev,
		document.ActionPage, document.ActionZoomIn, document.ActionZoomOut, document.ActionReset:
	default:
		errs = append(errs, domain.NewInvalidFormatError("action", req.Action))
	}
	return errs
}

func (v *Validator) ValidateNote(contentID string, req *dto.SaveNoteRequest) domain.ValidationErrors {
	errs := v.ValidateIdentifier("content_id", contentID)
	if len(req.Text) > maxNoteLength {
		errs = append(errs, domain.NewOutOfRangeError("text", len(req.Text), 0, maxNoteLength))
	}
	return errs
}
