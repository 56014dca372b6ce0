package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringSlice stores a string list as a JSON array in a CLOB column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Course represents the database model for a course
type Course struct {
	ID          string         `db:"ID"`
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	ImageURL    sql.NullString `db:"IMAGE_URL"`
	Position    int            `db:"POSITION"`
}

// Module represents the database model for a course module
type Module struct {
	ID       string `db:"ID"`
	CourseID string `db:"COURSE_ID"`
	Title    string `db:"TITLE"`
	Position int    `db:"POSITION"`
}

// ContentItem represents the database model for a content item of any kind
type ContentItem struct {
	ID          string         `db:"ID"`
	CourseID    string         `db:"COURSE_ID"`
	ModuleID    string         `db:"MODULE_ID"`
	Position    int            `db:"POSITION"`
	ContentType string         `db:"CONTENT_TYPE"`
	Title       string         `db:"TITLE"`
	URL         sql.NullString `db:"URL"`
	Description sql.NullString `db:"DESCRIPTION"`
	Paragraphs  StringSlice    `db:"PARAGRAPHS"`
}

// QuizQuestion represents the database model for one question of a quiz item
type QuizQuestion struct {
	ContentID     string      `db:"CONTENT_ID"`
	Position      int         `db:"POSITION"`
	Question      string      `db:"QUESTION"`
	Options       StringSlice `db:"OPTIONS"`
	CorrectAnswer string      `db:"CORRECT_ANSWER"`
	QuestionType  string      `db:"QUESTION_TYPE"`
}
