package util

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	a, b := NewULID(), NewULID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
	assert.True(t, IsValidULID(a))
	assert.False(t, IsValidULID("not-a-ulid"))
	assert.False(t, IsValidULID(""))
}

func TestNullStrings(t *testing.T) {
	assert.Equal(t, sql.NullString{}, StringToNullString(""))
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, StringToNullString("x"))
	assert.Equal(t, "", NullStringToString(sql.NullString{}))
	assert.Equal(t, "x", NullStringToString(sql.NullString{String: "x", Valid: true}))
}
