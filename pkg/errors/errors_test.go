package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "video")
	assert.EqualError(t, err, "video: not found")
	assert.True(t, IsNotFound(err))

	assert.NoError(t, Wrap(nil, "nothing"))
}

func TestAs(t *testing.T) {
	err := Wrap(ErrInvalidInput, "draft")

	var e *Error
	assert.True(t, As(err, &e))
	assert.Equal(t, "draft", e.Message)
	assert.True(t, IsInvalidInput(err))
}
