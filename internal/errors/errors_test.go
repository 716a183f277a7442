package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	wrapped := Wrap(errB, "reading source")

	assert.True(t, IsAny(wrapped, errA, errB))
	assert.False(t, IsAny(wrapped, errA))
	assert.False(t, IsAny(wrapped))
	assert.False(t, IsAny(nil, errA))
}
