package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	err := Newf(NotFound, "option not found: %q", "x")
	assert.Equal(t, NotFound, CodeOf(err))
	assert.Contains(t, err.Error(), `"x"`)

	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(Unavailable, "dispatch failed", cause)

	require.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, Unavailable))
	assert.False(t, HasCode(err, NotFound))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(FailedPrecondition, "no element is focused")
	outer := fmt.Errorf("keyboard: %w", inner)
	assert.True(t, HasCode(outer, FailedPrecondition))
}
