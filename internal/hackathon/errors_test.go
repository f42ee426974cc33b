package hackathon

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := NewChannelUnavailableError("student-2", "package")
	assert.Equal(t, "CHANNEL_UNAVAILABLE: package queue is closed (worker=student-2)", err.Error())

	cause := errors.New("open products.txt: no such file")
	err = NewDataSourceError("cannot load products", cause)
	assert.Equal(t, "DATA_SOURCE_ERROR: cannot load products: open products.txt: no such file", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("run abc: %w", NewConfigurationError("bad %s", "count"))

	assert.True(t, IsConfigurationError(wrapped))
	assert.False(t, IsDataSourceError(wrapped))
	assert.False(t, IsChannelUnavailable(wrapped))
	assert.False(t, IsConfigurationError(errors.New("plain")))
}
