package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	assert.Empty(t, formatErrorForDisplay(nil, 40))
	assert.Equal(t, "Error: disk full", formatErrorForDisplay(errors.New("disk full"), 40))
}

func TestFormatErrorForDisplay_TruncatesLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 60))

	out := formatErrorForDisplay(err, 30)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(lines[1], truncationMark))
}
