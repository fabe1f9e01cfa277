package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeader_DevModeShowsShortCommit(t *testing.T) {
	SetVersionInfo(VersionInfo{
		Commit:    "0123456789abcdef",
		Date:      "2026-01-02",
		GoVersion: "go1.25",
		Tagline:   "tagline",
		Version:   "v1.2.3",
	})
	t.Cleanup(func() { SetVersionInfo(DefaultVersionInfo) })

	header := renderHeader(true, "Import Sound")

	assert.Contains(t, header, "v1.2.3 | 0123456 | 2026-01-02 | go1.25")
	assert.NotContains(t, header, "0123456789")
	assert.Contains(t, header, "Import Sound")
}

func TestRenderHeader_HidesVersionOutsideDevMode(t *testing.T) {
	header := renderHeader(false, "")

	assert.Contains(t, header, "barksound")
	assert.NotContains(t, header, DefaultVersionInfo.Version+" |")
}
