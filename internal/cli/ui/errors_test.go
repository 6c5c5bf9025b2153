package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	out := FormatError(ErrorOptions{
		Context:      "class not found",
		Problem:      "Cannot find class 'Ordr'.",
		Suggestions:  []string{"Order", "RushOrder"},
		HelpCommands: []string{"See all classes: apihelp classes"},
		NoColor:      true,
	})

	assert.Contains(t, out, "❌ CLASS NOT FOUND: Cannot find class 'Ordr'.")
	assert.Contains(t, out, "Did you mean: Order, RushOrder?")
	assert.Contains(t, out, "→ See all classes: apihelp classes")
}

func TestFormatErrorWithoutContext(t *testing.T) {
	out := FormatError(ErrorOptions{Problem: "boom", NoColor: true})

	assert.Equal(t, "❌ boom\n", out)
	assert.NotContains(t, out, "Did you mean")
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	WriteError(&buf, ErrorOptions{Problem: "boom", NoColor: true})
	assert.Equal(t, "❌ boom\n", buf.String())
}

func TestClassNotFoundError(t *testing.T) {
	out := ClassNotFoundError("Usr", []string{"User"}, true)

	assert.Contains(t, out, "Cannot find class 'Usr'.")
	assert.Contains(t, out, "Did you mean: User?")
	assert.Contains(t, out, "apihelp classes")
}
