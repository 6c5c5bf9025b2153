package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/apihelp/runtime/apihelp"
)

func TestStyleLineNoColor(t *testing.T) {
	line := apihelp.Line{Kind: apihelp.LineSection, Text: "METHODS:"}
	assert.Equal(t, "METHODS:", StyleLine(line, true))
}

func TestStyleLineUnstyledKind(t *testing.T) {
	line := apihelp.Line{Kind: apihelp.LineBlank, Text: ""}
	assert.Equal(t, "", StyleLine(line, false))
}

func TestWriteHelp(t *testing.T) {
	lines := []apihelp.Line{
		{Kind: apihelp.LineTitle, Text: "API Reference for class User"},
		{Kind: apihelp.LineBlank},
		{Kind: apihelp.LineMethod, Text: "full_name(mock): Full name."},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHelp(&buf, lines, true))
	assert.Equal(t, "API Reference for class User\n\nfull_name(mock): Full name.\n", buf.String())
}
