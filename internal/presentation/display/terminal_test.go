package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/penwyp/go-utc-face/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalDisplay_RenderClearsOnlyWhenNeeded(t *testing.T) {
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf)

	require.NoError(t, td.Render([]string{"a", "b"}))
	first := buf.String()
	assert.True(t, strings.HasPrefix(first, util.ClearScreen+util.MoveCursorHome))
	assert.Contains(t, first, "a"+util.ClearLineFromCursor+"\r\nb"+util.ClearLineFromCursor)

	buf.Reset()
	require.NoError(t, td.Render([]string{"c", "d"}))
	assert.False(t, strings.Contains(buf.String(), util.ClearScreen))
	assert.True(t, strings.HasPrefix(buf.String(), util.MoveCursorHome))

	buf.Reset()
	require.NoError(t, td.Render([]string{"e"}))
	assert.True(t, strings.HasPrefix(buf.String(), util.ClearScreen), "row count change clears")

	buf.Reset()
	td.ClearScreen()
	require.NoError(t, td.Render([]string{"e"}))
	assert.True(t, strings.HasPrefix(buf.String(), util.ClearScreen))
}

func TestTerminalDisplay_AlternateScreenIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf)

	td.EnterAlternateScreen()
	td.EnterAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), util.EnterAltScreen))

	td.ExitAlternateScreen()
	td.ExitAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), util.ExitAltScreen))
	assert.True(t, strings.HasSuffix(buf.String(), util.ExitAltScreen))
}
