package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_DisabledForNonTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := newProgressBar(buf, true)

	bar.Update(0, 10)
	bar.Update(10, 10)
	bar.Finish()

	assert.False(t, bar.enabled)
	assert.Empty(t, buf.String())
}

func TestProgressBar_DisabledBySetting(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := newProgressBar(buf, false)

	bar.Update(5, 10)
	bar.Finish()

	assert.Empty(t, buf.String())
}

func TestProgressBar_DrawsAndThrottles(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := newProgressBar(buf, false)
	bar.enabled = true

	bar.Update(0, 4)
	first := buf.String()
	assert.Contains(t, first, "\r")
	assert.Contains(t, first, "Searching")
	assert.Contains(t, first, "0%")

	bar.Update(1, 4)
	assert.Equal(t, first, buf.String(), "redraw inside the interval is skipped")

	bar.Update(4, 4)
	assert.Contains(t, buf.String(), "100%")

	bar.Finish()
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestProgressBar_FinishWithoutDrawing(t *testing.T) {
	buf := new(bytes.Buffer)
	bar := newProgressBar(buf, false)
	bar.enabled = true

	bar.Finish()

	assert.Empty(t, buf.String())
}
