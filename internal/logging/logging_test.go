package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WarnLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{})
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
	assert.Contains(t, buf.String(), `"component":"vitals"`)
}

func TestNew_DebugPretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{Debug: true, Pretty: true})
	log.Debug().Int("window", 40).Msg("stream started")
	out := buf.String()
	assert.Contains(t, out, "stream started")
	assert.Contains(t, out, "window=40")
	assert.NotContains(t, out, "{")
}

