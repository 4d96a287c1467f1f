package corblog_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/corblivar3d/corblivar/corblog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := corblog.New(corblog.Options{Level: corblog.LevelInfo, Format: corblog.FormatJSON, Output: &buf})

	l.Info("evaluated layout", "cost", 12.5, "fits", true)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "evaluated layout", decoded["message"])
	assert.Equal(t, 12.5, decoded["cost"])
	assert.Equal(t, true, decoded["fits"])
}

func TestLogger_DebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := corblog.New(corblog.Options{Level: corblog.LevelInfo, Format: corblog.FormatJSON, Output: &buf})

	l.Debug("should not appear")
	assert.Empty(t, buf.String())
}

func TestLogger_WithStepAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	l := corblog.New(corblog.Options{Level: corblog.LevelInfo, Format: corblog.FormatJSON, Output: &buf})

	l.WithStep(3, "PHASE_2", 12.75).Info("step complete")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(3), decoded["step"])
	assert.Equal(t, "PHASE_2", decoded["phase"])
	assert.Equal(t, 12.75, decoded["temp"])
}
