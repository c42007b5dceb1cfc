package engine

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyph-rain/constants"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultSpeed, cfg.Speed)
	assert.Equal(t, constants.DefaultDensity, cfg.Density)
	assert.Equal(t, constants.DefaultFPS, cfg.FPS)
	assert.False(t, cfg.Bold)
	assert.False(t, cfg.NoFade)
}

func TestParseConfigAllFlags(t *testing.T) {
	cfg, err := ParseConfig(
		[]string{"--speed", "1.8", "--density", "0.4", "--bold", "--no-fade", "--fps", "30"},
		io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1.8, cfg.Speed)
	assert.Equal(t, 0.4, cfg.Density)
	assert.True(t, cfg.Bold)
	assert.True(t, cfg.NoFade)
	assert.Equal(t, 30, cfg.FPS)
}

func TestParseConfigClampsFPS(t *testing.T) {
	cfg, err := ParseConfig([]string{"--fps", "5"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, constants.MinFPS, cfg.FPS)

	cfg, err = ParseConfig([]string{"--fps", "9999"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, constants.MaxFPS, cfg.FPS)
}

func TestParseConfigClampsDensity(t *testing.T) {
	cfg, err := ParseConfig([]string{"--density=-0.5"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.Density)

	cfg, err = ParseConfig([]string{"--density", "1.5"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Density)
}

func TestParseConfigHelp(t *testing.T) {
	var out strings.Builder
	_, err := ParseConfig([]string{"--help"}, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "glyph-rain")
}

func TestParseConfigUnknownFlag(t *testing.T) {
	var out strings.Builder
	_, err := ParseConfig([]string{"--frobnicate"}, &out)
	require.Error(t, err)
	assert.False(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "Usage")
}

func TestParseConfigBadValue(t *testing.T) {
	_, err := ParseConfig([]string{"--fps", "fast"}, io.Discard)
	require.Error(t, err)
	assert.False(t, errors.Is(err, flag.ErrHelp))
}

func TestFrameInterval(t *testing.T) {
	cfg := Config{FPS: 60}
	assert.Equal(t, time.Second/60, cfg.FrameInterval())

	// The pacing lower bound: 100 frames at 10 fps span at least 10 seconds
	cfg = Config{FPS: 10}
	assert.Equal(t, 100*time.Millisecond, cfg.FrameInterval())
	assert.GreaterOrEqual(t, 100*cfg.FrameInterval(), 10*time.Second)
}
