package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestParseArena(t *testing.T) {
	cfg := config.DefaultPongConfig()

	arena, err := parseArena("800x600", cfg)
	require.NoError(t, err)
	assert.Equal(t, pong.Arena{Width: 800, Height: 600}, arena)

	arena, err = parseArena(" 1024X768 ", cfg)
	require.NoError(t, err)
	assert.Equal(t, pong.Arena{Width: 1024, Height: 768}, arena)

	for _, bad := range []string{"800", "x600", "800xabc", "0x600", "800x80"} {
		_, err := parseArena(bad, cfg)
		assert.Error(t, err, bad)
	}

	_, err = parseArena("800x80", cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseHold(t *testing.T) {
	up, err := parseHold("up")
	require.NoError(t, err)
	assert.True(t, up(0).Has(core.ActionUp))

	alt, err := parseHold("alternate")
	require.NoError(t, err)
	assert.True(t, alt(59).Has(core.ActionUp))
	assert.True(t, alt(60).Has(core.ActionDown))

	none, err := parseHold("")
	require.NoError(t, err)
	assert.False(t, none(0).Has(core.ActionUp))

	_, err = parseHold("sideways")
	assert.Error(t, err)
}

func TestSimulateOutput(t *testing.T) {
	hold, err := parseHold("up")
	require.NoError(t, err)

	var first, second bytes.Buffer
	simulate(&first, pong.NewWithConfig(config.DefaultPongConfig()), pong.Arena{Width: 800, Height: 600}, 300, 50, hold)
	simulate(&second, pong.NewWithConfig(config.DefaultPongConfig()), pong.Arena{Width: 800, Height: 600}, 300, 50, hold)

	out := first.String()
	assert.Equal(t, out, second.String(), "same inputs print the same trajectory and digest")
	assert.Contains(t, out, "paddle bound |y| < 255")
	assert.Contains(t, out, "Digest:")

	// Rows at ticks 50..300, the player paddle flat at 254 by the end
	lines := strings.Split(strings.TrimSpace(out), "\n")
	var last string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "300 ") {
			last = line
		}
	}
	require.NotEmpty(t, last)
	assert.Contains(t, last, "254.00")
}
