package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadless(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-headless", "-width", "5", "-height", "5", "-obstacles", "0"}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, byte('S'), lines[0][0])
	assert.Equal(t, byte('E'), lines[4][4])
	assert.Regexp(t, `^engine=astar movement=only-straight found=true steps=8 cost=8\.000 expanded=\d+$`, lines[5])
}

func TestRunHeadlessDiagonalJPS(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-headless", "-width", "4", "-height", "4", "-obstacles", "0", "-engine", "jps", "-diagonal"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "engine=jps movement=can-diagonal found=true steps=3 cost=4.243")
}

func TestRunGenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-gen-config", path, "-width", "12", "-engine", "jps"}, &out))
	assert.Contains(t, out.String(), path)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, "jps", cfg.Engine)
	assert.Equal(t, Cell{X: 11, Y: 29}, cfg.Goal)
}

func TestRunConfigWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Obstacles = 3, 3, 0
	cfg.Goal = Cell{X: 2, Y: 0}
	require.NoError(t, WriteConfig(path, cfg))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-headless", "-config", path, "-engine", "dijkstra"}, &out))
	assert.Contains(t, out.String(), "engine=dijkstra movement=only-straight found=true steps=2 cost=2.000")
}

func TestRunRejectsBadInput(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run([]string{"-headless", "-engine", "bfs"}, &out), errBadConfig)
	assert.Error(t, run([]string{"-no-such-flag"}, &out))
}
