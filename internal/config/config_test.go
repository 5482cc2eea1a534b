package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultRunnerConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultRunnerConfig().Validate())
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg RunnerConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadRunner("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestLoadRunnerCustomPathOverridesKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "progression:\n  initial_speed: 8\n")

	cfg, source, err := LoadRunner(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 8.0, cfg.Progression.InitialSpeed)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.001, cfg.Progression.SpeedIncrement)
	assert.Equal(t, []float64{200, 400, 600}, cfg.Lanes.Positions)
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, _, err := LoadRunner(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "canvas: [not, a, map\n")
	_, _, err = LoadRunner(bad)
	assert.ErrorContains(t, err, "failed to parse")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "lanes:\n  positions: [100, 200]\n")
	_, _, err = LoadRunner(invalid)
	assert.ErrorContains(t, err, "exactly 3 lane positions")
}

func TestLoadRunnerSearchOrder(t *testing.T) {
	home, work := isolate(t)
	local := filepath.Join(work, "configs", RunnerFile)
	user := filepath.Join(home, ".lanerun", "configs", RunnerFile)

	writeFile(t, local, "animation:\n  run_cycle_ms: 50\n")
	cfg, source, err := LoadRunner("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", RunnerFile), source)
	assert.Equal(t, 50.0, cfg.Animation.RunCycleMS)

	writeFile(t, user, "animation:\n  run_cycle_ms: 75\n")
	cfg, source, err = LoadRunner("")
	require.NoError(t, err)
	assert.Equal(t, user, source)
	assert.Equal(t, 75.0, cfg.Animation.RunCycleMS)
}

func TestLoadRunnerSkipsBrokenSearchFiles(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".lanerun", "configs", RunnerFile), "canvas: [broken\n")

	_, source, err := LoadRunner("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"background", func(c *RunnerConfig) { c.Canvas.Background = "purple" }, "background"},
		{"two lanes", func(c *RunnerConfig) { c.Lanes.Positions = []float64{1, 2} }, "exactly 3 lane positions"},
		{"unordered lanes", func(c *RunnerConfig) { c.Lanes.Positions = []float64{400, 200, 600} }, "must increase"},
		{"start lane", func(c *RunnerConfig) { c.Player.StartLane = 3 }, "start_lane"},
		{"lane change", func(c *RunnerConfig) { c.Player.LaneChangeMS = 0 }, "lane_change_ms"},
		{"spawn interval", func(c *RunnerConfig) { c.Obstacles.SpawnIntervalMS = -1 }, "spawn_interval_ms"},
		{"increment", func(c *RunnerConfig) { c.Progression.SpeedIncrement = 0 }, "speed_increment"},
		{"scales", func(c *RunnerConfig) { c.Perspective.MinScale = 2 }, "min_scale"},
		{"horizon", func(c *RunnerConfig) { c.Perspective.HorizonY = 600 }, "horizon_y"},
		{"run cycle", func(c *RunnerConfig) { c.Animation.RunCycleMS = 0 }, "run_cycle_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	isolate(t)
	data, err := DefaultRunnerConfig().Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))
	cfg, _, err := LoadRunner(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRunnerConfig(), cfg)
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		p, err := ParseDifficultyPreset(s)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(s), p)
	}

	_, err := ParseDifficultyPreset("nightmare")
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, base.Progression, normal.Progression)

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	assert.Less(t, easy.Progression.InitialSpeed, base.Progression.InitialSpeed)
	assert.Less(t, easy.Progression.SpeedIncrement, base.Progression.SpeedIncrement)

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	assert.Greater(t, hard.Progression.InitialSpeed, base.Progression.InitialSpeed)
	assert.Greater(t, hard.Progression.SpeedIncrement, base.Progression.SpeedIncrement)
	assert.NoError(t, hard.Validate())
}
