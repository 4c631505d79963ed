package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelMapConfig_DefaultsNullClass(t *testing.T) {
	cfg := NewLabelMapConfig(nil, "", false)
	assert.Equal(t, "bckg", cfg.NullClass)
}

func TestNewEpochConfig_DefaultsEpochDuration(t *testing.T) {
	cfg := NewEpochConfig(0)
	assert.Equal(t, DefaultEpochDuration, cfg.EpochDuration)
}

func TestNewOverlapConfig_DefaultsGuardWidth(t *testing.T) {
	cfg := NewOverlapConfig(0)
	assert.Equal(t, 0.001, cfg.GuardWidth)
}

func TestNewToleranceConfig_DefaultsAbsTol(t *testing.T) {
	cfg := NewToleranceConfig(0)
	assert.Equal(t, 1e-10, cfg.AbsTol)
}

func TestDefaultConfig_FieldEquivalence(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		LabelMap:  NewLabelMapConfig(map[string]string{"seiz": "seiz", "bckg": "bckg"}, "bckg", false),
		Epoch:     NewEpochConfig(0),
		DP:        DefaultDPConfig(),
		Overlap:   NewOverlapConfig(0),
		Tolerance: NewToleranceConfig(0),
	}
	assert.Equal(t, want, got)
}

func TestLoadConfig_AppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("null_class: bckg\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultEpochDuration, cfg.Epoch.EpochDuration)
	assert.Equal(t, DefaultDPConfig(), cfg.DP)
}

func TestLoadConfig_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not_a_real_field: 1\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_OverridesEpochDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epoch_duration: 1.0\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Epoch.EpochDuration)
}
