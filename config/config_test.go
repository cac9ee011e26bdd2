package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adammck/footwork"
	"github.com/adammck/footwork/report"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := Flags("footwork")
	require.NoError(t, fs.Parse(args))
	return Load(fs)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := load(t, "-l", "1.5", "--fbdist=0.75", "-s", "Right")
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.LRDist)
	assert.Equal(t, 0.75, cfg.FBDist)
	assert.Equal(t, footwork.Right, cfg.Side)
	assert.Equal(t, report.Text, cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FormatAndVerbose(t *testing.T) {
	cfg, err := load(t, "-l", "1", "-f", "1", "-s", "left", "-o", "yaml", "-v")
	require.NoError(t, err)

	assert.Equal(t, footwork.Left, cfg.Side)
	assert.Equal(t, report.YAML, cfg.Format)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Missing(t *testing.T) {
	_, err := load(t, "-l", "1", "-s", "left")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissing)
	assert.EqualError(t, err, "missing required argument: --fbdist (-f)")

	_, err = load(t, "-l", "1", "-f", "1")
	assert.EqualError(t, err, "missing required argument: --side (-s)")
}

func TestLoad_InvalidDistance(t *testing.T) {
	_, err := load(t, "-l", "0", "-f", "1", "-s", "left")
	require.Error(t, err)
	assert.ErrorIs(t, err, footwork.ErrInvalidDistance)
	assert.EqualError(t, err, "the value of the lrdist(-l) argument must be greater than 0 (got 0)")

	_, err = load(t, "-l", "1", "-f", "-2", "-s", "left")
	assert.ErrorIs(t, err, footwork.ErrInvalidDistance)
	assert.Contains(t, err.Error(), "fbdist(-f)")
}

func TestLoad_InvalidSide(t *testing.T) {
	_, err := load(t, "-l", "1", "-f", "1", "-s", "up")
	assert.ErrorIs(t, err, footwork.ErrInvalidLegValue)
	assert.Contains(t, err.Error(), "--side (-s)")
}

func TestLoad_InvalidFormat(t *testing.T) {
	_, err := load(t, "-l", "1", "-f", "1", "-s", "left", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format (-o)")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FOOTWORK_LRDIST", "2")
	t.Setenv("FOOTWORK_FBDIST", "3")
	t.Setenv("FOOTWORK_SIDE", "left")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.LRDist)
	assert.Equal(t, 3.0, cfg.FBDist)
	assert.Equal(t, footwork.Left, cfg.Side)

	// Flags win over the environment.
	cfg, err = load(t, "-l", "4")
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.LRDist)
	assert.Equal(t, 3.0, cfg.FBDist)
}

func TestLoad_EnvNotANumber(t *testing.T) {
	t.Setenv("FOOTWORK_LRDIST", "wide")

	_, err := load(t, "-f", "1", "-s", "left")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value for --lrdist (-l)")
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stance.yaml")
	cfg := "lrdist: 0.4\nfbdist: 0.9\nside: RIGHT\nformat: yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	c, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, c.LRDist)
	assert.Equal(t, 0.9, c.FBDist)
	assert.Equal(t, footwork.Right, c.Side)
	assert.Equal(t, report.YAML, c.Format)

	// Flags win over the file.
	c, err = load(t, "-c", path, "-s", "left", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, footwork.Left, c.Side)
	assert.Equal(t, report.Text, c.Format)
}

func TestLoad_ConfigFileWrongSideType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stance.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"lrdist": 1, "fbdist": 1, "side": 7}`), 0644))

	_, err := load(t, "-c", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, footwork.ErrInvalidLegType)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(t, "-c", "/nonexistent/stance.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("lrdist", 1)
	v.Set("fbdist", "2.5")
	v.Set("side", footwork.Left)

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, &Config{LRDist: 1, FBDist: 2.5, Side: footwork.Left, Format: report.Text}, cfg)
}
