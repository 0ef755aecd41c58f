package figure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfigTOML(t *testing.T) {
	data := []byte(`
linear_plotpoints = 50
curvature_plotpoints = 20
strict = true

[default_box_size]
width = 1.5
height = 0.25
`)
	conf, err := ParseConfig(data, "toml")
	require.NoError(t, err)
	assert.Equal(t, 50, conf.LinearPlotPoints)
	assert.Equal(t, 20, conf.CurvaturePlotPoints)
	assert.True(t, conf.Strict)
	assert.Equal(t, Sz(1.5, 0.25), conf.DefaultBoxSize)
	// untouched settings keep their defaults
	assert.Equal(t, DefaultConfig().MaxDichotomyIterations, conf.MaxDichotomyIterations)
	assert.Equal(t, DefaultConfig().AxesMargin, conf.AxesMargin)
}

func TestParseConfigYAML(t *testing.T) {
	data := []byte(`
arclength_plotpoints: 10
axes_margin: 0.25
default_box_size:
  width: 2
  height: 1
`)
	conf, err := ParseConfig(data, "yml")
	require.NoError(t, err)
	assert.Equal(t, 10, conf.ArcLengthPlotPoints)
	assert.Equal(t, 0.25, conf.AxesMargin)
	assert.Equal(t, Sz(2, 1), conf.DefaultBoxSize)
	assert.Equal(t, DefaultConfig().LinearPlotPoints, conf.LinearPlotPoints)
}

func TestParseConfigEmptyYAML(t *testing.T) {
	conf, err := ParseConfig(nil, "yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), conf)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig([]byte("linear_plot_points = 3\n"), "toml")
	assert.Error(t, err, "unknown TOML key")

	_, err = ParseConfig([]byte("linearplotpoints: 3\n"), "yaml")
	assert.Error(t, err, "unknown YAML key")

	_, err = ParseConfig([]byte("linear_plotpoints = 1\n"), "toml")
	assert.ErrorContains(t, err, "linear_plotpoints")

	_, err = ParseConfig([]byte("max_dichotomy_iterations: 0\n"), "yaml")
	assert.ErrorContains(t, err, "max_dichotomy_iterations")

	_, err = ParseConfig(nil, "json")
	assert.ErrorContains(t, err, "unsupported")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figure.toml")
	require.NoError(t, os.WriteFile(path, []byte("precision = 2\n"), 0o644))
	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Precision)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigSamplingOptions(t *testing.T) {
	conf := DefaultConfig()
	conf.CurvaturePlotPoints = 7
	opts := conf.SamplingOptions()
	assert.Equal(t, SamplingOptions{LinearPlotPoints: conf.LinearPlotPoints, CurvaturePlotPoints: 7}, opts)

	d := conf.Dichotomy()
	assert.Equal(t, conf.MaxDichotomyIterations, d.MaxIterations)
	assert.Equal(t, conf.IntegrationPoints, d.Nodes)
}
