package figure

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of figure construction. It is a plain value:
// pictures and curves keep the copy they were built with.
type Config struct {
	// LinearPlotPoints is the number of evenly spaced parameters sampled on
	// every curve.
	LinearPlotPoints int `toml:"linear_plotpoints" yaml:"linear_plotpoints"`
	// CurvaturePlotPoints is the number of points added according to the
	// curvature of a curve. Zero disables the curvature pass.
	CurvaturePlotPoints int `toml:"curvature_plotpoints" yaml:"curvature_plotpoints"`
	// ArcLengthPlotPoints is the number of points added at regular arc
	// length. Zero disables the arc length pass.
	ArcLengthPlotPoints int `toml:"arclength_plotpoints" yaml:"arclength_plotpoints"`
	// MaxDichotomyIterations bounds every dichotomy search.
	MaxDichotomyIterations int `toml:"max_dichotomy_iterations" yaml:"max_dichotomy_iterations"`
	// IntegrationPoints is the number of Gauss-Legendre nodes used for
	// numerical integrals.
	IntegrationPoints int `toml:"integration_points" yaml:"integration_points"`
	// TooLargeThreshold is the largest absolute coordinate a bounding box may
	// have.
	TooLargeThreshold float64 `toml:"too_large_threshold" yaml:"too_large_threshold"`
	// AxesMargin is the visual margin added once to automatic axes.
	AxesMargin float64 `toml:"axes_margin" yaml:"axes_margin"`
	// MarkDistance is the default visual distance between a mark and its
	// anchor.
	MarkDistance float64 `toml:"mark_distance" yaml:"mark_distance"`
	// DefaultBoxSize is used for labels whose size hasn't been measured yet.
	DefaultBoxSize Size `toml:"default_box_size" yaml:"default_box_size"`
	// ImaginaryTolerance is the largest imaginary part silently discarded.
	ImaginaryTolerance float64 `toml:"imaginary_tolerance" yaml:"imaginary_tolerance"`
	// Strict turns non-negligible imaginary parts into errors instead of
	// warnings.
	Strict bool `toml:"strict" yaml:"strict"`
	// Precision is the number of decimal places of numbers in the output.
	Precision int `toml:"precision" yaml:"precision"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		LinearPlotPoints:       100,
		CurvaturePlotPoints:    0,
		ArcLengthPlotPoints:    0,
		MaxDichotomyIterations: 100,
		IntegrationPoints:      64,
		TooLargeThreshold:      1e6,
		AxesMargin:             0.5,
		MarkDistance:           0.3,
		DefaultBoxSize:         Size{Width: 0.5, Height: 0.5},
		ImaginaryTolerance:     1e-8,
		Precision:              4,
	}
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.LinearPlotPoints < 2:
		return fmt.Errorf("linear_plotpoints must be at least 2, got %d", c.LinearPlotPoints)
	case c.CurvaturePlotPoints < 0:
		return fmt.Errorf("curvature_plotpoints must not be negative, got %d", c.CurvaturePlotPoints)
	case c.ArcLengthPlotPoints < 0:
		return fmt.Errorf("arclength_plotpoints must not be negative, got %d", c.ArcLengthPlotPoints)
	case c.MaxDichotomyIterations < 1:
		return fmt.Errorf("max_dichotomy_iterations must be positive, got %d", c.MaxDichotomyIterations)
	case c.IntegrationPoints < 1:
		return fmt.Errorf("integration_points must be positive, got %d", c.IntegrationPoints)
	case !(c.TooLargeThreshold > 0):
		return fmt.Errorf("too_large_threshold must be positive, got %g", c.TooLargeThreshold)
	case c.AxesMargin < 0:
		return fmt.Errorf("axes_margin must not be negative, got %g", c.AxesMargin)
	case c.DefaultBoxSize.Width < 0 || c.DefaultBoxSize.Height < 0:
		return fmt.Errorf("default_box_size must not be negative, got %v", c.DefaultBoxSize)
	case c.ImaginaryTolerance < 0:
		return fmt.Errorf("imaginary_tolerance must not be negative, got %g", c.ImaginaryTolerance)
	case c.Precision < 0 || c.Precision > 12:
		return fmt.Errorf("precision must be in [0, 12], got %d", c.Precision)
	}
	return nil
}

// LoadConfig reads a configuration file on top of DefaultConfig. The format
// is chosen by extension: .toml, or .yaml/.yml.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseConfig decodes data in the given format ("toml", "yaml" or "yml") on
// top of DefaultConfig and validates the result.
func ParseConfig(data []byte, format string) (Config, error) {
	conf := DefaultConfig()
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&conf); err != nil {
			return Config{}, fmt.Errorf("decoding TOML configuration: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decoding YAML configuration: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported configuration format %q", format)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return conf, nil
}
