package layout

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/medvis/bodymap/pkg/errors"
)

// =============================================================================
// Config - Layout Parameters
// =============================================================================

// Config holds all layout parameters. Coordinates and distances are
// percentages of the reference diagram's bounding box.
//
// A Config is validated once, when the Engine is constructed. A valid
// Config cannot cause a per-call failure.
type Config struct {
	// LeftColumnX and RightColumnX are the x coordinates of the label
	// anchor lines on each side of the diagram.
	LeftColumnX  float64 `toml:"left_column_x" json:"left_column_x"`
	RightColumnX float64 `toml:"right_column_x" json:"right_column_x"`

	// MinBound and MaxBound limit the vertical extent labels may occupy.
	MinBound float64 `toml:"min_bound" json:"min_bound"`
	MaxBound float64 `toml:"max_bound" json:"max_bound"`

	// MinGap is the minimum vertical space between adjacent label extents
	// on one side. It may be compressed toward zero when a side overflows.
	MinGap float64 `toml:"min_gap" json:"min_gap"`

	// BaseLabelHeight is the extent of a label with no detail text.
	// PerLineHeight is added for each wrapped line of detail text, with
	// CharsPerLine as the wrapping heuristic.
	BaseLabelHeight float64 `toml:"base_label_height" json:"base_label_height"`
	PerLineHeight   float64 `toml:"per_line_height" json:"per_line_height"`
	CharsPerLine    int     `toml:"chars_per_line" json:"chars_per_line"`

	// SideThreshold splits regions into columns: a region goes right iff
	// its source x is strictly greater than the threshold. A source
	// exactly on the threshold is assigned left.
	SideThreshold float64 `toml:"side_threshold" json:"side_threshold"`

	// Connector selects the path style applied uniformly to all regions
	// in one plan. CurveBow is the horizontal control-point offset used
	// by the curve style.
	Connector ConnectorStyle `toml:"connector" json:"connector"`
	CurveBow  float64        `toml:"curve_bow" json:"curve_bow"`
}

// DefaultConfig returns the layout parameters for the reference
// front-view body diagram.
func DefaultConfig() Config {
	return Config{
		LeftColumnX:     10,
		RightColumnX:    90,
		MinBound:        8,
		MaxBound:        92,
		MinGap:          4,
		BaseLabelHeight: 6.5,
		PerLineHeight:   3.2,
		CharsPerLine:    34,
		SideThreshold:   50,
		Connector:       ConnectorCurve,
		CurveBow:        8,
	}
}

// Validate checks the Config for values that would make layout
// undefined. It returns the first problem found.
func (c Config) Validate() error {
	if c.MinBound >= c.MaxBound {
		return errors.New(errors.ErrCodeInvalidConfig,
			"min_bound (%.2f) must be below max_bound (%.2f)", c.MinBound, c.MaxBound)
	}
	if c.MinGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min_gap cannot be negative")
	}
	if c.BaseLabelHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "base_label_height must be positive")
	}
	if c.PerLineHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "per_line_height cannot be negative")
	}
	if c.CharsPerLine < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "chars_per_line must be at least 1")
	}
	if c.LeftColumnX < 0 || c.LeftColumnX > 100 || c.RightColumnX < 0 || c.RightColumnX > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "column x coordinates must lie in [0, 100]")
	}
	if c.SideThreshold < 0 || c.SideThreshold > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "side_threshold must lie in [0, 100]")
	}
	if c.CurveBow < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "curve_bow cannot be negative")
	}
	if !c.Connector.Valid() {
		return errors.New(errors.ErrCodeInvalidConnector,
			"invalid connector style: %q (must be one of: curve, elbow)", c.Connector)
	}
	return nil
}

// LoadConfigFile reads a TOML config file and overlays it on
// DefaultConfig, so a file only needs to name the values it changes.
// The result is validated before being returned.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
