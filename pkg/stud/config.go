// Package stud defines the configuration of the tab/indent protrusion shape
// and its derived measurements. All factors are dimensionless fractions; the
// actual stud depth and width scale with the smaller piece dimension so the
// shape stays proportionate for non-square cells.
package stud

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
)

// Default factor values. WidthFactor and DepthFactor are fractions of the
// smaller piece dimension; Rise1/Rise2 are Bezier control heights as
// fractions of the stud depth; Blend widens the crown shoulders relative to
// the stud half-width; CornerJog is the border chamfer length as a fraction
// of the stud depth.
const (
	DefaultWidthFactor = 1.0 / 3.0
	DefaultDepthFactor = 1.0 / 6.0
	DefaultRise1       = 0.5
	DefaultRise2       = 0.7
	DefaultBlend       = 0.2
	DefaultCornerJog   = 0.0
)

// Config parametrizes the stud profile. The zero value is not usable;
// start from [Default] or load a profile with [LoadProfile].
type Config struct {
	WidthFactor float64 `json:"width_factor" bson:"width_factor" toml:"width_factor"`
	DepthFactor float64 `json:"depth_factor" bson:"depth_factor" toml:"depth_factor"`
	Rise1       float64 `json:"rise1" bson:"rise1" toml:"rise1"`
	Rise2       float64 `json:"rise2" bson:"rise2" toml:"rise2"`
	Blend       float64 `json:"blend" bson:"blend" toml:"blend"`
	CornerJog   float64 `json:"corner_jog" bson:"corner_jog" toml:"corner_jog"`
}

// Default returns the stock stud configuration.
func Default() Config {
	return Config{
		WidthFactor: DefaultWidthFactor,
		DepthFactor: DefaultDepthFactor,
		Rise1:       DefaultRise1,
		Rise2:       DefaultRise2,
		Blend:       DefaultBlend,
		CornerJog:   DefaultCornerJog,
	}
}

// Validate checks that every factor is in a range that produces a drawable,
// non-self-intersecting stud.
func (c Config) Validate() error {
	if c.WidthFactor <= 0 || c.WidthFactor >= 1 {
		return errors.New(errors.ErrCodeInvalidStudConfig, "width_factor must be in (0,1), got %g", c.WidthFactor)
	}
	if c.DepthFactor <= 0 || c.DepthFactor >= 0.5 {
		return errors.New(errors.ErrCodeInvalidStudConfig, "depth_factor must be in (0,0.5), got %g", c.DepthFactor)
	}
	if c.Rise1 < 0 || c.Rise1 > 1 {
		return errors.New(errors.ErrCodeInvalidStudConfig, "rise1 must be in [0,1], got %g", c.Rise1)
	}
	if c.Rise2 < 0 || c.Rise2 > 1 {
		return errors.New(errors.ErrCodeInvalidStudConfig, "rise2 must be in [0,1], got %g", c.Rise2)
	}
	if c.Blend < 0 || c.Blend >= 1 {
		return errors.New(errors.ErrCodeInvalidStudConfig, "blend must be in [0,1), got %g", c.Blend)
	}
	if c.CornerJog < 0 {
		return errors.New(errors.ErrCodeInvalidStudConfig, "corner_jog must be non-negative, got %g", c.CornerJog)
	}
	return nil
}

// Depth returns the stud protrusion depth for a piece of the given
// dimensions: min(width, height) × DepthFactor.
func (c Config) Depth(pieceWidth, pieceHeight float64) float64 {
	return math.Min(pieceWidth, pieceHeight) * c.DepthFactor
}

// StudWidth returns the width of the stud neck for a piece of the given
// dimensions: min(width, height) × WidthFactor.
func (c Config) StudWidth(pieceWidth, pieceHeight float64) float64 {
	return math.Min(pieceWidth, pieceHeight) * c.WidthFactor
}

// LoadProfile reads a TOML profile file and overlays it on the defaults.
// Keys absent from the file keep their default values. The result is
// validated before being returned.
func LoadProfile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidStudConfig, err, "read profile %s", path)
	}
	c := Default()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidStudConfig, err, "parse profile %s", path)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
