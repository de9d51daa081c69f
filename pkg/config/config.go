// Package config loads engine settings from a TOML file.
//
// A config file is optional; every key has a default:
//
//	precision = 3          # decimals used to compare coordinates
//	tolerance = 0.0005     # meters; 0 or absent means half a unit
//	ignore_kinds = []      # kinds that never form junctions, e.g. ["STAIRCASE"]
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "framelink.toml"

// MaxPrecision bounds the rounding precision. Beyond nine decimals the
// rounding grid is finer than float64 resolution for building-scale
// coordinates.
const MaxPrecision = 9

// Config holds the connectivity engine settings.
type Config struct {
	Precision   int      `toml:"precision"`
	Tolerance   float64  `toml:"tolerance"`
	IgnoreKinds []string `toml:"ignore_kinds"`
}

// Default returns the built-in settings: three decimals, half-millimeter
// tolerance, every kind participating.
func Default() Config {
	return Config{Precision: geom.DefaultPrecision}
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "invalid config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, ferrors.New(ferrors.ErrCodeInvalidConfig, "unknown config key %q", keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// LoadOrDefault loads path when set. With an empty path it tries
// DefaultFile and falls back to Default when that file does not exist.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := Load(DefaultFile)
	if ferrors.Is(err, ferrors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks ranges and kind names.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "precision %d out of range [0, %d]", c.Precision, MaxPrecision)
	}
	if c.Tolerance < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "tolerance must not be negative")
	}
	// A tolerance of a full unit or more would merge points that round to
	// different grid positions.
	if unit := geom.NewGrid(c.Precision).Unit(); c.Tolerance >= unit {
		return ferrors.New(ferrors.ErrCodeInvalidConfig, "tolerance %g must be below one unit (%g) at precision %d",
			c.Tolerance, unit, c.Precision)
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	return nil
}

// Grid returns the comparison grid for these settings.
func (c Config) Grid() geom.Grid {
	return geom.NewGrid(c.Precision).WithTolerance(c.Tolerance)
}

// Kinds parses IgnoreKinds.
func (c Config) Kinds() ([]frame.Kind, error) {
	kinds := make([]frame.Kind, 0, len(c.IgnoreKinds))
	for _, s := range c.IgnoreKinds {
		k, err := frame.ParseKind(s)
		if err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidKind, err, "ignore_kinds")
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
