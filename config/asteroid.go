package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TierID names an asteroid size band.
type TierID int

const (
	TierNone TierID = iota
	TierSmall
	TierMedium
	TierLarge
)

var tierNames = map[TierID]string{
	TierSmall:  "small",
	TierMedium: "medium",
	TierLarge:  "large",
}

func (t TierID) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "none"
}

// ParseTier maps a tier name from the YAML table to its ID. An empty name is
// TierNone.
func ParseTier(name string) (TierID, error) {
	if name == "" {
		return TierNone, nil
	}
	for id, n := range tierNames {
		if n == name {
			return id, nil
		}
	}
	return TierNone, fmt.Errorf("unknown tier %q", name)
}

// FragmentMode selects how a destroyed asteroid produces its children.
type FragmentMode string

const (
	// FragmentRegenerate spawns children with freshly generated outlines.
	FragmentRegenerate FragmentMode = "regenerate"
	// FragmentPartition cuts the parent outline into arcs.
	FragmentPartition FragmentMode = "partition"
)

// TierConfig is one row of the asteroid size table.
type TierConfig struct {
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Health     int     `yaml:"health"`
	Children   int     `yaml:"children"`
	ChildTier  string  `yaml:"child_tier"`
	VertexBand float64 `yaml:"vertex_band"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
}

// Clamp limits radius to the tier band.
func (t TierConfig) Clamp(radius float64) float64 {
	if radius < t.Min {
		return t.Min
	}
	if radius > t.Max {
		return t.Max
	}
	return radius
}

// AsteroidConfig holds the size tiers and outline generation parameters.
type AsteroidConfig struct {
	EdgesMin     int          `yaml:"edges_min"`
	EdgesMax     int          `yaml:"edges_max"`
	SpawnOffset  float64      `yaml:"spawn_offset"`
	SpinMin      float64      `yaml:"spin_min"`
	SpinMax      float64      `yaml:"spin_max"`
	SpeedLimit   float64      `yaml:"speed_limit"`
	FragmentMode FragmentMode `yaml:"fragment_mode"`

	Tiers struct {
		Large  TierConfig `yaml:"large"`
		Medium TierConfig `yaml:"medium"`
		Small  TierConfig `yaml:"small"`
	} `yaml:"tiers"`
}

// Asteroid is the global asteroid configuration, loaded from the embedded table.
var Asteroid *AsteroidConfig

//go:embed asteroids.yaml
var asteroidsYAML []byte

var (
	ErrTierRange   = errors.New("tier range is invalid")
	ErrTierOverlap = errors.New("tier ranges overlap")
	ErrEdges       = errors.New("outline edge range is invalid")
	ErrFragment    = errors.New("fragmentation rule is invalid")
)

// ParseAsteroidConfig decodes and validates an asteroid table.
func ParseAsteroidConfig(r io.Reader) (*AsteroidConfig, error) {
	var c AsteroidConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode asteroid config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the table for rules the fragmentation cascade relies on.
func (c *AsteroidConfig) Validate() error {
	for _, id := range []TierID{TierSmall, TierMedium, TierLarge} {
		t := c.TierConfig(id)
		if t.Min <= 0 || t.Min > t.Max {
			return fmt.Errorf("%s [%v, %v]: %w", id, t.Min, t.Max, ErrTierRange)
		}
		if t.SpeedMin < 0 || t.SpeedMin > t.SpeedMax {
			return fmt.Errorf("%s speed [%v, %v]: %w", id, t.SpeedMin, t.SpeedMax, ErrTierRange)
		}
		if t.Health < 0 || t.VertexBand < 0 {
			return fmt.Errorf("%s health/vertex band negative: %w", id, ErrTierRange)
		}

		child, err := ParseTier(t.ChildTier)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", id, ErrFragment, err)
		}
		switch {
		case t.Children < 0:
			return fmt.Errorf("%s children %d: %w", id, t.Children, ErrFragment)
		case t.Children > 0 && child == TierNone:
			return fmt.Errorf("%s has children but no child tier: %w", id, ErrFragment)
		case child != TierNone && child >= id:
			return fmt.Errorf("%s child tier %s is not smaller: %w", id, child, ErrFragment)
		}
	}

	if c.Tiers.Small.Max >= c.Tiers.Medium.Min {
		return fmt.Errorf("small/medium: %w", ErrTierOverlap)
	}
	if c.Tiers.Medium.Max >= c.Tiers.Large.Min {
		return fmt.Errorf("medium/large: %w", ErrTierOverlap)
	}

	if c.EdgesMin < 7 || c.EdgesMax <= c.EdgesMin {
		return fmt.Errorf("edges [%d, %d): %w", c.EdgesMin, c.EdgesMax, ErrEdges)
	}
	if c.SpawnOffset <= 0 || c.SpinMin > c.SpinMax || c.SpeedLimit <= 0 {
		return fmt.Errorf("spawn offset, spin or speed limit: %w", ErrFragment)
	}

	switch c.FragmentMode {
	case FragmentRegenerate, FragmentPartition:
	default:
		return fmt.Errorf("fragment mode %q: %w", c.FragmentMode, ErrFragment)
	}
	return nil
}

// TierConfig returns the row for a tier. TierNone yields the zero row.
func (c *AsteroidConfig) TierConfig(id TierID) TierConfig {
	switch id {
	case TierLarge:
		return c.Tiers.Large
	case TierMedium:
		return c.Tiers.Medium
	case TierSmall:
		return c.Tiers.Small
	}
	return TierConfig{}
}

// Tier classifies a radius. Radii that fall in a gap between two bands
// belong to the smaller band.
func (c *AsteroidConfig) Tier(radius float64) TierID {
	switch {
	case radius >= c.Tiers.Large.Min:
		return TierLarge
	case radius >= c.Tiers.Medium.Min:
		return TierMedium
	default:
		return TierSmall
	}
}

// ChildTier returns the tier children of the given tier spawn in.
func (c *AsteroidConfig) ChildTier(id TierID) TierID {
	child, err := ParseTier(c.TierConfig(id).ChildTier)
	if err != nil {
		return TierNone
	}
	return child
}

// Health returns the starting health of an asteroid of the given radius.
func (c *AsteroidConfig) Health(radius float64) int {
	return c.TierConfig(c.Tier(radius)).Health
}

func init() {
	var err error
	Asteroid, err = ParseAsteroidConfig(bytes.NewReader(asteroidsYAML))
	if err != nil {
		panic("embedded asteroid table: " + err.Error())
	}
}
