package motion

import "encoding/json"

// Default corner and feedrate constants, taken directly from the original
// Config.hpp macros (CORNER_MAX_RATIO, CORNER_VELOCITY_RATIO,
// STANDARD_FEEDRATE, STANDARD_ACCELERATION). The original represented these
// as compile-time macros; per the REDESIGN FLAGS they are carried here as
// configuration values supplied at construction instead.
const (
	DefaultCornerMaxRatio      = 0.01
	DefaultCornerVelocityRatio = 5.0
	DefaultStandardFeedrate    = 120.0  // mm/s
	DefaultStandardAccel       = 2000.0 // mm/s^2
	DefaultHz                  = 1000
)

// Config holds the tunables of a Planner.
type Config struct {
	Hz int `json:"hz"` // sampling rate, samples per second

	// StandardFeedrate/StandardAccel are the defaults used by PlanMotion
	// when the caller doesn't supply a velocity/acceleration cap.
	StandardFeedrate float64 `json:"standard_feedrate"`
	StandardAccel    float64 `json:"standard_accel"`

	// CornerMaxRatio floors the corner exit-velocity ratio; CornerVelocityRatio
	// is the exponent applied to the corner's absolute cosine before the pi
	// scaling (see corner.go).
	CornerMaxRatio      float64 `json:"corner_max_ratio"`
	CornerVelocityRatio float64 `json:"corner_velocity_ratio"`
}

// LoadConfig parses a JSON configuration document and backfills any
// zero-valued field with the package defaults.
func LoadConfig(jsonData []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// DefaultConfig returns the standard configuration at the given sample rate.
func DefaultConfig(hz int) Config {
	return Config{
		Hz:                  hz,
		StandardFeedrate:    DefaultStandardFeedrate,
		StandardAccel:       DefaultStandardAccel,
		CornerMaxRatio:      DefaultCornerMaxRatio,
		CornerVelocityRatio: DefaultCornerVelocityRatio,
	}
}

// applyDefaults fills zero-valued fields with the package defaults, the way
// standalone/config.applyDefaults backfills a MachineConfig.
func (c *Config) applyDefaults() {
	if c.Hz == 0 {
		c.Hz = DefaultHz
	}
	if c.StandardFeedrate == 0 {
		c.StandardFeedrate = DefaultStandardFeedrate
	}
	if c.StandardAccel == 0 {
		c.StandardAccel = DefaultStandardAccel
	}
	if c.CornerMaxRatio == 0 {
		c.CornerMaxRatio = DefaultCornerMaxRatio
	}
	if c.CornerVelocityRatio == 0 {
		c.CornerVelocityRatio = DefaultCornerVelocityRatio
	}
}
