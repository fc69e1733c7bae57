package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hostpulse/hostpulse/pkg/evaluator"
)

var (
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidInterval = errors.New("sample interval must be positive")
)

// Duration is a wrapper around time.Duration for JSON unmarshaling.
// Numeric values are nanoseconds, strings use time.ParseDuration syntax.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}

		*d = Duration(tmp)
	default:
		return ErrInvalidDuration
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config is the full hostpulse configuration.
type Config struct {
	// Interval between samples; also the network rate measurement window.
	Interval Duration `json:"interval"`

	Thresholds evaluator.ThresholdConfig `json:"thresholds"`

	// ExcludeFSTypes extends the default pseudo-filesystem exclusions
	// applied when enumerating mounts.
	ExcludeFSTypes []string `json:"exclude_fs_types,omitempty"`

	// NoColor disables ANSI colors in the rendered report.
	NoColor bool `json:"no_color,omitempty"`
}

// Default returns the stock configuration: one-second interval, 70/90
// thresholds, network evaluation disabled.
func Default() Config {
	return Config{
		Interval:   Duration(time.Second),
		Thresholds: evaluator.DefaultThresholds(),
	}
}

// Validate implements Validator.
func (c *Config) Validate() error {
	if time.Duration(c.Interval) <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, time.Duration(c.Interval))
	}

	return c.Thresholds.Validate()
}
