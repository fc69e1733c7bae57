// Package evaluator classifies snapshot metrics against configured
// thresholds and aggregates the results into a health report.
package evaluator

import (
	"fmt"

	"github.com/hostpulse/hostpulse/pkg/models"
)

// Default warning/critical bounds for percentage metrics.
const (
	DefaultWarning  = 70.0
	DefaultCritical = 90.0
)

// Threshold is a warning/critical pair for a percentage metric.
type Threshold struct {
	Warning  float64 `json:"warning"`
	Critical float64 `json:"critical"`
}

// Validate checks 0 <= warning < critical <= 100.
func (t Threshold) Validate() error {
	if t.Warning < 0 || t.Critical > 100 {
		return fmt.Errorf("%w: warning=%.1f critical=%.1f", ErrThresholdRange, t.Warning, t.Critical)
	}

	if t.Warning >= t.Critical {
		return fmt.Errorf("%w: warning=%.1f critical=%.1f", ErrThresholdOrder, t.Warning, t.Critical)
	}

	return nil
}

// Classify returns the health band for a value. Comparisons are strict:
// a value sitting exactly on a boundary stays in the lower band.
func (t Threshold) Classify(v float64) models.HealthStatus {
	switch {
	case v > t.Critical:
		return models.StatusCritical
	case v > t.Warning:
		return models.StatusWarning
	default:
		return models.StatusOK
	}
}

// ThresholdConfig holds the thresholds for every metric kind. It is
// built once at startup, validated, and never mutated afterwards.
type ThresholdConfig struct {
	CPU    Threshold `json:"cpu"`
	Memory Threshold `json:"memory"`
	Swap   Threshold `json:"swap"`
	Disk   Threshold `json:"disk"`

	// NetworkWarnBytesPerSec is an absolute byte-rate threshold with no
	// critical tier. Zero disables network evaluation.
	NetworkWarnBytesPerSec float64 `json:"network_warn_bytes_per_sec,omitempty"`
}

// DefaultThresholds returns the stock 70/90 configuration with network
// evaluation disabled.
func DefaultThresholds() ThresholdConfig {
	def := Threshold{Warning: DefaultWarning, Critical: DefaultCritical}

	return ThresholdConfig{
		CPU:    def,
		Memory: def,
		Swap:   def,
		Disk:   def,
	}
}

// Validate checks every threshold pair. A malformed configuration is
// rejected here, at load time, never tolerated at evaluation time.
func (c *ThresholdConfig) Validate() error {
	pairs := []struct {
		name string
		t    Threshold
	}{
		{models.MetricCPU, c.CPU},
		{models.MetricMemory, c.Memory},
		{models.MetricSwap, c.Swap},
		{models.MetricDisk, c.Disk},
	}

	for _, p := range pairs {
		if err := p.t.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}

	if c.NetworkWarnBytesPerSec < 0 {
		return fmt.Errorf("%w: %.1f", ErrNegativeNetworkThreshold, c.NetworkWarnBytesPerSec)
	}

	return nil
}
