// Package models defines the value types shared between the sampler,
// evaluator, and presentation layers.
package models

import "time"

// Metric is a single measured value. Available is false when the
// underlying data source could not be read; an absent metric is never
// reported as zero.
type Metric struct {
	Value     float64
	Available bool
}

// NewMetric returns a present metric with the given value.
func NewMetric(v float64) Metric {
	return Metric{Value: v, Available: true}
}

// DiskUsage describes one mounted filesystem.
type DiskUsage struct {
	MountPoint  string
	FSType      string
	UsedPercent float64
}

// NetworkRate is the byte throughput measured between two snapshots.
type NetworkRate struct {
	RxBytesPerSec float64
	TxBytesPerSec float64
	Available     bool
}

// LoadAverage holds the 1, 5, and 15 minute load averages.
type LoadAverage struct {
	Load1     float64
	Load5     float64
	Load15    float64
	Available bool
}

// Counters holds the raw cumulative figures that delta metrics are
// computed from. The caller owns the value and threads it from one
// Sample call into the next; the sampler itself keeps no state between
// calls.
type Counters struct {
	CPUTotal uint64
	CPUIdle  uint64
	RxBytes  uint64
	TxBytes  uint64
	Taken    time.Time // when the byte counters were read
}

// Snapshot is a point-in-time bundle of all measured metrics. It is
// created fresh on every sampling call and never mutated afterwards.
type Snapshot struct {
	Timestamp         time.Time
	Hostname          string
	CPUBusyPercent    Metric
	MemoryUsedPercent Metric
	SwapUsedPercent   Metric
	UptimeSeconds     Metric
	LoadAverage       LoadAverage
	Disks             []DiskUsage
	Network           NetworkRate
}
