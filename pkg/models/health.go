package models

// HealthStatus classifies a metric against its thresholds. The values
// are ordered so the worst status can be picked with a comparison.
type HealthStatus int

const (
	StatusOK HealthStatus = iota
	StatusWarning
	StatusCritical
)

// Metric names used as keys in HealthReport.PerMetric.
const (
	MetricCPU     = "cpu"
	MetricMemory  = "memory"
	MetricSwap    = "swap"
	MetricDisk    = "disk"
	MetricNetwork = "network"
)

func (s HealthStatus) String() string {
	switch s {
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "OK"
	}
}

// Worse returns the more severe of the two statuses.
func (s HealthStatus) Worse(other HealthStatus) HealthStatus {
	if other > s {
		return other
	}

	return s
}

// HealthReport is the evaluation of one Snapshot. It is derived, never
// stored, and recomputed on every tick.
type HealthReport struct {
	PerMetric map[string]HealthStatus
	Disks     map[string]HealthStatus
	Overall   HealthStatus
}
