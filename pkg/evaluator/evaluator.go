package evaluator

import "github.com/hostpulse/hostpulse/pkg/models"

// Evaluate classifies every present metric in the snapshot and
// aggregates the per-metric statuses into an overall status. It is a
// pure function of (snapshot, config); unavailable metrics contribute
// no status at all, so absence is never read as a health signal.
func Evaluate(snap *models.Snapshot, cfg *ThresholdConfig) *models.HealthReport {
	report := &models.HealthReport{
		PerMetric: make(map[string]models.HealthStatus),
		Disks:     make(map[string]models.HealthStatus),
	}

	if snap.CPUBusyPercent.Available {
		report.PerMetric[models.MetricCPU] = cfg.CPU.Classify(snap.CPUBusyPercent.Value)
	}

	if snap.MemoryUsedPercent.Available {
		report.PerMetric[models.MetricMemory] = cfg.Memory.Classify(snap.MemoryUsedPercent.Value)
	}

	if snap.SwapUsedPercent.Available {
		report.PerMetric[models.MetricSwap] = cfg.Swap.Classify(snap.SwapUsedPercent.Value)
	}

	if len(snap.Disks) > 0 {
		worst := models.StatusOK

		for _, d := range snap.Disks {
			status := cfg.Disk.Classify(d.UsedPercent)
			report.Disks[d.MountPoint] = status
			worst = worst.Worse(status)
		}

		report.PerMetric[models.MetricDisk] = worst
	}

	if cfg.NetworkWarnBytesPerSec > 0 && snap.Network.Available {
		report.PerMetric[models.MetricNetwork] = classifyNetwork(snap.Network, cfg.NetworkWarnBytesPerSec)
	}

	for _, status := range report.PerMetric {
		report.Overall = report.Overall.Worse(status)
	}

	return report
}

// classifyNetwork applies the advisory byte-rate threshold. Network has
// no critical tier: either direction above the threshold is a WARNING,
// never more.
func classifyNetwork(rate models.NetworkRate, warnBytesPerSec float64) models.HealthStatus {
	if rate.RxBytesPerSec > warnBytesPerSec || rate.TxBytesPerSec > warnBytesPerSec {
		return models.StatusWarning
	}

	return models.StatusOK
}
