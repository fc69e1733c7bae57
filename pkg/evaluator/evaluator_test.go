package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostpulse/hostpulse/pkg/models"
)

func TestThresholdClassify(t *testing.T) {
	th := Threshold{Warning: 70, Critical: 90}

	tests := []struct {
		name  string
		value float64
		want  models.HealthStatus
	}{
		{"well below warning", 10, models.StatusOK},
		{"exactly at warning stays ok", 70, models.StatusOK},
		{"just above warning", 70.1, models.StatusWarning},
		{"exactly at critical stays warning", 90, models.StatusWarning},
		{"just above critical", 90.1, models.StatusCritical},
		{"maxed out", 100, models.StatusCritical},
		{"zero", 0, models.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.Classify(tt.value))
		})
	}
}

func TestThresholdValidate(t *testing.T) {
	tests := []struct {
		name    string
		th      Threshold
		wantErr error
	}{
		{"valid", Threshold{Warning: 70, Critical: 90}, nil},
		{"critical below warning", Threshold{Warning: 95, Critical: 90}, ErrThresholdOrder},
		{"critical equals warning", Threshold{Warning: 90, Critical: 90}, ErrThresholdOrder},
		{"negative warning", Threshold{Warning: -1, Critical: 90}, ErrThresholdRange},
		{"critical above 100", Threshold{Warning: 70, Critical: 101}, ErrThresholdRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.th.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestThresholdConfigValidate(t *testing.T) {
	cfg := DefaultThresholds()
	require.NoError(t, cfg.Validate())

	cfg.Memory = Threshold{Warning: 95, Critical: 90}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrThresholdOrder)
	assert.Contains(t, err.Error(), "memory")

	cfg = DefaultThresholds()
	cfg.NetworkWarnBytesPerSec = -1
	assert.ErrorIs(t, cfg.Validate(), ErrNegativeNetworkThreshold)
}

func TestEvaluateEndToEnd(t *testing.T) {
	cfg := DefaultThresholds()

	snap := &models.Snapshot{
		CPUBusyPercent:    models.NewMetric(95.0),
		MemoryUsedPercent: models.NewMetric(40.0),
		Disks: []models.DiskUsage{
			{MountPoint: "/", FSType: "ext4", UsedPercent: 50.0},
		},
	}

	rep := Evaluate(snap, &cfg)

	assert.Equal(t, models.StatusCritical, rep.PerMetric[models.MetricCPU])
	assert.Equal(t, models.StatusOK, rep.PerMetric[models.MetricMemory])
	assert.Equal(t, models.StatusOK, rep.PerMetric[models.MetricDisk])
	assert.Equal(t, models.StatusCritical, rep.Overall)

	// Swap was absent, so it must not appear at all.
	_, present := rep.PerMetric[models.MetricSwap]
	assert.False(t, present)
}

func TestEvaluateDiskWorstMount(t *testing.T) {
	cfg := DefaultThresholds()

	snap := &models.Snapshot{
		Disks: []models.DiskUsage{
			{MountPoint: "/", UsedPercent: 50.0},
			{MountPoint: "/var", UsedPercent: 95.0},
			{MountPoint: "/home", UsedPercent: 10.0},
		},
	}

	rep := Evaluate(snap, &cfg)

	assert.Equal(t, models.StatusCritical, rep.PerMetric[models.MetricDisk])
	assert.Equal(t, models.StatusCritical, rep.Overall)
	assert.Equal(t, models.StatusOK, rep.Disks["/"])
	assert.Equal(t, models.StatusCritical, rep.Disks["/var"])
	assert.Equal(t, models.StatusOK, rep.Disks["/home"])
}

func TestEvaluateOverallIsWorstStatus(t *testing.T) {
	cfg := DefaultThresholds()

	tests := []struct {
		name string
		snap *models.Snapshot
		want models.HealthStatus
	}{
		{
			name: "all ok",
			snap: &models.Snapshot{
				CPUBusyPercent:    models.NewMetric(10),
				MemoryUsedPercent: models.NewMetric(20),
				SwapUsedPercent:   models.NewMetric(0),
			},
			want: models.StatusOK,
		},
		{
			name: "one warning",
			snap: &models.Snapshot{
				CPUBusyPercent:    models.NewMetric(10),
				MemoryUsedPercent: models.NewMetric(75),
			},
			want: models.StatusWarning,
		},
		{
			name: "one critical outweighs warnings",
			snap: &models.Snapshot{
				CPUBusyPercent:    models.NewMetric(75),
				MemoryUsedPercent: models.NewMetric(75),
				SwapUsedPercent:   models.NewMetric(99),
			},
			want: models.StatusCritical,
		},
		{
			name: "empty snapshot is ok",
			snap: &models.Snapshot{},
			want: models.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.snap, &cfg).Overall)
		})
	}
}

func TestEvaluateUnavailableMetricsExcluded(t *testing.T) {
	cfg := DefaultThresholds()

	// Only memory is present; cpu and swap failed to sample.
	snap := &models.Snapshot{
		MemoryUsedPercent: models.NewMetric(40),
	}

	rep := Evaluate(snap, &cfg)

	assert.Len(t, rep.PerMetric, 1)
	assert.Equal(t, models.StatusOK, rep.Overall)
}

func TestEvaluateNetworkAdvisoryOnly(t *testing.T) {
	cfg := DefaultThresholds()
	cfg.NetworkWarnBytesPerSec = 1000

	snap := &models.Snapshot{
		Network: models.NetworkRate{RxBytesPerSec: 50000, TxBytesPerSec: 10, Available: true},
	}

	rep := Evaluate(snap, &cfg)

	// Far above the threshold, still only a warning: network has no
	// critical tier and can never make the host critical on its own.
	assert.Equal(t, models.StatusWarning, rep.PerMetric[models.MetricNetwork])
	assert.Equal(t, models.StatusWarning, rep.Overall)
}

func TestEvaluateNetworkDisabled(t *testing.T) {
	cfg := DefaultThresholds()

	snap := &models.Snapshot{
		Network: models.NetworkRate{RxBytesPerSec: 1e12, TxBytesPerSec: 1e12, Available: true},
	}

	rep := Evaluate(snap, &cfg)

	_, present := rep.PerMetric[models.MetricNetwork]
	assert.False(t, present)
	assert.Equal(t, models.StatusOK, rep.Overall)
}

func TestEvaluateNetworkAtThresholdIsOK(t *testing.T) {
	cfg := DefaultThresholds()
	cfg.NetworkWarnBytesPerSec = 1000

	snap := &models.Snapshot{
		Network: models.NetworkRate{RxBytesPerSec: 1000, TxBytesPerSec: 1000, Available: true},
	}

	rep := Evaluate(snap, &cfg)

	assert.Equal(t, models.StatusOK, rep.PerMetric[models.MetricNetwork])
}
