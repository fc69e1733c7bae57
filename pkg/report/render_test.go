package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostpulse/hostpulse/pkg/evaluator"
	"github.com/hostpulse/hostpulse/pkg/models"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Timestamp:         time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		Hostname:          "web-01",
		CPUBusyPercent:    models.NewMetric(95.0),
		MemoryUsedPercent: models.NewMetric(40.0),
		UptimeSeconds:     models.NewMetric(90061), // 1d 1h 1m
		LoadAverage:       models.LoadAverage{Load1: 1.5, Load5: 1.2, Load15: 0.9, Available: true},
		Disks: []models.DiskUsage{
			{MountPoint: "/", FSType: "ext4", UsedPercent: 50.0},
			{MountPoint: "/data", FSType: "xfs", UsedPercent: 95.0},
		},
		Network: models.NetworkRate{RxBytesPerSec: 1500000, TxBytesPerSec: 2048, Available: true},
	}
}

func TestRender(t *testing.T) {
	snap := sampleSnapshot()
	cfg := evaluator.DefaultThresholds()
	rep := evaluator.Evaluate(snap, &cfg)

	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	require.NoError(t, r.Render(snap, rep))
	out := buf.String()

	assert.Contains(t, out, "web-01")
	assert.Contains(t, out, "2026-08-29 12:00:00")
	assert.Contains(t, out, "Uptime: 1d 1h 1m")
	assert.Contains(t, out, "Load: 1.50 1.20 0.90")
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "95.0%")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "/data")
	assert.Contains(t, out, "1.5 MB/s")
	assert.Contains(t, out, "Overall: CRITICAL")

	// Swap never sampled.
	assert.Contains(t, out, "Swap")
	assert.Contains(t, out, "n/a")
}

func TestRenderNoColorHasNoEscapes(t *testing.T) {
	snap := sampleSnapshot()
	cfg := evaluator.DefaultThresholds()
	rep := evaluator.Evaluate(snap, &cfg)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, true).Render(snap, rep))

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRenderEmptySnapshot(t *testing.T) {
	snap := &models.Snapshot{Timestamp: time.Now(), Hostname: "bare"}
	cfg := evaluator.DefaultThresholds()
	rep := evaluator.Evaluate(snap, &cfg)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, true).Render(snap, rep))
	out := buf.String()

	// Every section renders, all as unavailable, and the host is OK.
	assert.Equal(t, 5, strings.Count(out, "n/a"))
	assert.Contains(t, out, "Overall: OK")
}

func TestRenderSingleWrite(t *testing.T) {
	snap := sampleSnapshot()
	cfg := evaluator.DefaultThresholds()
	rep := evaluator.Evaluate(snap, &cfg)

	w := &countingWriter{}
	require.NoError(t, NewRenderer(w, true).Render(snap, rep))

	// The whole report lands in one Write so a canceled loop can never
	// tear it.
	assert.Equal(t, 1, w.writes)
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{90061, "1d 1h 1m"},
		{3660, "1h 1m"},
		{59, "0h 0m"},
		{180000, "2d 2h 0m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatUptime(tt.seconds))
	}
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}
