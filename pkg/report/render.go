// Package report renders a snapshot and its evaluation as a
// color-coded terminal report.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/hostpulse/hostpulse/pkg/models"
)

// Renderer writes health reports to a sink. Each report is built in a
// buffer and written with a single Write, so an interrupted loop never
// leaves a torn report behind.
type Renderer struct {
	w      io.Writer
	colors map[models.HealthStatus]*color.Color
}

// NewRenderer creates a renderer. noColor strips ANSI codes, for pipes
// and dumb terminals.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	colors := map[models.HealthStatus]*color.Color{
		models.StatusOK:       color.New(color.FgGreen),
		models.StatusWarning:  color.New(color.FgYellow),
		models.StatusCritical: color.New(color.FgRed, color.Bold),
	}

	if noColor {
		for _, c := range colors {
			c.DisableColor()
		}
	}

	return &Renderer{w: w, colors: colors}
}

// Render writes one report for the tick.
func (r *Renderer) Render(snap *models.Snapshot, rep *models.HealthReport) error {
	var buf bytes.Buffer

	r.writeHeader(&buf, snap)
	r.writeMetricLine(&buf, "CPU", snap.CPUBusyPercent, rep.PerMetric, models.MetricCPU)
	r.writeMetricLine(&buf, "Memory", snap.MemoryUsedPercent, rep.PerMetric, models.MetricMemory)
	r.writeMetricLine(&buf, "Swap", snap.SwapUsedPercent, rep.PerMetric, models.MetricSwap)
	r.writeDisks(&buf, snap, rep)
	r.writeNetwork(&buf, snap, rep)

	fmt.Fprintf(&buf, "\nOverall: %s\n", r.paint(rep.Overall))

	_, err := r.w.Write(buf.Bytes())

	return err
}

func (r *Renderer) writeHeader(buf *bytes.Buffer, snap *models.Snapshot) {
	fmt.Fprintf(buf, "=== %s — %s ===\n", snap.Hostname, snap.Timestamp.Format(time.DateTime))

	if snap.UptimeSeconds.Available {
		fmt.Fprintf(buf, "Uptime: %s", formatUptime(snap.UptimeSeconds.Value))

		if snap.LoadAverage.Available {
			l := snap.LoadAverage
			fmt.Fprintf(buf, "  Load: %.2f %.2f %.2f", l.Load1, l.Load5, l.Load15)
		}

		buf.WriteByte('\n')
	}

	buf.WriteByte('\n')
}

func (r *Renderer) writeMetricLine(
	buf *bytes.Buffer, label string, m models.Metric, statuses map[string]models.HealthStatus, key string) {
	if !m.Available {
		fmt.Fprintf(buf, "%-8s %8s\n", label, "n/a")
		return
	}

	fmt.Fprintf(buf, "%-8s %7.1f%%  [%s]\n", label, m.Value, r.paint(statuses[key]))
}

func (r *Renderer) writeDisks(buf *bytes.Buffer, snap *models.Snapshot, rep *models.HealthReport) {
	if len(snap.Disks) == 0 {
		fmt.Fprintf(buf, "%-8s %8s\n", "Disk", "n/a")
		return
	}

	fmt.Fprintf(buf, "%-8s %18s  [%s]\n", "Disk", "", r.paint(rep.PerMetric[models.MetricDisk]))

	for _, d := range snap.Disks {
		fmt.Fprintf(buf, "  %-20s %7.1f%%  %-8s [%s]\n",
			d.MountPoint, d.UsedPercent, d.FSType, r.paint(rep.Disks[d.MountPoint]))
	}
}

func (r *Renderer) writeNetwork(buf *bytes.Buffer, snap *models.Snapshot, rep *models.HealthReport) {
	if !snap.Network.Available {
		fmt.Fprintf(buf, "%-8s %8s\n", "Network", "n/a")
		return
	}

	line := fmt.Sprintf("rx %s/s  tx %s/s",
		humanize.Bytes(uint64(snap.Network.RxBytesPerSec)),
		humanize.Bytes(uint64(snap.Network.TxBytesPerSec)))

	if status, evaluated := rep.PerMetric[models.MetricNetwork]; evaluated {
		fmt.Fprintf(buf, "%-8s %s  [%s]\n", "Network", line, r.paint(status))
	} else {
		fmt.Fprintf(buf, "%-8s %s\n", "Network", line)
	}
}

func (r *Renderer) paint(status models.HealthStatus) string {
	return r.colors[status].Sprint(status.String())
}

func formatUptime(seconds float64) string {
	d := time.Duration(seconds) * time.Second

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}

	return fmt.Sprintf("%dh %dm", hours, minutes)
}
