package sampler

import (
	"context"
	"log"
	"time"

	"github.com/hostpulse/hostpulse/pkg/models"
)

// Sampler assembles point-in-time snapshots from a HostSource. It keeps
// no state of its own: delta metrics are computed from the Counters
// value the caller threads between calls.
type Sampler struct {
	source HostSource
	filter MountFilter
}

// NewSampler creates a sampler over the given source. A nil filter
// falls back to DefaultMountFilter.
func NewSampler(source HostSource, filter MountFilter) *Sampler {
	if filter == nil {
		filter = DefaultMountFilter
	}

	return &Sampler{source: source, filter: filter}
}

// Sample reads every figure once and assembles a Snapshot together with
// the raw counters to thread into the next call. A figure whose source
// cannot be read degrades to an unavailable field; sampling itself
// never fails. Pass prev=nil on the first call.
//
// CPU busy percent covers the window between the previous counters and
// this call; on the first call it is the since-boot average. Either
// way the window is indicative, not exact.
func (s *Sampler) Sample(_ context.Context, prev *models.Counters) (*models.Snapshot, *models.Counters) {
	now := time.Now()
	snap := &models.Snapshot{Timestamp: now}
	cur := &models.Counters{Taken: now}

	if name, err := s.source.Hostname(); err != nil {
		log.Printf("hostname unavailable: %v", err)
	} else {
		snap.Hostname = name
	}

	s.sampleCPU(snap, prev, cur)
	s.sampleMemory(snap)
	s.sampleSwap(snap)
	s.sampleDisks(snap)
	s.sampleNetwork(snap, prev, cur)

	if load, err := s.source.LoadAvg(); err != nil {
		log.Printf("load average unavailable: %v", err)
	} else {
		snap.LoadAverage = models.LoadAverage{Load1: load[0], Load5: load[1], Load15: load[2], Available: true}
	}

	if uptime, err := s.source.Uptime(); err != nil {
		log.Printf("uptime unavailable: %v", err)
	} else {
		snap.UptimeSeconds = models.NewMetric(uptime)
	}

	return snap, cur
}

func (s *Sampler) sampleCPU(snap *models.Snapshot, prev, cur *models.Counters) {
	total, idle, err := s.source.CPUTicks()
	if err != nil {
		log.Printf("cpu unavailable: %v", err)

		// Carry the last counters forward so the next delta spans the gap.
		if prev != nil {
			cur.CPUTotal, cur.CPUIdle = prev.CPUTotal, prev.CPUIdle
		}

		return
	}

	cur.CPUTotal, cur.CPUIdle = total, idle

	if prev != nil && total > prev.CPUTotal {
		total -= prev.CPUTotal

		if idle >= prev.CPUIdle {
			idle -= prev.CPUIdle
		} else {
			idle = 0
		}
	}

	if total == 0 {
		return
	}

	if idle > total {
		idle = total
	}

	snap.CPUBusyPercent = models.NewMetric(100 - float64(idle)/float64(total)*100)
}

func (s *Sampler) sampleMemory(snap *models.Snapshot) {
	mem, err := s.source.MemInfo()
	if err != nil {
		log.Printf("memory unavailable: %v", err)
		return
	}

	if mem.Total == 0 {
		return
	}

	used := float64(mem.Total-mem.Available) / float64(mem.Total) * 100
	snap.MemoryUsedPercent = models.NewMetric(used)
}

func (s *Sampler) sampleSwap(snap *models.Snapshot) {
	swap, err := s.source.SwapInfo()
	if err != nil {
		log.Printf("swap unavailable: %v", err)
		return
	}

	// No swap configured is "absent", not 0%: an empty swap device and a
	// missing one are different health signals.
	if swap.Total == 0 {
		return
	}

	used := float64(swap.Total-swap.Free) / float64(swap.Total) * 100
	snap.SwapUsedPercent = models.NewMetric(used)
}

func (s *Sampler) sampleDisks(snap *models.Snapshot) {
	mounts, err := s.source.Mounts()
	if err != nil {
		log.Printf("mounts unavailable: %v", err)
		return
	}

	for _, m := range mounts {
		if !s.filter(m) {
			continue
		}

		used, err := s.source.DiskUsage(m.MountPoint)
		if err != nil {
			log.Printf("disk usage unavailable for %s: %v", m.MountPoint, err)
			continue
		}

		snap.Disks = append(snap.Disks, models.DiskUsage{
			MountPoint:  m.MountPoint,
			FSType:      m.FSType,
			UsedPercent: used,
		})
	}
}

func (s *Sampler) sampleNetwork(snap *models.Snapshot, prev, cur *models.Counters) {
	rx, tx, err := s.source.NetCounters()
	if err != nil {
		log.Printf("network counters unavailable: %v", err)

		if prev != nil {
			cur.RxBytes, cur.TxBytes, cur.Taken = prev.RxBytes, prev.TxBytes, prev.Taken
		}

		return
	}

	cur.RxBytes, cur.TxBytes = rx, tx

	if prev == nil {
		return
	}

	elapsed := cur.Taken.Sub(prev.Taken).Seconds()
	if elapsed <= 0 {
		return
	}

	snap.Network = models.NetworkRate{
		RxBytesPerSec: counterDelta(prev.RxBytes, rx) / elapsed,
		TxBytesPerSec: counterDelta(prev.TxBytes, tx) / elapsed,
		Available:     true,
	}
}

// counterDelta clamps a decreasing counter (interface reset) to zero
// instead of producing a negative rate.
func counterDelta(old, cur uint64) float64 {
	if cur < old {
		log.Printf("network counter reset detected (%d -> %d), clamping delta to 0", old, cur)
		return 0
	}

	return float64(cur - old)
}
