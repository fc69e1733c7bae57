// Package sampler reads host metrics into immutable snapshots.
package sampler

//go:generate mockgen -destination=mock_sampler.go -package=sampler github.com/hostpulse/hostpulse/pkg/sampler HostSource

// HostSource abstracts the raw host figures the sampler reads. Each
// method covers exactly one figure so that one failing source degrades
// one snapshot field, never the whole snapshot.
type HostSource interface {
	// CPUTicks returns the cumulative total and idle scheduler ticks for
	// the whole machine since boot. Idle includes iowait.
	CPUTicks() (total, idle uint64, err error)
	// MemInfo returns total and available physical memory in bytes.
	// Available accounts for reclaimable memory; it is not "free".
	MemInfo() (MemInfo, error)
	// SwapInfo returns total and free swap in bytes. A zero total means
	// no swap is configured.
	SwapInfo() (SwapInfo, error)
	// Mounts enumerates mounted filesystems in discovery order.
	Mounts() ([]MountEntry, error)
	// DiskUsage returns the used fraction of the filesystem mounted at
	// the given path, in percent.
	DiskUsage(mountPoint string) (usedPercent float64, err error)
	// NetCounters returns cumulative receive and transmit byte counts
	// summed over all non-loopback interfaces.
	NetCounters() (rx, tx uint64, err error)
	// LoadAvg returns the 1, 5, and 15 minute load averages.
	LoadAvg() ([3]float64, error)
	// Uptime returns seconds since boot.
	Uptime() (float64, error)
	// Hostname returns the host's name.
	Hostname() (string, error)
}
