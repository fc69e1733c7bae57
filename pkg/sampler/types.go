package sampler

import "strings"

// MemInfo holds physical memory figures in bytes.
type MemInfo struct {
	Total     uint64
	Available uint64
}

// SwapInfo holds swap figures in bytes.
type SwapInfo struct {
	Total uint64
	Free  uint64
}

// MountEntry describes one mounted filesystem.
type MountEntry struct {
	Device     string
	MountPoint string
	FSType     string
}

// MountFilter reports whether a mount should be included in disk
// sampling. The filtering policy is a predicate, not a hardcoded list,
// so it can be adapted per platform.
type MountFilter func(MountEntry) bool

// Pseudo and virtual filesystem types excluded by default. Squashfs
// covers loop-backed snap mounts, overlay covers container layers.
var defaultExcludedFSTypes = map[string]struct{}{
	"autofs":     {},
	"bpf":        {},
	"cgroup":     {},
	"cgroup2":    {},
	"configfs":   {},
	"debugfs":    {},
	"devpts":     {},
	"devtmpfs":   {},
	"efivarfs":   {},
	"fusectl":    {},
	"hugetlbfs":  {},
	"mqueue":     {},
	"overlay":    {},
	"proc":       {},
	"pstore":     {},
	"ramfs":      {},
	"securityfs": {},
	"squashfs":   {},
	"sysfs":      {},
	"tmpfs":      {},
	"tracefs":    {},
}

// DefaultMountFilter keeps device-backed filesystems and drops the
// pseudo-filesystem types above.
func DefaultMountFilter(e MountEntry) bool {
	if _, excluded := defaultExcludedFSTypes[e.FSType]; excluded {
		return false
	}

	return strings.HasPrefix(e.Device, "/dev/")
}

// ExcludeFSTypes extends the default filter with additional filesystem
// types to drop.
func ExcludeFSTypes(fsTypes ...string) MountFilter {
	if len(fsTypes) == 0 {
		return DefaultMountFilter
	}

	extra := make(map[string]struct{}, len(fsTypes))
	for _, t := range fsTypes {
		extra[t] = struct{}{}
	}

	return func(e MountEntry) bool {
		if _, excluded := extra[e.FSType]; excluded {
			return false
		}

		return DefaultMountFilter(e)
	}
}
