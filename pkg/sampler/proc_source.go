package sampler

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

const defaultProcRoot = "/proc"

// ProcSource reads host figures from the proc filesystem and statfs.
// The proc root is configurable so tests can point it at a fixture
// tree.
type ProcSource struct {
	root string
}

// NewProcSource returns a source rooted at /proc.
func NewProcSource() *ProcSource {
	return &ProcSource{root: defaultProcRoot}
}

// NewProcSourceAt returns a source rooted at the given directory.
func NewProcSourceAt(root string) *ProcSource {
	return &ProcSource{root: root}
}

// CPUTicks parses the aggregate "cpu" line of /proc/stat. Total covers
// user, nice, system, idle, iowait, irq, softirq, and steal; idle
// includes iowait so the busy fraction excludes time spent waiting on
// disk.
func (p *ProcSource) CPUTicks() (total, idle uint64, err error) {
	f, err := os.Open(filepath.Join(p.root, "stat"))
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu ") {
			continue
		}

		fields := strings.Fields(line)[1:]
		if len(fields) < 4 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCPULine, line)
		}

		if len(fields) > 8 {
			fields = fields[:8]
		}

		ticks := make([]uint64, len(fields))

		for i, field := range fields {
			ticks[i], err = strconv.ParseUint(field, 10, 64)
			if err != nil {
				return 0, 0, fmt.Errorf("%w: %q", ErrMalformedCPULine, line)
			}

			total += ticks[i]
		}

		idle = ticks[3]
		if len(ticks) > 4 {
			idle += ticks[4] // iowait
		}

		return total, idle, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}

	return 0, 0, ErrNoCPULine
}

// MemInfo parses MemTotal and MemAvailable from /proc/meminfo.
// MemAvailable is required: falling back to MemFree would ignore
// reclaimable memory and underestimate headroom.
func (p *ProcSource) MemInfo() (MemInfo, error) {
	values, err := p.readMeminfo("MemTotal", "MemAvailable")
	if err != nil {
		return MemInfo{}, err
	}

	total, ok := values["MemTotal"]
	if !ok || total == 0 {
		return MemInfo{}, ErrNoMemTotal
	}

	available, ok := values["MemAvailable"]
	if !ok {
		return MemInfo{}, ErrNoMemAvailable
	}

	return MemInfo{Total: total, Available: available}, nil
}

// SwapInfo parses SwapTotal and SwapFree from /proc/meminfo.
func (p *ProcSource) SwapInfo() (SwapInfo, error) {
	values, err := p.readMeminfo("SwapTotal", "SwapFree")
	if err != nil {
		return SwapInfo{}, err
	}

	return SwapInfo{Total: values["SwapTotal"], Free: values["SwapFree"]}, nil
}

// readMeminfo collects the requested meminfo keys, converted to bytes.
func (p *ProcSource) readMeminfo(keys ...string) (map[string]uint64, error) {
	f, err := os.Open(filepath.Join(p.root, "meminfo"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	values := make(map[string]uint64, len(keys))

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, rest, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}

		if _, ok := wanted[name]; !ok {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}

		kb, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}

		values[name] = kb * 1024
	}

	return values, scanner.Err()
}

// Mounts enumerates /proc/mounts in file order.
func (p *ProcSource) Mounts() ([]MountEntry, error) {
	f, err := os.Open(filepath.Join(p.root, "mounts"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []MountEntry

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}

		entries = append(entries, MountEntry{
			Device:     fields[0],
			MountPoint: unescapeMount(fields[1]),
			FSType:     fields[2],
		})
	}

	return entries, scanner.Err()
}

// DiskUsage stats the filesystem at mountPoint and returns the used
// fraction the way df computes it: reserved blocks count as used, and
// the denominator is what an unprivileged user can actually reach.
func (p *ProcSource) DiskUsage(mountPoint string) (float64, error) {
	var fs syscall.Statfs_t

	if err := syscall.Statfs(mountPoint, &fs); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", mountPoint, err)
	}

	used := fs.Blocks - fs.Bfree
	reachable := used + fs.Bavail

	if reachable == 0 {
		return 0, nil
	}

	return float64(used) / float64(reachable) * 100, nil
}

// NetCounters sums receive and transmit bytes over all non-loopback
// interfaces in /proc/net/dev.
func (p *ProcSource) NetCounters() (rx, tx uint64, err error) {
	f, err := os.Open(filepath.Join(p.root, "net", "dev"))
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// Two header lines.
	for i := 0; i < 2 && scanner.Scan(); i++ {
	}

	for scanner.Scan() {
		name, rest, found := strings.Cut(scanner.Text(), ":")
		if !found {
			continue
		}

		if strings.TrimSpace(name) == "lo" {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) < 10 {
			continue
		}

		ifRx, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}

		ifTx, err := strconv.ParseUint(fields[8], 10, 64)
		if err != nil {
			continue
		}

		rx += ifRx
		tx += ifTx
	}

	return rx, tx, scanner.Err()
}

// LoadAvg parses the first three fields of /proc/loadavg.
func (p *ProcSource) LoadAvg() ([3]float64, error) {
	var load [3]float64

	data, err := os.ReadFile(filepath.Join(p.root, "loadavg"))
	if err != nil {
		return load, err
	}

	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return load, fmt.Errorf("%w: %q", ErrMalformedLoadAvg, string(data))
	}

	for i := 0; i < 3; i++ {
		load[i], err = strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return load, fmt.Errorf("%w: %q", ErrMalformedLoadAvg, string(data))
		}
	}

	return load, nil
}

// Uptime parses seconds since boot from /proc/uptime.
func (p *ProcSource) Uptime() (float64, error) {
	data, err := os.ReadFile(filepath.Join(p.root, "uptime"))
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedUptime, string(data))
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedUptime, string(data))
	}

	return seconds, nil
}

// Hostname returns the kernel hostname.
func (p *ProcSource) Hostname() (string, error) {
	return os.Hostname()
}

// unescapeMount decodes the octal escapes /proc/mounts uses for spaces
// and tabs in mount points.
func unescapeMount(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}

	replacer := strings.NewReplacer(`\040`, " ", `\011`, "\t", `\012`, "\n", `\134`, `\`)

	return replacer.Replace(s)
}
