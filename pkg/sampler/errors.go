package sampler

import "errors"

var (
	ErrNoCPULine        = errors.New("no aggregate cpu line in stat")
	ErrMalformedCPULine = errors.New("malformed cpu line in stat")
	ErrNoMemTotal       = errors.New("meminfo is missing MemTotal")
	ErrNoMemAvailable   = errors.New("meminfo is missing MemAvailable")
	ErrMalformedLoadAvg = errors.New("malformed loadavg")
	ErrMalformedUptime  = errors.New("malformed uptime")
)
