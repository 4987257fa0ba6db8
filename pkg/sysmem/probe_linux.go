//go:build linux

package sysmem

import (
	"os"

	"golang.org/x/sys/unix"
)

type platformProbe struct{}

func (platformProbe) ProcessMemoryMB() float64 {
	if f, err := os.Open("/proc/self/status"); err == nil {
		defer f.Close()
		if mb, ok := residentFromStatus(f); ok {
			return mb
		}
	}
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// Linux reports Maxrss in KiB.
	return float64(ru.Maxrss) / 1024
}
