//go:build darwin

package sysmem

import "golang.org/x/sys/unix"

type platformProbe struct{}

func (platformProbe) ProcessMemoryMB() float64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// macOS reports Maxrss in bytes.
	return float64(ru.Maxrss) / mib
}
