//go:build windows

package sysmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type platformProbe struct{}

func (platformProbe) ProcessMemoryMB() float64 {
	var pmc windows.PROCESS_MEMORY_COUNTERS
	err := windows.GetProcessMemoryInfo(
		windows.CurrentProcess(),
		&pmc,
		uint32(unsafe.Sizeof(pmc)),
	)
	if err != nil {
		return 0
	}
	return float64(pmc.WorkingSetSize) / mib
}
