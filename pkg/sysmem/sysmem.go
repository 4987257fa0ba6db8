// Package sysmem reads point-in-time memory conditions for the calling
// process and the host. Every read goes straight to the OS accounting
// tables at call time; nothing is cached and no state is shared between
// calls, so concurrent use needs no coordination.
//
// Readings are best-effort telemetry. When every probe fails the reading
// degrades to 0 MiB instead of returning an error, so callers on exotic
// platforms keep functioning.
package sysmem

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/mem"
)

const mib = 1024 * 1024

// Probe reports the resident memory of the calling process in MiB.
// The package selects a platform probe at build time; tests substitute
// their own.
type Probe interface {
	ProcessMemoryMB() float64
}

var defaultProbe Probe = platformProbe{}

// Info is a snapshot of host memory conditions in MiB.
//
// UsedRAMMB is the calling process's resident memory, not host-wide
// usage. The total/available counters and the process counter come from
// separate OS reads, so the snapshot is approximate under concurrent
// memory pressure.
type Info struct {
	TotalRAMMB     float64
	AvailableRAMMB float64
	UsedRAMMB      float64
}

// ProcessMemoryMB returns the resident set size of the calling process
// in MiB, or 0 if no probe succeeds.
func ProcessMemoryMB() float64 {
	return defaultProbe.ProcessMemoryMB()
}

// ReadSystemInfo returns total and available physical memory of the
// host along with the calling process's resident memory. Fields that
// cannot be read are 0.
func ReadSystemInfo() Info {
	info := Info{UsedRAMMB: defaultProbe.ProcessMemoryMB()}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return info
	}
	info.TotalRAMMB = float64(vm.Total) / mib
	info.AvailableRAMMB = float64(vm.Available) / mib
	return info
}

// ThresholdExceeded reports whether the calling process's resident
// memory is strictly above maxRAMMB. Callers poll this between
// processing steps at whatever cadence suits them.
func ThresholdExceeded(maxRAMMB float64) bool {
	return exceedsThreshold(defaultProbe, maxRAMMB)
}

func exceedsThreshold(p Probe, maxRAMMB float64) bool {
	return p.ProcessMemoryMB() > maxRAMMB
}

// residentFromStatus scans a /proc/<pid>/status stream for the VmRSS
// line and returns its value converted from KiB to MiB.
func residentFromStatus(r io.Reader) (float64, bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		kb, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return 0, false
		}
		return kb / 1024, true
	}
	return 0, false
}
