package metrics

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics accumulates counters for one watch session.
type Metrics struct {
	sampleCount   int64
	exceededCount int64
	startTime     time.Time
	peakBits      uint64
	lastSample    time.Time
	mu            sync.RWMutex
}

func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordSample tracks one memory observation.
func (m *Metrics) RecordSample(processMB float64, exceeded bool) {
	atomic.AddInt64(&m.sampleCount, 1)
	if exceeded {
		atomic.AddInt64(&m.exceededCount, 1)
	}

	for {
		old := atomic.LoadUint64(&m.peakBits)
		if processMB <= math.Float64frombits(old) {
			break
		}
		if atomic.CompareAndSwapUint64(&m.peakBits, old, math.Float64bits(processMB)) {
			break
		}
	}

	m.mu.Lock()
	m.lastSample = time.Now()
	m.mu.Unlock()
}

func (m *Metrics) SampleCount() int64 {
	return atomic.LoadInt64(&m.sampleCount)
}

func (m *Metrics) ExceededCount() int64 {
	return atomic.LoadInt64(&m.exceededCount)
}

func (m *Metrics) PeakProcessMB() float64 {
	return math.Float64frombits(atomic.LoadUint64(&m.peakBits))
}

// GetStats returns a snapshot of the session for reporting.
func (m *Metrics) GetStats() map[string]string {
	m.mu.RLock()
	lastSample := m.lastSample
	m.mu.RUnlock()

	stats := map[string]string{
		"uptime_in_seconds":   fmt.Sprintf("%d", int(time.Since(m.startTime).Seconds())),
		"samples_taken":       fmt.Sprintf("%d", m.SampleCount()),
		"threshold_exceeded":  fmt.Sprintf("%d", m.ExceededCount()),
		"peak_process_ram_mb": fmt.Sprintf("%.2f", m.PeakProcessMB()),
	}
	if !lastSample.IsZero() {
		stats["last_sample"] = lastSample.Format(time.RFC3339)
	}
	return stats
}
