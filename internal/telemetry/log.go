// Package telemetry persists memory samples as an append-only
// JSON-lines log shared between pipeline workers.
package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// Sample is one point-in-time memory observation.
type Sample struct {
	Time        time.Time `json:"time"`
	ProcessMB   float64   `json:"process_mb"`
	TotalMB     float64   `json:"total_mb"`
	AvailableMB float64   `json:"available_mb"`
	ThresholdMB float64   `json:"threshold_mb"`
	Exceeded    bool      `json:"exceeded"`
}

// Log appends samples to a file. A sidecar flock serializes writers
// across processes; the mutex serializes them within one.
type Log struct {
	file *os.File
	lock *flock.Flock
	mu   sync.Mutex
}

func NewLog(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	return &Log{
		file: f,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Append writes one sample and syncs it to disk.
func (l *Log) Append(s Sample) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.lock.Lock(); err != nil {
		return err
	}
	defer l.lock.Unlock()

	line, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if _, err := l.file.Write(append(line, '\n')); err != nil {
		return err
	}
	return l.file.Sync()
}

// Read replays every sample in the log through callback, oldest first.
func (l *Log) Read(callback func(s Sample)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.lock.RLock(); err != nil {
		return err
	}
	defer l.lock.Unlock()

	if _, err := l.file.Seek(0, 0); err != nil {
		return err
	}

	sc := bufio.NewScanner(l.file)
	for sc.Scan() {
		var s Sample
		if err := json.Unmarshal(sc.Bytes(), &s); err != nil {
			return err
		}
		callback(s)
	}
	return sc.Err()
}
