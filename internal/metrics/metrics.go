// Package metrics provides the Recorder interface and a noop implementation.
package metrics

import "time"

// Recorder is the interface for recording operational metrics.
type Recorder interface {
	RecordHit(backend string)
	RecordMiss(backend string)
	RecordLatency(backend, op string, d time.Duration)
	RecordError(backend, op string)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordHit(backend string)                          {}
func (Noop) RecordMiss(backend string)                         {}
func (Noop) RecordLatency(backend, op string, d time.Duration) {}
func (Noop) RecordError(backend, op string)                    {}
