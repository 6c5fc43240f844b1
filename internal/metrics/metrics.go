// Package metrics provides the Recorder interface and a noop implementation.
package metrics

// Recorder is the interface for recording map activity.
type Recorder interface {
	RecordHit(op string)
	RecordMiss(op string)
	RecordError(op string)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordHit(op string)   {}
func (Noop) RecordMiss(op string)  {}
func (Noop) RecordError(op string) {}
