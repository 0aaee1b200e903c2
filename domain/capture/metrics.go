package capture

import (
	"time"
)

// CaptureStats summarises capture loop behaviour for instrumentation.
type CaptureStats struct {
	Frames      uint64
	Failed      uint64
	AvgFrame    time.Duration
	LastFrame   time.Time
	SessionTime time.Duration
}

// StatsRecorder accumulates per-frame timings for a capture session.
// The zero value is ready to use; it is not safe for concurrent use.
type StatsRecorder struct {
	started    time.Time
	frames     uint64
	failed     uint64
	frameNanos uint64
	last       time.Time
}

// Frame records one successfully processed frame that took d end to end.
func (r *StatsRecorder) Frame(now time.Time, d time.Duration) {
	if r == nil {
		return
	}
	if r.started.IsZero() {
		r.started = now.Add(-d)
	}
	r.frames++
	r.frameNanos += uint64(d.Nanoseconds())
	r.last = now
}

// Failure records a read that did not yield a frame.
func (r *StatsRecorder) Failure(now time.Time) {
	if r == nil {
		return
	}
	if r.started.IsZero() {
		r.started = now
	}
	r.failed++
	r.last = now
}

// Stats returns a snapshot of the recorded values.
func (r *StatsRecorder) Stats() CaptureStats {
	if r == nil {
		return CaptureStats{}
	}
	var avg time.Duration
	if r.frames > 0 {
		avg = time.Duration(r.frameNanos / r.frames)
	}
	var session time.Duration
	if !r.started.IsZero() {
		session = r.last.Sub(r.started)
	}
	return CaptureStats{
		Frames:      r.frames,
		Failed:      r.failed,
		AvgFrame:    avg,
		LastFrame:   r.last,
		SessionTime: session,
	}
}
