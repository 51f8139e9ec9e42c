// Package reporter periodically logs the gate's admission statistics.
//
// The gate's counters live on the simulation goroutine and are not safe to
// read from anywhere else, so the reporter never touches them directly:
// each time its timer fires it hands a snapshot-and-reset closure to a
// host-supplied Scheduler, which is expected to run the closure on the
// simulation goroutine (typically by queueing it into the tick loop).
package reporter

import (
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/tickgate/pkg/tickgate"
)

// DefaultInterval is how often stats are reported when not overridden.
const DefaultInterval = 5 * time.Second

// Scheduler marshals fn onto the goroutine that owns the gate. The host
// decides how: a buffered channel drained by the tick loop, a job queue,
// or a direct call in single-goroutine tests.
type Scheduler func(fn func())

// Reporter logs a gate snapshot on a fixed interval, resetting the window
// counters with each report. Reports are emitted only while the gate's
// debug flag is set; the timer itself runs regardless so flipping debug on
// takes effect without restarting anything.
type Reporter struct {
	gate     *tickgate.Gate
	schedule Scheduler
	interval time.Duration
	log      *zap.SugaredLogger
}

// Option is a functional option for configuring a Reporter.
type Option func(*Reporter)

// WithInterval sets the reporting interval.
func WithInterval(interval time.Duration) Option {
	return func(r *Reporter) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithLogger sets the logger used for reports.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Reporter) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a reporter for the given gate. schedule must hand closures
// to the goroutine that owns the gate.
func New(gate *tickgate.Gate, schedule Scheduler, opts ...Option) *Reporter {
	r := &Reporter{
		gate:     gate,
		schedule: schedule,
		interval: DefaultInterval,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the reporting timer. Call the returned function to stop it.
func (r *Reporter) Start() func() {
	ticker := time.NewTicker(r.interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				r.schedule(r.Report)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}

// Report emits one stats line and closes the reporting window. It must run
// on the goroutine that owns the gate; Start arranges that through the
// Scheduler, and tests may call it directly.
func (r *Reporter) Report() {
	if !r.gate.Config().Debug {
		return
	}

	snap := r.gate.SnapshotAndReset()
	r.log.Infof(
		"admission stats: maxPerTick=%d, cooldown=%d | processed=%d, cooldownSkip=%d, throttleSkip=%d, skipRate=%.1f%%, despawnClean=%d, expiredClean=%d, tracked=%d",
		snap.MaxPerTick, snap.CooldownTicks,
		snap.Stats.Processed, snap.Stats.CooldownSkipped, snap.Stats.ThrottleSkipped,
		snap.SkipRate(), snap.Stats.DespawnCleaned, snap.Stats.ExpiredCleaned,
		snap.Tracked,
	)
}
