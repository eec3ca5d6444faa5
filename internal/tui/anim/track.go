package anim

import "time"

// Track is one animated value bound to a pipeline.
type Track struct {
	name     string
	pipeline Pipeline

	value   float64
	from    float64
	to      float64
	start   time.Time
	timing  Timing
	running bool
	onDone  func()
}

// Name returns the track name.
func (t *Track) Name() string { return t.name }

// Pipeline returns the pipeline the track is stepped on.
func (t *Track) Pipeline() Pipeline { return t.pipeline }

// Value returns the current interpolated value.
func (t *Track) Value() float64 { return t.value }

// Target returns the value the track is heading to.
func (t *Track) Target() float64 { return t.to }

// Running reports whether a transition is in flight.
func (t *Track) Running() bool { return t.running }

// begin starts a transition from the current value. Any callback of an
// interrupted transition is dropped.
func (t *Track) begin(to float64, now time.Time, timing Timing, onDone func()) {
	t.from = t.value
	t.to = to
	t.start = now
	t.timing = timing.withDefaults()
	t.running = true
	t.onDone = onDone
}

// step advances the track to now and reports whether it settled.
func (t *Track) step(now time.Time) bool {
	if !t.running {
		return false
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.timing.Duration {
		t.value = t.to
		t.running = false
		return true
	}
	progress := float64(elapsed) / float64(t.timing.Duration)
	if progress < 0 {
		progress = 0
	}
	t.value = t.from + (t.to-t.from)*t.timing.Easing(progress)
	return false
}

func (t *Track) stop() {
	t.running = false
	t.onDone = nil
}

func (t *Track) reset(value float64) {
	t.stop()
	t.value = value
	t.from = value
	t.to = value
}
