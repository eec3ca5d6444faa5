package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nahw-app/nahw/internal/logging"
)

// FrameMsg is delivered on the event loop when a pipeline frame is due.
type FrameMsg struct {
	DriverID string
	Pipeline Pipeline
	Time     time.Time
}

// Scheduler arranges for fn to be called after d and its result delivered as
// a message. tea.Tick satisfies it.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Driver.
type Option func(*Driver)

// WithClock overrides the clock used to timestamp animation starts.
func WithClock(clock Clock) Option {
	return func(d *Driver) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// WithScheduler overrides how frames are scheduled.
func WithScheduler(schedule Scheduler) Option {
	return func(d *Driver) {
		if schedule != nil {
			d.schedule = schedule
		}
	}
}

// WithLogger sets the driver logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// Driver owns a set of tracks and their frame loops. Each pipeline has at
// most one frame pending at a time, and the pipelines tick independently, so
// tracks on different pipelines are not frame-synchronized.
//
// A Driver is not safe for concurrent use; it lives on the event loop.
type Driver struct {
	id       string
	clock    Clock
	schedule Scheduler
	logger   zerolog.Logger

	tracks      []*Track
	pending     map[Pipeline]bool
	dispatching bool
	released    bool
}

// NewDriver creates a driver with a unique ID.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		id:       uuid.NewString(),
		clock:    systemClock{},
		schedule: tea.Tick,
		logger:   logging.Component("anim"),
		pending:  make(map[Pipeline]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the driver ID frames are addressed to.
func (d *Driver) ID() string { return d.id }

// NewTrack registers a track with an initial value.
func (d *Driver) NewTrack(name string, pipeline Pipeline, initial float64) *Track {
	track := &Track{name: name, pipeline: pipeline, value: initial, from: initial, to: initial}
	d.tracks = append(d.tracks, track)
	return track
}

// Animate starts moving track toward to from its current value and returns
// the command that schedules the next frame, if one is not already pending.
// onDone runs on the event loop when the track settles; it is dropped if the
// transition is interrupted or the driver is released first.
func (d *Driver) Animate(track *Track, to float64, timing Timing, onDone func()) tea.Cmd {
	if d.released || track == nil {
		return nil
	}
	track.begin(to, d.clock.Now(), timing, onDone)
	if d.dispatching {
		// Update arms pipelines once callbacks have run.
		return nil
	}
	return d.arm(track.Pipeline())
}

// Set jumps track to value without animating.
func (d *Driver) Set(track *Track, value float64) {
	if track == nil {
		return
	}
	track.reset(value)
}

// Update steps the tracks of the pipeline named by a FrameMsg addressed to
// this driver. Other messages are ignored.
func (d *Driver) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.DriverID != d.id {
		return nil
	}
	if d.released {
		return nil
	}

	d.pending[frame.Pipeline] = false
	now := frame.Time
	if now.IsZero() {
		now = d.clock.Now()
	}

	var settled []func()
	for _, track := range d.tracks {
		if track.pipeline != frame.Pipeline || !track.running {
			continue
		}
		if track.step(now) && track.onDone != nil {
			settled = append(settled, track.onDone)
			track.onDone = nil
		}
	}

	d.dispatching = true
	for _, fn := range settled {
		if d.released {
			break
		}
		fn()
	}
	d.dispatching = false

	if d.released {
		return nil
	}

	var cmds []tea.Cmd
	for _, pipeline := range Pipelines {
		if d.runningOn(pipeline) {
			cmds = append(cmds, d.arm(pipeline))
		}
	}
	return tea.Batch(cmds...)
}

// Running reports whether any track is in flight.
func (d *Driver) Running() bool {
	for _, pipeline := range Pipelines {
		if d.runningOn(pipeline) {
			return true
		}
	}
	return false
}

// Release stops every track and drops pending callbacks. Frames already in
// flight are ignored when they arrive, and later Animate calls do nothing.
// Release is idempotent.
func (d *Driver) Release() {
	if d.released {
		return
	}
	d.released = true
	for _, track := range d.tracks {
		track.stop()
	}
	for pipeline := range d.pending {
		d.pending[pipeline] = false
	}
	d.logger.Debug().Str("driver_id", d.id).Msg("animation driver released")
}

// Released reports whether Release was called.
func (d *Driver) Released() bool { return d.released }

func (d *Driver) runningOn(pipeline Pipeline) bool {
	for _, track := range d.tracks {
		if track.pipeline == pipeline && track.running {
			return true
		}
	}
	return false
}

func (d *Driver) arm(pipeline Pipeline) tea.Cmd {
	if d.pending[pipeline] {
		return nil
	}
	d.pending[pipeline] = true
	id := d.id
	return d.schedule(pipeline.FrameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{DriverID: id, Pipeline: pipeline, Time: t}
	})
}
