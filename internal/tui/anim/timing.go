// Package anim drives timed value transitions on the bubbletea event loop.
//
// Animations never block. Starting one returns a tea.Cmd that schedules the
// next frame; frames come back as FrameMsg and are fed to Driver.Update.
package anim

import (
	"math"
	"time"
)

// Pipeline identifies the render path a track is bound to.
type Pipeline int

const (
	// PipelineLayout drives properties that change layout (height, rows).
	// It is stepped in software at a lower frame rate.
	PipelineLayout Pipeline = iota
	// PipelineCompositor drives pure transforms (rotation, scale).
	PipelineCompositor
)

// Pipelines lists every pipeline.
var Pipelines = []Pipeline{PipelineLayout, PipelineCompositor}

func (p Pipeline) String() string {
	switch p {
	case PipelineCompositor:
		return "compositor"
	default:
		return "layout"
	}
}

// FrameInterval is the time between frames on the pipeline.
func (p Pipeline) FrameInterval() time.Duration {
	if p == PipelineCompositor {
		return time.Second / 60
	}
	return time.Second / 30
}

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear does not ease.
func Linear(t float64) float64 {
	return t
}

// EaseInOutCubic accelerates then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Timing describes one transition.
type Timing struct {
	Duration time.Duration
	Easing   Easing
}

// DefaultTiming is used for card expand and rotate transitions.
var DefaultTiming = Timing{Duration: 300 * time.Millisecond, Easing: EaseInOutCubic}

func (t Timing) withDefaults() Timing {
	if t.Duration <= 0 {
		t.Duration = DefaultTiming.Duration
	}
	if t.Easing == nil {
		t.Easing = DefaultTiming.Easing
	}
	return t
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
