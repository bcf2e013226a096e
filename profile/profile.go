// Package profile wires a command line flag to either pkg/profile or Gio's
// frame-timing recorder, so that example programs can measure the cost of
// input dispatch without bespoke setup.
package profile

import (
	"log"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
)

// Kind selects what to profile.
type Kind string

const (
	None      Kind = "none"
	CPU       Kind = "cpu"
	Memory    Kind = "mem"
	Block     Kind = "block"
	Goroutine Kind = "goroutine"
	Mutex     Kind = "mutex"
	Trace     Kind = "trace"
	// Frames records per-frame timing with Gio's CSV recorder, which is
	// the kind to reach for when measuring input latency.
	Frames Kind = "frames"
)

// Usage describes the accepted flag values, for use in flag declarations.
const Usage = "profile the application. One of [none, cpu, mem, block, goroutine, mutex, trace, frames]"

// Recorder is an active profiling session. The zero value records nothing.
type Recorder struct {
	kind   Kind
	stop   func()
	frames *profiling.CSVTimingRecorder
}

// Start begins profiling of the given kind. Unknown kinds record nothing.
func Start(kind Kind) *Recorder {
	r := &Recorder{kind: kind}
	switch kind {
	case CPU:
		r.stop = profile.Start(profile.CPUProfile).Stop
	case Memory:
		r.stop = profile.Start(profile.MemProfile).Stop
	case Block:
		r.stop = profile.Start(profile.BlockProfile).Stop
	case Goroutine:
		r.stop = profile.Start(profile.GoroutineProfile).Stop
	case Mutex:
		r.stop = profile.Start(profile.MutexProfile).Stop
	case Trace:
		r.stop = profile.Start(profile.TraceProfile).Stop
	case Frames:
		frames, err := profiling.NewRecorder(nil)
		if err != nil {
			log.Printf("starting frame recorder: %v", err)
			break
		}
		r.frames = frames
	}
	return r
}

// Frame records timing for the current frame when frame profiling is
// active, and otherwise does nothing.
func (r *Recorder) Frame(gtx layout.Context) {
	if r.frames != nil {
		r.frames.Profile(gtx)
	}
}

// Stop ends the profiling session and flushes its output.
func (r *Recorder) Stop() {
	if r.stop != nil {
		r.stop()
	}
	if r.frames != nil {
		if err := r.frames.Stop(); err != nil {
			log.Printf("stopping frame recorder: %v", err)
		}
	}
}
