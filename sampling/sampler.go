// Package sampling provides hooks that observe the clock's per-tick display
// frames. A host harness attaches a sampler to the clock component and reads
// the output downsampled, so long simulated runs stay inspectable without
// storing every tick.
package sampling

import (
	"log"
	"sync"

	"github.com/tickworks/segclock/datarecording"
	"github.com/tickworks/segclock/display"
	"github.com/tickworks/segclock/driver"
	"github.com/tickworks/segclock/sim"
)

// A MemorySampler keeps every Nth frame in memory, up to a fixed capacity.
// Once the capacity is reached the oldest samples are dropped.
type MemorySampler struct {
	lock     sync.Mutex
	every    uint64
	capacity int
	seen     uint64
	frames   []display.Frame
}

// NewMemorySampler creates a sampler that keeps every `every`-th frame and at
// most capacity frames. It panics if every is 0 or capacity is not positive.
func NewMemorySampler(every uint64, capacity int) *MemorySampler {
	if every == 0 {
		panic("sampling interval must be at least 1")
	}
	if capacity < 1 {
		panic("sampler capacity must be positive")
	}

	return &MemorySampler{
		every:    every,
		capacity: capacity,
	}
}

// Func records the frame if it falls on the sampling interval.
func (s *MemorySampler) Func(ctx sim.HookCtx) {
	if ctx.Pos != driver.HookPosFrame {
		return
	}

	frame := ctx.Item.(display.Frame)

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.seen%s.every == 0 {
		if len(s.frames) == s.capacity {
			s.frames = s.frames[1:]
		}
		s.frames = append(s.frames, frame)
	}
	s.seen++
}

// Frames returns the samples collected so far, oldest first.
func (s *MemorySampler) Frames() []display.Frame {
	s.lock.Lock()
	defer s.lock.Unlock()

	frames := make([]display.Frame, len(s.frames))
	copy(frames, s.frames)
	return frames
}

// FrameRecord is the flat shape of a frame as stored by the data recorder.
type FrameRecord struct {
	Time         float64
	ActiveDigit  int
	Segments     uint8
	AnodeMask    uint8
	DecimalPoint uint8
}

// A RecorderSampler streams every Nth frame into a data recorder table.
type RecorderSampler struct {
	lock     sync.Mutex
	every    uint64
	seen     uint64
	recorder datarecording.DataRecorder
	table    string
}

// NewRecorderSampler creates a sampler that writes every `every`-th frame to
// the given table, creating the table. It panics if every is 0.
func NewRecorderSampler(
	recorder datarecording.DataRecorder,
	table string,
	every uint64,
) *RecorderSampler {
	if every == 0 {
		panic("sampling interval must be at least 1")
	}

	recorder.CreateTable(table, FrameRecord{})

	return &RecorderSampler{
		every:    every,
		recorder: recorder,
		table:    table,
	}
}

// Func records the frame if it falls on the sampling interval.
func (s *RecorderSampler) Func(ctx sim.HookCtx) {
	if ctx.Pos != driver.HookPosFrame {
		return
	}

	frame := ctx.Item.(display.Frame)

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.seen%s.every == 0 {
		s.recorder.InsertData(s.table, FrameRecord{
			Time:         float64(frame.Time),
			ActiveDigit:  frame.ActiveDigit,
			Segments:     uint8(frame.Segments),
			AnodeMask:    frame.AnodeMask,
			DecimalPoint: frame.DecimalPoint,
		})
	}
	s.seen++
}

// FrameLogger is a hook that writes every frame to a logger.
type FrameLogger struct {
	sim.LogHookBase
}

// NewFrameLogger returns a FrameLogger which will write into the logger.
func NewFrameLogger(logger *log.Logger) *FrameLogger {
	h := new(FrameLogger)
	h.Logger = logger
	return h
}

// Func writes the frame information into the logger.
func (h *FrameLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != driver.HookPosFrame {
		return
	}

	frame := ctx.Item.(display.Frame)
	h.Logger.Printf("%.10f, digit %d, segments %07b, anodes %04b",
		frame.Time, frame.ActiveDigit,
		uint8(frame.Segments), frame.AnodeMask)
}
