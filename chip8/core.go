package chip8

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/timing"
	"github.com/valerio/go-chip8/chip8/video"
)

// Emulator represents the root struct and entry point for running the emulation
type Emulator struct {
	mem      *memory.Memory
	display  *video.Display
	cpu      *cpu.CPU
	renderer *video.Renderer
	budget   *timing.Budget
	limiter  timing.Limiter

	program []byte
	paused  bool
	frames  uint64

	// construction settings, kept for Reset
	ips     int
	fade    bool
	cpuOpts []cpu.Option
}

// Option configures an Emulator.
type Option func(*Emulator)

// WithInstructionsPerSecond sets the interpreter speed, 500 by default.
func WithInstructionsPerSecond(ips int) Option {
	return func(e *Emulator) { e.ips = ips }
}

// WithLimiter paces RunUntilFrame, by default frames are not limited.
func WithLimiter(l timing.Limiter) Option {
	return func(e *Emulator) { e.limiter = l }
}

// WithCPUOptions forwards options to the CPU, e.g. a seeded random source.
func WithCPUOptions(opts ...cpu.Option) Option {
	return func(e *Emulator) { e.cpuOpts = append(e.cpuOpts, opts...) }
}

// WithFade toggles the phosphor fade-out of erased pixels, on by default.
func WithFade(fade bool) Option {
	return func(e *Emulator) { e.fade = fade }
}

// New creates a new emulator instance with no program loaded.
func New(opts ...Option) *Emulator {
	e := &Emulator{
		ips:  timing.InstructionsPerSecond,
		fade: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.limiter == nil {
		e.limiter = timing.NewNoOpLimiter()
	}

	e.mem = memory.New()
	e.display = &video.Display{}
	e.cpu = cpu.New(e.mem, e.display, e.cpuOpts...)
	e.renderer = video.NewRenderer(e.fade)
	e.budget = timing.NewBudget(e.ips)

	return e
}

// NewWithProgram creates a new emulator with program loaded at 0x200.
func NewWithProgram(program []byte, opts ...Option) (*Emulator, error) {
	e := New(opts...)
	if err := e.LoadProgram(program); err != nil {
		return nil, err
	}
	return e, nil
}

// NewWithFile creates a new emulator instance and loads the file specified into it.
func NewWithFile(path string, opts ...Option) (*Emulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM: %w", err)
	}

	e, err := NewWithProgram(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load ROM %s: %w", path, err)
	}

	slog.Info("Loaded ROM", "path", path, "bytes", len(data))
	return e, nil
}

// LoadProgram resets the machine and loads program at 0x200. A program
// that does not fit is rejected and the machine is left untouched.
func (e *Emulator) LoadProgram(program []byte) error {
	if err := memory.CheckProgramSize(program); err != nil {
		return err
	}
	e.mem.Reset()
	if err := e.mem.Load(program); err != nil {
		return err
	}
	e.program = append([]byte(nil), program...)
	e.resetMachine()
	return nil
}

// Reset restarts the loaded program from a clean machine.
func (e *Emulator) Reset() {
	e.mem.Reset()
	// the program fit before, it still does
	_ = e.mem.Load(e.program)
	e.resetMachine()
	slog.Info("Emulator reset")
}

func (e *Emulator) resetMachine() {
	e.cpu.Reset()
	e.renderer = video.NewRenderer(e.fade)
	e.budget.Reset()
	e.limiter.Reset()
	e.paused = false
	e.frames = 0
}

// RunUntilFrame executes one 60Hz frame worth of instructions, ticks the
// timers once and renders the display. It returns the CPU fault, if any;
// a faulted emulator stays faulted until Reset.
func (e *Emulator) RunUntilFrame() error {
	if e.paused {
		e.limiter.WaitForNextFrame()
		return nil
	}

	for n := e.budget.Next(); n > 0; n-- {
		e.cpu.Step()
		if err := e.cpu.Fault(); err != nil {
			return err
		}
	}

	e.cpu.TickTimers()
	e.renderer.Render(e.display)
	e.frames++
	e.limiter.WaitForNextFrame()

	return nil
}

// GetCurrentFrame returns the last rendered frame.
func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.renderer.Frame()
}

// HandleAction applies an action coming from a backend. Keypad actions
// follow pressed, emulator controls only react to presses.
func (e *Emulator) HandleAction(act action.Action, pressed bool) {
	if act.IsKeypad() {
		e.cpu.SetKey(act.Key(), pressed)
		return
	}
	if !pressed {
		return
	}

	switch act {
	case action.EmulatorPauseToggle:
		e.TogglePause()
	case action.EmulatorReset:
		e.Reset()
	}
}

// TogglePause stops or resumes execution, timers stop while paused.
func (e *Emulator) TogglePause() {
	e.paused = !e.paused
	if e.paused {
		slog.Info("Emulation paused", "pc", fmt.Sprintf("0x%03X", e.cpu.GetPC()))
	} else {
		e.limiter.Reset()
		slog.Info("Emulation resumed")
	}
}

// Paused reports whether execution is paused.
func (e *Emulator) Paused() bool { return e.paused }

// SoundActive reports whether the buzzer should sound this frame.
func (e *Emulator) SoundActive() bool { return e.cpu.SoundActive() }

// CPU exposes the interpreter core.
func (e *Emulator) CPU() *cpu.CPU { return e.cpu }

// GetFrameCount returns the number of frames run since the last reset.
func (e *Emulator) GetFrameCount() uint64 { return e.frames }

// GetInstructionCount returns the number of instructions executed since the last reset.
func (e *Emulator) GetInstructionCount() uint64 { return e.cpu.GetCycles() }

// ExtractDebugData returns a copy of the state shown by backends and snapshots.
func (e *Emulator) ExtractDebugData() *debug.CompleteDebugData {
	return &debug.CompleteDebugData{
		CPU:    debug.ExtractCPUState(e.cpu),
		Frames: e.frames,
		Paused: e.paused,
	}
}
