package cpu

import (
	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

const (
	// RegisterCount is the number of general purpose registers, V0 to VF.
	RegisterCount = 16
	// StackSize is the maximum call depth.
	StackSize = 16
	// KeyCount is the size of the hex keypad.
	KeyCount = 16
	// InstructionSize is the width of every opcode in bytes.
	InstructionSize = 2

	flagRegister = 0xF
)

// Bus is the memory seen by the CPU. Implementations wrap addresses into
// their valid range.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// CPU holds the whole interpreter state apart from memory. It is not safe
// for concurrent use: Step, TickTimers, key updates and display reads are
// expected to happen on the same goroutine.
type CPU struct {
	v  [RegisterCount]uint8
	i  uint16
	pc uint16

	stack [StackSize]uint16
	sp    uint8

	delayTimer uint8
	soundTimer uint8

	keys [KeyCount]bool

	bus     Bus
	display *video.Display
	rand    RandomSource
	tracer  Tracer

	// metadata
	current Instruction
	cycles  uint64
	fault   *FaultError
}

// Option configures a CPU at construction.
type Option func(*CPU)

// WithRandomSource replaces the source used by the RND instruction.
func WithRandomSource(src RandomSource) Option { return func(c *CPU) { c.rand = src } }

// WithSeed makes the RND instruction deterministic.
func WithSeed(seed uint64) Option { return func(c *CPU) { c.rand = NewSeededSource(seed) } }

// WithTracer receives every instruction right before it is executed.
func WithTracer(t Tracer) Option { return func(c *CPU) { c.tracer = t } }

// New returns a CPU ready to execute from memory.ProgramStart.
func New(bus Bus, display *video.Display, opts ...Option) *CPU {
	c := &CPU{
		bus:     bus,
		display: display,
		pc:      memory.ProgramStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = NewRandomSource()
	}
	return c
}

// Reset puts registers, stack, timers, keys and the display back to their
// power-on state. Memory is left untouched.
func (c *CPU) Reset() {
	c.v = [RegisterCount]uint8{}
	c.i = 0
	c.pc = memory.ProgramStart
	c.stack = [StackSize]uint16{}
	c.sp = 0
	c.delayTimer = 0
	c.soundTimer = 0
	c.keys = [KeyCount]bool{}
	c.current = Instruction{}
	c.cycles = 0
	c.fault = nil
	c.display.Clear()
}

// Step fetches, decodes and executes exactly one instruction.
// It does nothing once the CPU has faulted.
func (c *CPU) Step() {
	if c.fault != nil {
		return
	}

	pc := c.pc
	opcode := bit.Combine(c.bus.Read(pc), c.bus.Read(pc+1))
	c.pc += InstructionSize

	in := Decode(opcode)
	c.current = in
	if c.tracer != nil {
		c.tracer.Trace(pc, in)
	}

	handlers[in.Op](c, in)
	c.cycles++
}

// TickTimers decrements both timers by one, stopping at zero.
// Callers are expected to invoke it at 60Hz.
func (c *CPU) TickTimers() {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
	}
}

// SetKeys replaces the whole keypad state.
func (c *CPU) SetKeys(keys [KeyCount]bool) {
	c.keys = keys
}

// SetKey updates a single key, only the low nibble of key is used.
func (c *CPU) SetKey(key uint8, pressed bool) {
	c.keys[key&0xF] = pressed
}

// Pixel reports whether the display pixel at (x, y) is lit, coordinates wrap.
func (c *CPU) Pixel(x, y int) bool {
	return c.display.Pixel(x, y)
}

// Fault returns the error that stopped execution, or nil.
func (c *CPU) Fault() error {
	if c.fault == nil {
		return nil
	}
	return c.fault
}

func (c *CPU) raise(err error, in Instruction) {
	c.pc -= InstructionSize
	c.fault = &FaultError{Err: err, PC: c.pc, Opcode: in.Opcode}
}

// Debug getter methods for register display
func (c *CPU) GetV(index uint8) uint8            { return c.v[index&0xF] }
func (c *CPU) GetRegisters() [RegisterCount]uint8 { return c.v }
func (c *CPU) GetI() uint16                       { return c.i }
func (c *CPU) GetPC() uint16                      { return c.pc }
func (c *CPU) GetSP() uint8                       { return c.sp }
func (c *CPU) GetDelayTimer() uint8               { return c.delayTimer }
func (c *CPU) GetSoundTimer() uint8               { return c.soundTimer }
func (c *CPU) GetKeys() [KeyCount]bool            { return c.keys }
func (c *CPU) GetCycles() uint64                  { return c.cycles }
func (c *CPU) GetCurrentInstruction() Instruction { return c.current }
func (c *CPU) Display() *video.Display            { return c.display }

// GetStack returns the active part of the call stack, oldest frame first.
func (c *CPU) GetStack() []uint16 {
	out := make([]uint16, c.sp)
	copy(out, c.stack[:c.sp])
	return out
}

// SoundActive reports whether the buzzer should currently sound.
func (c *CPU) SoundActive() bool {
	return c.soundTimer > 0
}
