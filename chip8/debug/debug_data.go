package debug

import "github.com/valerio/go-chip8/chip8/cpu"

// CPUState contains all CPU register information for snapshots and logs
type CPUState struct {
	V          [cpu.RegisterCount]uint8
	I          uint16
	PC         uint16
	SP         uint8
	Stack      []uint16
	DelayTimer uint8
	SoundTimer uint8
	Keys       [cpu.KeyCount]bool
	Cycles     uint64
	Fault      error
}

// CompleteDebugData contains the emulator state exposed to backends
type CompleteDebugData struct {
	CPU    *CPUState
	Frames uint64
	Paused bool
}

// ExtractCPUState copies the observable state of c.
func ExtractCPUState(c *cpu.CPU) *CPUState {
	return &CPUState{
		V:          c.GetRegisters(),
		I:          c.GetI(),
		PC:         c.GetPC(),
		SP:         c.GetSP(),
		Stack:      c.GetStack(),
		DelayTimer: c.GetDelayTimer(),
		SoundTimer: c.GetSoundTimer(),
		Keys:       c.GetKeys(),
		Cycles:     c.GetCycles(),
		Fault:      c.Fault(),
	}
}
