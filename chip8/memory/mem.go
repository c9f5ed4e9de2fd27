package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the size of the whole address space in bytes.
	Size = 0x1000
	// AddressMask truncates any address into the valid range.
	AddressMask uint16 = Size - 1
	// ProgramStart is the entry point, programs are loaded here.
	ProgramStart uint16 = 0x200
	// MaxProgramSize is the room left after the reserved interpreter area.
	MaxProgramSize = Size - int(ProgramStart)
)

// ErrProgramTooLarge is returned when a program doesn't fit above ProgramStart.
var ErrProgramTooLarge = errors.New("program too large")

// Memory is the flat 4KB address space. Every access is masked to 12 bits,
// so out of range addresses wrap around instead of faulting.
type Memory struct {
	data [Size]byte
}

// New creates a memory with the font burned in and nothing else loaded.
func New() *Memory {
	m := &Memory{}
	copy(m.data[FontAddress:], Font[:])
	return m
}

// CheckProgramSize returns ErrProgramTooLarge, wrapped, when program does
// not fit above ProgramStart.
func CheckProgramSize(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, limit is %d (0x%X)", ErrProgramTooLarge, len(program), MaxProgramSize, MaxProgramSize)
	}
	return nil
}

// Load copies program into memory starting at ProgramStart.
// Nothing is written when the program is larger than MaxProgramSize.
func (m *Memory) Load(program []byte) error {
	if err := CheckProgramSize(program); err != nil {
		return err
	}

	copy(m.data[ProgramStart:], program)
	return nil
}

// Read returns the byte at address, wrapped into the address space.
func (m *Memory) Read(address uint16) byte {
	return m.data[address&AddressMask]
}

// Write stores value at address, wrapped into the address space.
func (m *Memory) Write(address uint16, value byte) {
	m.data[address&AddressMask] = value
}

// Slice returns a copy of length bytes starting at address. The window wraps
// at the end of the address space like every other access.
func (m *Memory) Slice(address uint16, length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = m.Read(address + uint16(i))
	}
	return out
}

// Reset clears everything but the font.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	copy(m.data[FontAddress:], Font[:])
}
