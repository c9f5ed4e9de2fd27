package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is raised by CALL when StackSize frames are in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is raised by RET with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// FaultError records the instruction that stopped the CPU. PC points at the
// faulting instruction.
type FaultError struct {
	Err    error
	PC     uint16
	Opcode uint16
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%v at 0x%03X (opcode 0x%04X)", e.Err, e.PC, e.Opcode)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}
