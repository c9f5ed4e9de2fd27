package cpu

import (
	"context"
	"fmt"
	"log/slog"
)

// Tracer observes instructions as they are executed.
type Tracer interface {
	Trace(pc uint16, in Instruction)
}

// TracerFunc adapts a plain function to Tracer.
type TracerFunc func(pc uint16, in Instruction)

func (f TracerFunc) Trace(pc uint16, in Instruction) { f(pc, in) }

// SlogTracer logs every instruction at debug level.
type SlogTracer struct {
	logger *slog.Logger
}

// NewSlogTracer creates a tracer writing to logger. A nil logger means
// whatever slog.Default is at the time of each trace.
func NewSlogTracer(logger *slog.Logger) *SlogTracer {
	return &SlogTracer{logger: logger}
}

func (t *SlogTracer) Trace(pc uint16, in Instruction) {
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	logger.Debug("exec",
		"pc", fmt.Sprintf("0x%03X", pc),
		"opcode", fmt.Sprintf("0x%04X", in.Opcode),
		"instr", in.String())
}
