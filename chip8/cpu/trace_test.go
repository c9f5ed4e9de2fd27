package cpu

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

func TestSlogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mem := memory.New()
	require.NoError(t, mem.Load([]byte{0xD1, 0x25}))
	c := New(mem, &video.Display{}, WithTracer(NewSlogTracer(logger)))

	c.Step()

	out := buf.String()
	assert.Contains(t, out, "msg=exec")
	assert.Contains(t, out, "pc=0x200")
	assert.Contains(t, out, "opcode=0xD125")
	assert.Contains(t, out, `instr="drw V1, V2, 5"`)
}

func TestSlogTracer_SkipsWhenDebugDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewSlogTracer(logger).Trace(0x200, Decode(0x00E0))

	assert.Empty(t, buf.String())
}

func TestSlogTracer_NilFollowsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tracer := NewSlogTracer(nil)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	tracer.Trace(0x2A0, Decode(0x00EE))

	assert.Contains(t, buf.String(), "pc=0x2A0")
	assert.Contains(t, buf.String(), "instr=ret")
}
