package render

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/video"
)

func TestLogBuffer_Wraps(t *testing.T) {
	lb := NewLogBuffer(3)
	assert.Nil(t, lb.GetRecent(0))

	for _, msg := range []string{"a", "b", "c", "d"} {
		lb.Add(LogEntry{Message: msg})
	}

	recent := lb.GetRecent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "b", recent[2].Message)

	assert.Len(t, lb.GetRecent(2), 2)

	lb.Clear()
	assert.Nil(t, lb.GetRecent(0))
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	logger := slog.New(NewLogBufferHandler(lb, level))

	logger.Debug("hidden")
	logger.Info("loaded", "bytes", 132)
	logger.With("pc", "0x200").WithGroup("cpu").Warn("fault", "op", "ret")

	recent := lb.GetRecent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "fault pc=0x200 cpu.op=ret", recent[0].Message)
	assert.Equal(t, slog.LevelWarn, recent[0].Level)
	assert.Equal(t, "loaded bytes=132", recent[1].Message)

	level.Set(slog.LevelDebug)
	logger.Debug("visible")
	assert.Equal(t, "visible", lb.GetRecent(1)[0].Message)
}

func TestFormatLogEntry(t *testing.T) {
	entry := LogEntry{
		Time:    time.Date(2024, 1, 1, 13, 4, 5, 0, time.UTC),
		Level:   slog.LevelError,
		Message: "boom",
	}
	assert.Equal(t, "13:04:05 [ERR] boom", FormatLogEntry(entry))
}

func TestGetHalfBlockChar(t *testing.T) {
	assert.Equal(t, '█', GetHalfBlockChar(true, true))
	assert.Equal(t, '▀', GetHalfBlockChar(true, false))
	assert.Equal(t, '▄', GetHalfBlockChar(false, true))
	assert.Equal(t, ' ', GetHalfBlockChar(false, false))
}

func TestPixelToShade(t *testing.T) {
	assert.Equal(t, 3, PixelToShade(uint32(video.WhiteColor)))
	assert.Equal(t, 0, PixelToShade(uint32(video.BlackColor)))
	assert.Equal(t, 2, PixelToShade(uint32(video.Gray(0x99))))
	assert.True(t, IsLit(uint32(video.Gray(0x99))))
	assert.False(t, IsLit(uint32(video.Gray(0x33))))
}

func TestRenderFrameToHalfBlocks(t *testing.T) {
	fb := video.NewFrameBuffer()
	fb.Fill(video.BlackColor)
	fb.SetPixel(0, 0, video.WhiteColor)
	fb.SetPixel(1, 1, video.WhiteColor)
	fb.SetPixel(2, 0, video.WhiteColor)
	fb.SetPixel(2, 1, video.WhiteColor)

	lines := RenderFrameToHalfBlocks(fb.ToSlice(), video.Width, video.Height)
	require.Len(t, lines, video.Height/2)
	assert.Equal(t, "▀▄█ ", string([]rune(lines[0])[:4]))

	assert.Empty(t, RenderFrameToHalfBlocks(nil, video.Width, video.Height))
}
