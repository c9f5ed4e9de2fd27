package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

func newTestCPU(t *testing.T, program ...byte) (*cpu.CPU, *memory.Memory) {
	t.Helper()
	mem := memory.New()
	require.NoError(t, mem.Load(program))
	return cpu.New(mem, &video.Display{}, cpu.WithSeed(1)), mem
}

func TestExtractCPUState(t *testing.T) {
	// ld V3, 0x42; call 0x206; ...; ld I, 0x123
	c, _ := newTestCPU(t, 0x63, 0x42, 0x22, 0x06, 0x00, 0x00, 0xA1, 0x23)
	c.SetKey(0xB, true)
	for range 3 {
		c.Step()
	}

	state := ExtractCPUState(c)
	assert.Equal(t, uint8(0x42), state.V[3])
	assert.Equal(t, uint16(0x123), state.I)
	assert.Equal(t, uint16(0x208), state.PC)
	assert.Equal(t, uint8(1), state.SP)
	assert.Equal(t, []uint16{0x204}, state.Stack)
	assert.True(t, state.Keys[0xB])
	assert.Equal(t, uint64(3), state.Cycles)
	assert.NoError(t, state.Fault)
}

func TestSaveFramePNGToDir(t *testing.T) {
	fb := video.NewFrameBuffer()
	fb.Fill(video.BlackColor)
	fb.SetPixel(3, 4, video.WhiteColor)

	path, err := SaveFramePNGToDir(fb, "test", t.TempDir())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, video.Width, img.Bounds().Dx())
	assert.Equal(t, video.Height, img.Bounds().Dy())

	r, g, b, _ := img.At(3, 4).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0xFFFF, 0xFFFF}, []uint32{r, g, b})
	r, _, _, _ = img.At(0, 0).RGBA()
	assert.Zero(t, r)
}

func TestTextSnapshot(t *testing.T) {
	c, _ := newTestCPU(t, 0xA0, 0x50, 0xD0, 0x05) // ld I, 0x050; drw V0, V0, 5
	c.Step()
	c.Step()

	renderer := video.NewRenderer(false)
	frame := renderer.Render(c.Display())

	text := FormatTextSnapshot(frame, ExtractCPUState(c))
	lines := strings.Split(text, "\n")

	// glyph 0 is F0 90 90 90 F0
	assert.Equal(t, "|█▀▀█", string([]rune(lines[1])[:5]))
	assert.Equal(t, "|█  █", string([]rune(lines[2])[:5]))
	assert.Equal(t, "|▀▀▀▀", string([]rune(lines[3])[:5]))
	assert.Contains(t, text, "PC=0x204 I=0x050")
	assert.Contains(t, text, "VF=00")

	path, err := SaveTextSnapshot(frame, nil, "frame", t.TempDir())
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "PC=")
}

func TestSaveFramePNG_ExactName(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveFramePNG(video.NewFrameBuffer(), "pong_frame_7", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pong_frame_7.png"), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
