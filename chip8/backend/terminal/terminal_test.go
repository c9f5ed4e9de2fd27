package terminal

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/debug"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
)

type fakeProvider struct {
	data *debug.CompleteDebugData
}

func (f *fakeProvider) ExtractDebugData() *debug.CompleteDebugData { return f.data }

func newTestBackend(t *testing.T, cfg backend.BackendConfig) (*Backend, tcell.SimulationScreen, *time.Time) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	clock := time.Unix(0, 0)
	sim := tcell.NewSimulationScreen("UTF-8")
	b := NewWithScreen(sim)
	b.now = func() time.Time { return clock }
	require.NoError(t, b.Init(cfg))
	sim.SetSize(120, 40)
	t.Cleanup(func() { _ = b.Cleanup() })

	return b, sim, &clock
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(runes[0])
	}
	return sb.String()
}

func TestTerminal_KeypadPressHoldRelease(t *testing.T) {
	b, sim, clock := newTestBackend(t, backend.BackendConfig{Title: "test"})
	frame := video.NewFrameBuffer()

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []backend.InputEvent{{Action: action.Key0, Type: event.Press}}, events)

	*clock = clock.Add(50 * time.Millisecond)
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []backend.InputEvent{{Action: action.Key0, Type: event.Hold}}, events)

	*clock = clock.Add(keyTimeout)
	events, err = b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []backend.InputEvent{{Action: action.Key0, Type: event.Release}}, events)
}

func TestTerminal_ControlKeys(t *testing.T) {
	b, sim, _ := newTestBackend(t, backend.BackendConfig{})
	frame := video.NewFrameBuffer()

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone) // unmapped
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Equal(t, []backend.InputEvent{
		{Action: action.EmulatorPauseToggle, Type: event.Press},
		{Action: action.EmulatorQuit, Type: event.Press},
	}, events)
}

func TestTerminal_RendersHalfBlocks(t *testing.T) {
	b, sim, _ := newTestBackend(t, backend.BackendConfig{Title: "pong"})

	frame := video.NewFrameBuffer()
	frame.Fill(video.BlackColor)
	frame.SetPixel(0, 0, video.WhiteColor)

	_, err := b.Update(frame)
	require.NoError(t, err)

	cells, w, _ := sim.GetContents()
	cell := cells[1*w+1]
	require.NotEmpty(t, cell.Runes)
	assert.Equal(t, '▀', cell.Runes[0])

	fg, bg, _ := cell.Style.Decompose()
	r, _, _ := fg.RGB()
	assert.Equal(t, int32(0xFF), r)
	r, _, _ = bg.RGB()
	assert.Equal(t, int32(0), r)

	assert.Contains(t, screenRow(sim, 0), " pong ")
}

func TestTerminal_TitleStatus(t *testing.T) {
	provider := &fakeProvider{data: &debug.CompleteDebugData{Paused: true}}
	b, sim, _ := newTestBackend(t, backend.BackendConfig{Title: "pong", DebugProvider: provider})
	frame := video.NewFrameBuffer()

	b.SetBuzzer(true)
	_, err := b.Update(frame)
	require.NoError(t, err)
	assert.Contains(t, screenRow(sim, 0), " pong [paused] [beep] ")

	provider.data.Paused = false
	b.SetBuzzer(false)
	_, err = b.Update(frame)
	require.NoError(t, err)
	assert.NotContains(t, screenRow(sim, 0), "paused")
	assert.NotContains(t, screenRow(sim, 0), "beep")
}

func TestTerminal_LogPanel(t *testing.T) {
	b, sim, _ := newTestBackend(t, backend.BackendConfig{})

	slog.Warn("stack overflow")
	_, err := b.Update(video.NewFrameBuffer())
	require.NoError(t, err)

	// newest first
	assert.Contains(t, screenRow(sim, 1), "[WRN] stack overflow")
	assert.Contains(t, screenRow(sim, 2), "[INF] Terminal backend initialized")
}

func TestTerminal_ChangeLogLevel(t *testing.T) {
	b, _, _ := newTestBackend(t, backend.BackendConfig{})

	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.logLevel)
	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.logLevel)

	b.HandleAction(action.DebugLogLevelDecrease)
	b.HandleAction(action.DebugLogLevelDecrease)
	assert.Equal(t, slog.LevelWarn, b.logLevel)
}

func TestTerminalImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*Backend)(nil)
	var _ backend.ActionHandler = (*Backend)(nil)
	var _ backend.Buzzer = (*Backend)(nil)
}

func TestTerminal_UppercaseKeys(t *testing.T) {
	b, sim, _ := newTestBackend(t, backend.BackendConfig{})
	frame := video.NewFrameBuffer()

	sim.InjectKey(tcell.KeyRune, 'V', tcell.ModShift)
	sim.InjectKey(tcell.KeyRune, 'P', tcell.ModShift)

	events, err := b.Update(frame)
	require.NoError(t, err)
	assert.Contains(t, events, backend.InputEvent{Action: action.KeyF, Type: event.Press})
	assert.Contains(t, events, backend.InputEvent{Action: action.EmulatorPauseToggle, Type: event.Press})
}

func TestTerminal_CleanupRestoresLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out strings.Builder
	slog.SetDefault(slog.New(slog.NewTextHandler(&out, nil)))

	sim := tcell.NewSimulationScreen("UTF-8")
	b := NewWithScreen(sim)
	require.NoError(t, b.Init(backend.BackendConfig{}))

	slog.Info("while running")
	assert.NotContains(t, out.String(), "while running")

	require.NoError(t, b.Cleanup())
	slog.Error("emulation stopped", "error", "stack overflow")
	assert.Contains(t, out.String(), "emulation stopped")
	assert.Contains(t, out.String(), "stack overflow")
}
