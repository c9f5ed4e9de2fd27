package headless_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/video"
)

func TestHeadlessBackend(t *testing.T) {
	t.Run("normal operation", func(t *testing.T) {
		h := headless.New(3, headless.SnapshotConfig{})

		err := h.Init(backend.BackendConfig{Title: "Test"})
		assert.NoError(t, err)

		frame := video.NewFrameBuffer()

		for i := 0; i < 3; i++ {
			events, err := h.Update(frame)
			assert.NoError(t, err)

			if i < 2 {
				assert.Empty(t, events)
			} else {
				assert.Len(t, events, 1)
				assert.Equal(t, action.EmulatorQuit, events[0].Action)
				assert.Equal(t, event.Press, events[0].Type)
			}
		}
		assert.Equal(t, 3, h.FrameCount())

		err = h.Cleanup()
		assert.NoError(t, err)
	})

	t.Run("rejects zero frames", func(t *testing.T) {
		h := headless.New(0, headless.SnapshotConfig{})
		assert.Error(t, h.Init(backend.BackendConfig{}))
	})

	t.Run("snapshots", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := headless.CreateSnapshotConfig(2, dir, "/roms/pong.ch8")
		require.NoError(t, err)
		assert.Equal(t, "pong", cfg.ROMName)

		h := headless.New(3, cfg)
		require.NoError(t, h.Init(backend.BackendConfig{}))

		frame := video.NewFrameBuffer()
		for i := 0; i < 3; i++ {
			_, err := h.Update(frame)
			require.NoError(t, err)
		}

		// frame 2 on interval plus the final frame 3, each png + txt
		snaps := h.Snapshots()
		require.Len(t, snaps, 4)
		pngName := strings.TrimSuffix(filepath.Base(snaps[2]), ".png")
		txtName := strings.TrimSuffix(filepath.Base(snaps[3]), ".txt")
		assert.Equal(t, pngName, txtName)
		assert.True(t, strings.HasPrefix(txtName, "pong_frame_3_"), txtName)
		assert.Equal(t, dir, filepath.Dir(snaps[0]))
	})

	t.Run("buzzer", func(t *testing.T) {
		h := headless.New(1, headless.SnapshotConfig{})
		h.SetBuzzer(true)
		h.SetBuzzer(false)
		h.SetBuzzer(true)
		assert.Equal(t, 2, h.BuzzerFrames())
	})
}

func TestCreateSnapshotConfig_Disabled(t *testing.T) {
	cfg, err := headless.CreateSnapshotConfig(0, "", "rom.ch8")
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestHeadlessImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*headless.Backend)(nil)
	var _ backend.Buzzer = (*headless.Backend)(nil)
}
