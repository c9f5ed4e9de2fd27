package chip8

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/input"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
)

// backendActions are forwarded to backends implementing backend.ActionHandler.
var backendActions = []action.Action{
	action.EmulatorSnapshot,
	action.DebugLogLevelIncrease,
	action.DebugLogLevelDecrease,
}

// Run drives the emulator with b until the backend asks to quit or the
// CPU faults. The fault is returned, wrapped.
func (e *Emulator) Run(b backend.Backend, config backend.BackendConfig) error {
	config.DebugProvider = e
	if err := b.Init(config); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := b.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	quit := false
	manager := input.NewManager(e.cpu)
	manager.On(action.EmulatorQuit, event.Press, func() { quit = true })
	for _, act := range []action.Action{action.EmulatorPauseToggle, action.EmulatorReset} {
		manager.On(act, event.Press, func() { e.HandleAction(act, true) })
	}

	if handler, ok := b.(backend.ActionHandler); ok {
		for _, act := range backendActions {
			manager.On(act, event.Press, func() { handler.HandleAction(act) })
		}
	}
	buzzer, _ := b.(backend.Buzzer)

	for !quit {
		if err := e.RunUntilFrame(); err != nil {
			slog.Error("Emulation stopped", "error", err, "frame", e.frames)
			return fmt.Errorf("emulation stopped: %w", err)
		}

		if buzzer != nil {
			buzzer.SetBuzzer(e.cpu.SoundActive())
		}

		events, err := b.Update(e.GetCurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}
		for _, ev := range events {
			manager.Trigger(ev.Action, ev.Type)
		}
	}

	slog.Info("Emulation finished", "frames", e.frames, "instructions", e.cpu.GetCycles())
	return nil
}
