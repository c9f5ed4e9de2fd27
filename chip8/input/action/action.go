package action

import "fmt"

// Action represents input actions that can be performed in the emulator
type Action int

const (
	// Hex keypad, the value of each action is the key index
	Key0 Action = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// Emulator features
	EmulatorSnapshot
	EmulatorPauseToggle
	EmulatorReset
	EmulatorQuit

	// Log panel controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by who consumes them.
type Category int

const (
	CategoryKeypad Category = iota
	CategoryEmulator
	CategoryDebug
)

// Info describes an action for logs and help screens.
type Info struct {
	Category    Category
	Description string
}

var emulatorInfo = map[Action]Info{
	EmulatorSnapshot:      {CategoryEmulator, "Save snapshot"},
	EmulatorPauseToggle:   {CategoryEmulator, "Pause/resume"},
	EmulatorReset:         {CategoryEmulator, "Reset"},
	EmulatorQuit:          {CategoryEmulator, "Quit"},
	DebugLogLevelIncrease: {CategoryDebug, "More verbose logs"},
	DebugLogLevelDecrease: {CategoryDebug, "Less verbose logs"},
}

// IsKeypad reports whether a is one of the sixteen hex keys.
func (a Action) IsKeypad() bool {
	return a >= Key0 && a <= KeyF
}

// Key returns the keypad index of a. Only meaningful if IsKeypad.
func (a Action) Key() uint8 {
	return uint8(a)
}

// KeyAction returns the action for keypad index key.
func KeyAction(key uint8) Action {
	return Action(key & 0xF)
}

// GetInfo returns category and description of an action.
func GetInfo(a Action) Info {
	if a.IsKeypad() {
		return Info{CategoryKeypad, fmt.Sprintf("Key %X", a.Key())}
	}
	if info, ok := emulatorInfo[a]; ok {
		return info
	}
	return Info{CategoryEmulator, fmt.Sprintf("Unknown action %d", int(a))}
}
