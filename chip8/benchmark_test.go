package chip8

import (
	"testing"

	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
)

// spriteLoop redraws every font glyph across the screen forever
var spriteLoop = []byte{
	0x60, 0x00, // ld V0, 0x00      ; digit
	0x61, 0x00, // ld V1, 0x00      ; x
	0x62, 0x00, // ld V2, 0x00      ; y
	0xF0, 0x29, // ld F, V0
	0xD1, 0x25, // drw V1, V2, 5
	0x70, 0x01, // add V0, 0x01
	0x71, 0x05, // add V1, 0x05
	0x72, 0x03, // add V2, 0x03
	0x12, 0x06, // jp 0x206
}

func BenchmarkEmulatorHeadless(b *testing.B) {
	cases := []struct {
		name   string
		ips    int
		frames int
	}{
		{"500ips_60", 500, 60},
		{"5000ips_60", 5000, 60},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			emu, err := NewWithProgram(spriteLoop, WithInstructionsPerSecond(tc.ips))
			if err != nil {
				b.Fatalf("Failed to create emulator: %v", err)
			}

			hBackend := headless.New(tc.frames*(b.N+1), headless.SnapshotConfig{})
			if err := hBackend.Init(backend.BackendConfig{Title: "Benchmark"}); err != nil {
				b.Fatalf("Failed to initialize backend: %v", err)
			}
			defer hBackend.Cleanup()

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				for frameCount := 0; frameCount < tc.frames; frameCount++ {
					if err := emu.RunUntilFrame(); err != nil {
						b.Fatalf("Emulation failed: %v", err)
					}
					if _, err := hBackend.Update(emu.GetCurrentFrame()); err != nil {
						b.Fatalf("Backend update failed: %v", err)
					}
				}
			}
		})
	}
}
