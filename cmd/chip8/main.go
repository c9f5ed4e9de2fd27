package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"
	"github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/backend/sdl2"
	"github.com/valerio/go-chip8/chip8/backend/terminal"
	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/timing"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "chip8"
	app.Description = "A CHIP-8 interpreter"
	app.Usage = "chip8 [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Frontend to use: terminal, sdl2 or headless",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "ips",
			Usage: "Instructions executed per second",
			Value: timing.InstructionsPerSecond,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing for interactive backends: adaptive or ticker",
			Value: "adaptive",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for the sdl2 backend",
			Value: 10,
		},
		cli.BoolFlag{
			Name:  "no-fade",
			Usage: "Switch erased pixels off at once instead of fading them out",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction at debug level",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for the RND instruction (0 = random)",
		},
	}
	app.Action = runEmulator
	return app
}

func runEmulator(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") || c.Bool("trace") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	b, limiter, err := selectBackend(c, romPath)
	if err != nil {
		return err
	}
	if stopper, ok := limiter.(interface{ Stop() }); ok {
		defer stopper.Stop()
	}

	var cpuOpts []cpu.Option
	if seed := c.Int64("seed"); seed != 0 {
		cpuOpts = append(cpuOpts, cpu.WithSeed(uint64(seed)))
	}
	if c.Bool("trace") {
		cpuOpts = append(cpuOpts, cpu.WithTracer(cpu.NewSlogTracer(nil)))
	}

	emu, err := chip8.NewWithFile(romPath,
		chip8.WithInstructionsPerSecond(c.Int("ips")),
		chip8.WithLimiter(limiter),
		chip8.WithFade(!c.Bool("no-fade")),
		chip8.WithCPUOptions(cpuOpts...),
	)
	if err != nil {
		return err
	}

	config := backend.BackendConfig{
		Title:       "CHIP-8 - " + romName(romPath),
		Scale:       c.Int("scale"),
		SnapshotDir: c.String("snapshot-dir"),
	}
	return emu.Run(b, config)
}

// selectBackend builds the backend named by --backend and the limiter that
// paces it. Headless runs as fast as possible.
func selectBackend(c *cli.Context, romPath string) (backend.Backend, timing.Limiter, error) {
	name := strings.ToLower(c.String("backend"))
	if name == "headless" {
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, nil, errors.New("headless mode requires --frames option with a positive value")
		}
		snapshots, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return nil, nil, err
		}
		return headless.New(frames, snapshots), timing.NewNoOpLimiter(), nil
	}

	var limiter timing.Limiter
	switch c.String("limiter") {
	case "adaptive":
		limiter = timing.NewAdaptiveLimiter()
	case "ticker":
		limiter = timing.NewTickerLimiter()
	default:
		return nil, nil, fmt.Errorf("unknown limiter %q", c.String("limiter"))
	}

	switch name {
	case "terminal":
		return terminal.New(), limiter, nil
	case "sdl2":
		return sdl2.New(), limiter, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q, expected terminal, sdl2 or headless", name)
}

func romName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
