package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/valerio/go-chip8/chip8/render"
	"github.com/valerio/go-chip8/chip8/video"
)

// TakeSnapshot handles F12 snapshot logic for backends
func TakeSnapshot(frame *video.FrameBuffer, directory string) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFramePNGToDir(frame, "chip8_snapshot", directory); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// FrameImage converts a framebuffer to an RGBA image.
func FrameImage(frame *video.FrameBuffer) *image.RGBA {
	width, height := int(frame.Width()), int(frame.Height())
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := frame.GetPixel(uint(x), uint(y))
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(pixel >> 24),
				G: uint8(pixel >> 16),
				B: uint8(pixel >> 8),
				A: uint8(pixel),
			})
		}
	}
	return img
}

// SnapshotTimeFormat is the timestamp layout used in snapshot file names.
const SnapshotTimeFormat = "20060102_150405"

// SaveFramePNGToDir saves a framebuffer as PNG with timestamp to a specific
// directory and returns the written path. An empty directory means the
// working directory.
func SaveFramePNGToDir(frame *video.FrameBuffer, baseName, directory string) (string, error) {
	timestamp := time.Now().Format(SnapshotTimeFormat)
	return SaveFramePNG(frame, fmt.Sprintf("%s_%s", baseName, timestamp), directory)
}

// SaveFramePNG writes the frame to name.png in directory.
func SaveFramePNG(frame *video.FrameBuffer, name, directory string) (string, error) {
	outputDir, err := resolveDir(directory)
	if err != nil {
		return "", err
	}

	filePath := filepath.Join(outputDir, name+".png")

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, FrameImage(frame)); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()), "format", "PNG")
	return filePath, nil
}

// FormatTextSnapshot renders the frame as half blocks followed by the
// CPU state, suitable for diffing in tests and bug reports.
func FormatTextSnapshot(frame *video.FrameBuffer, state *CPUState) string {
	var sb strings.Builder

	border := "+" + strings.Repeat("-", int(frame.Width())) + "+\n"
	sb.WriteString(border)
	for _, line := range render.RenderFrameToHalfBlocks(frame.ToSlice(), int(frame.Width()), int(frame.Height())) {
		sb.WriteString("|" + line + "|\n")
	}
	sb.WriteString(border)

	if state == nil {
		return sb.String()
	}

	fmt.Fprintf(&sb, "PC=0x%03X I=0x%03X SP=%d DT=%d ST=%d cycles=%d\n",
		state.PC, state.I, state.SP, state.DelayTimer, state.SoundTimer, state.Cycles)
	for i, v := range state.V {
		fmt.Fprintf(&sb, "V%X=%02X", i, v)
		if i%8 == 7 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	if len(state.Stack) > 0 {
		sb.WriteString("stack:")
		for _, addr := range state.Stack {
			fmt.Fprintf(&sb, " 0x%03X", addr)
		}
		sb.WriteString("\n")
	}
	if state.Fault != nil {
		fmt.Fprintf(&sb, "fault: %v\n", state.Fault)
	}
	return sb.String()
}

// SaveTextSnapshot writes FormatTextSnapshot output to baseName.txt in
// directory and returns the written path.
func SaveTextSnapshot(frame *video.FrameBuffer, state *CPUState, baseName, directory string) (string, error) {
	outputDir, err := resolveDir(directory)
	if err != nil {
		return "", err
	}

	filePath := filepath.Join(outputDir, baseName+".txt")
	if err := os.WriteFile(filePath, []byte(FormatTextSnapshot(frame, state)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", filePath, err)
	}
	return filePath, nil
}

func resolveDir(directory string) (string, error) {
	if directory != "" {
		return directory, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}
