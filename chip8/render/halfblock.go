package render

import "github.com/valerio/go-chip8/chip8/video"

// litThreshold is the brightness above which a pixel counts as on when
// only two states can be drawn.
const litThreshold = 0x80

// PixelToShade converts a pixel value to a shade level (0-3)
func PixelToShade(pixel uint32) int {
	return int(video.Color(pixel).Level()) / 64
}

// IsLit reports whether a pixel is bright enough to draw as on.
func IsLit(pixel uint32) bool {
	return video.Color(pixel).Level() >= litThreshold
}

// GetHalfBlockChar returns the character that draws two vertically
// stacked pixels in one text cell.
func GetHalfBlockChar(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// RenderFrameToHalfBlocks converts a frame buffer to half-block text,
// one string per pair of pixel rows.
func RenderFrameToHalfBlocks(frame []uint32, width, height int) []string {
	if width <= 0 || height <= 0 || len(frame) < width*height {
		return []string{}
	}

	textHeight := (height + 1) / 2
	lines := make([]string, textHeight)

	for textRow := 0; textRow < textHeight; textRow++ {
		line := make([]rune, width)
		top := textRow * 2
		bottom := top + 1

		for x := 0; x < width; x++ {
			topLit := IsLit(frame[top*width+x])
			bottomLit := bottom < height && IsLit(frame[bottom*width+x])
			line[x] = GetHalfBlockChar(topLit, bottomLit)
		}

		lines[textRow] = string(line)
	}

	return lines
}
