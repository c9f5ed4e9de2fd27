package video

// Color is an RGBA pixel, 0xRRGGBBAA.
type Color uint32

const (
	WhiteColor Color = 0xFFFFFFFF
	BlackColor Color = 0x000000FF
)

// Gray builds an opaque grey with the same value on every channel.
func Gray(level uint8) Color {
	v := uint32(level)
	return Color(v<<24 | v<<16 | v<<8 | 0xFF)
}

// Level returns the red channel of c, which for greys is the brightness.
func (c Color) Level() uint8 {
	return uint8(c >> 24)
}

type FrameBuffer struct {
	width  uint
	height uint
	buffer []uint32
}

// NewFrameBuffer creates a frame buffer sized to the display.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		width:  Width,
		height: Height,
		buffer: make([]uint32, Width*Height),
	}
}

func (fb FrameBuffer) Width() uint  { return fb.width }
func (fb FrameBuffer) Height() uint { return fb.height }

func (fb FrameBuffer) GetPixel(x, y uint) uint32 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, color Color) {
	fb.buffer[y*fb.width+x] = uint32(color)
}

func (fb *FrameBuffer) Fill(color Color) {
	for i := range fb.buffer {
		fb.buffer[i] = uint32(color)
	}
}

func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}
