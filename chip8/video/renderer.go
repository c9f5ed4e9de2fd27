package video

// FadeStep is how much brightness an unlit pixel loses per rendered frame.
const FadeStep = 0x33

// Renderer turns a Display into colors. Pixels that go dark fade out over a
// few frames instead of switching off at once, which hides most of the
// flicker caused by programs that erase and redraw sprites every frame.
type Renderer struct {
	fade  bool
	frame *FrameBuffer
}

// NewRenderer creates a renderer, fade enables the phosphor afterglow.
func NewRenderer(fade bool) *Renderer {
	r := &Renderer{
		fade:  fade,
		frame: NewFrameBuffer(),
	}
	r.frame.Fill(BlackColor)
	return r
}

// Render draws d into the renderer's frame buffer and returns it.
// The returned buffer is reused by the next call.
func (r *Renderer) Render(d *Display) *FrameBuffer {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if d.Pixel(x, y) {
				r.frame.SetPixel(uint(x), uint(y), WhiteColor)
				continue
			}

			if !r.fade {
				r.frame.SetPixel(uint(x), uint(y), BlackColor)
				continue
			}

			level := Color(r.frame.GetPixel(uint(x), uint(y))).Level()
			if level > FadeStep {
				level -= FadeStep
			} else {
				level = 0
			}
			r.frame.SetPixel(uint(x), uint(y), Gray(level))
		}
	}
	return r.frame
}

// Frame returns the last rendered frame.
func (r *Renderer) Frame() *FrameBuffer {
	return r.frame
}
