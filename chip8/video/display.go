package video

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32
)

// Display is the monochrome 64x32 surface. Each row is packed in a uint64,
// bit x holds column x.
type Display struct {
	rows [Height]uint64
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates wrap.
func (d *Display) Pixel(x, y int) bool {
	return d.rows[wrap(y, Height)]>>wrap(x, Width)&1 == 1
}

// Toggle flips the pixel at (x, y) and reports whether it was lit before.
func (d *Display) Toggle(x, y int) bool {
	row := &d.rows[wrap(y, Height)]
	mask := uint64(1) << wrap(x, Width)
	wasSet := *row&mask != 0
	*row ^= mask
	return wasSet
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.rows = [Height]uint64{}
}

// Rows returns a copy of the packed rows.
func (d *Display) Rows() [Height]uint64 {
	return d.rows
}

// Lit returns the amount of pixels currently on.
func (d *Display) Lit() int {
	n := 0
	for _, row := range d.rows {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
