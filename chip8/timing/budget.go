package timing

// Budget spreads an instructions-per-second rate over 60Hz frames.
// Fractions carry to later frames, so 500 ips runs 8 or 9 instructions
// per frame and exactly 500 per second.
type Budget struct {
	ips   int
	carry int
}

// NewBudget returns a budget for ips instructions per second.
// Non-positive rates fall back to InstructionsPerSecond.
func NewBudget(ips int) *Budget {
	if ips <= 0 {
		ips = InstructionsPerSecond
	}
	return &Budget{ips: ips}
}

// Rate returns the configured instructions per second.
func (b *Budget) Rate() int {
	return b.ips
}

// Next returns how many instructions to run in the next frame.
func (b *Budget) Next() int {
	b.carry += b.ips
	n := b.carry / FrameRate
	b.carry %= FrameRate
	return n
}

// Reset drops any carried fraction.
func (b *Budget) Reset() {
	b.carry = 0
}
