package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Nibbles splits a 16 bit word into its four 4 bit parts, most significant first.
func Nibbles(word uint16) (uint8, uint8, uint8, uint8) {
	return uint8(word >> 12), uint8(word>>8) & 0xF, uint8(word>>4) & 0xF, uint8(word) & 0xF
}

// Address returns the low 12 bits of a word (NNN in mnemonics).
func Address(word uint16) uint16 {
	return word & 0x0FFF
}

// CheckedAdd adds two 8 bit unsigned values and detects if an overflow happened.
func CheckedAdd(a, b uint8) (result uint8, overflow bool) {
	return a + b, uint16(a)+uint16(b) > 0xFF
}

// CheckedSub subtracts b from a and reports whether no borrow happened,
// which is the case only when a is strictly greater than b.
func CheckedSub(a, b uint8) (result uint8, noBorrow bool) {
	return a - b, a > b
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, byte uint8) bool {
	return ((byte >> index) & 1) == 1
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}
