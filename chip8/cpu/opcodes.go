package cpu

import (
	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

// Opcode executes a decoded instruction.
type Opcode func(*CPU, Instruction)

var handlers = [opCount]Opcode{
	OpUnknown: opcodeUnknown,
	OpSys:     opcodeUnknown,
	OpCls:     opcode00E0,
	OpRet:     opcode00EE,
	OpJp:      opcode1NNN,
	OpCall:    opcode2NNN,
	OpSeImm:   opcode3XNN,
	OpSneImm:  opcode4XNN,
	OpSeReg:   opcode5XY0,
	OpLdImm:   opcode6XNN,
	OpAddImm:  opcode7XNN,
	OpLdReg:   opcode8XY0,
	OpOr:      opcode8XY1,
	OpAnd:     opcode8XY2,
	OpXor:     opcode8XY3,
	OpAdd:     opcode8XY4,
	OpSub:     opcode8XY5,
	OpShr:     opcode8XY6,
	OpSubn:    opcode8XY7,
	OpShl:     opcode8XYE,
	OpSneReg:  opcode9XY0,
	OpLdI:     opcodeANNN,
	OpJpV0:    opcodeBNNN,
	OpRnd:     opcodeCXNN,
	OpDrw:     opcodeDXYN,
	OpSkp:     opcodeEX9E,
	OpSknp:    opcodeEXA1,
	OpLdVxDT:  opcodeFX07,
	OpLdKey:   opcodeFX0A,
	OpLdDTVx:  opcodeFX15,
	OpLdSTVx:  opcodeFX18,
	OpAddI:    opcodeFX1E,
	OpLdF:     opcodeFX29,
	OpLdB:     opcodeFX33,
	OpStore:   opcodeFX55,
	OpLoad:    opcodeFX65,
}

// Unknown opcodes and machine code calls (0NNN) are ignored.
func opcodeUnknown(_ *CPU, _ Instruction) {}

// skipIf jumps over the next instruction when cond holds.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += InstructionSize
	}
}

//CLS
//#0x00E0:
func opcode00E0(cpu *CPU, _ Instruction) {
	cpu.display.Clear()
}

//RET
//#0x00EE:
func opcode00EE(cpu *CPU, in Instruction) {
	if cpu.sp == 0 {
		cpu.raise(ErrStackUnderflow, in)
		return
	}
	cpu.sp--
	cpu.pc = cpu.stack[cpu.sp]
}

//JP nnn
//#0x1NNN:
func opcode1NNN(cpu *CPU, in Instruction) {
	cpu.pc = in.NNN
}

//CALL nnn
//#0x2NNN:
func opcode2NNN(cpu *CPU, in Instruction) {
	if int(cpu.sp) == StackSize {
		cpu.raise(ErrStackOverflow, in)
		return
	}
	cpu.stack[cpu.sp] = cpu.pc
	cpu.sp++
	cpu.pc = in.NNN
}

//SE Vx, nn
//#0x3XNN:
func opcode3XNN(cpu *CPU, in Instruction) {
	cpu.skipIf(cpu.v[in.X] == in.NN)
}

//SNE Vx, nn
//#0x4XNN:
func opcode4XNN(cpu *CPU, in Instruction) {
	cpu.skipIf(cpu.v[in.X] != in.NN)
}

//SE Vx, Vy
//#0x5XY0:
func opcode5XY0(cpu *CPU, in Instruction) {
	cpu.skipIf(cpu.v[in.X] == cpu.v[in.Y])
}

//LD Vx, nn
//#0x6XNN:
func opcode6XNN(cpu *CPU, in Instruction) {
	cpu.v[in.X] = in.NN
}

//ADD Vx, nn
//#0x7XNN: carry is not reported
func opcode7XNN(cpu *CPU, in Instruction) {
	cpu.v[in.X] += in.NN
}

//LD Vx, Vy
//#0x8XY0:
func opcode8XY0(cpu *CPU, in Instruction) {
	cpu.v[in.X] = cpu.v[in.Y]
}

//OR Vx, Vy
//#0x8XY1:
func opcode8XY1(cpu *CPU, in Instruction) {
	cpu.v[in.X] |= cpu.v[in.Y]
}

//AND Vx, Vy
//#0x8XY2:
func opcode8XY2(cpu *CPU, in Instruction) {
	cpu.v[in.X] &= cpu.v[in.Y]
}

//XOR Vx, Vy
//#0x8XY3:
func opcode8XY3(cpu *CPU, in Instruction) {
	cpu.v[in.X] ^= cpu.v[in.Y]
}

// The arithmetic ops below write VF before Vx, so with x = F the result
// overwrites the flag. The shifts do the opposite.

//ADD Vx, Vy
//#0x8XY4:
func opcode8XY4(cpu *CPU, in Instruction) {
	result, carry := bit.CheckedAdd(cpu.v[in.X], cpu.v[in.Y])
	cpu.setFlag(carry)
	cpu.v[in.X] = result
}

//SUB Vx, Vy
//#0x8XY5:
func opcode8XY5(cpu *CPU, in Instruction) {
	result, noBorrow := bit.CheckedSub(cpu.v[in.X], cpu.v[in.Y])
	cpu.setFlag(noBorrow)
	cpu.v[in.X] = result
}

//SHR Vx, Vy
//#0x8XY6: Vx = Vy >> 1, VF = bit shifted out
func opcode8XY6(cpu *CPU, in Instruction) {
	vy := cpu.v[in.Y]
	cpu.v[in.X] = vy >> 1
	cpu.v[flagRegister] = vy & 1
}

//SUBN Vx, Vy
//#0x8XY7: Vx = Vy - Vx
func opcode8XY7(cpu *CPU, in Instruction) {
	result, noBorrow := bit.CheckedSub(cpu.v[in.Y], cpu.v[in.X])
	cpu.setFlag(noBorrow)
	cpu.v[in.X] = result
}

//SHL Vx, Vy
//#0x8XYE: Vx = Vy << 1, VF = bit shifted out
func opcode8XYE(cpu *CPU, in Instruction) {
	vy := cpu.v[in.Y]
	cpu.v[in.X] = vy << 1
	cpu.v[flagRegister] = vy >> 7
}

//SNE Vx, Vy
//#0x9XY0:
func opcode9XY0(cpu *CPU, in Instruction) {
	cpu.skipIf(cpu.v[in.X] != cpu.v[in.Y])
}

//LD I, nnn
//#0xANNN:
func opcodeANNN(cpu *CPU, in Instruction) {
	cpu.i = in.NNN
}

//JP V0, nnn
//#0xBNNN:
func opcodeBNNN(cpu *CPU, in Instruction) {
	cpu.pc = uint16(cpu.v[0]) + in.NNN
}

//RND Vx, nn
//#0xCXNN:
func opcodeCXNN(cpu *CPU, in Instruction) {
	cpu.v[in.X] = uint8(cpu.rand.Uint32()) & in.NN
}

//DRW Vx, Vy, n
//#0xDXYN: sprites are 8 pixels wide and n rows tall, read from I.
// Rows wrap vertically, columns past the right edge are clipped.
func opcodeDXYN(cpu *CPU, in Instruction) {
	cpu.v[flagRegister] = 0
	x := int(cpu.v[in.X] % video.Width)
	y := int(cpu.v[in.Y] % video.Height)

	for row := 0; row < int(in.N); row++ {
		sprite := cpu.bus.Read(cpu.i + uint16(row))
		for col := 0; col < 8; col++ {
			if x+col >= video.Width {
				break
			}
			if !bit.IsSet(uint8(7-col), sprite) {
				continue
			}
			if cpu.display.Toggle(x+col, y+row) {
				cpu.v[flagRegister] = 1
			}
		}
	}
}

//SKP Vx
//#0xEX9E:
func opcodeEX9E(cpu *CPU, in Instruction) {
	cpu.skipIf(cpu.keys[cpu.v[in.X]&0xF])
}

//SKNP Vx
//#0xEXA1:
func opcodeEXA1(cpu *CPU, in Instruction) {
	cpu.skipIf(!cpu.keys[cpu.v[in.X]&0xF])
}

//LD Vx, DT
//#0xFX07:
func opcodeFX07(cpu *CPU, in Instruction) {
	cpu.v[in.X] = cpu.delayTimer
}

//LD Vx, K
//#0xFX0A: blocks by re-executing itself until a key is down
func opcodeFX0A(cpu *CPU, in Instruction) {
	for key, pressed := range cpu.keys {
		if pressed {
			cpu.v[in.X] = uint8(key)
			return
		}
	}
	cpu.pc -= InstructionSize
}

//LD DT, Vx
//#0xFX15:
func opcodeFX15(cpu *CPU, in Instruction) {
	cpu.delayTimer = cpu.v[in.X]
}

//LD ST, Vx
//#0xFX18:
func opcodeFX18(cpu *CPU, in Instruction) {
	cpu.soundTimer = cpu.v[in.X]
}

//ADD I, Vx
//#0xFX1E: VF is left alone
func opcodeFX1E(cpu *CPU, in Instruction) {
	cpu.i += uint16(cpu.v[in.X])
}

//LD F, Vx
//#0xFX29:
func opcodeFX29(cpu *CPU, in Instruction) {
	cpu.i = memory.GlyphAddress(cpu.v[in.X])
}

//LD B, Vx
//#0xFX33:
func opcodeFX33(cpu *CPU, in Instruction) {
	vx := cpu.v[in.X]
	cpu.bus.Write(cpu.i, vx/100)
	cpu.bus.Write(cpu.i+1, vx/10%10)
	cpu.bus.Write(cpu.i+2, vx%10)
}

//LD [I], Vx
//#0xFX55: I is not advanced
func opcodeFX55(cpu *CPU, in Instruction) {
	for r := uint16(0); r <= uint16(in.X); r++ {
		cpu.bus.Write(cpu.i+r, cpu.v[r])
	}
}

//LD Vx, [I]
//#0xFX65: I is not advanced
func opcodeFX65(cpu *CPU, in Instruction) {
	for r := uint16(0); r <= uint16(in.X); r++ {
		cpu.v[r] = cpu.bus.Read(cpu.i + r)
	}
}

func (c *CPU) setFlag(condition bool) {
	if condition {
		c.v[flagRegister] = 1
		return
	}
	c.v[flagRegister] = 0
}
