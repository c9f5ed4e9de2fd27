package cpu

import (
	"fmt"

	"github.com/valerio/go-chip8/chip8/bit"
)

// Op identifies an instruction family after decoding.
type Op uint8

const (
	OpUnknown Op = iota
	OpSys        // 0NNN
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1NNN
	OpCall       // 2NNN
	OpSeImm      // 3XNN
	OpSneImm     // 4XNN
	OpSeReg      // 5XY0
	OpLdImm      // 6XNN
	OpAddImm     // 7XNN
	OpLdReg      // 8XY0
	OpOr         // 8XY1
	OpAnd        // 8XY2
	OpXor        // 8XY3
	OpAdd        // 8XY4
	OpSub        // 8XY5
	OpShr        // 8XY6
	OpSubn       // 8XY7
	OpShl        // 8XYE
	OpSneReg     // 9XY0
	OpLdI        // ANNN
	OpJpV0       // BNNN
	OpRnd        // CXNN
	OpDrw        // DXYN
	OpSkp        // EX9E
	OpSknp       // EXA1
	OpLdVxDT     // FX07
	OpLdKey      // FX0A
	OpLdDTVx     // FX15
	OpLdSTVx     // FX18
	OpAddI       // FX1E
	OpLdF        // FX29
	OpLdB        // FX33
	OpStore      // FX55
	OpLoad       // FX65

	opCount
)

// Instruction is a decoded opcode. Only the operand fields relevant to Op
// carry meaning, the rest are still filled from the raw nibbles.
type Instruction struct {
	Op     Op
	Opcode uint16
	X, Y   uint8  // register operands
	N      uint8  // 4 bit immediate
	NN     uint8  // 8 bit immediate
	NNN    uint16 // 12 bit address
}

// Decode splits opcode into nibbles and matches them against the instruction
// set. Patterns that don't match anything decode to OpUnknown.
func Decode(opcode uint16) Instruction {
	family, x, y, n := bit.Nibbles(opcode)
	in := Instruction{
		Opcode: opcode,
		X:      x,
		Y:      y,
		N:      n,
		NN:     bit.Low(opcode),
		NNN:    bit.Address(opcode),
	}

	switch family {
	case 0x0:
		switch opcode {
		case 0x00E0:
			in.Op = OpCls
		case 0x00EE:
			in.Op = OpRet
		default:
			in.Op = OpSys
		}
	case 0x1:
		in.Op = OpJp
	case 0x2:
		in.Op = OpCall
	case 0x3:
		in.Op = OpSeImm
	case 0x4:
		in.Op = OpSneImm
	case 0x5:
		if n == 0 {
			in.Op = OpSeReg
		}
	case 0x6:
		in.Op = OpLdImm
	case 0x7:
		in.Op = OpAddImm
	case 0x8:
		in.Op = aluOps[n]
	case 0x9:
		if n == 0 {
			in.Op = OpSneReg
		}
	case 0xA:
		in.Op = OpLdI
	case 0xB:
		in.Op = OpJpV0
	case 0xC:
		in.Op = OpRnd
	case 0xD:
		in.Op = OpDrw
	case 0xE:
		switch in.NN {
		case 0x9E:
			in.Op = OpSkp
		case 0xA1:
			in.Op = OpSknp
		}
	case 0xF:
		in.Op = miscOps[in.NN]
	}

	return in
}

// aluOps maps the last nibble of 8XY_ opcodes, gaps are unknown.
var aluOps = [16]Op{
	0x0: OpLdReg,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAdd,
	0x5: OpSub,
	0x6: OpShr,
	0x7: OpSubn,
	0xE: OpShl,
}

// miscOps maps the low byte of FX__ opcodes.
var miscOps = map[uint8]Op{
	0x07: OpLdVxDT,
	0x0A: OpLdKey,
	0x15: OpLdDTVx,
	0x18: OpLdSTVx,
	0x1E: OpAddI,
	0x29: OpLdF,
	0x33: OpLdB,
	0x55: OpStore,
	0x65: OpLoad,
}

var opNames = [opCount]string{
	OpUnknown: "unknown",
	OpSys:     "sys",
	OpCls:     "cls",
	OpRet:     "ret",
	OpJp:      "jp",
	OpCall:    "call",
	OpSeImm:   "se",
	OpSneImm:  "sne",
	OpSeReg:   "se",
	OpLdImm:   "ld",
	OpAddImm:  "add",
	OpLdReg:   "ld",
	OpOr:      "or",
	OpAnd:     "and",
	OpXor:     "xor",
	OpAdd:     "add",
	OpSub:     "sub",
	OpShr:     "shr",
	OpSubn:    "subn",
	OpShl:     "shl",
	OpSneReg:  "sne",
	OpLdI:     "ld",
	OpJpV0:    "jp",
	OpRnd:     "rnd",
	OpDrw:     "drw",
	OpSkp:     "skp",
	OpSknp:    "sknp",
	OpLdVxDT:  "ld",
	OpLdKey:   "ld",
	OpLdDTVx:  "ld",
	OpLdSTVx:  "ld",
	OpAddI:    "add",
	OpLdF:     "ld",
	OpLdB:     "ld",
	OpStore:   "ld",
	OpLoad:    "ld",
}

// Name returns the mnemonic of the op, without operands.
func (o Op) Name() string {
	if o >= opCount {
		return opNames[OpUnknown]
	}
	return opNames[o]
}

// String renders the instruction as assembly, e.g. "drw V1, V2, 5".
func (in Instruction) String() string {
	name := in.Op.Name()

	switch in.Op {
	case OpCls, OpRet:
		return name
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("%s 0x%03X", name, in.NNN)
	case OpSeImm, OpSneImm, OpLdImm, OpAddImm, OpRnd:
		return fmt.Sprintf("%s V%X, 0x%02X", name, in.X, in.NN)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAdd, OpSub, OpShr, OpSubn, OpShl:
		return fmt.Sprintf("%s V%X, V%X", name, in.X, in.Y)
	case OpLdI:
		return fmt.Sprintf("%s I, 0x%03X", name, in.NNN)
	case OpJpV0:
		return fmt.Sprintf("%s V0, 0x%03X", name, in.NNN)
	case OpDrw:
		return fmt.Sprintf("%s V%X, V%X, %d", name, in.X, in.Y, in.N)
	case OpSkp, OpSknp:
		return fmt.Sprintf("%s V%X", name, in.X)
	case OpLdVxDT:
		return fmt.Sprintf("%s V%X, DT", name, in.X)
	case OpLdKey:
		return fmt.Sprintf("%s V%X, K", name, in.X)
	case OpLdDTVx:
		return fmt.Sprintf("%s DT, V%X", name, in.X)
	case OpLdSTVx:
		return fmt.Sprintf("%s ST, V%X", name, in.X)
	case OpAddI:
		return fmt.Sprintf("%s I, V%X", name, in.X)
	case OpLdF:
		return fmt.Sprintf("%s F, V%X", name, in.X)
	case OpLdB:
		return fmt.Sprintf("%s B, V%X", name, in.X)
	case OpStore:
		return fmt.Sprintf("%s [I], V%X", name, in.X)
	case OpLoad:
		return fmt.Sprintf("%s V%X, [I]", name, in.X)
	}

	return fmt.Sprintf(".word 0x%04X", in.Opcode)
}
