// Copyright (c) 2024 The Falcon Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package codegen

// Legalize prepends an AllocateStackInstr of frameSize bytes and rewrites
// every instruction whose operand combination x86-64 forbids, using
// %r10d/%r11d as scratch. It must run after AssignStackSlots — it only
// ever sees Stack and Imm/Reg operands, never Pseudo.
func Legalize(fn *Func, frameSize int) {
	var out []AsmInstr
	out = append(out, &AllocateStackInstr{Size: frameSize})

	for _, instr := range fn.Body {
		switch in := instr.(type) {
		case *MovInstr:
			out = append(out, legalizeMov(in)...)
		case *IdivInstr:
			out = append(out, legalizeIdiv(in)...)
		case *BinaryInstr:
			out = append(out, legalizeBinary(in)...)
		default:
			out = append(out, instr)
		}
	}
	fn.Body = out
}

// legalizeMov splits a Stack-to-Stack move through %r10d — "mov" cannot
// have two memory operands.
func legalizeMov(in *MovInstr) []AsmInstr {
	if isMemory(in.Src) && isMemory(in.Dst) {
		scratch := Reg{Name: R10}
		return []AsmInstr{
			&MovInstr{Src: in.Src, Dst: scratch},
			&MovInstr{Src: scratch, Dst: in.Dst},
		}
	}
	return []AsmInstr{in}
}

// legalizeIdiv stages an immediate divisor through %r10d — idiv requires
// a register or memory operand, never an immediate.
func legalizeIdiv(in *IdivInstr) []AsmInstr {
	if imm, ok := in.Operand.(Imm); ok {
		scratch := Reg{Name: R10}
		return []AsmInstr{
			&MovInstr{Src: imm, Dst: scratch},
			&IdivInstr{Operand: scratch},
		}
	}
	return []AsmInstr{in}
}

// legalizeBinary handles the two binary-instruction restrictions: imull
// must write to a register, and add/sub may not have two memory
// operands.
func legalizeBinary(in *BinaryInstr) []AsmInstr {
	if in.Op == BinaryMul && isMemory(in.Dst) {
		scratch := Reg{Name: R11}
		return []AsmInstr{
			&MovInstr{Src: in.Dst, Dst: scratch},
			&BinaryInstr{Op: BinaryMul, Src: in.Src, Dst: scratch},
			&MovInstr{Src: scratch, Dst: in.Dst},
		}
	}
	if (in.Op == BinaryAdd || in.Op == BinarySub) && isMemory(in.Src) && isMemory(in.Dst) {
		scratch := Reg{Name: R10}
		return []AsmInstr{
			&MovInstr{Src: in.Src, Dst: scratch},
			&BinaryInstr{Op: in.Op, Src: scratch, Dst: in.Dst},
		}
	}
	return []AsmInstr{in}
}
