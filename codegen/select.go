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

import (
	"fmt"

	"nanocc/ir"
)

// Func is one selected-and-legalized assembly function.
type Func struct {
	Name string
	Body []AsmInstr
}

// Select performs naive instruction selection: every IR register
// becomes a Pseudo operand, Alloca vanishes (it never corresponded to a
// real instruction, only a slot reservation the regalloc pass will size
// from the densest pseudo it sees), and division/remainder expand to
// the Cdq+Idiv dance AX/DX require. A trailing Ret is appended after the
// IR's own ReturnValue lowers to a Mov into %eax.
func Select(fn *ir.Function) *Func {
	var out []AsmInstr
	emit := func(i AsmInstr) { out = append(out, i) }

	for _, instr := range fn.Body {
		switch in := instr.(type) {
		case *ir.AllocaInstr:
			// No instruction: the slot is materialized implicitly by
			// every later reference to Pseudo(in.Dst).

		case *ir.StoreInstr:
			emit(&MovInstr{Src: selectValue(in.Src), Dst: Pseudo{Name: in.Ptr}})

		case *ir.LoadInstr:
			emit(&MovInstr{Src: Pseudo{Name: in.Ptr}, Dst: Pseudo{Name: in.Dst}})

		case *ir.UnaryInstr:
			emit(&MovInstr{Src: selectValue(in.Src), Dst: Pseudo{Name: in.Dst}})
			emit(&UnaryInstr{Op: selectUnaryOp(in.Op), Operand: Pseudo{Name: in.Dst}})

		case *ir.BinaryInstr:
			selectBinary(emit, in)

		case *ir.ReturnInstr:
			emit(&MovInstr{Src: selectValue(in.Src), Dst: Reg{Name: AX}})

		default:
			panic(fmt.Sprintf("codegen: unhandled IR instruction %T", instr))
		}
	}
	emit(&RetInstr{})
	return &Func{Name: fn.Name, Body: out}
}

func selectValue(v ir.Value) Operand {
	if v.IsReg {
		return Pseudo{Name: v.Reg}
	}
	return Imm{Value: v.Imm}
}

func selectUnaryOp(op ir.UnaryOp) UnaryOp {
	if op == ir.Not {
		return UnaryNot
	}
	return UnaryNeg
}

func selectBinary(emit func(AsmInstr), in *ir.BinaryInstr) {
	lhs, rhs := selectValue(in.Lhs), selectValue(in.Rhs)
	dst := Pseudo{Name: in.Dst}

	switch in.Op {
	case ir.Add, ir.Sub, ir.Mul:
		op := map[ir.BinaryOp]BinaryOp{ir.Add: BinaryAdd, ir.Sub: BinarySub, ir.Mul: BinaryMul}[in.Op]
		emit(&MovInstr{Src: lhs, Dst: dst})
		emit(&BinaryInstr{Op: op, Src: rhs, Dst: dst})

	case ir.Div:
		emit(&MovInstr{Src: lhs, Dst: Reg{Name: AX}})
		emit(&CdqInstr{})
		emit(&IdivInstr{Operand: rhs})
		emit(&MovInstr{Src: Reg{Name: AX}, Dst: dst})

	case ir.Rem:
		emit(&MovInstr{Src: lhs, Dst: Reg{Name: AX}})
		emit(&CdqInstr{})
		emit(&IdivInstr{Operand: rhs})
		emit(&MovInstr{Src: Reg{Name: DX}, Dst: dst})

	default:
		panic(fmt.Sprintf("codegen: unhandled binary IR op %v", in.Op))
	}
}
