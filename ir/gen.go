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

package ir

import (
	"fmt"

	"nanocc/ast"
)

// builder lowers one function's surface AST into linear IR. The register
// counter lives on the value, never as package state, so nothing needs
// resetting between functions or between compiler invocations.
type builder struct {
	next int
	body []Instr
}

// Generate lowers a Program to a Module containing its single function.
func Generate(prog *ast.Program) *Module {
	return &Module{Functions: []*Function{generateFunction(prog.Function)}}
}

func generateFunction(fn *ast.Function) *Function {
	b := &builder{}
	for _, stmt := range fn.Body {
		b.lowerStmt(stmt)
	}
	return &Function{Name: fn.Name, Body: b.body}
}

func (b *builder) fresh() string {
	name := fmt.Sprintf("%%%d", b.next)
	b.next++
	return name
}

func (b *builder) emit(instr Instr) { b.body = append(b.body, instr) }

func (b *builder) lowerStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		src := b.lowerExpr(s.Value)
		b.emit(&ReturnInstr{Src: src})
	default:
		panic(fmt.Sprintf("ir: unhandled statement %T", stmt))
	}
}

// lowerExpr lowers e and returns the register holding its result. Every
// constant is routed through an alloca/store/load triple so every
// operand the backend sees downstream is a register, never an inline
// literal baked into an arithmetic instruction.
func (b *builder) lowerExpr(e ast.Expr) Value {
	switch expr := e.(type) {
	case *ast.ConstantExpr:
		slot := b.fresh()
		b.emit(&AllocaInstr{Dst: slot})
		b.emit(&StoreInstr{Src: ImmValue(expr.Value), Ptr: slot})
		dst := b.fresh()
		b.emit(&LoadInstr{Dst: dst, Ptr: slot})
		return RegValue(dst)

	case *ast.UnaryExpr:
		src := b.lowerExpr(expr.Operand)
		dst := b.fresh()
		b.emit(&UnaryInstr{Dst: dst, Op: lowerUnaryOp(expr.Op), Src: src})
		return RegValue(dst)

	case *ast.BinaryExpr:
		// Left lowers fully before right starts, so the left subtree's
		// registers always carry lower numbers.
		lhs := b.lowerExpr(expr.Left)
		rhs := b.lowerExpr(expr.Right)
		dst := b.fresh()
		b.emit(&BinaryInstr{Dst: dst, Op: lowerBinaryOp(expr.Op), Lhs: lhs, Rhs: rhs})
		return RegValue(dst)

	default:
		panic(fmt.Sprintf("ir: unhandled expression %T", e))
	}
}

func lowerUnaryOp(op ast.UnaryOp) UnaryOp {
	if op == ast.UnaryNot {
		return Not
	}
	return Neg
}

func lowerBinaryOp(op ast.BinaryOp) BinaryOp {
	switch op {
	case ast.BinaryAdd:
		return Add
	case ast.BinarySub:
		return Sub
	case ast.BinaryMul:
		return Mul
	case ast.BinaryDiv:
		return Div
	case ast.BinaryMod:
		return Rem
	default:
		panic(fmt.Sprintf("ir: unhandled binary operator %v", op))
	}
}
