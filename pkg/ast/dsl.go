package ast

import "math/big"

// This file collects short constructor aliases used by table-driven tests to
// build trees directly, without running them through the lexer/parser.

func Mod(body ...Statement) *Module { return NewModule(body) }

func Blk(stmts ...Statement) *Block { return NewBlock(stmts) }

func ExprStmt(x Expression) *ExprStatement { return NewExprStatement(x) }

func Assign(targets []TargetList, values ...Expression) *AssignStatement {
	return NewAssignStatement(targets, values)
}

func Tgt(names ...string) TargetList { return TargetList{Names: names} }

func AugAssign(name, op string, value Expression) *AugAssignStatement {
	return NewAugAssignStatement(name, op, value)
}

func Brk() *BreakStatement { return NewBreakStatement() }

func Cont() *ContinueStatement { return NewContinueStatement() }

func Ret(values ...Expression) *ReturnStatement { return NewReturnStatement(values) }

func If(clauses []IfClause, elseBody *Block) *IfStatement { return NewIfStatement(clauses, elseBody) }

func Clause(cond Expression, body *Block) IfClause { return IfClause{Cond: cond, Body: body} }

func While(cond Expression, body *Block) *WhileStatement { return NewWhileStatement(cond, body) }

func FnDef(name string, params []Param, body *Block) *FunctionDef {
	return NewFunctionDef(name, params, body)
}

func P(name string) Param { return Param{Name: name} }

func PDef(name string, def Expression) Param { return Param{Name: name, Default: def} }

func ID(name string) *Identifier { return NewIdentifier(name) }

func NilLit() *NilLiteral { return NewNilLiteral() }

func Bool(v bool) *BoolLiteral { return NewBoolLiteral(v) }

func Int(v int64) *IntLiteral { return NewIntLiteralFromInt64(v) }

func IntBig(v *big.Int) *IntLiteral { return NewIntLiteral(v) }

func Flt(v float64) *FloatLiteral { return NewFloatLiteral(v) }

func Str(v string) *StrLiteral { return NewStrLiteral(v) }

func FStr(parts ...FStringPart) *FormatString { return NewFormatString(parts) }

func Text(s string) FStringText { return FStringText{Text: s} }

func Interp(items ...Expression) FStringExpr { return FStringExpr{Items: items} }

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Un(op string, operand Expression) *UnaryExpression { return NewUnaryExpression(op, operand) }

func Not(operand Expression) *NotExpression { return NewNotExpression(operand) }

func Or(operands ...Expression) *BoolOp { return NewBoolOp("or", operands) }

func And(operands ...Expression) *BoolOp { return NewBoolOp("and", operands) }

func Cmp(operands []Expression, ops ...string) *Comparison { return NewComparison(operands, ops) }

func Call1(callee string, args ...Expression) *Call { return NewCall(callee, args, nil) }

func CallKw(callee string, args []Expression, kwargs ...KeywordArg) *Call {
	return NewCall(callee, args, kwargs)
}

func Kw(name string, value Expression) KeywordArg { return KeywordArg{Name: name, Value: value} }
