package ast

import "math/big"

func NewModule(body []Statement) *Module {
	return &Module{nodeImpl: nodeImpl{NodeModule}, Body: body}
}

func NewBlock(stmts []Statement) *Block {
	return &Block{nodeImpl: nodeImpl{NodeBlock}, Statements: stmts}
}

func NewExprStatement(x Expression) *ExprStatement {
	return &ExprStatement{nodeImpl: nodeImpl{NodeExprStmt}, X: x}
}

func NewAssignStatement(targets []TargetList, values []Expression) *AssignStatement {
	return &AssignStatement{nodeImpl: nodeImpl{NodeAssign}, Targets: targets, Values: values}
}

func NewAugAssignStatement(name, op string, value Expression) *AugAssignStatement {
	return &AugAssignStatement{nodeImpl: nodeImpl{NodeAugAssign}, Name: name, Op: op, Value: value}
}

func NewBreakStatement() *BreakStatement {
	return &BreakStatement{nodeImpl: nodeImpl{NodeBreak}}
}

func NewContinueStatement() *ContinueStatement {
	return &ContinueStatement{nodeImpl: nodeImpl{NodeContinue}}
}

func NewReturnStatement(values []Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: nodeImpl{NodeReturn}, Values: values}
}

func NewIfStatement(clauses []IfClause, elseBody *Block) *IfStatement {
	return &IfStatement{nodeImpl: nodeImpl{NodeIf}, Clauses: clauses, Else: elseBody}
}

func NewWhileStatement(cond Expression, body *Block) *WhileStatement {
	return &WhileStatement{nodeImpl: nodeImpl{NodeWhile}, Cond: cond, Body: body}
}

func NewFunctionDef(name string, params []Param, body *Block) *FunctionDef {
	return &FunctionDef{nodeImpl: nodeImpl{NodeFunctionDef}, Name: name, Params: params, Body: body}
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: nodeImpl{NodeIdentifier}, Name: name}
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: nodeImpl{NodeNilLiteral}}
}

func NewBoolLiteral(v bool) *BoolLiteral {
	return &BoolLiteral{nodeImpl: nodeImpl{NodeBoolLiteral}, Value: v}
}

func NewIntLiteral(v *big.Int) *IntLiteral {
	return &IntLiteral{nodeImpl: nodeImpl{NodeIntLiteral}, Value: v}
}

func NewIntLiteralFromInt64(v int64) *IntLiteral {
	return NewIntLiteral(big.NewInt(v))
}

func NewFloatLiteral(v float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: nodeImpl{NodeFloatLiteral}, Value: v}
}

func NewStrLiteral(v string) *StrLiteral {
	return &StrLiteral{nodeImpl: nodeImpl{NodeStrLiteral}, Value: v}
}

func NewFormatString(parts []FStringPart) *FormatString {
	return &FormatString{nodeImpl: nodeImpl{NodeFormatString}, Parts: parts}
}

func NewBinaryExpression(op string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: nodeImpl{NodeBinary}, Op: op, Left: left, Right: right}
}

func NewUnaryExpression(op string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: nodeImpl{NodeUnary}, Op: op, Operand: operand}
}

func NewNotExpression(operand Expression) *NotExpression {
	return &NotExpression{nodeImpl: nodeImpl{NodeNot}, Operand: operand}
}

func NewBoolOp(op string, operands []Expression) *BoolOp {
	return &BoolOp{nodeImpl: nodeImpl{NodeBoolOp}, Op: op, Operands: operands}
}

func NewComparison(operands []Expression, ops []string) *Comparison {
	return &Comparison{nodeImpl: nodeImpl{NodeComparison}, Operands: operands, Ops: ops}
}

func NewCall(callee string, args []Expression, kwargs []KeywordArg) *Call {
	return &Call{nodeImpl: nodeImpl{NodeCall}, Callee: callee, Args: args, Kwargs: kwargs}
}
