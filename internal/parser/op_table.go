package parser

import (
	"rlc/internal/ast"
	"rlc/internal/token"
)

// Уровни приоритета, от слабого к сильному.
const (
	precAssign = iota + 1
	precConditional
	precLogOr
	precLogAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precCompare
	precShift
	precAdditive
	precMultiplicative
	precMemberPointer
)

type binaryOp struct {
	op    ast.Operator
	prec  int
	right bool // правоассоциативный
}

var binaryOps = map[token.Kind]binaryOp{
	token.ColonEqual:         {ast.OpAssign, precAssign, true},
	token.PlusEqual:          {ast.OpAddAssign, precAssign, true},
	token.MinusEqual:         {ast.OpSubAssign, precAssign, true},
	token.AsteriskEqual:      {ast.OpMulAssign, precAssign, true},
	token.SlashEqual:         {ast.OpDivAssign, precAssign, true},
	token.PercentEqual:       {ast.OpModAssign, precAssign, true},
	token.AndEqual:           {ast.OpBitAndAssign, precAssign, true},
	token.PipeEqual:          {ast.OpBitOrAssign, precAssign, true},
	token.CircumflexEqual:    {ast.OpBitXorAssign, precAssign, true},
	token.DoubleAndEqual:     {ast.OpLogAndAssign, precAssign, true},
	token.DoublePipeEqual:    {ast.OpLogOrAssign, precAssign, true},
	token.DoubleLessEqual:    {ast.OpShiftLeftAssign, precAssign, true},
	token.DoubleGreaterEqual: {ast.OpShiftRightAssign, precAssign, true},
	token.TripleLessEqual:    {ast.OpRotateLeftAssign, precAssign, true},
	token.TripleGreaterEqual: {ast.OpRotateRightAssign, precAssign, true},
	token.LessMinus:          {ast.OpMove, precAssign, true},

	token.DoublePipe: {ast.OpLogOr, precLogOr, false},
	token.DoubleAnd:  {ast.OpLogAnd, precLogAnd, false},
	token.Pipe:       {ast.OpBitOr, precBitOr, false},
	token.Circumflex: {ast.OpBitXor, precBitXor, false},
	token.And:        {ast.OpBitAnd, precBitAnd, false},

	token.DoubleEqual:      {ast.OpEquals, precEquality, false},
	token.ExclamationEqual: {ast.OpNotEquals, precEquality, false},

	token.Less:         {ast.OpLess, precCompare, false},
	token.LessEqual:    {ast.OpLessEquals, precCompare, false},
	token.Greater:      {ast.OpGreater, precCompare, false},
	token.GreaterEqual: {ast.OpGreaterEquals, precCompare, false},

	token.DoubleLess:    {ast.OpShiftLeft, precShift, false},
	token.DoubleGreater: {ast.OpShiftRight, precShift, false},
	token.TripleLess:    {ast.OpRotateLeft, precShift, false},
	token.TripleGreater: {ast.OpRotateRight, precShift, false},

	token.Plus:  {ast.OpAdd, precAdditive, false},
	token.Minus: {ast.OpSub, precAdditive, false},

	token.Asterisk: {ast.OpMul, precMultiplicative, false},
	token.Slash:    {ast.OpDiv, precMultiplicative, false},
	token.Percent:  {ast.OpMod, precMultiplicative, false},

	token.DotAsterisk:          {ast.OpMemberPointer, precMemberPointer, false},
	token.MinusGreaterAsterisk: {ast.OpMemberPointerArrow, precMemberPointer, false},
}

var prefixOps = map[token.Kind]ast.Operator{
	token.Minus:       ast.OpNeg,
	token.Plus:        ast.OpPos,
	token.Exclamation: ast.OpLogNot,
	token.Tilde:       ast.OpBitNot,
	token.Asterisk:    ast.OpDeref,
	token.And:         ast.OpAddress,
	token.DoublePlus:  ast.OpPreIncrement,
	token.DoubleMinus: ast.OpPreDecrement,
	token.TripleAnd:   ast.OpForward,
}

// постфиксы без операндов; вызов, индекс и доступ к члену разбираются отдельно
var postfixOps = map[token.Kind]ast.Operator{
	token.DoublePlus:       ast.OpPostIncrement,
	token.DoubleMinus:      ast.OpPostDecrement,
	token.TripleDot:        ast.OpVariadicExpand,
	token.MinusColon:       ast.OpNegAssign,
	token.ExclamationColon: ast.OpLogNotAssign,
	token.TildeColon:       ast.OpBitNotAssign,
}
