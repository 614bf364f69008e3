package ast

// Operator identifies the operation of an OperatorExpr.
type Operator uint8

const (
	OpInvalid Operator = iota

	// binary
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLogAnd
	OpLogOr
	OpShiftLeft
	OpShiftRight
	OpRotateLeft
	OpRotateRight
	OpEquals
	OpNotEquals
	OpLess
	OpLessEquals
	OpGreater
	OpGreaterEquals
	OpMemberPointer      // .*
	OpMemberPointerArrow // ->*

	// assignment (right-associative)
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign
	OpLogAndAssign
	OpLogOrAssign
	OpShiftLeftAssign
	OpShiftRightAssign
	OpRotateLeftAssign
	OpRotateRightAssign
	OpMove // <-

	OpConditional // a ? b : c

	// prefix
	OpNeg
	OpPos
	OpLogNot
	OpBitNot
	OpDeref
	OpAddress
	OpPreIncrement
	OpPreDecrement
	OpForward // &&&

	// postfix
	OpPostIncrement
	OpPostDecrement
	OpCall
	OpSubscript
	OpVariadicExpand // ...
	OpNegAssign      // -:
	OpLogNotAssign   // !:
	OpBitNotAssign   // ~:

	opCount
)

// Fixity describes how an operator is written.
type Fixity uint8

const (
	Infix Fixity = iota
	Prefix
	Postfix
	Ternary
	Call      // f(args)
	Subscript // a[i]
)

var opInfo = [opCount]struct {
	text   string
	fixity Fixity
}{
	OpInvalid:            {"?", Infix},
	OpAdd:                {"+", Infix},
	OpSub:                {"-", Infix},
	OpMul:                {"*", Infix},
	OpDiv:                {"/", Infix},
	OpMod:                {"%", Infix},
	OpBitAnd:             {"&", Infix},
	OpBitOr:              {"|", Infix},
	OpBitXor:             {"^", Infix},
	OpLogAnd:             {"&&", Infix},
	OpLogOr:              {"||", Infix},
	OpShiftLeft:          {"<<", Infix},
	OpShiftRight:         {">>", Infix},
	OpRotateLeft:         {"<<<", Infix},
	OpRotateRight:        {">>>", Infix},
	OpEquals:             {"==", Infix},
	OpNotEquals:          {"!=", Infix},
	OpLess:               {"<", Infix},
	OpLessEquals:         {"<=", Infix},
	OpGreater:            {">", Infix},
	OpGreaterEquals:      {">=", Infix},
	OpMemberPointer:      {".*", Infix},
	OpMemberPointerArrow: {"->*", Infix},
	OpAssign:             {":=", Infix},
	OpAddAssign:          {"+=", Infix},
	OpSubAssign:          {"-=", Infix},
	OpMulAssign:          {"*=", Infix},
	OpDivAssign:          {"/=", Infix},
	OpModAssign:          {"%=", Infix},
	OpBitAndAssign:       {"&=", Infix},
	OpBitOrAssign:        {"|=", Infix},
	OpBitXorAssign:       {"^=", Infix},
	OpLogAndAssign:       {"&&=", Infix},
	OpLogOrAssign:        {"||=", Infix},
	OpShiftLeftAssign:    {"<<=", Infix},
	OpShiftRightAssign:   {">>=", Infix},
	OpRotateLeftAssign:   {"<<<=", Infix},
	OpRotateRightAssign:  {">>>=", Infix},
	OpMove:               {"<-", Infix},
	OpConditional:        {"?:", Ternary},
	OpNeg:                {"-", Prefix},
	OpPos:                {"+", Prefix},
	OpLogNot:             {"!", Prefix},
	OpBitNot:             {"~", Prefix},
	OpDeref:              {"*", Prefix},
	OpAddress:            {"&", Prefix},
	OpPreIncrement:       {"++", Prefix},
	OpPreDecrement:       {"--", Prefix},
	OpForward:            {"&&&", Prefix},
	OpPostIncrement:      {"++", Postfix},
	OpPostDecrement:      {"--", Postfix},
	OpCall:               {"()", Call},
	OpSubscript:          {"[]", Subscript},
	OpVariadicExpand:     {"...", Postfix},
	OpNegAssign:          {"-:", Postfix},
	OpLogNotAssign:       {"!:", Postfix},
	OpBitNotAssign:       {"~:", Postfix},
}

// String returns the source spelling of the operator.
func (op Operator) String() string {
	if op < opCount {
		return opInfo[op].text
	}
	return "?"
}

func (op Operator) Fixity() Fixity {
	if op < opCount {
		return opInfo[op].fixity
	}
	return Infix
}
