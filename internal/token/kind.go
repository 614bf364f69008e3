package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Identifier is a name that is not a keyword.
	Identifier
	// Number is an integer literal (decimal, octal or hexadecimal, optional suffix).
	Number
	// Float is a literal with a fractional part or an exponent.
	Float
	// Char is a single-quoted character literal.
	Char
	// String is a double-quoted string literal.
	String

	// KwAbstract represents the 'ABSTRACT' keyword.
	KwAbstract // ABSTRACT
	// KwAssert represents the 'ASSERT' keyword.
	KwAssert // ASSERT
	// KwBreak represents the 'BREAK' keyword.
	KwBreak // BREAK
	// KwCase represents the 'CASE' keyword.
	KwCase // CASE
	// KwCatch represents the 'CATCH' keyword.
	KwCatch // CATCH
	// KwConcept represents the 'CONCEPT' keyword.
	KwConcept // CONCEPT
	// KwConst represents the 'CONST' keyword.
	KwConst // CONST
	// KwConstructor represents the 'CONSTRUCTOR' keyword.
	KwConstructor // CONSTRUCTOR
	// KwContinue represents the 'CONTINUE' keyword.
	KwContinue // CONTINUE
	// KwDefault represents the 'DEFAULT' keyword.
	KwDefault // DEFAULT
	// KwDestructor represents the 'DESTRUCTOR' keyword.
	KwDestructor // DESTRUCTOR
	// KwDo represents the 'DO' keyword.
	KwDo // DO
	// KwDynamic represents the 'DYNAMIC' keyword.
	KwDynamic // DYNAMIC
	// KwElse represents the 'ELSE' keyword.
	KwElse // ELSE
	// KwEnum represents the 'ENUM' keyword.
	KwEnum // ENUM
	// KwExtern represents the 'EXTERN' keyword.
	KwExtern // EXTERN
	// KwFinal represents the 'FINAL' keyword.
	KwFinal // FINAL
	// KwFinally represents the 'FINALLY' keyword.
	KwFinally // FINALLY
	// KwFor represents the 'FOR' keyword.
	KwFor // FOR
	// KwIf represents the 'IF' keyword.
	KwIf // IF
	// KwInclude represents the 'INCLUDE' keyword.
	KwInclude // INCLUDE
	// KwInline represents the 'INLINE' keyword.
	KwInline // INLINE
	// KwNull represents the 'NULL' keyword.
	KwNull // NULL
	// KwNumber represents the 'NUMBER' keyword.
	KwNumber // NUMBER
	// KwOperator represents the 'OPERATOR' keyword.
	KwOperator // OPERATOR
	// KwOverride represents the 'OVERRIDE' keyword.
	KwOverride // OVERRIDE
	// KwPrivate represents the 'PRIVATE' keyword.
	KwPrivate // PRIVATE
	// KwProtected represents the 'PROTECTED' keyword.
	KwProtected // PROTECTED
	// KwPublic represents the 'PUBLIC' keyword.
	KwPublic // PUBLIC
	// KwReturn represents the 'RETURN' keyword.
	KwReturn // RETURN
	// KwSizeof represents the 'SIZEOF' keyword.
	KwSizeof // SIZEOF
	// KwStatic represents the 'STATIC' keyword.
	KwStatic // STATIC
	// KwSwitch represents the 'SWITCH' keyword.
	KwSwitch // SWITCH
	// KwTest represents the 'TEST' keyword.
	KwTest // TEST
	// KwThis represents the 'THIS' keyword.
	KwThis // THIS
	// KwThrow represents the 'THROW' keyword.
	KwThrow // THROW
	// KwTry represents the 'TRY' keyword.
	KwTry // TRY
	// KwType represents the 'TYPE' keyword.
	KwType // TYPE
	// KwUnion represents the 'UNION' keyword.
	KwUnion // UNION
	// KwVirtual represents the 'VIRTUAL' keyword.
	KwVirtual // VIRTUAL
	// KwVoid represents the 'VOID' keyword.
	KwVoid // VOID
	// KwVolatile represents the 'VOLATILE' keyword.
	KwVolatile // VOLATILE
	// KwWhile represents the 'WHILE' keyword.
	KwWhile // WHILE

	// PlusEqual represents '+='.
	PlusEqual // +=
	// DoublePlus represents '++'.
	DoublePlus // ++
	// Plus represents '+'.
	Plus // +
	// MinusEqual represents '-='.
	MinusEqual // -=
	// MinusColon represents '-:'.
	MinusColon // -:
	// DoubleMinus represents '--'.
	DoubleMinus // --
	// MinusGreaterAsterisk represents '->*'.
	MinusGreaterAsterisk // ->*
	// MinusGreater represents '->'.
	MinusGreater // ->
	// Minus represents '-'.
	Minus // -
	// AsteriskEqual represents '*='.
	AsteriskEqual // *=
	// Asterisk represents '*'.
	Asterisk // *
	// Backslash represents '\'.
	Backslash // \
	// SlashEqual represents '/='.
	SlashEqual // /=
	// Slash represents '/'.
	Slash // /
	// PercentEqual represents '%='.
	PercentEqual // %=
	// Percent represents '%'.
	Percent // %
	// ExclamationEqual represents '!='.
	ExclamationEqual // !=
	// ExclamationColon represents '!:'.
	ExclamationColon // !:
	// Exclamation represents '!'.
	Exclamation // !
	// CircumflexEqual represents '^='.
	CircumflexEqual // ^=
	// Circumflex represents '^'.
	Circumflex // ^
	// TildeColon represents '~:'.
	TildeColon // ~:
	// Tilde represents '~'.
	Tilde // ~
	// TripleAnd represents '&&&'.
	TripleAnd // &&&
	// DoubleAndEqual represents '&&='.
	DoubleAndEqual // &&=
	// DoubleAnd represents '&&'.
	DoubleAnd // &&
	// AndEqual represents '&='.
	AndEqual // &=
	// And represents '&'.
	And // &
	// DoublePipeEqual represents '||='.
	DoublePipeEqual // ||=
	// DoublePipe represents '||'.
	DoublePipe // ||
	// PipeEqual represents '|='.
	PipeEqual // |=
	// Pipe represents '|'.
	Pipe // |
	// Question represents '?'.
	Question // ?
	// DoubleColonEqual represents '::='.
	DoubleColonEqual // ::=
	// ColonEqual represents ':='.
	ColonEqual // :=
	// DoubleColon represents '::'.
	DoubleColon // ::
	// Colon represents ':'.
	Colon // :
	// DoubleAt represents '@@'.
	DoubleAt // @@
	// At represents '@'.
	At // @
	// TripleDot represents '...'.
	TripleDot // ...
	// DoubleDotExclamation represents '..!'.
	DoubleDotExclamation // ..!
	// DoubleDotQuestion represents '..?'.
	DoubleDotQuestion // ..?
	// DotAsterisk represents '.*'.
	DotAsterisk // .*
	// Dot represents '.'.
	Dot // .
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// DoubleEqual represents '=='.
	DoubleEqual // ==
	// BracketOpen represents '['.
	BracketOpen // [
	// BracketClose represents ']'.
	BracketClose // ]
	// BraceOpen represents '{'.
	BraceOpen // {
	// BraceClose represents '}'.
	BraceClose // }
	// ParenOpen represents '('.
	ParenOpen // (
	// ParenClose represents ')'.
	ParenClose // )
	// TripleLessEqual represents '<<<='.
	TripleLessEqual // <<<=
	// TripleLess represents '<<<'.
	TripleLess // <<<
	// DoubleLessEqual represents '<<='.
	DoubleLessEqual // <<=
	// DoubleLess represents '<<'.
	DoubleLess // <<
	// LessEqual represents '<='.
	LessEqual // <=
	// LessMinus represents '<-'.
	LessMinus // <-
	// Less represents '<'.
	Less // <
	// TripleGreaterEqual represents '>>>='.
	TripleGreaterEqual // >>>=
	// TripleGreater represents '>>>'.
	TripleGreater // >>>
	// DoubleGreaterEqual represents '>>='.
	DoubleGreaterEqual // >>=
	// DoubleGreater represents '>>'.
	DoubleGreater // >>
	// GreaterEqual represents '>='.
	GreaterEqual // >=
	// Greater represents '>'.
	Greater // >
	// Dollar represents '$'.
	Dollar // $
	// DoubleHash represents '##'.
	DoubleHash // ##
	// Hash represents '#'.
	Hash // #

	kindCount
)

const (
	firstKeyword = KwAbstract
	lastKeyword  = KwWhile
	firstOp      = PlusEqual
	lastOp       = Hash
)

var kindNames = [kindCount]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Identifier: "Identifier",
	Number:     "Number",
	Float:      "Float",
	Char:       "Char",
	String:     "String",
	KwAbstract: "ABSTRACT",
	KwAssert: "ASSERT",
	KwBreak: "BREAK",
	KwCase: "CASE",
	KwCatch: "CATCH",
	KwConcept: "CONCEPT",
	KwConst: "CONST",
	KwConstructor: "CONSTRUCTOR",
	KwContinue: "CONTINUE",
	KwDefault: "DEFAULT",
	KwDestructor: "DESTRUCTOR",
	KwDo: "DO",
	KwDynamic: "DYNAMIC",
	KwElse: "ELSE",
	KwEnum: "ENUM",
	KwExtern: "EXTERN",
	KwFinal: "FINAL",
	KwFinally: "FINALLY",
	KwFor: "FOR",
	KwIf: "IF",
	KwInclude: "INCLUDE",
	KwInline: "INLINE",
	KwNull: "NULL",
	KwNumber: "NUMBER",
	KwOperator: "OPERATOR",
	KwOverride: "OVERRIDE",
	KwPrivate: "PRIVATE",
	KwProtected: "PROTECTED",
	KwPublic: "PUBLIC",
	KwReturn: "RETURN",
	KwSizeof: "SIZEOF",
	KwStatic: "STATIC",
	KwSwitch: "SWITCH",
	KwTest: "TEST",
	KwThis: "THIS",
	KwThrow: "THROW",
	KwTry: "TRY",
	KwType: "TYPE",
	KwUnion: "UNION",
	KwVirtual: "VIRTUAL",
	KwVoid: "VOID",
	KwVolatile: "VOLATILE",
	KwWhile: "WHILE",
	PlusEqual: "+=",
	DoublePlus: "++",
	Plus: "+",
	MinusEqual: "-=",
	MinusColon: "-:",
	DoubleMinus: "--",
	MinusGreaterAsterisk: "->*",
	MinusGreater: "->",
	Minus: "-",
	AsteriskEqual: "*=",
	Asterisk: "*",
	Backslash: "\\",
	SlashEqual: "/=",
	Slash: "/",
	PercentEqual: "%=",
	Percent: "%",
	ExclamationEqual: "!=",
	ExclamationColon: "!:",
	Exclamation: "!",
	CircumflexEqual: "^=",
	Circumflex: "^",
	TildeColon: "~:",
	Tilde: "~",
	TripleAnd: "&&&",
	DoubleAndEqual: "&&=",
	DoubleAnd: "&&",
	AndEqual: "&=",
	And: "&",
	DoublePipeEqual: "||=",
	DoublePipe: "||",
	PipeEqual: "|=",
	Pipe: "|",
	Question: "?",
	DoubleColonEqual: "::=",
	ColonEqual: ":=",
	DoubleColon: "::",
	Colon: ":",
	DoubleAt: "@@",
	At: "@",
	TripleDot: "...",
	DoubleDotExclamation: "..!",
	DoubleDotQuestion: "..?",
	DotAsterisk: ".*",
	Dot: ".",
	Comma: ",",
	Semicolon: ";",
	DoubleEqual: "==",
	BracketOpen: "[",
	BracketClose: "]",
	BraceOpen: "{",
	BraceClose: "}",
	ParenOpen: "(",
	ParenClose: ")",
	TripleLessEqual: "<<<=",
	TripleLess: "<<<",
	DoubleLessEqual: "<<=",
	DoubleLess: "<<",
	LessEqual: "<=",
	LessMinus: "<-",
	Less: "<",
	TripleGreaterEqual: ">>>=",
	TripleGreater: ">>>",
	DoubleGreaterEqual: ">>=",
	DoubleGreater: ">>",
	GreaterEqual: ">=",
	Greater: ">",
	Dollar: "$",
	DoubleHash: "##",
	Hash: "#",
}

// String returns the keyword or operator spelling, or the kind name for literals.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k >= firstKeyword && k <= lastKeyword }

// IsOperator reports whether k is an operator or punctuation token.
func (k Kind) IsOperator() bool { return k >= firstOp && k <= lastOp }

// IsLiteral reports whether k is a number, float, character or string literal.
func (k Kind) IsLiteral() bool { return k >= Number && k <= String }
