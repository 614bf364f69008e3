package token

var keywords = map[string]Kind{
	"ABSTRACT": KwAbstract,
	"ASSERT": KwAssert,
	"BREAK": KwBreak,
	"CASE": KwCase,
	"CATCH": KwCatch,
	"CONCEPT": KwConcept,
	"CONST": KwConst,
	"CONSTRUCTOR": KwConstructor,
	"CONTINUE": KwContinue,
	"DEFAULT": KwDefault,
	"DESTRUCTOR": KwDestructor,
	"DO": KwDo,
	"DYNAMIC": KwDynamic,
	"ELSE": KwElse,
	"ENUM": KwEnum,
	"EXTERN": KwExtern,
	"FINAL": KwFinal,
	"FINALLY": KwFinally,
	"FOR": KwFor,
	"IF": KwIf,
	"INCLUDE": KwInclude,
	"INLINE": KwInline,
	"NULL": KwNull,
	"NUMBER": KwNumber,
	"OPERATOR": KwOperator,
	"OVERRIDE": KwOverride,
	"PRIVATE": KwPrivate,
	"PROTECTED": KwProtected,
	"PUBLIC": KwPublic,
	"RETURN": KwReturn,
	"SIZEOF": KwSizeof,
	"STATIC": KwStatic,
	"SWITCH": KwSwitch,
	"TEST": KwTest,
	"THIS": KwThis,
	"THROW": KwThrow,
	"TRY": KwTry,
	"TYPE": KwType,
	"UNION": KwUnion,
	"VIRTUAL": KwVirtual,
	"VOID": KwVoid,
	"VOLATILE": KwVolatile,
	"WHILE": KwWhile,
}

// LookupKeyword returns the keyword kind for ident, if ident is reserved.
// Keywords are upper case; "if" is an ordinary identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
