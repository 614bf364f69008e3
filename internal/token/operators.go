package token

type operator struct {
	text string
	kind Kind
}

// operators is ordered longest first within each leading byte, so the first
// prefix match is the maximal munch.
var operators = [...]operator{
	{"<<<=", TripleLessEqual},
	{">>>=", TripleGreaterEqual},
	{"->*", MinusGreaterAsterisk},
	{"&&&", TripleAnd},
	{"&&=", DoubleAndEqual},
	{"||=", DoublePipeEqual},
	{"::=", DoubleColonEqual},
	{"...", TripleDot},
	{"..!", DoubleDotExclamation},
	{"..?", DoubleDotQuestion},
	{"<<<", TripleLess},
	{"<<=", DoubleLessEqual},
	{">>>", TripleGreater},
	{">>=", DoubleGreaterEqual},
	{"+=", PlusEqual},
	{"++", DoublePlus},
	{"-=", MinusEqual},
	{"-:", MinusColon},
	{"--", DoubleMinus},
	{"->", MinusGreater},
	{"*=", AsteriskEqual},
	{"/=", SlashEqual},
	{"%=", PercentEqual},
	{"!=", ExclamationEqual},
	{"!:", ExclamationColon},
	{"^=", CircumflexEqual},
	{"~:", TildeColon},
	{"&&", DoubleAnd},
	{"&=", AndEqual},
	{"||", DoublePipe},
	{"|=", PipeEqual},
	{":=", ColonEqual},
	{"::", DoubleColon},
	{"@@", DoubleAt},
	{".*", DotAsterisk},
	{"==", DoubleEqual},
	{"<<", DoubleLess},
	{"<=", LessEqual},
	{"<-", LessMinus},
	{">>", DoubleGreater},
	{">=", GreaterEqual},
	{"##", DoubleHash},
	{"+", Plus},
	{"-", Minus},
	{"*", Asterisk},
	{"\\", Backslash},
	{"/", Slash},
	{"%", Percent},
	{"!", Exclamation},
	{"^", Circumflex},
	{"~", Tilde},
	{"&", And},
	{"|", Pipe},
	{"?", Question},
	{":", Colon},
	{"@", At},
	{".", Dot},
	{",", Comma},
	{";", Semicolon},
	{"[", BracketOpen},
	{"]", BracketClose},
	{"{", BraceOpen},
	{"}", BraceClose},
	{"(", ParenOpen},
	{")", ParenClose},
	{"<", Less},
	{">", Greater},
	{"$", Dollar},
	{"#", Hash},
}

var operatorsByByte = func() (idx [256][]operator) {
	for _, op := range operators {
		idx[op.text[0]] = append(idx[op.text[0]], op)
	}
	return idx
}()

// MatchOperator returns the longest operator that prefixes src and its length.
// It returns (Invalid, 0) when no operator matches.
func MatchOperator(src []byte) (Kind, int) {
	if len(src) == 0 {
		return Invalid, 0
	}
	for _, op := range operatorsByByte[src[0]] {
		if len(op.text) <= len(src) && string(src[:len(op.text)]) == op.text {
			return op.kind, len(op.text)
		}
	}
	return Invalid, 0
}
