package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBadEscape                Code = 1006
	LexEmptyChar                Code = 1007

	// Парсерные
	SynUnexpectedToken      Code = 2001
	SynExpectSemicolon      Code = 2002
	SynExpectIdentifier     Code = 2003
	SynExpectType           Code = 2004
	SynExpectExpression     Code = 2005
	SynExpectSymbol         Code = 2006
	SynUnclosedParen        Code = 2007
	SynUnclosedBrace        Code = 2008
	SynUnclosedBracket      Code = 2009
	SynDestructorTemplate   Code = 2010
	SynDuplicateDestructor  Code = 2011
	SynTemplateNotAllowed   Code = 2012
	SynDuplicateDefault     Code = 2013
	SynTryWithoutHandler    Code = 2014
	SynModifierNotAllowed   Code = 2015
	SynExpectInclude        Code = 2016
	SynExpectScopeEntry     Code = 2017
	SynExpectMember         Code = 2018
	SynExpectStatement      Code = 2019
	SynAbstractWithBody     Code = 2020

	// Семантические
	SemUnresolvedSymbol Code = 3001
	SemNoMembers        Code = 3002

	// IO
	IOLoadFileError   Code = 4001
	IOIncludeNotFound Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexBadEscape:                "Invalid escape sequence",
	LexEmptyChar:                "Empty character literal",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type name",
	SynExpectExpression:         "Expected expression",
	SynExpectSymbol:             "Expected symbol",
	SynUnclosedParen:            "Expected ')'",
	SynUnclosedBrace:            "Expected '}'",
	SynUnclosedBracket:          "Expected ']'",
	SynDestructorTemplate:       "Destructor with template arguments",
	SynDuplicateDestructor:      "Duplicate destructor",
	SynTemplateNotAllowed:       "Templates not allowed here",
	SynDuplicateDefault:         "Duplicate default case",
	SynTryWithoutHandler:        "Try without catch or finally",
	SynModifierNotAllowed:       "Modifier not allowed here",
	SynExpectInclude:            "Expected include path",
	SynExpectScopeEntry:         "Expected declaration",
	SynExpectMember:             "Expected member declaration",
	SynExpectStatement:          "Expected statement",
	SynAbstractWithBody:         "Abstract function with body",
	SemUnresolvedSymbol:         "Unresolved symbol",
	SemNoMembers:                "Symbol has no members",
	IOLoadFileError:             "File load error",
	IOIncludeNotFound:           "Include not found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
