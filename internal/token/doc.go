// Package token defines lexical token kinds for RL.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly.
//   - Keywords are upper case and are never produced as Identifier.
//   - Comments and whitespace are separators only; they never appear as tokens.
package token
