// Package fuzztests houses Go fuzz harnesses for the rlc front end
// (source -> lexer -> parser -> scoper). They check robustness only: no
// panics, no hangs, spans stay in bounds on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
