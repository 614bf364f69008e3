// Package scoper layers lexical scopes over parsed files and resolves every
// symbol reference to the declaration it names.
//
// The work runs in three passes over a Table:
//
//   - Populate builds one root scope per file and a scope tree mirroring the
//     declarations and statements of that file.
//   - Link, once every file of a build is populated, registers sibling scopes:
//     the roots of included files and reopenings of the same namespace.
//   - Resolve walks the files again and looks up each symbol with Filter.
//
// Scopes never change membership after Populate; Link only adds siblings.
package scoper
