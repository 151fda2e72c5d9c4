// SPDX-License-Identifier: MIT
//
// Package dimacs reads and writes the line-oriented DIMACS graph-colouring
// formats (component K, §6): the classic "p edge V E" / "e u v" input
// dialect, and a "v i c" colouring output dialect. No example repo in the
// retrieved corpus ships a file-format reader, so this package is written
// in the teacher's general idiom — sentinel errors, bufio scanning, doc
// comments naming Contract/Complexity — rather than adapted from a
// specific teacher file; see DESIGN.md for the stdlib-only justification.
package dimacs
