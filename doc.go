// Package pebbles implements a fixed-width integer expression calculator.
//
// Expressions use the integer operators of a C-like language with their
// conventional precedences: "10 + 2 * 5" is 20 and "1 | 6 ^ 7 & 12" is
// "1 | (6 ^ (7 & 12))". Literals may be decimal, hex with a 0x prefix, or
// octal with a 0o prefix.
//
// Arithmetic is two's-complement and wraps on overflow. The width and
// signedness are not part of an expression; a parsed expression may be
// evaluated at any of the ten integer kinds, from u8 through i128. Shift
// amounts are masked to the width, so "1 << 35" at u32 is "1 << 3".
package pebbles
