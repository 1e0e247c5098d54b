// Package isa implements the instruction set of the RetroLudos 16-bit CPU.
//
// Every instruction is exactly one 16-bit word. The most significant bits of
// the word hold a variable length prefix that selects one of thirteen
// formats; the prefixes form a complete prefix code, so every possible word
// belongs to exactly one format. The opcode field follows the prefix, and the
// operand fields (register codes and 8-bit signed immediates) follow the
// opcode in declaration order, each packed most significant bit first.
//
// Formats with few operands spend the freed bits on a wider opcode field,
// while the operand heavy formats keep a short prefix.
package isa
