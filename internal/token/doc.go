// Package token defines the lexical token kinds produced by the HCL scanner.
// Invariants:
//   - Token.Text is the exact lexeme text from the original source.
//   - Token.Span matches the lexeme bytes; for comments it covers only the
//     comment body, excluding the '//', '#', '/*' and '*/' delimiters.
//   - Operators and delimiters share a single kind (OpOrDelim) and are
//     distinguished by Text; the set of literals is fixed by the scanner.
//   - NumberLit and HorizontalTab are reserved kinds: the scanner never
//     produces them today. Numeric-literal scanning is a later step.
//   - Invalid and EOF are stream sentinels and never appear in a
//     successfully scanned token sequence.
package token
