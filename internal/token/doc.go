// Package token defines lexical token kinds and trivia for GraphQL
// executable documents.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Commas and comments are insignificant in GraphQL and are carried as
//     leading Trivia, never in the main token stream.
//   - Keywords (query, fragment, on, ...) are NOT reserved; the lexer emits
//     Name tokens and the parser matches them by text, per the GraphQL spec.
package token
