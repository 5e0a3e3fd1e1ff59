package netdsl

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CircuitLexer defines the lexical structure for circuit description files.
// The format is line-oriented in spirit but whitespace-insensitive: comments
// run from -- to end of line, keywords are case-insensitive.
var CircuitLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments (-- to end of line)
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Statement keywords
	{Name: "KwNet", Pattern: `(?i)\bNET\b`},
	{Name: "KwGround", Pattern: `(?i)\bGROUND\b`},
	{Name: "KwComponent", Pattern: `(?i)\bCOMPONENT\b`},
	{Name: "KwConnect", Pattern: `(?i)\bCONNECT\b`},
	{Name: "KwJoin", Pattern: `(?i)\bJOIN\b`},
	{Name: "KwInto", Pattern: `(?i)\bINTO\b`},
	{Name: "KwMerge", Pattern: `(?i)\bMERGE\b`},

	// Boolean literals
	{Name: "KwTrue", Pattern: `(?i)\bTRUE\b`},
	{Name: "KwFalse", Pattern: `(?i)\bFALSE\b`},

	// Operators and punctuation
	{Name: "Assign", Pattern: `=`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},

	// String literals with escape sequences
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Numbers, optionally with a SPICE-style engineering suffix and a
	// trailing unit (10k, 4.7uF, 1meg, 2.2e3)
	{Name: "Number", Pattern: `[-+]?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?[a-zA-Z]*`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})
