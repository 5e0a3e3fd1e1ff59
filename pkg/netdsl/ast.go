// Package netdsl parses the circuit description text format (.ckt): a small
// statement language for declaring nets and components and wiring them up.
// Parsed files are applied to a schematic with Build or Apply.
package netdsl

import "strings"

// File represents a complete circuit description file
type File struct {
	Statements []*Statement `@@*`
}

// Statement is a single top-level statement
type Statement struct {
	Net       *NetDecl       `  @@`
	Ground    *GroundDecl    `| @@`
	Component *ComponentDecl `| @@`
	Connect   *ConnectStmt   `| @@`
	Join      *JoinStmt      `| @@`
}

// NetDecl declares a named net
// Example: net VCC
type NetDecl struct {
	Name string `KwNet @Ident`
}

// GroundDecl declares a named ground net
// Example: ground GND
type GroundDecl struct {
	Name string `KwGround @Ident`
}

// ComponentDecl declares a component with its pin list and optional parameters
// Example: component R1 resistor (1 2) { value = 10k }
type ComponentDecl struct {
	Name   string   `KwComponent @Ident`
	Kind   string   `@Ident`
	Pins   []string `LParen ( @Ident | @Number )+ RParen`
	Params []*Param `( LBrace @@* RBrace )?`
}

// Param is a single key/value parameter
type Param struct {
	Name  string `@Ident`
	Value *Value `Assign @@`
}

// Boolean captures true/false keywords
type Boolean bool

// Capture implements participle's Capture interface
func (b *Boolean) Capture(values []string) error {
	*b = Boolean(strings.EqualFold(values[0], "true"))
	return nil
}

// Value is a parameter value: string, boolean, number (with optional
// engineering suffix), or bare identifier
type Value struct {
	Str    *string  `  @String`
	Bool   *Boolean `| @( KwTrue | KwFalse )`
	Number *string  `| @Number`
	Ident  *string  `| @Ident`
}

// PinRef names one pin of one component
// Example: R1.2
type PinRef struct {
	Component string `@Ident`
	Pin       string `Dot @( Ident | Number )`
}

// ConnectStmt attaches a pin to a declared net
// Example: connect VCC R1.1
type ConnectStmt struct {
	Net string  `KwConnect @Ident`
	Pin *PinRef `@@`
}

// JoinStmt wires two pins onto one net, optionally naming the net and
// optionally permitting a merge of two existing nets
// Example: join R1.2 R2.1 into VOUT
type JoinStmt struct {
	A     *PinRef `KwJoin @@`
	B     *PinRef `@@`
	Into  string  `( KwInto @Ident )?`
	Merge bool    `@KwMerge?`
}
