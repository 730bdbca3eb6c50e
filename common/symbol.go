// Package common defines constructs shared between compiler stages.
package common

// Symbol represents a named entity declared in the source program: a
// variable, a parameter, a function, or a type definition.
type Symbol struct {
	// Name is the source name of the symbol.
	Name string

	// DeclaredType is the textual form of the declared type.
	DeclaredType string

	// ScopeName is the name of the scope the symbol was declared in: the
	// enclosing function's name, or "global".
	ScopeName string

	// DeclLine is the source line the symbol was declared on.
	DeclLine int

	// IsFunction marks function symbols.
	IsFunction bool

	// IsArray marks symbols declared as arrays.
	IsArray bool
}
