package ast

// Program is the root node of every parsed translation unit.  Decls holds the
// top-level definitions (functions, structures, enumerations, and typedefs) in
// declaration order.
type Program struct {
	NodeBase

	Decls []Node
}

// Functions returns the function definitions of the program in declaration
// order.
func (p *Program) Functions() []*Function {
	var funcs []*Function
	for _, decl := range p.Decls {
		if fn, ok := decl.(*Function); ok {
			funcs = append(funcs, fn)
		}
	}

	return funcs
}

// Parameter is a single function parameter.  Parameters are owned by their
// function's parameter list; order is positionally significant.
type Parameter struct {
	Type    PrimitiveType
	Name    string
	IsArray bool
}

// Function is a function definition.
type Function struct {
	NodeBase

	ReturnType PrimitiveType
	Name       string
	Params     []Parameter
	Body       *Block
}

// StructField is a single member of a structure definition.
type StructField struct {
	Type    PrimitiveType
	Name    string
	IsArray bool
}

// StructDef is a top-level structure definition.
type StructDef struct {
	NodeBase

	Name   string
	Fields []StructField
}

// EnumDef is a top-level enumeration definition.
type EnumDef struct {
	NodeBase

	Name      string
	Constants []string
}

// Typedef is a top-level type alias definition.
type Typedef struct {
	NodeBase

	Underlying PrimitiveType
	Name       string
}
