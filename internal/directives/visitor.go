package directives

import (
	"github.com/stevefan1999/graphql-tools/internal/language"
	"github.com/stevefan1999/graphql-tools/internal/schema"
)

// Registry maps a directive name to the visitor handling its applications.
type Registry map[string]*Visitor

// Visitor is the capability bundle registered for one directive name. Each
// non-nil slot handles applications of the directive at the matching schema
// location. A visitor may implement any subset of the slots, but every
// implemented slot must be within the directive's declared locations.
type Visitor struct {
	Schema               func(d *Application, node *schema.Schema) error
	Scalar               func(d *Application, node *schema.Type) error
	Object               func(d *Application, node *schema.Type) error
	FieldDefinition      func(d *Application, node *schema.Field, ctx FieldContext) error
	ArgumentDefinition   func(d *Application, node *schema.InputValue, ctx ArgumentContext) error
	Interface            func(d *Application, node *schema.Type) error
	Union                func(d *Application, node *schema.Type) error
	Enum                 func(d *Application, node *schema.Type) error
	EnumValue            func(d *Application, node *schema.EnumValue, ctx EnumValueContext) error
	InputObject          func(d *Application, node *schema.Type) error
	InputFieldDefinition func(d *Application, node *schema.InputValue, ctx InputFieldContext) error
}

// Locations returns the SDL location names of the implemented slots, in the
// canonical location order.
func (v *Visitor) Locations() []string {
	var locs []string
	if v.Schema != nil {
		locs = append(locs, string(language.LocationSchema))
	}
	if v.Scalar != nil {
		locs = append(locs, string(language.LocationScalar))
	}
	if v.Object != nil {
		locs = append(locs, string(language.LocationObject))
	}
	if v.FieldDefinition != nil {
		locs = append(locs, string(language.LocationFieldDefinition))
	}
	if v.ArgumentDefinition != nil {
		locs = append(locs, string(language.LocationArgumentDefinition))
	}
	if v.Interface != nil {
		locs = append(locs, string(language.LocationInterface))
	}
	if v.Union != nil {
		locs = append(locs, string(language.LocationUnion))
	}
	if v.Enum != nil {
		locs = append(locs, string(language.LocationEnum))
	}
	if v.EnumValue != nil {
		locs = append(locs, string(language.LocationEnumValue))
	}
	if v.InputObject != nil {
		locs = append(locs, string(language.LocationInputObject))
	}
	if v.InputFieldDefinition != nil {
		locs = append(locs, string(language.LocationInputFieldDefinition))
	}
	return locs
}

// FieldContext locates a field definition within its owning object or
// interface type.
type FieldContext struct {
	ObjectType *schema.Type
}

// ArgumentContext locates an argument definition within its owning field and
// that field's owning type.
type ArgumentContext struct {
	Field      *schema.Field
	ObjectType *schema.Type
}

// EnumValueContext locates an enum value within its enum type.
type EnumValueContext struct {
	EnumType *schema.Type
}

// InputFieldContext locates an input field within its input object type.
type InputFieldContext struct {
	ObjectType *schema.Type
}

// Application is one application of a directive at a schema node: the
// directive name and its arguments, with declaration defaults overridden
// key-by-key by the values supplied at the use site. One Application is built
// per (use, node) pair and handed to exactly one callback.
type Application struct {
	Name string
	Args map[string]any
}

func newApplication(decl *schema.Directive, use *schema.DirectiveUse) *Application {
	args := make(map[string]any)
	if decl != nil {
		for _, arg := range decl.Arguments {
			if arg.DefaultValue != nil {
				args[arg.Name] = arg.DefaultValue
			}
		}
	}
	for _, arg := range use.Arguments {
		args[arg.Name] = arg.Value
	}
	return &Application{Name: use.Name, Args: args}
}
