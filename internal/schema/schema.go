package schema

// Schema represents the complete GraphQL schema
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	Types            map[string]*Type // All named types keyed by name
	TypeOrder        []string         // Type names in declaration order
	Directives       map[string]*Directive
	Description      string
	Applied          []*DirectiveUse // Directives applied to the schema definition itself
}

func NewSchema(description string) *Schema {
	return &Schema{
		Types:       map[string]*Type{},
		Directives:  map[string]*Directive{},
		Description: description,
	}
}

func (s *Schema) SetQueryType(name string) *Schema        { s.QueryType = name; return s }
func (s *Schema) SetMutationType(name string) *Schema     { s.MutationType = name; return s }
func (s *Schema) SetSubscriptionType(name string) *Schema { s.SubscriptionType = name; return s }

// AddType registers t and records its declaration order.
func (s *Schema) AddType(t *Type) *Schema {
	if _, exists := s.Types[t.Name]; !exists {
		s.TypeOrder = append(s.TypeOrder, t.Name)
	}
	s.Types[t.Name] = t
	return s
}

func (s *Schema) AddDirective(d *Directive) *Directive {
	s.Directives[d.Name] = d
	return d
}

func (s *Schema) AddDirectiveUse(u *DirectiveUse) *Schema {
	s.Applied = append(s.Applied, u)
	return s
}

// GetQueryType returns the root query type (may be nil if absent)
func (s *Schema) GetQueryType() *Type { return s.Types[s.QueryType] }

// GetMutationType returns the root mutation type (may be nil if absent)
func (s *Schema) GetMutationType() *Type { return s.Types[s.MutationType] }

// GetSubscriptionType returns the root subscription type (may be nil if absent)
func (s *Schema) GetSubscriptionType() *Type { return s.Types[s.SubscriptionType] }

// OrderedTypes returns all named types in declaration order.
func (s *Schema) OrderedTypes() []*Type {
	types := make([]*Type, 0, len(s.TypeOrder))
	for _, name := range s.TypeOrder {
		types = append(types, s.Types[name])
	}
	return types
}

// Node is any schema element that can carry applied directives: the schema
// definition itself, every named type, fields, arguments, input fields and
// enum values.
type Node interface {
	GetDirectives() []*DirectiveUse
}

func (s *Schema) GetDirectives() []*DirectiveUse     { return s.Applied }
func (t *Type) GetDirectives() []*DirectiveUse       { return t.Directives }
func (f *Field) GetDirectives() []*DirectiveUse      { return f.Directives }
func (v *EnumValue) GetDirectives() []*DirectiveUse  { return v.Directives }
func (v *InputValue) GetDirectives() []*DirectiveUse { return v.Directives }

// Type is a named GraphQL type (object, interface, union, scalar, enum, input)
type Type struct {
	Name           string
	Kind           TypeKind
	Description    string
	Fields         []*Field      // For OBJECT and INTERFACE
	Interfaces     []string      // For OBJECT and INTERFACE (implemented/extended)
	PossibleTypes  []string      // For INTERFACE and UNION
	EnumValues     []*EnumValue  // For ENUM
	InputFields    []*InputValue // For INPUT_OBJECT
	Directives     []*DirectiveUse
	SpecifiedByURL *string
	OneOf          bool
}

func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type             { t.Fields = append(t.Fields, f); return t }
func (t *Type) AddInterface(name string) *Type      { t.Interfaces = append(t.Interfaces, name); return t }
func (t *Type) AddPossibleType(name string) *Type   { t.PossibleTypes = append(t.PossibleTypes, name); return t }
func (t *Type) AddEnumValue(v *EnumValue) *Type     { t.EnumValues = append(t.EnumValues, v); return t }
func (t *Type) AddInputField(v *InputValue) *Type   { t.InputFields = append(t.InputFields, v); return t }
func (t *Type) AddDirectiveUse(u *DirectiveUse) *Type {
	t.Directives = append(t.Directives, u)
	return t
}
func (t *Type) SetOneOf(oneOf bool) *Type { t.OneOf = oneOf; return t }

// TypeKind represents the kind of GraphQL type
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// Field represents a field on an object or interface
type Field struct {
	Name              string
	Description       string
	Type              *TypeRef
	Arguments         []*InputValue
	Directives        []*DirectiveUse
	IsDeprecated      bool
	DeprecationReason string
}

func NewField(name, description string, typ *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: typ}
}

func (f *Field) AddArgument(a *InputValue) *Field { f.Arguments = append(f.Arguments, a); return f }
func (f *Field) AddDirectiveUse(u *DirectiveUse) *Field {
	f.Directives = append(f.Directives, u)
	return f
}
func (f *Field) Deprecate(reason string) *Field {
	f.IsDeprecated = true
	f.DeprecationReason = reason
	return f
}

type EnumValue struct {
	Name              string
	Description       string
	Directives        []*DirectiveUse
	IsDeprecated      bool
	DeprecationReason string
}

func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description}
}

func (v *EnumValue) AddDirectiveUse(u *DirectiveUse) *EnumValue {
	v.Directives = append(v.Directives, u)
	return v
}
func (v *EnumValue) Deprecate(reason string) *EnumValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

// InputValue is an argument definition or an input object field
type InputValue struct {
	Name              string
	Description       string
	Type              *TypeRef
	DefaultValue      any
	Directives        []*DirectiveUse
	IsDeprecated      bool
	DeprecationReason string
}

func NewInputValue(name, description string, typ *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: typ}
}

func (v *InputValue) SetDefault(value any) *InputValue { v.DefaultValue = value; return v }
func (v *InputValue) AddDirectiveUse(u *DirectiveUse) *InputValue {
	v.Directives = append(v.Directives, u)
	return v
}
func (v *InputValue) Deprecate(reason string) *InputValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

// Directive is a directive declaration: name, legal locations and argument
// definitions with defaults. Uses of a directive at schema nodes are
// represented separately by DirectiveUse.
type Directive struct {
	Name         string
	Description  string
	Locations    []string
	Arguments    []*InputValue
	IsRepeatable bool
}

func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) AddArgument(a *InputValue) *Directive {
	d.Arguments = append(d.Arguments, a)
	return d
}
func (d *Directive) AddLocation(loc string) *Directive {
	d.Locations = append(d.Locations, loc)
	return d
}
func (d *Directive) SetRepeatable(repeatable bool) *Directive {
	d.IsRepeatable = repeatable
	return d
}

// DirectiveUse is one application of a directive at a declaration site.
// Arguments keep source order. Uses are constructed at build time and are
// never mutated afterwards.
type DirectiveUse struct {
	Name      string
	Arguments []*Argument
}

func NewDirectiveUse(name string) *DirectiveUse { return &DirectiveUse{Name: name} }

func (u *DirectiveUse) AddArgument(name string, value any) *DirectiveUse {
	u.Arguments = append(u.Arguments, &Argument{Name: name, Value: value})
	return u
}

// ArgumentValue returns the supplied value for name and whether it was supplied.
func (u *DirectiveUse) ArgumentValue(name string) (any, bool) {
	for _, a := range u.Arguments {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// Argument is a named literal supplied to a directive use.
type Argument struct {
	Name  string
	Value any
}

// TypeRef represents a reference to a type (can be wrapped)
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // For List and NonNull
	Named  string   // For named types
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

// Helper functions for TypeRef
func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

func (t *TypeRef) IsList() bool {
	if t.Kind == TypeRefKindList {
		return true
	}
	if t.Kind == TypeRefKindNonNull && t.OfType != nil {
		return t.OfType.Kind == TypeRefKindList
	}
	return false
}

func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

func (t *TypeRef) GetNamedType() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }
