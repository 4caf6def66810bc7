package schema

import (
	"strconv"

	"github.com/stevefan1999/graphql-tools/internal/language"
)

// BuildFromSDL parses SDL and returns the corresponding Schema. Declaration
// order of types and members is preserved, and every directive written at a
// declaration site is attached to the built node in source order.
func BuildFromSDL(sdl string) (*Schema, error) {
	return BuildFromSource("schema.graphql", sdl)
}

// BuildFromSource is BuildFromSDL with an explicit source name for positions.
func BuildFromSource(name, source string) (*Schema, error) {
	doc, err := language.ParseSchema(name, source)
	if err != nil {
		return nil, err
	}
	return BuildFromDocument(doc)
}

// BuildFromDocument builds a Schema from a parsed schema document.
func BuildFromDocument(doc *language.SchemaDocument) (*Schema, error) {
	b := &builder{schema: NewSchema("")}

	// Builtins
	b.schema.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	b.schema.AddDirective(includeDirective)
	b.schema.AddDirective(skipDirective)
	b.schema.AddDirective(deprecatedDirective)
	b.schema.AddDirective(specifiedByDirective)

	for _, node := range doc.Directives {
		b.addDirectiveDef(node)
	}
	for _, node := range doc.Definitions {
		b.addDefinition(node)
	}
	for _, node := range doc.Extensions {
		b.extendDefinition(node)
	}

	explicitOps := false
	for _, node := range doc.Schema {
		explicitOps = b.applySchemaDef(node) || explicitOps
	}
	for _, node := range doc.SchemaExtension {
		explicitOps = b.applySchemaDef(node) || explicitOps
	}
	if !explicitOps {
		b.defaultRootTypes()
	}

	if len(b.violations) > 0 {
		return nil, ValidationError(b.violations)
	}
	return b.schema, nil
}

type builder struct {
	schema     *Schema
	violations []*Violation
}

func (b *builder) addViolation(v ...*Violation) {
	b.violations = append(b.violations, v...)
}

func (b *builder) addDirectiveDef(node *language.DirectiveDefinition) {
	if existing, exists := b.schema.Directives[node.Name]; exists && !IsBuiltinDirective(existing) {
		b.addViolation(violationDuplicateDirectiveName(node.Name, node.Position))
		return
	}
	d := NewDirective(node.Name, node.Description).SetRepeatable(node.IsRepeatable)
	for _, loc := range node.Locations {
		d.AddLocation(string(loc))
	}
	for _, arg := range node.Arguments {
		d.AddArgument(b.buildArgument(arg))
	}
	b.schema.AddDirective(d)
}

func (b *builder) addDefinition(node *language.Definition) {
	if existing, exists := b.schema.Types[node.Name]; exists && !IsBuiltinType(existing) {
		b.addViolation(violationDuplicateTypeName(node.Name, node.Position))
		return
	}
	b.schema.AddType(b.buildType(node))
}

func (b *builder) buildType(node *language.Definition) *Type {
	var t *Type
	switch node.Kind {
	case language.Object:
		t = NewType(node.Name, TypeKindObject, node.Description)
		b.populateComposite(t, node)
	case language.Interface:
		t = NewType(node.Name, TypeKindInterface, node.Description)
		b.populateComposite(t, node)
	case language.Union:
		t = NewType(node.Name, TypeKindUnion, node.Description)
		for _, member := range node.Types {
			t.AddPossibleType(member)
		}
	case language.Enum:
		t = NewType(node.Name, TypeKindEnum, node.Description)
		for _, v := range node.EnumValues {
			t.AddEnumValue(b.buildEnumValue(v))
		}
	case language.InputObject:
		t = NewType(node.Name, TypeKindInputObject, node.Description)
		for _, f := range node.Fields {
			t.AddInputField(b.buildInputField(f))
		}
	case language.Scalar:
		t = NewType(node.Name, TypeKindScalar, node.Description)
	default:
		t = NewType(node.Name, TypeKindScalar, node.Description)
	}
	for _, use := range b.buildUses(node.Directives) {
		t.AddDirectiveUse(use)
	}
	if t.Kind == TypeKindScalar {
		if url, ok := specifiedByURL(t.Directives); ok {
			t.SpecifiedByURL = &url
		}
	}
	if t.Kind == TypeKindInputObject {
		t.SetOneOf(hasUse(t.Directives, "oneOf"))
	}
	return t
}

func (b *builder) populateComposite(t *Type, node *language.Definition) {
	for _, iface := range node.Interfaces {
		t.AddInterface(iface)
	}
	for _, f := range node.Fields {
		t.AddField(b.buildField(f))
	}
}

func (b *builder) buildField(node *language.FieldDefinition) *Field {
	f := NewField(node.Name, node.Description, b.buildTypeRef(node.Type))
	for _, arg := range node.Arguments {
		f.AddArgument(b.buildArgument(arg))
	}
	for _, use := range b.buildUses(node.Directives) {
		f.AddDirectiveUse(use)
	}
	if reason, ok := deprecationReason(f.Directives); ok {
		f.Deprecate(reason)
	}
	return f
}

func (b *builder) buildArgument(node *language.ArgumentDefinition) *InputValue {
	in := NewInputValue(node.Name, node.Description, b.buildTypeRef(node.Type))
	if node.DefaultValue != nil {
		in.SetDefault(b.literalValue(node.DefaultValue))
	}
	for _, use := range b.buildUses(node.Directives) {
		in.AddDirectiveUse(use)
	}
	if reason, ok := deprecationReason(in.Directives); ok {
		in.Deprecate(reason)
	}
	return in
}

// Input object fields arrive as field definitions in the AST.
func (b *builder) buildInputField(node *language.FieldDefinition) *InputValue {
	in := NewInputValue(node.Name, node.Description, b.buildTypeRef(node.Type))
	if node.DefaultValue != nil {
		in.SetDefault(b.literalValue(node.DefaultValue))
	}
	for _, use := range b.buildUses(node.Directives) {
		in.AddDirectiveUse(use)
	}
	if reason, ok := deprecationReason(in.Directives); ok {
		in.Deprecate(reason)
	}
	return in
}

func (b *builder) buildEnumValue(node *language.EnumValueDefinition) *EnumValue {
	v := NewEnumValue(node.Name, node.Description)
	for _, use := range b.buildUses(node.Directives) {
		v.AddDirectiveUse(use)
	}
	if reason, ok := deprecationReason(v.Directives); ok {
		v.Deprecate(reason)
	}
	return v
}

func (b *builder) buildUses(list language.DirectiveList) []*DirectiveUse {
	uses := make([]*DirectiveUse, 0, len(list))
	for _, dir := range list {
		use := NewDirectiveUse(dir.Name)
		for _, arg := range dir.Arguments {
			use.AddArgument(arg.Name, b.literalValue(arg.Value))
		}
		uses = append(uses, use)
	}
	return uses
}

func (b *builder) buildTypeRef(node *language.Type) *TypeRef {
	if node == nil {
		return nil
	}
	var ref *TypeRef
	if node.Elem != nil {
		ref = ListType(b.buildTypeRef(node.Elem))
	} else {
		ref = NamedType(node.NamedType)
	}
	if node.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

// literalValue converts an AST value into its Go literal representation:
// string, int64, float64, bool, nil, []any or map[string]any. Enum values
// become their name as a string.
func (b *builder) literalValue(node *language.Value) any {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case language.IntValue:
		i, err := strconv.ParseInt(node.Raw, 10, 64)
		if err != nil {
			return node.Raw
		}
		return i
	case language.FloatValue:
		f, err := strconv.ParseFloat(node.Raw, 64)
		if err != nil {
			return node.Raw
		}
		return f
	case language.StringValue, language.BlockValue, language.EnumValue:
		return node.Raw
	case language.BooleanValue:
		return node.Raw == "true"
	case language.NullValue:
		return nil
	case language.ListValue:
		out := make([]any, 0, len(node.Children))
		for _, child := range node.Children {
			out = append(out, b.literalValue(child.Value))
		}
		return out
	case language.ObjectValue:
		out := make(map[string]any, len(node.Children))
		for _, child := range node.Children {
			out[child.Name] = b.literalValue(child.Value)
		}
		return out
	case language.Variable:
		b.addViolation(violationVariableInConstValue(node.Position))
		return nil
	default:
		return node.Raw
	}
}

func (b *builder) extendDefinition(node *language.Definition) {
	t, exists := b.schema.Types[node.Name]
	if !exists {
		b.addViolation(violationExtendUnknownType(node.Name, node.Position))
		return
	}
	switch node.Kind {
	case language.Object, language.Interface:
		b.populateComposite(t, node)
	case language.Union:
		for _, member := range node.Types {
			t.AddPossibleType(member)
		}
	case language.Enum:
		for _, v := range node.EnumValues {
			t.AddEnumValue(b.buildEnumValue(v))
		}
	case language.InputObject:
		for _, f := range node.Fields {
			t.AddInputField(b.buildInputField(f))
		}
	}
	for _, use := range b.buildUses(node.Directives) {
		t.AddDirectiveUse(use)
	}
}

// applySchemaDef applies a schema definition or extension and reports whether
// it declared any root operation types.
func (b *builder) applySchemaDef(node *language.SchemaDefinition) bool {
	if node.Description != "" {
		b.schema.Description = node.Description
	}
	for _, use := range b.buildUses(node.Directives) {
		b.schema.AddDirectiveUse(use)
	}
	for _, op := range node.OperationTypes {
		switch op.Operation {
		case language.Query:
			b.schema.SetQueryType(op.Type)
		case language.Mutation:
			b.schema.SetMutationType(op.Type)
		case language.Subscription:
			b.schema.SetSubscriptionType(op.Type)
		}
	}
	return len(node.OperationTypes) > 0
}

// defaultRootTypes applies the conventional root type names when no schema
// block declares them.
func (b *builder) defaultRootTypes() {
	if _, ok := b.schema.Types["Query"]; ok {
		b.schema.SetQueryType("Query")
	}
	if _, ok := b.schema.Types["Mutation"]; ok {
		b.schema.SetMutationType("Mutation")
	}
	if _, ok := b.schema.Types["Subscription"]; ok {
		b.schema.SetSubscriptionType("Subscription")
	}
}

func deprecationReason(uses []*DirectiveUse) (string, bool) {
	for _, use := range uses {
		if use.Name != "deprecated" {
			continue
		}
		if v, ok := use.ArgumentValue("reason"); ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
		return "No longer supported", true
	}
	return "", false
}

func specifiedByURL(uses []*DirectiveUse) (string, bool) {
	for _, use := range uses {
		if use.Name != "specifiedBy" {
			continue
		}
		if v, ok := use.ArgumentValue("url"); ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

func hasUse(uses []*DirectiveUse, name string) bool {
	for _, use := range uses {
		if use.Name == name {
			return true
		}
	}
	return false
}
