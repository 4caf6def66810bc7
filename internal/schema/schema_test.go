package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, sdl string) *Schema {
	t.Helper()
	sch, err := BuildFromSDL(sdl)
	require.NoError(t, err, "failed to build schema")
	return sch
}

func useNames(node Node) []string {
	var names []string
	for _, use := range node.GetDirectives() {
		names = append(names, use.Name)
	}
	return names
}

func TestBuild_TypeOrder(t *testing.T) {
	sch := mustBuild(t, `
type Query { people: [Person] }
type Mutation { addPerson(name: String): Person }
enum Gender { NONBINARY FEMALE MALE }
interface Named { name: String }
input PersonInput { name: String! }
type Person implements Named { name: String gender: Gender }
union WhateverUnion = Person
`)

	var got []string
	for _, typ := range sch.OrderedTypes() {
		if IsBuiltinType(typ) {
			continue
		}
		got = append(got, typ.Name)
	}
	want := []string{"Query", "Mutation", "Gender", "Named", "PersonInput", "Person", "WhateverUnion"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("type order mismatch (-want +got):\n%s", diff)
	}
}

// Every node kind reports its applied directives in source order, including
// the schema definition and enum values.
func TestBuild_DirectiveUsesOnEveryKind(t *testing.T) {
	sch := mustBuild(t, `
schema @a @b {
  query: Query
}

scalar DateTime @a @b

type Query @a @b {
  people(limit: Int @a @b): [Person] @a @b
}

enum Gender @a @b {
  NONBINARY @a @b
}

interface Named @a @b {
  name: String
}

input PersonInput @a @b {
  name: String! @a @b
}

type Person @a @b {
  name: String
}

union WhateverUnion @a @b = Person
`)

	want := []string{"a", "b"}
	query := sch.Types["Query"]

	require.Equal(t, want, useNames(sch))
	require.Equal(t, want, useNames(sch.Types["DateTime"]))
	require.Equal(t, want, useNames(query))
	require.Equal(t, want, useNames(query.Fields[0]))
	require.Equal(t, want, useNames(query.Fields[0].Arguments[0]))
	require.Equal(t, want, useNames(sch.Types["Gender"]))
	require.Equal(t, want, useNames(sch.Types["Gender"].EnumValues[0]))
	require.Equal(t, want, useNames(sch.Types["Named"]))
	require.Equal(t, want, useNames(sch.Types["PersonInput"]))
	require.Equal(t, want, useNames(sch.Types["PersonInput"].InputFields[0]))
	require.Equal(t, want, useNames(sch.Types["Person"]))
	require.Equal(t, want, useNames(sch.Types["WhateverUnion"]))
}

func TestBuild_DirectiveDeclaration(t *testing.T) {
	sch := mustBuild(t, `
directive @d(role: String = "guest", limit: Int) repeatable on FIELD_DEFINITION | OBJECT

type Query { me: String }
`)

	d := sch.Directives["d"]
	require.NotNil(t, d)
	require.True(t, d.IsRepeatable)
	require.Equal(t, []string{"FIELD_DEFINITION", "OBJECT"}, d.Locations)
	require.Len(t, d.Arguments, 2)
	require.Equal(t, "role", d.Arguments[0].Name)
	require.Equal(t, "guest", d.Arguments[0].DefaultValue)
	require.Equal(t, "limit", d.Arguments[1].Name)
	require.Nil(t, d.Arguments[1].DefaultValue)
}

func TestBuild_UseArgumentLiterals(t *testing.T) {
	sch := mustBuild(t, `
type Query {
  me: String @m(s: "x", i: 42, f: 1.5, b: true, n: null, e: ADMIN, l: [1, 2], o: {k: "v"})
}
`)

	use := sch.Types["Query"].Fields[0].Directives[0]
	require.Equal(t, "m", use.Name)

	get := func(name string) any {
		v, ok := use.ArgumentValue(name)
		require.True(t, ok, "argument %s not supplied", name)
		return v
	}
	require.Equal(t, "x", get("s"))
	require.Equal(t, int64(42), get("i"))
	require.Equal(t, 1.5, get("f"))
	require.Equal(t, true, get("b"))
	require.Nil(t, get("n"))
	require.Equal(t, "ADMIN", get("e"))
	require.Equal(t, []any{int64(1), int64(2)}, get("l"))
	require.Equal(t, map[string]any{"k": "v"}, get("o"))

	// Argument order matches source order.
	var names []string
	for _, arg := range use.Arguments {
		names = append(names, arg.Name)
	}
	require.Equal(t, []string{"s", "i", "f", "b", "n", "e", "l", "o"}, names)
}

func TestBuild_DeprecationDerived(t *testing.T) {
	sch := mustBuild(t, `
type Query {
  old: String @deprecated(reason: "use new")
  new: String
}

enum Gender {
  UNKNOWN @deprecated
  NONBINARY
}

input PersonInput {
  nickname: String @deprecated(reason: "use name")
}
`)

	old := sch.Types["Query"].Fields[0]
	require.True(t, old.IsDeprecated)
	require.Equal(t, "use new", old.DeprecationReason)
	require.False(t, sch.Types["Query"].Fields[1].IsDeprecated)

	unknown := sch.Types["Gender"].EnumValues[0]
	require.True(t, unknown.IsDeprecated)
	require.Equal(t, "No longer supported", unknown.DeprecationReason)

	nickname := sch.Types["PersonInput"].InputFields[0]
	require.True(t, nickname.IsDeprecated)
	require.Equal(t, "use name", nickname.DeprecationReason)

	// The raw use stays attached alongside the derived flag.
	require.Equal(t, []string{"deprecated"}, useNames(old))
}

func TestBuild_SpecifiedByDerived(t *testing.T) {
	sch := mustBuild(t, `
scalar UUID @specifiedBy(url: "https://example.com/uuid")

type Query { id: UUID }
`)
	uuid := sch.Types["UUID"]
	require.NotNil(t, uuid.SpecifiedByURL)
	require.Equal(t, "https://example.com/uuid", *uuid.SpecifiedByURL)
}

func TestBuild_RootTypes(t *testing.T) {
	explicit := mustBuild(t, `
schema {
  query: Root
}

type Root { ok: Boolean }
type Mutation { nope: Boolean }
`)
	require.Equal(t, "Root", explicit.QueryType)
	require.Empty(t, explicit.MutationType)
	require.Same(t, explicit.Types["Root"], explicit.GetQueryType())

	conventional := mustBuild(t, `
type Query { ok: Boolean }
type Mutation { ok: Boolean }
type Subscription { ok: Boolean }
`)
	require.Equal(t, "Query", conventional.QueryType)
	require.Equal(t, "Mutation", conventional.MutationType)
	require.Equal(t, "Subscription", conventional.SubscriptionType)
}

func TestBuild_Extensions(t *testing.T) {
	sch := mustBuild(t, `
type Query { me: String }

extend type Query @extra {
  you: String @extra
}

enum Gender { FEMALE MALE }

extend enum Gender { NONBINARY }

union Whatever = Query

extend union Whatever = Gender
`)

	query := sch.Types["Query"]
	require.Len(t, query.Fields, 2)
	require.Equal(t, "you", query.Fields[1].Name)
	require.Equal(t, []string{"extra"}, useNames(query))
	require.Equal(t, []string{"extra"}, useNames(query.Fields[1]))

	require.Len(t, sch.Types["Gender"].EnumValues, 3)
	require.Equal(t, "NONBINARY", sch.Types["Gender"].EnumValues[2].Name)

	require.Equal(t, []string{"Query", "Gender"}, sch.Types["Whatever"].PossibleTypes)
}

func TestBuild_DuplicateTypeName(t *testing.T) {
	_, err := BuildFromSDL(`
type Person { name: String }
type Person { age: Int }
`)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, err.Error(), `type "Person" is declared more than once`)
}

func TestBuild_DuplicateDirectiveName(t *testing.T) {
	_, err := BuildFromSDL(`
directive @d on OBJECT
directive @d on ENUM
`)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, err.Error(), "directive @d is declared more than once")
}

func TestBuild_ExtendUnknownType(t *testing.T) {
	_, err := BuildFromSDL(`
extend type Ghost { boo: String }
`)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, err.Error(), `cannot extend unknown type "Ghost"`)
}
