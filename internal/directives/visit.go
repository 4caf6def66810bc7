package directives

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/stevefan1999/graphql-tools/internal/eventbus"
	"github.com/stevefan1999/graphql-tools/internal/events"
	"github.com/stevefan1999/graphql-tools/internal/language"
	"github.com/stevefan1999/graphql-tools/internal/schema"
)

// VisitSchema validates the registry against the schema's directive
// declarations, then walks the whole schema once, dispatching every applied
// directive to its registered visitor. It returns after all callbacks have
// completed, or on the first error.
func VisitSchema(sch *schema.Schema, reg Registry) error {
	if err := validateLocations(sch, reg); err != nil {
		return err
	}

	w := &walker{sch: sch, reg: reg, walkID: rand.Int63()}
	start := time.Now()
	eventbus.Publish(context.Background(), events.VisitStart{
		WalkID:     w.walkID,
		Types:      len(sch.TypeOrder),
		Directives: len(reg),
	})
	err := w.walk()
	eventbus.Publish(context.Background(), events.VisitFinish{
		WalkID:       w.walkID,
		Applications: w.applications,
		Err:          err,
		Duration:     time.Since(start),
	})
	return err
}

// validateLocations checks every registered visitor against its directive
// declaration. Names without a declaration in the schema are not checked;
// such directives may still be applied and visited.
func validateLocations(sch *schema.Schema, reg Registry) error {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		decl := sch.Directives[name]
		if decl == nil {
			continue
		}
		legal := make(map[string]bool, len(decl.Locations))
		for _, loc := range decl.Locations {
			legal[loc] = true
		}
		var offending []string
		for _, loc := range reg[name].Locations() {
			if !legal[loc] {
				offending = append(offending, loc)
			}
		}
		if len(offending) > 0 {
			return &LocationError{Directive: name, Locations: offending}
		}
	}
	return nil
}

type walker struct {
	sch          *schema.Schema
	reg          Registry
	walkID       int64
	applications int
}

func (w *walker) walk() error {
	if err := w.applySchemaNode(); err != nil {
		return err
	}
	for _, t := range w.sch.OrderedTypes() {
		var err error
		switch t.Kind {
		case schema.TypeKindScalar:
			err = w.applyScalar(t)
		case schema.TypeKindObject:
			err = w.applyComposite(t, language.LocationObject)
		case schema.TypeKindInterface:
			err = w.applyComposite(t, language.LocationInterface)
		case schema.TypeKindUnion:
			err = w.applyUnion(t)
		case schema.TypeKindEnum:
			err = w.applyEnum(t)
		case schema.TypeKindInputObject:
			err = w.applyInputObject(t)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// apply dispatches every directive use on one node. pick selects the slot for
// the node's location, closing over the node and its context; it returns nil
// when the visitor does not implement that slot.
func (w *walker) apply(uses []*schema.DirectiveUse, loc language.DirectiveLocation, path string, pick func(v *Visitor) func(*Application) error) error {
	for _, use := range uses {
		v := w.reg[use.Name]
		if v == nil {
			continue
		}
		fn := pick(v)
		if fn == nil {
			continue
		}
		app := newApplication(w.sch.Directives[use.Name], use)
		w.applications++
		eventbus.Publish(context.Background(), events.DirectiveVisit{
			WalkID:    w.walkID,
			Directive: use.Name,
			Location:  string(loc),
			Node:      path,
		})
		if err := fn(app); err != nil {
			return fmt.Errorf("directive @%s at %s: %w", use.Name, path, err)
		}
	}
	return nil
}

func (w *walker) applySchemaNode() error {
	return w.apply(w.sch.GetDirectives(), language.LocationSchema, "schema", func(v *Visitor) func(*Application) error {
		if v.Schema == nil {
			return nil
		}
		return func(app *Application) error { return v.Schema(app, w.sch) }
	})
}

func (w *walker) applyScalar(t *schema.Type) error {
	return w.apply(t.GetDirectives(), language.LocationScalar, t.Name, func(v *Visitor) func(*Application) error {
		if v.Scalar == nil {
			return nil
		}
		return func(app *Application) error { return v.Scalar(app, t) }
	})
}

func (w *walker) applyComposite(t *schema.Type, loc language.DirectiveLocation) error {
	pick := func(v *Visitor) func(*Application) error {
		if loc == language.LocationObject {
			if v.Object == nil {
				return nil
			}
			return func(app *Application) error { return v.Object(app, t) }
		}
		if v.Interface == nil {
			return nil
		}
		return func(app *Application) error { return v.Interface(app, t) }
	}
	if err := w.apply(t.GetDirectives(), loc, t.Name, pick); err != nil {
		return err
	}
	for _, f := range t.Fields {
		if err := w.applyField(t, f); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) applyField(t *schema.Type, f *schema.Field) error {
	path := t.Name + "." + f.Name
	err := w.apply(f.GetDirectives(), language.LocationFieldDefinition, path, func(v *Visitor) func(*Application) error {
		if v.FieldDefinition == nil {
			return nil
		}
		return func(app *Application) error {
			return v.FieldDefinition(app, f, FieldContext{ObjectType: t})
		}
	})
	if err != nil {
		return err
	}
	for _, a := range f.Arguments {
		argPath := path + "(" + a.Name + ":)"
		err := w.apply(a.GetDirectives(), language.LocationArgumentDefinition, argPath, func(v *Visitor) func(*Application) error {
			if v.ArgumentDefinition == nil {
				return nil
			}
			return func(app *Application) error {
				return v.ArgumentDefinition(app, a, ArgumentContext{Field: f, ObjectType: t})
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) applyUnion(t *schema.Type) error {
	return w.apply(t.GetDirectives(), language.LocationUnion, t.Name, func(v *Visitor) func(*Application) error {
		if v.Union == nil {
			return nil
		}
		return func(app *Application) error { return v.Union(app, t) }
	})
}

func (w *walker) applyEnum(t *schema.Type) error {
	err := w.apply(t.GetDirectives(), language.LocationEnum, t.Name, func(v *Visitor) func(*Application) error {
		if v.Enum == nil {
			return nil
		}
		return func(app *Application) error { return v.Enum(app, t) }
	})
	if err != nil {
		return err
	}
	for _, val := range t.EnumValues {
		path := t.Name + "." + val.Name
		err := w.apply(val.GetDirectives(), language.LocationEnumValue, path, func(v *Visitor) func(*Application) error {
			if v.EnumValue == nil {
				return nil
			}
			return func(app *Application) error {
				return v.EnumValue(app, val, EnumValueContext{EnumType: t})
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) applyInputObject(t *schema.Type) error {
	err := w.apply(t.GetDirectives(), language.LocationInputObject, t.Name, func(v *Visitor) func(*Application) error {
		if v.InputObject == nil {
			return nil
		}
		return func(app *Application) error { return v.InputObject(app, t) }
	})
	if err != nil {
		return err
	}
	for _, f := range t.InputFields {
		path := t.Name + "." + f.Name
		err := w.apply(f.GetDirectives(), language.LocationInputFieldDefinition, path, func(v *Visitor) func(*Application) error {
			if v.InputFieldDefinition == nil {
				return nil
			}
			return func(app *Application) error {
				return v.InputFieldDefinition(app, f, InputFieldContext{ObjectType: t})
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}
