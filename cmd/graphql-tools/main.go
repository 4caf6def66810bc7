package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/stevefan1999/graphql-tools/internal/directives"
	"github.com/stevefan1999/graphql-tools/internal/eventbus"
	"github.com/stevefan1999/graphql-tools/internal/otel"
	"github.com/stevefan1999/graphql-tools/internal/schema"
)

const rootUsage = `graphql-tools — GraphQL schema directive tools

USAGE:
  graphql-tools <command> [flags]

COMMANDS:
  fmt              Parse a GraphQL SDL file and print the canonical rendering
  directives       Walk the schema and print every directive application
  help             Show help for any command
`

const fmtUsage = `fmt FLAGS:
  -schema <file>   GraphQL SDL file (required)
  -out <file>      Write rendered SDL to file (default: stdout)
`

const directivesUsage = `directives FLAGS:
  -schema <file>          GraphQL SDL file (required)
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: graphql-tools)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("graphql-tools", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "fmt":
		return cmdFmt(cmdArgs)
	case "directives":
		return cmdDirectives(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "fmt":
		fmt.Print(fmtUsage)
	case "directives":
		fmt.Print(directivesUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func loadSchema(path string) (*schema.Schema, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sch, err := schema.BuildFromSource(filepath.Base(path), string(source))
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return sch, nil
}

func cmdFmt(args []string) error {
	schemaFile := ""
	outFile := ""
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "GraphQL SDL file")
	fs.StringVar(&outFile, "out", outFile, "Write rendered SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, fmtUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, fmtUsage)
		return fmt.Errorf("-schema is required")
	}

	sch, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}
	sdl := schema.Render(sch)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}

func cmdDirectives(args []string) error {
	schemaFile := ""
	otelEndpoint := ""
	otelService := "graphql-tools"
	fs := flag.NewFlagSet("directives", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "GraphQL SDL file")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, directivesUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, directivesUsage)
		return fmt.Errorf("-schema is required")
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	sch, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}

	var rows []row
	reg := directives.Registry{}
	for name, decl := range sch.Directives {
		v := collector(decl, &rows)
		if len(v.Locations()) > 0 {
			reg[name] = v
		}
	}
	if err := directives.VisitSchema(sch, reg); err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Printf("%-24s @%-16s %-32s %s\n", r.Location, r.Directive, r.Node, r.Args)
	}
	return nil
}

type row struct {
	Location  string
	Directive string
	Node      string
	Args      string
}

func formatArgs(app *directives.Application) string {
	return schema.FormatValue(app.Args)
}

// collector builds a visitor whose implemented slots are exactly the declared
// locations, appending one row per application in traversal order.
func collector(decl *schema.Directive, out *[]row) *directives.Visitor {
	v := &directives.Visitor{}
	record := func(location, node string, app *directives.Application) {
		*out = append(*out, row{Location: location, Directive: app.Name, Node: node, Args: formatArgs(app)})
	}
	for _, loc := range decl.Locations {
		switch loc {
		case "SCHEMA":
			v.Schema = func(d *directives.Application, node *schema.Schema) error {
				record("SCHEMA", "schema", d)
				return nil
			}
		case "SCALAR":
			v.Scalar = func(d *directives.Application, node *schema.Type) error {
				record("SCALAR", node.Name, d)
				return nil
			}
		case "OBJECT":
			v.Object = func(d *directives.Application, node *schema.Type) error {
				record("OBJECT", node.Name, d)
				return nil
			}
		case "FIELD_DEFINITION":
			v.FieldDefinition = func(d *directives.Application, node *schema.Field, ctx directives.FieldContext) error {
				record("FIELD_DEFINITION", ctx.ObjectType.Name+"."+node.Name, d)
				return nil
			}
		case "ARGUMENT_DEFINITION":
			v.ArgumentDefinition = func(d *directives.Application, node *schema.InputValue, ctx directives.ArgumentContext) error {
				record("ARGUMENT_DEFINITION", ctx.ObjectType.Name+"."+ctx.Field.Name+"("+node.Name+":)", d)
				return nil
			}
		case "INTERFACE":
			v.Interface = func(d *directives.Application, node *schema.Type) error {
				record("INTERFACE", node.Name, d)
				return nil
			}
		case "UNION":
			v.Union = func(d *directives.Application, node *schema.Type) error {
				record("UNION", node.Name, d)
				return nil
			}
		case "ENUM":
			v.Enum = func(d *directives.Application, node *schema.Type) error {
				record("ENUM", node.Name, d)
				return nil
			}
		case "ENUM_VALUE":
			v.EnumValue = func(d *directives.Application, node *schema.EnumValue, ctx directives.EnumValueContext) error {
				record("ENUM_VALUE", ctx.EnumType.Name+"."+node.Name, d)
				return nil
			}
		case "INPUT_OBJECT":
			v.InputObject = func(d *directives.Application, node *schema.Type) error {
				record("INPUT_OBJECT", node.Name, d)
				return nil
			}
		case "INPUT_FIELD_DEFINITION":
			v.InputFieldDefinition = func(d *directives.Application, node *schema.InputValue, ctx directives.InputFieldContext) error {
				record("INPUT_FIELD_DEFINITION", ctx.ObjectType.Name+"."+node.Name, d)
				return nil
			}
		}
	}
	return v
}
