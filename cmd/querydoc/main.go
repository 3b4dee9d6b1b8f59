package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hanpama/querydoc/compile"
	"github.com/hanpama/querydoc/diagnose"
	"github.com/hanpama/querydoc/document"
	"github.com/hanpama/querydoc/internal/eventbus"
	"github.com/hanpama/querydoc/internal/otel"
	schema "github.com/hanpama/querydoc/schema"
)

const rootUsage = `querydoc — compile selections into validated query documents

USAGE:
  querydoc <command> [flags]

COMMANDS:
  compile          Compile a JSON selection against a JSON schema model
  help             Show help for any command
`

const compileUsage = `compile FLAGS:
  -schema <file>          Schema model JSON (required)
  -selection <file>       Selection value JSON (required)
  -root <name>            Root field name (required)
  -op <query|mutation>    Operation kind (default: query)
  -model <name>           Ambient model name of the root field (required)
  -color                  Colorize diagnostics
  -compact                One line per diagnostic, no hints
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: querydoc)
`

// errInvalidSelection marks a compile run that failed validation. The
// diagnostics have already been rendered to stderr by the time it is
// returned; main only maps it to the exit status.
var errInvalidSelection = errors.New("selection did not validate")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errInvalidSelection) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "compile":
		return runCompile(args[1:])
	case "help":
		fmt.Print(rootUsage)
		fmt.Print(compileUsage)
		return nil
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCompile(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	schemaPath := fs.String("schema", "", "")
	selectionPath := fs.String("selection", "", "")
	root := fs.String("root", "", "")
	op := fs.String("op", "query", "")
	model := fs.String("model", "", "")
	color := fs.Bool("color", false, "")
	compact := fs.Bool("compact", false, "")
	otelEndpoint := fs.String("otel.endpoint", "", "")
	otelService := fs.String("otel.service", "querydoc", "")
	fs.Usage = func() { fmt.Fprint(os.Stderr, compileUsage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *schemaPath == "" || *selectionPath == "" || *root == "" || *model == "" {
		fs.Usage()
		return fmt.Errorf("-schema, -selection, -root and -model are required")
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(*otelEndpoint, *otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer shutdown(context.Background())

	m, err := loadModel(*schemaPath)
	if err != nil {
		return err
	}
	selection, err := loadSelection(*selectionPath)
	if err != nil {
		return err
	}

	kind := document.Query
	if *op == "mutation" {
		kind = document.Mutation
	}
	doc, cerr := compile.Compile(context.Background(), m, kind, *root, selection, *model)
	if cerr != nil {
		var verr *diagnose.ValidationError
		if errors.As(cerr, &verr) {
			r := diagnose.NewRenderer(diagnose.Options{Color: *color, Compact: *compact})
			fmt.Fprint(os.Stderr, r.Render(verr))
			return errInvalidSelection
		}
		return cerr
	}
	fmt.Print(document.Serialize(doc))
	return nil
}

func loadModel(path string) (*schema.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m schema.Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse schema model %s: %w", path, err)
	}
	return &m, nil
}

func loadSelection(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sel map[string]any
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("parse selection %s: %w", path, err)
	}
	return sel, nil
}
