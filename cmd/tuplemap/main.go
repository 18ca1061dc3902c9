// Package main provides the tuplemap command.
//
// tuplemap loads a YAML mapping description and applies it to tuples:
//   - run: map the tuples of an input file and print the result
//   - check: validate a mapping description and report diagnostics
//   - dump: print the coerced header and the compiled step plan
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"tuple-mapper/header"
	"tuple-mapper/internal/config"
	"tuple-mapper/internal/render"
	"tuple-mapper/model"
	"tuple-mapper/pipeline"
	"tuple-mapper/step"
)

const usage = `usage: tuplemap <command> [flags]

Commands:
  run    -mapping m.yaml -input tuples.yaml [-format yaml|json]
  check  -mapping m.yaml
  dump   -mapping m.yaml

Flags common to all commands:
  -config path     config file (default: ./tuplemap.yaml if present)
  -log-level lvl   debug, info, warn, error
`

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var cmd func(*command) error

	switch args[0] {
	case "run":
		cmd = runMapping
	case "check":
		cmd = checkMapping
	case "dump":
		cmd = dumpMapping
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	c, err := newCommand(args[0], args[1:], stdout, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(stderr, "tuplemap %s: %v\n", args[0], err)

		return 2
	}

	if err := cmd(c); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "tuplemap %s: %v\n\n%s", args[0], err, usage)
			return 2
		}

		c.log.Error().Err(err).Str("command", args[0]).Msg("command failed")

		return 1
	}

	return 0
}

type command struct {
	cfg      *config.Config
	log      zerolog.Logger
	registry *model.Registry
	stdout   io.Writer
}

func newCommand(name string, args []string, stdout, stderr io.Writer) (*command, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "config file")
	fs.String("mapping", "", "mapping description (YAML)")
	fs.String("input", "", "input tuples (YAML or JSON list)")
	fs.String("format", config.FormatYAML, "output format: yaml or json")
	fs.String("log-level", zerolog.InfoLevel.String(), "log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*configFile, fs)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level).
		With().Str("command", name).Logger()

	return &command{
		cfg:      cfg,
		log:      log,
		registry: model.NewRegistry(),
		stdout:   stdout,
	}, nil
}

func (c *command) description() (header.Description, error) {
	if c.cfg.Mapping == "" {
		return header.Description{}, fmt.Errorf("%w: -mapping is required", errUsage)
	}

	return header.LoadFile(c.cfg.Mapping, c.registry)
}

func (c *command) header() (*header.Header, error) {
	desc, err := c.description()
	if err != nil {
		return nil, err
	}

	return header.Coerce(desc, header.WithLogger(c.log))
}

func runMapping(c *command) error {
	if c.cfg.Input == "" {
		return fmt.Errorf("%w: -input is required", errUsage)
	}

	h, err := c.header()
	if err != nil {
		return err
	}

	p, err := pipeline.Compile(h, pipeline.WithLogger(c.log))
	if err != nil {
		return err
	}

	tuples, err := readTuples(c.cfg.Input)
	if err != nil {
		return err
	}

	out, err := p.Call(tuples)
	if err != nil {
		return err
	}

	c.log.Info().Int("in", len(tuples)).Int("out", len(out)).Msg("mapped tuples")

	if c.cfg.Format == config.FormatJSON {
		return render.JSON(c.stdout, out, h)
	}

	return render.YAML(c.stdout, out, h)
}

func checkMapping(c *command) error {
	desc, err := c.description()
	if err != nil {
		return err
	}

	diags := header.Check(desc)

	for _, d := range diags.All() {
		fmt.Fprintf(c.stdout, "%s: %s\n", d.Severity, d)
	}

	if err := diags.Err(); err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "%s: ok (%d warnings)\n", c.cfg.Mapping, len(diags.Warnings))

	return nil
}

func dumpMapping(c *command) error {
	h, err := c.header()
	if err != nil {
		return err
	}

	p, err := pipeline.Compile(h)
	if err != nil {
		return err
	}

	cs := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}

	fmt.Fprintln(c.stdout, "# header")
	fmt.Fprintln(c.stdout, h)
	cs.Fdump(c.stdout, h.Attributes())
	fmt.Fprintln(c.stdout, "# fingerprint")
	fmt.Fprintln(c.stdout, h.Fingerprint())
	fmt.Fprintln(c.stdout, "# plan")
	fmt.Fprintln(c.stdout, p)

	return nil
}

func readTuples(path string) ([]step.Tuple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var tuples []step.Tuple
	if err := yaml.Unmarshal(data, &tuples); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", path, err)
	}

	return tuples, nil
}
