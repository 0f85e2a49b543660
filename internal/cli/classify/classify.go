// Package classify implements the citr classify command: it takes a raw
// argument vector and prints how the classifier partitions it.
package classify

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/citrine-go/internal/core/argv"
	"github.com/nightconcept/citrine-go/internal/core/config"
	"github.com/nightconcept/citrine-go/internal/core/style"
	"github.com/nightconcept/citrine-go/internal/core/term"
)

// Cmd defines the 'classify' command.
var Cmd = &cli.Command{
	Name:      "classify",
	Aliases:   []string{"c"},
	Usage:     "Partition an argument vector into executable, arguments and options",
	ArgsUsage: "-- <execfile> [token...]",
	Description: "Scans the given vector once, left to right. Tokens starting with '-'\n" +
		"are options, routed by their position relative to a double dash; all\n" +
		"other tokens are positional arguments. Place the vector after '--' so\n" +
		"its tokens are not read as citr's own flags.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "color",
			Usage: "Color output: auto, always or never (overrides citr.toml)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Emit the classification as JSON",
		},
		&cli.IntFlag{
			Name:  "capacity",
			Usage: "Initial capacity of each token list",
		},
		&cli.BoolFlag{
			Name:  "fixed",
			Usage: "Report an error instead of growing when a token list fills up",
		},
	},
	Action: runClassify,
}

// jsonClassification is the scripting-friendly shape of a result.
type jsonClassification struct {
	Execfile       string   `json:"execfile"`
	Command        string   `json:"command,omitempty"`
	Args           []string `json:"args"`
	CmdOptions     []string `json:"cmd_options"`
	ProgramOptions []string `json:"program_options"`
}

func runClassify(c *cli.Context) error {
	cfg, err := config.Load(".")
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading %s: %v", config.ConfigTomlName, err), 1)
	}

	colorMode := cfg.Output.Color
	if c.IsSet("color") {
		colorMode = c.String("color")
	}
	styles, err := stylesFor(colorMode)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	printer := term.New(c.App.ErrWriter, styles).
		WithSymbols(cfg.Output.ErrorSymbol, cfg.Output.InfoSymbol)

	vector := c.Args().Slice()
	if len(vector) == 0 {
		return cli.Exit("Usage: citr classify -- <execfile> [token...]", 1)
	}

	scanner := argv.Scanner{
		InitialCapacity: cfg.Classifier.InitialCapacity,
		Fixed:           cfg.Classifier.FixedCapacity,
	}
	if c.IsSet("capacity") {
		scanner.InitialCapacity = c.Int("capacity")
	}
	if c.IsSet("fixed") {
		scanner.Fixed = c.Bool("fixed")
	}

	result, err := scanner.Classify(vector)
	if result != nil {
		defer result.Release()
	}
	if err != nil {
		var dd *argv.DoubleDashError
		if errors.As(err, &dd) {
			printer.Errorf("CLI error", "Double dash (%q) cannot be specified after the positional argument (%q).", dd.Token, dd.LastArg)
		} else {
			printer.Errorf("Memory error", "%v.", err)
		}
		return cli.Exit("", argv.ExitCode(err))
	}

	if c.Bool("json") {
		return writeJSON(c, result)
	}
	writeReport(c, result, styles)
	return nil
}

func stylesFor(mode string) (style.Set, error) {
	switch mode {
	case "always":
		return style.Plain().Toggle(), nil
	case "never":
		return style.Plain(), nil
	case "auto", "":
		return style.Default(), nil
	default:
		return style.Set{}, fmt.Errorf("invalid --color value %q: expected auto, always or never", mode)
	}
}

func writeJSON(c *cli.Context, result *argv.Classification) error {
	out := jsonClassification{
		Execfile:       result.Execfile,
		Command:        result.Command,
		Args:           emptyIfNil(result.Args.Data()),
		CmdOptions:     emptyIfNil(result.CmdOptions.Data()),
		ProgramOptions: emptyIfNil(result.ProgramOptions.Data()),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error encoding classification: %v", err), 2)
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}

// writeReport renders the human-readable partition. All styling goes through
// the passed style set so the resolved color mode applies to the report and
// the diagnostics alike.
func writeReport(c *cli.Context, result *argv.Classification, styles style.Set) {
	fmt.Fprintf(c.App.Writer, "%s %s\n", styles.Header.Sprint("execfile:"), styles.Accent.Sprint(result.Execfile))
	sections := []struct {
		name   string
		tokens []string
	}{
		{"args", result.Args.Data()},
		{"program options", result.ProgramOptions.Data()},
		{"command options", result.CmdOptions.Data()},
	}
	for _, section := range sections {
		fmt.Fprintf(c.App.Writer, "%s\n", styles.Header.Sprint(section.name+":"))
		if len(section.tokens) == 0 {
			fmt.Fprintln(c.App.Writer, "  (none)")
			continue
		}
		for _, tok := range section.tokens {
			fmt.Fprintf(c.App.Writer, "  %s\n", styles.Token.Sprint(tok))
		}
	}
}

func emptyIfNil(tokens []string) []string {
	if tokens == nil {
		return []string{}
	}
	return tokens
}
