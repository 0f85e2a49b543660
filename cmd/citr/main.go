package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/citrine-go/internal/cli/classify"
	"github.com/nightconcept/citrine-go/internal/cli/self"
)

func main() {
	app := &cli.App{
		Name:    "citr",
		Usage:   "A tiny classifier for command-line argument vectors",
		Version: "v0.1.0",
		Action: func(c *cli.Context) error {
			// Default action if no command is specified
			_ = cli.ShowAppHelp(c)
			return nil
		},
		Commands: []*cli.Command{
			classify.Cmd,
			self.NewSelfCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
