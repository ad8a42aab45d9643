package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "entropic",
		Usage: "Estimate how small an entropy coder could make an image under competing predictive transforms",
		Commands: []*cli.Command{
			analyzeCommand(),
			{
				Name:   "codecs",
				Usage:  "List the reference codecs accepted by --reference-codec",
				Action: listCodecs,
			},
		},
	}
}
