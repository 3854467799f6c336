package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "splaytree",
		Usage: "splay tree playground: interactive dictionary and demo scenarios",
		Commands: []*cli.Command{
			replCmd,
			demoCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
