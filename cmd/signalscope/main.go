package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "signalscope",
		Usage: "Exercise and inspect the reactive engine",
		Commands: []*cli.Command{
			benchCommand(),
			statsCommand(),
			treeCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
