package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/signalscope/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outKey               = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed On helpers for package reactive",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write",
				Value: "reactive/on_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for reactive started")
	defer func() {
		log.Printf("Codegen for reactive finished in %v", time.Since(start))
	}()

	genericParamCount := int(cmd.Uint(genericParamCountKey))
	if genericParamCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", genericParamCount)
	}

	contents, err := templates.OnGen(genericParamCount)
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	if err := os.WriteFile(cmd.String(outKey), contents, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", cmd.String(outKey), err)
	}
	return nil
}
