package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/pacemkr/incremental-kernel/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate incr's Map1..MapN family",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest Map arity to generate",
				Value: 9,
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
	log.Printf("Codegen for incr started")
	defer func() {
		log.Printf("Codegen for incr finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	log.Printf("Arities: 1..%d", genericParamCount)

	contents := templates.MapGen(int(genericParamCount))
	if err := os.WriteFile("incr/map_gen.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
