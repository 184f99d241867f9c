//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terra-gen/internal/app"
	"terra-gen/internal/core"
	"terra-gen/internal/gen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Presets()[cfg.Preset]
	if !ok {
		log.Fatalf("unknown preset %q", cfg.Preset)
	}

	generator := factory(cfg.Overrides())
	game := app.New(generator, cfg.Scale, cfg.Seed)

	if p, ok := generator.(interface{ SetDropletObserver(gen.DropletObserver) }); ok {
		p.SetDropletObserver(game.Overlay())
	}
	generator.Reset(cfg.Seed)

	size := generator.Size()
	ebiten.SetWindowTitle("terra-gen: " + generator.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
