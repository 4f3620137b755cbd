//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wavegrid/internal/app"
	"wavegrid/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sc := scene.New(sceneCfg)
	game := app.New(sc, cfg)

	ebiten.SetWindowTitle("wavegrid")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(sceneCfg.Width, sceneCfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
