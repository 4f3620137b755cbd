package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"os/signal"
	"time"

	"wavegrid/internal/app"
	"wavegrid/internal/render"
	"wavegrid/internal/scene"
	"wavegrid/internal/wave"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindScene(flag.CommandLine)
	out := flag.String("out", "grid.png", "shaded surface PNG path (empty to skip)")
	heightOut := flag.String("heightmap", "", "height field PNG path (empty to skip)")
	width := flag.Int("w", 1024, "image width in pixels")
	height := flag.Int("h", 512, "image height in pixels")
	at := flag.Float64("time", 0, "animation time in seconds for the height field")
	caption := flag.Bool("caption", true, "draw the parameters into the shaded image")
	flag.Parse()

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	sc := scene.New(sceneCfg)
	sc.Advance(*at)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if *out != "" {
		grid := sc.Grid()
		img, err := render.Snapshot(ctx, *width, *height, grid, cfg.Workers)
		if err != nil {
			log.Fatalf("render grid: %v", err)
		}
		if *caption {
			render.Caption(img, describe(grid), color.RGBA{R: 255, G: 200, B: 80, A: 255})
		}
		if err := writePNG(*out, img); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%dx%d)", *out, *width, *height)
	}
	if *heightOut != "" {
		mesh := sc.Mesh()
		img, err := render.HeightField(ctx, *width, *height, mesh.Width, mesh.Height, sc.Displacement(), cfg.Workers)
		if err != nil {
			log.Fatalf("render height field: %v", err)
		}
		if err := writePNG(*heightOut, img); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s (%dx%d, t=%.2fs)", *heightOut, *width, *height, sc.Time())
	}
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))
}

func describe(p wave.GridParams) string {
	return fmt.Sprintf("grid=%.0f line=%.3f edge=%.2f top=%.2f", p.GridSize, p.LineWidth, p.EdgeFade, p.TopFade)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
