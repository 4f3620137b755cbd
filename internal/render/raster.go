package render

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wavegrid/internal/wave"
)

// rowsPerBand is the unit of work handed to each rasterizer goroutine.
const rowsPerBand = 16

// Rasterize evaluates the grid fragment for every pixel of a w x h image
// covering the unit surface square, top row at v = 1. Rows are shaded in
// parallel by up to workers goroutines (GOMAXPROCS when workers <= 0).
func Rasterize(ctx context.Context, w, h int, p wave.GridParams, workers int) ([]wave.PixelOutput, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize: invalid size %dx%d", w, h)
	}
	out := make([]wave.PixelOutput, w*h)
	// One pixel step in u or v spans GridSize/w (or /h) grid cells.
	derivU := p.GridSize / float64(w)
	derivV := p.GridSize / float64(h)

	err := forEachBand(ctx, h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			v := 1 - (float64(y)+0.5)/float64(h)
			row := out[y*w : (y+1)*w]
			for x := range row {
				u := (float64(x) + 0.5) / float64(w)
				row[x] = wave.Shade(u, v, derivU, derivV, p)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Snapshot renders the grid into a non-premultiplied image.
func Snapshot(ctx context.Context, w, h int, p wave.GridParams, workers int) (*image.NRGBA, error) {
	px, err := Rasterize(ctx, w, h, p, workers)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fillStraightRGBA(img.Pix, px)
	return img, nil
}

// HeightField samples the displacement over the plane (x in [-width/2,
// width/2], y in [-height/2, height/2]) and maps [-1, 1] heights to grey.
func HeightField(ctx context.Context, w, h int, width, height float64, d wave.DisplacementParams, workers int) (*image.Gray, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("height field: invalid size %dx%d", w, h)
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	err := forEachBand(ctx, h, workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			py := height/2 - (float64(y)+0.5)/float64(h)*height
			for x := 0; x < w; x++ {
				px := (float64(x)+0.5)/float64(w)*width - width/2
				z := wave.Displace(px, py, d)
				img.Pix[y*img.Stride+x] = toByte(z*0.5 + 0.5)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func forEachBand(ctx context.Context, rows, workers int, fn func(y0, y1 int)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y0 := 0; y0 < rows; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, rows)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y0, y1)
			return nil
		})
	}
	return g.Wait()
}
