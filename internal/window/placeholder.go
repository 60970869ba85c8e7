package window

import (
	"image"
	"image/color"
	"math/rand"

	"git.lost.host/meutraa/whipbeat/internal/game"
	"git.lost.host/meutraa/whipbeat/internal/theme"
)

const (
	placeholderSize  = 256
	placeholderStars = 120
)

// placeholder generates a backdrop for a dimension: a vertical gradient
// from the background into the whip color with a fixed scatter of stars.
func placeholder(th theme.Theme, d game.Dimension, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	top, bottom := th.Background(d), theme.Dim(th.Whip(d))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		row := color.RGBA{
			R: mix(top.R, bottom.R, t),
			G: mix(top.G, bottom.G, t),
			B: mix(top.B, bottom.B, t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	// the same dimension always gets the same sky
	rng := rand.New(rand.NewSource(int64(d) + 1))
	star := th.Portal(game.HiHat, d)
	for i := 0; i < placeholderStars && w > 0 && h > 0; i++ {
		img.SetRGBA(rng.Intn(w), rng.Intn(h), star)
	}
	return img
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
