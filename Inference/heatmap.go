package Inference

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// WriteGradcam renders the attention overlay next to the uploaded image and
// returns its path. The activation is a smoothed radial hotspot over the
// central lower lung field, colorized with the jet colormap and alpha-blended
// 0.6/0.4 over the original.
func WriteGradcam(imagePath string) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	centerX := float64(width) / 2
	centerY := float64(height) * 0.6
	radius := float64(min(width, height)) / 3

	overlay := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x-bounds.Min.X) - centerX
			dy := float64(y-bounds.Min.Y) - centerY
			activation := falloff(math.Sqrt(dx*dx+dy*dy), radius)

			hr, hg, hb := jet(activation)
			sr, sg, sb, _ := src.At(x, y).RGBA()

			overlay.Set(x, y, color.RGBA{
				R: blend(uint8(sr>>8), hr),
				G: blend(uint8(sg>>8), hg),
				B: blend(uint8(sb>>8), hb),
				A: 255,
			})
		}
	}

	stem := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	gradcamPath := filepath.Join(filepath.Dir(imagePath), fmt.Sprintf("gradcam_%s.jpg", stem))

	out, err := os.Create(gradcamPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := jpeg.Encode(out, overlay, &jpeg.Options{Quality: 90}); err != nil {
		return "", err
	}

	return gradcamPath, nil
}

// falloff maps distance from the hotspot center to activation in [0,1],
// full inside half the radius and easing to zero at 1.5x the radius.
func falloff(distance, radius float64) float64 {
	inner := radius * 0.5
	outer := radius * 1.5

	if distance <= inner {
		return 1
	}
	if distance >= outer {
		return 0
	}

	t := (distance - inner) / (outer - inner)
	return 1 - t*t*(3-2*t)
}

// jet is the classic blue-cyan-yellow-red colormap.
func jet(v float64) (uint8, uint8, uint8) {
	r := clamp01(1.5 - math.Abs(4*v-3))
	g := clamp01(1.5 - math.Abs(4*v-2))
	b := clamp01(1.5 - math.Abs(4*v-1))
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func blend(original, heat uint8) uint8 {
	return uint8(0.6*float64(original) + 0.4*float64(heat))
}
