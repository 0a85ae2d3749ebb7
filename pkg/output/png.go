package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToRGBA converts img into an 8-bit RGBA image with the same encoding as WritePPM
func ToRGBA(img Image) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := ToRGB(img.At(x, y))
			rgba.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return rgba
}

// WritePNG encodes img as a PNG
func WritePNG(w io.Writer, img Image) error {
	if err := png.Encode(w, ToRGBA(img)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Write encodes img in the named format ("ppm" or "png")
func Write(w io.Writer, img Image, format string) error {
	switch format {
	case "ppm":
		return WritePPM(w, img)
	case "png":
		return WritePNG(w, img)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
