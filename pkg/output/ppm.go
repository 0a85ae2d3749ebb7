package output

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Image is an addressable raster of averaged linear colors, y = 0 at the top
type Image interface {
	Width() int
	Height() int
	At(x, y int) core.Vec3
}

var _ Image = (*renderer.Frame)(nil)

// intensity is the range a gamma-corrected channel is clamped to before scaling
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2 correction; negative components map to 0
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToByte converts one linear color channel to its 8-bit encoded value
func ToByte(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(linearToGamma(linear)))
}

// ToRGB converts a linear color to its gamma-corrected 8-bit channels
func ToRGB(c core.Vec3) (r, g, b uint8) {
	return ToByte(c.X), ToByte(c.Y), ToByte(c.Z)
}

// WritePPM encodes img as an ASCII portable pixmap (P3) in raster order
func WritePPM(w io.Writer, img Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			r, g, b := ToRGB(img.At(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("failed to write pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM data: %w", err)
	}
	return nil
}
