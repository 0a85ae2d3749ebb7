package renderer

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Frame is a row-major buffer of averaged linear colors, one per pixel
type Frame struct {
	width, height int
	pixels        []core.Vec3
}

// NewFrame creates a black frame of the given size
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the frame width in pixels
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels
func (f *Frame) Height() int {
	return f.height
}

// At returns the linear color of pixel (x, y), with y = 0 the top row
func (f *Frame) At(x, y int) core.Vec3 {
	return f.pixels[y*f.width+x]
}

// Set stores the linear color of pixel (x, y)
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.pixels[y*f.width+x] = color
}
