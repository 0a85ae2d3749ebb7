package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an io.Writer
type DefaultLogger struct {
	out io.Writer
}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a logger that writes to stderr, leaving stdout
// free for image data
func NewDefaultLogger() core.Logger {
	return NewWriterLogger(os.Stderr)
}

// NewWriterLogger creates a logger that writes to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{out: w}
}
