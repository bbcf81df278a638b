// Package icon draws solid-color square placeholder icons and writes them
// as PNG files.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/Mavwarf/mkicon/internal/config"
	"github.com/Mavwarf/mkicon/internal/paths"
)

// Option configures Generate.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Draw returns a size×size bitmap with every pixel set to c.
func Draw(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// FileName returns the output file name for size, e.g. "32x32.png".
func FileName(size int) string {
	return fmt.Sprintf("%dx%d.png", size, size)
}

// Encode writes img to w as PNG. Fully opaque bitmaps are stored as RGB.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Generate writes one icon per size in cfg.Sizes to cfg.OutputDir and
// returns the written paths in the same order. The config is validated
// before anything is written. The first write error aborts the run; icons
// already written are left in place.
func Generate(cfg config.Config, opts ...Option) ([]string, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(cfg.Sizes))
	var buf bytes.Buffer
	for _, size := range cfg.Sizes {
		buf.Reset()
		if err := Encode(&buf, Draw(size, cfg.Color)); err != nil {
			return written, fmt.Errorf("encoding %dx%d icon: %w", size, size, err)
		}
		p := filepath.Join(cfg.OutputDir, FileName(size))
		if err := paths.AtomicWrite(p, buf.Bytes()); err != nil {
			return written, fmt.Errorf("writing icon: %w", err)
		}
		o.log.Debug().Str("path", p).Int("size", size).Int("bytes", buf.Len()).Msg("icon written")
		written = append(written, p)
	}
	return written, nil
}
