package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultColor is the fill color of every generated icon.
const DefaultColor = "#3b82f6"

// DefaultOutputDir is the working directory.
const DefaultOutputDir = "."

// DefaultSizes lists the square edge lengths, in pixels, generated by default.
var DefaultSizes = []int{32, 128, 256}

var (
	// ErrInvalidSize is returned for a non-positive icon size.
	ErrInvalidSize = errors.New("invalid icon size")
	// ErrInvalidColor is returned for a color that is not #rrggbb.
	ErrInvalidColor = errors.New("invalid color")
)

// Config holds the options recognized by the icon generator.
type Config struct {
	Sizes     []int
	Color     color.RGBA
	OutputDir string
}

// Default returns the built-in configuration: 32, 128 and 256 pixel icons
// filled with #3b82f6, written to the working directory.
func Default() Config {
	c, err := ParseHexColor(DefaultColor)
	if err != nil {
		panic(err)
	}
	sizes := make([]int, len(DefaultSizes))
	copy(sizes, DefaultSizes)
	return Config{
		Sizes:     sizes,
		Color:     c,
		OutputDir: DefaultOutputDir,
	}
}

// Validate checks that every size is positive.
func (c Config) Validate() error {
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: %d (must be positive)", ErrInvalidSize, s)
		}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional) into an
// opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
