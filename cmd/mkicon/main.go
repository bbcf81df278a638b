// mkicon writes solid-color placeholder app icons (32x32.png, 128x128.png,
// 256x256.png) to the working directory.
// Usage: go run ./cmd/mkicon
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/Mavwarf/mkicon/internal/config"
	"github.com/Mavwarf/mkicon/internal/icon"
)

func main() {
	if err := run(os.Stdout, newLogger(os.Stderr)); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a warn-level console logger on w, colored only when w
// is a terminal.
func newLogger(w *os.File) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !term.IsTerminal(int(w.Fd())),
	}
	return zerolog.New(cw).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}

func run(stdout io.Writer, log zerolog.Logger) error {
	written, err := icon.Generate(config.Default(), icon.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("generating icons")
		return err
	}
	fmt.Fprintln(stdout, confirmation(written))
	return nil
}

func confirmation(written []string) string {
	names := make([]string, len(written))
	for i, p := range written {
		names[i] = filepath.Base(p)
	}
	return "Icons created: " + strings.Join(names, ", ")
}
