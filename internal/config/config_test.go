package config

import (
	"errors"
	"image/color"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	want := []int{32, 128, 256}
	if len(cfg.Sizes) != len(want) {
		t.Fatalf("len(Sizes) = %d, want %d", len(cfg.Sizes), len(want))
	}
	for i, s := range want {
		if cfg.Sizes[i] != s {
			t.Errorf("Sizes[%d] = %d, want %d", i, cfg.Sizes[i], s)
		}
	}
	if got := (color.RGBA{59, 130, 246, 255}); cfg.Color != got {
		t.Errorf("Color = %v, want %v", cfg.Color, got)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, ".")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	cfg := Default()
	cfg.Sizes[0] = 999
	if DefaultSizes[0] != 32 {
		t.Errorf("DefaultSizes[0] = %d after mutating Default().Sizes", DefaultSizes[0])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		sizes   []int
		wantErr bool
	}{
		{"defaults", []int{32, 128, 256}, false},
		{"single", []int{1}, false},
		{"empty", nil, false},
		{"zero", []int{32, 0}, true},
		{"negative", []int{-16}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{Sizes: tt.sizes}.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("Validate() = %v, want ErrInvalidSize", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#3b82f6", color.RGBA{59, 130, 246, 255}},
		{"3b82f6", color.RGBA{59, 130, 246, 255}},
		{"#3B82F6", color.RGBA{59, 130, 246, 255}},
		{"#000000", color.RGBA{0, 0, 0, 255}},
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#fff", "#3b82f6ff", "#zzzzzz", "blue", "#-1ffff"} {
		if _, err := ParseHexColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHexColor(%q) = %v, want ErrInvalidColor", in, err)
		}
	}
}
