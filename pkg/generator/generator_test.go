package generator

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"full hex", "#f5f5f7", color.RGBA{0xf5, 0xf5, 0xf7, 0xff}, false},
		{"no hash", "333333", color.RGBA{0x33, 0x33, 0x33, 0xff}, false},
		{"shorthand", "#ccc", color.RGBA{0xcc, 0xcc, 0xcc, 0xff}, false},
		{"upper case", "#DDDDDD", color.RGBA{0xdd, 0xdd, 0xdd, 0xff}, false},
		{"too short", "#12345", color.RGBA{}, true},
		{"not hex", "#zzzzzz", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexRGBAFallsBackToWhite(t *testing.T) {
	if got := ParseHexRGBA("nope"); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("ParseHexRGBA(invalid) = %v, want white", got)
	}
}

func TestGenerateCreatesDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scripts", "dmg-background.png")

	if err := Generate(out, Config{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertPNG(t, out, DefaultWidth, DefaultHeight)
}

func TestGenerateExistingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scripts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "dmg-background.png")

	if err := Generate(out, Config{}); err != nil {
		t.Fatalf("Generate with existing dir: %v", err)
	}
	assertPNG(t, out, DefaultWidth, DefaultHeight)
}

func TestGenerateOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scripts", "dmg-background.png")

	if err := Generate(out, Config{Width: 10, Height: 10}); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if err := Generate(out, Config{}); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	assertPNG(t, out, DefaultWidth, DefaultHeight)
}

func TestGenerateIsOpaqueRGB(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bg.png")
	if err := Generate(out, Config{Color: "#f5f5f7"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// Signature (8) + IHDR length (4) + "IHDR" (4) + width (4) + height (4) + bit depth (1).
	if len(data) < 26 {
		t.Fatalf("file too short: %d bytes", len(data))
	}
	if ct := data[25]; ct != 2 {
		t.Errorf("PNG color type = %d, want 2 (RGB)", ct)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, a := img.At(400, 225).RGBA()
	if r>>8 != 0xf5 || g>>8 != 0xf5 || b>>8 != 0xf7 || a>>8 != 0xff {
		t.Errorf("pixel = (%x,%x,%x,%x), want f5f5f7ff", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bg.tiff")
	if err := Generate(out, Config{}); err == nil {
		t.Fatal("Generate(.tiff) succeeded, want error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("unexpected file for unsupported format: %v", err)
	}
}

func TestGenerateToWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateToWriter(&buf, ".PNG", Config{Width: 16, Height: 9}); err != nil {
		t.Fatalf("GenerateToWriter: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 9 {
		t.Errorf("size = %dx%d, want 16x9", cfg.Width, cfg.Height)
	}
}

func TestGenerateInvalidColor(t *testing.T) {
	if err := GenerateToWriter(&bytes.Buffer{}, ".png", Config{Color: "red"}); err == nil {
		t.Fatal("expected error for invalid color")
	}
}

func TestProbe(t *testing.T) {
	if err := Probe(); err != nil {
		t.Fatalf("Probe: %v", err)
	}
}

// assertPNG checks that path holds a decodable PNG of the given size.
func assertPNG(t *testing.T, path string, w, h int) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}
