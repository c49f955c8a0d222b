package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/webp"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"WebP", FormatWebP, false},
		{" png ", FormatPNG, false},
		{"jpeg", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFlipPixels(t *testing.T) {
	// 1x3 image, bottom row first: red, green, blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FlipPixels(pixels, 1, 3)
	if err != nil {
		t.Fatalf("FlipPixels: %v", err)
	}

	want := []color.RGBA{
		{0, 0, 255, 255},
		{0, 255, 0, 255},
		{255, 0, 0, 255},
	}
	for y, c := range want {
		if got := img.RGBAAt(0, y); got != c {
			t.Errorf("row %d = %v, want %v", y, got, c)
		}
	}
}

func TestFlipPixelsSizeMismatch(t *testing.T) {
	if _, err := FlipPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "heightview", FormatWebP)
	sc.now = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC) }

	want := filepath.Join("shots", "heightview_2026-03-14_15-09-26.535.webp")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}
}

func TestCaptureFromImage(t *testing.T) {
	const w, h = 4, 2
	pixels := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pixels[i*4] = uint8(i * 30)
		pixels[i*4+3] = 255
	}

	tests := []struct {
		format Format
		decode func(f *os.File) (image.Image, error)
	}{
		{FormatPNG, func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{FormatWebP, func(f *os.File) (image.Image, error) { return webp.Decode(f) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			sc := NewScreenshotCapture(dir, "shot", tt.format)

			flipped, err := FlipPixels(pixels, w, h)
			if err != nil {
				t.Fatalf("FlipPixels: %v", err)
			}
			path, err := sc.CaptureFromImage(flipped)
			if err != nil {
				t.Fatalf("CaptureFromImage: %v", err)
			}
			if !strings.HasSuffix(path, "."+string(tt.format)) {
				t.Errorf("path %q has wrong extension", path)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decoding saved file: %v", err)
			}
			if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
				t.Fatalf("size = %v, want %dx%d", img.Bounds(), w, h)
			}

			// Top-left pixel comes from the last source row
			r, _, _, _ := img.At(0, 0).RGBA()
			if got := uint8(r >> 8); got != uint8(w*30) {
				t.Errorf("top-left red = %d, want %d", got, w*30)
			}
		})
	}
}
