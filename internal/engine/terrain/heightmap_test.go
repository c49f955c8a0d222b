package terrain

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

const epsilon = 1e-5

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFromImageSolidColors(t *testing.T) {
	tests := []struct {
		name  string
		color color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}},
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"green", color.NRGBA{0, 255, 0, 255}},
		{"blue", color.NRGBA{0, 0, 255, 255}},
		{"mixed", color.NRGBA{12, 200, 77, 255}},
		{"half transparent", color.NRGBA{100, 150, 200, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hm, err := FromImage(solidImage(4, 3, tt.color))
			if err != nil {
				t.Fatalf("FromImage: %v", err)
			}
			if hm.Width != 4 || hm.Height != 3 {
				t.Fatalf("size = %dx%d, want 4x3", hm.Width, hm.Height)
			}

			want := (0.2126*float64(tt.color.R) + 0.7152*float64(tt.color.G) + 0.0722*float64(tt.color.B)) / 255
			for i, v := range hm.Data {
				if abs(float64(v)-want) > epsilon {
					t.Fatalf("cell %d = %f, want %f", i, v, want)
				}
			}
		})
	}
}

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 51})

	hm, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if hm.At(0, 0) != 0 {
		t.Errorf("At(0,0) = %f, want 0", hm.At(0, 0))
	}
	if abs(float64(hm.At(0, 1))-0.2) > epsilon {
		t.Errorf("At(0,1) = %f, want 0.2", hm.At(0, 1))
	}
}

func TestFromImageRowMajor(t *testing.T) {
	// 3 columns x 2 rows, each pixel a distinct gray level
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			v := uint8(y*3 + x)
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}

	hm, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	for row := range 2 {
		for col := range 3 {
			want := float64(row*3+col) / 255
			if got := hm.At(row, col); abs(float64(got)-want) > epsilon {
				t.Errorf("At(%d,%d) = %f, want %f", row, col, got, want)
			}
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	base := solidImage(4, 4, color.NRGBA{0, 0, 0, 255})
	base.SetNRGBA(2, 2, color.NRGBA{255, 255, 255, 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	hm, err := FromImage(sub)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if hm.Width != 2 || hm.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", hm.Width, hm.Height)
	}
	if abs(float64(hm.At(0, 0))-1) > epsilon {
		t.Errorf("At(0,0) = %f, want 1", hm.At(0, 0))
	}
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(0, 3, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero width: expected ErrInvalidInput, got %v", err)
	}
	if _, err := New(2, 2, []float32{1, 2, 3}); err == nil {
		t.Error("expected error for short data")
	}

	hm, err := New(2, 1, []float32{0.25, 0.75})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if hm.At(0, 1) != 0.75 {
		t.Errorf("At(0,1) = %f, want 0.75", hm.At(0, 1))
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
