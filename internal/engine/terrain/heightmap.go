package terrain

import (
	"fmt"
	"image"
	"image/color"
)

// Rec. 709 luma weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// New creates a heightmap from row-major samples.
func New(width, height int, data []float32) (*Heightmap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("heightmap %dx%d: %w", width, height, ErrInvalidInput)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("heightmap %dx%d: expected %d samples, got %d", width, height, width*height, len(data))
	}
	return &Heightmap{Width: width, Height: height, Data: data}, nil
}

// At returns the sample at the given row and column.
func (h *Heightmap) At(row, col int) float32 {
	return h.Data[row*h.Width+col]
}

// Luminance converts 8-bit RGB channels to a normalized luma value.
func Luminance(r, g, b uint8) float32 {
	return float32((lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)) / 255.0)
}

// FromImage builds a heightmap with the same dimensions as img.
// Channels are read non-premultiplied, so alpha does not darken the result.
func FromImage(img image.Image) (*Heightmap, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("image %dx%d: %w", width, height, ErrInvalidInput)
	}

	data := make([]float32, width*height)

	// Fast paths for the layouts the stdlib decoders produce most often
	switch src := img.(type) {
	case *image.Gray:
		for y := range height {
			for x := range width {
				v := src.GrayAt(b.Min.X+x, b.Min.Y+y).Y
				data[y*width+x] = Luminance(v, v, v)
			}
		}
	case *image.NRGBA:
		for y := range height {
			for x := range width {
				i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				data[y*width+x] = Luminance(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
			}
		}
	default:
		for y := range height {
			for x := range width {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				data[y*width+x] = Luminance(c.R, c.G, c.B)
			}
		}
	}

	return &Heightmap{Width: width, Height: height, Data: data}, nil
}
