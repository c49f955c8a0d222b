package terrain

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// format pairs a file signature with its decoder. '?' in magic matches any byte.
type format struct {
	name   string
	magic  string
	decode func(io.Reader) (image.Image, error)
}

// formats is checked in order. TGA has no signature, so it is tried last
// instead of going through image.RegisterFormat, where its empty magic
// would claim every file.
var formats = []format{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8", gif.Decode},
	{"bmp", "BM", bmp.Decode},
	{"tiff", "II*\x00", tiff.Decode},
	{"tiff", "MM\x00*", tiff.Decode},
	{"webp", "RIFF????WEBP", webp.Decode},
}

// LoadOptions controls how an image file becomes a heightmap.
type LoadOptions struct {
	// MaxDimension caps the longest image side; larger images are
	// downsampled before conversion. Zero disables the cap.
	MaxDimension int
}

// Image is a decoded source image plus the format name reported by the decoder.
type Image struct {
	Image  image.Image
	Format string
}

// DecodeImage decodes PNG, JPEG, GIF, BMP, TIFF, WebP or TGA data.
func DecodeImage(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %v: %w", err, ErrInvalidInput)
	}

	for _, f := range formats {
		if !matchMagic(f.magic, data) {
			continue
		}
		img, err := f.decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %v: %w", f.name, err, ErrInvalidInput)
		}
		return &Image{Image: img, Format: f.name}, nil
	}

	img, err := tga.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unrecognized image data: %w", ErrInvalidInput)
	}
	return &Image{Image: img, Format: "tga"}, nil
}

func matchMagic(magic string, data []byte) bool {
	if len(data) < len(magic) {
		return false
	}
	for i := range len(magic) {
		if magic[i] != '?' && magic[i] != data[i] {
			return false
		}
	}
	return true
}

// Decode reads an image and converts it to a heightmap.
func Decode(r io.Reader, opts LoadOptions) (*Heightmap, string, error) {
	src, err := DecodeImage(r)
	if err != nil {
		return nil, "", err
	}
	hm, err := FromImage(Downsample(src.Image, opts.MaxDimension))
	if err != nil {
		return nil, src.Format, err
	}
	return hm, src.Format, nil
}

// Load opens path and converts the image it contains to a heightmap.
// A missing, unreadable or undecodable file yields ErrInvalidInput.
func Load(path string, opts LoadOptions) (*Heightmap, error) {
	if path == "" {
		return nil, fmt.Errorf("no file selected: %w", ErrInvalidInput)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %v: %w", path, err, ErrInvalidInput)
	}
	defer f.Close()

	hm, _, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return hm, nil
}

// Downsample scales img so its longest side is at most maxDim, keeping the
// aspect ratio. Images already within the limit are returned unchanged.
func Downsample(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}

	dw, dh := maxDim, maxDim
	if w >= h {
		dh = max(1, h*maxDim/w)
	} else {
		dw = max(1, w*maxDim/h)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
