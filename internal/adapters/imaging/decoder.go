package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bnema/twmj/internal/domain"
	"github.com/bnema/twmj/internal/ports"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels caps decoded images at roughly a 48MP camera frame.
const DefaultMaxPixels = 8000 * 6000

// Decoder checks that a payload is a complete image in one of the registered
// formats before it is handed to the classifier.
type Decoder struct {
	MaxPixels int
}

var _ ports.ImageDecoder = Decoder{}

func NewDecoder() Decoder {
	return Decoder{MaxPixels: DefaultMaxPixels}
}

func (d Decoder) Decode(data []byte) (domain.Image, error) {
	if len(data) == 0 {
		return domain.Image{}, fmt.Errorf("%w: empty image", domain.ErrDecode)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.Image{}, decodeError(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return domain.Image{}, fmt.Errorf("%w: image has no pixels", domain.ErrDecode)
	}
	if d.MaxPixels > 0 && cfg.Width*cfg.Height > d.MaxPixels {
		return domain.Image{}, fmt.Errorf("%w: image is %dx%d, limit is %d pixels", domain.ErrDecode, cfg.Width, cfg.Height, d.MaxPixels)
	}

	// A readable header is not enough; truncated bodies only fail on a full decode.
	if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
		return domain.Image{}, decodeError(err)
	}

	return domain.Image{
		Data:   data,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: unsupported image format", domain.ErrDecode)
	}
	return fmt.Errorf("%w: %v", domain.ErrDecode, err)
}
