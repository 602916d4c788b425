// Package imaging produces the stored artifacts for a photo: a bounded-width
// full-resolution JPEG and a fixed square thumbnail. Decoding covers JPEG,
// PNG and WebP; HEIC uploads pass validation but surface the codec's error
// as a COMPRESSION_ERROR, matching how the layer treats any undecodable input.
package imaging

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoding

	"mistakebook/internal/types"
)

const (
	// MaxWidth bounds the stored full-resolution artifact.
	MaxWidth = 2000

	thumbSize    = 300
	thumbQuality = 0.7
)

// Compress re-encodes data as a JPEG no wider than maxWidth, at the given
// quality factor (0..1). Narrower inputs keep their dimensions.
func Compress(data []byte, quality float64, maxWidth int) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	return encodeJPEG(img, quality)
}

// Thumbnail produces the fixed 300x300 cover-fit JPEG used for list display.
// Quality is fixed at 0.7 regardless of the configured compression quality.
func Thumbnail(data []byte) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}

	img = imaging.Fill(img, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)

	return encodeJPEG(img, thumbQuality)
}

func decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, types.NewCompressionError(err)
	}
	return img, nil
}

func encodeJPEG(img image.Image, quality float64) ([]byte, error) {
	q := int(quality * 100)
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
		return nil, types.NewCompressionError(err)
	}
	return buf.Bytes(), nil
}
