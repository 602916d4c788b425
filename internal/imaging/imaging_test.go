package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mistakebook/internal/imaging"
	"mistakebook/internal/types"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestCompressKeepsNarrowDimensions(t *testing.T) {
	out, err := imaging.Compress(encodeJPEG(t, 640, 480), 0.8, imaging.MaxWidth)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestCompressResizesWideInput(t *testing.T) {
	out, err := imaging.Compress(encodeJPEG(t, 2400, 120), 0.8, imaging.MaxWidth)
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 2000, w)
	assert.Equal(t, 100, h, "aspect ratio preserved")
}

func TestCompressAcceptsPNGInput(t *testing.T) {
	out, err := imaging.Compress(encodePNG(t, 80, 40), 0.8, imaging.MaxWidth)
	require.NoError(t, err)

	// Output is always JPEG regardless of the input format.
	_, err = jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
}

func TestCompressQualityAffectsSize(t *testing.T) {
	data := encodeJPEG(t, 800, 600)

	high, err := imaging.Compress(data, 0.95, imaging.MaxWidth)
	require.NoError(t, err)
	low, err := imaging.Compress(data, 0.1, imaging.MaxWidth)
	require.NoError(t, err)

	assert.Less(t, len(low), len(high))
}

func TestCompressUndecodableInput(t *testing.T) {
	_, err := imaging.Compress([]byte("definitely not an image"), 0.8, imaging.MaxWidth)
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeCompression, code)
}

func TestThumbnailIsFixedSquare(t *testing.T) {
	for _, dims := range [][2]int{{640, 480}, {480, 640}, {300, 300}, {50, 900}} {
		out, err := imaging.Thumbnail(encodeJPEG(t, dims[0], dims[1]))
		require.NoError(t, err)

		w, h := decodeSize(t, out)
		assert.Equal(t, 300, w)
		assert.Equal(t, 300, h)
	}
}

func TestThumbnailUndecodableInput(t *testing.T) {
	_, err := imaging.Thumbnail([]byte{0x00, 0x01})
	require.Error(t, err)

	code, ok := types.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeCompression, code)
}
