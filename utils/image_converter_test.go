package utils

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertToJPEG(t *testing.T) {
	t.Run("png is re-encoded as jpeg", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card_image_1.jpg")
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		img.Set(1, 1, color.RGBA{R: 255, A: 255})
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())

		require.NoError(t, ConvertToJPEG(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		format, err := detectImageFormat(data)
		require.NoError(t, err)
		if format != "jpeg" {
			t.Errorf("got format %q, want jpeg", format)
		}
	})

	t.Run("jpeg is left untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card_image_1.jpg")
		raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0, 1, 1}
		require.NoError(t, os.WriteFile(path, raw, 0644))

		require.NoError(t, ConvertToJPEG(path))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		if string(got) != string(raw) {
			t.Error("jpeg bytes were rewritten")
		}
	})

	t.Run("unknown bytes are an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card_image_1.jpg")
		require.NoError(t, os.WriteFile(path, []byte("<html>not an image</html>"), 0644))

		if err := ConvertToJPEG(path); err == nil {
			t.Error("expected error for non-image content")
		}
	})
}
