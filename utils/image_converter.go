package utils

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// detectImageFormat reads the magic bytes and returns the image format
func detectImageFormat(data []byte) (string, error) {
	if len(data) < 12 {
		return "", errors.New("data too short to determine format")
	}

	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "jpeg", nil
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "png", nil
	}
	if string(data[0:6]) == "GIF87a" || string(data[0:6]) == "GIF89a" {
		return "gif", nil
	}
	if string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
		return "webp", nil
	}

	return "", errors.New("unknown image format")
}

// ConvertToJPEG rewrites the file at path as JPEG when it holds a PNG, GIF or WebP.
// JPEG files are left untouched.
func ConvertToJPEG(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	format, err := detectImageFormat(data)
	if err != nil {
		return err
	}
	if format == "jpeg" {
		return nil
	}

	var img image.Image
	reader := bytes.NewReader(data)
	switch format {
	case "png":
		img, err = png.Decode(reader)
	case "gif":
		img, err = gif.Decode(reader)
	case "webp":
		img, err = webp.Decode(reader)
	}
	if err != nil {
		return errors.New("failed to decode " + format + " image: " + err.Error())
	}

	return imaging.Save(img, path, imaging.JPEGQuality(90))
}
