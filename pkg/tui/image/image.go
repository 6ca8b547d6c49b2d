// ABOUTME: Image format sniffing and decoding for preview panes
// ABOUTME: Registers PNG, JPEG, GIF, WebP, and BMP decoders

package image

import (
	"bytes"
	"fmt"
	goimage "image"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Sniff reports the image format named by the magic bytes of data.
func Sniff(data []byte) (string, bool) {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return "png", true
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "jpeg", true
	case len(data) >= 3 && string(data[:3]) == "GIF":
		return "gif", true
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "webp", true
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return "bmp", true
	}
	return "", false
}

// Decode decodes image data in any registered format.
func Decode(data []byte) (goimage.Image, error) {
	if _, ok := Sniff(data); !ok {
		return nil, fmt.Errorf("unrecognized image format")
	}
	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
