package valueobjects

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// maxEdge is the longest edge allowed after preparation. Larger inputs
	// are scaled down to keep the gateway request payload bounded.
	maxEdge = 1024

	jpegQuality = 90
)

var (
	// ErrImageNotFound indicates the path does not resolve to a readable file.
	ErrImageNotFound = errors.New("image file not found")

	// ErrImageDecode indicates the file bytes are not a decodable image.
	ErrImageDecode = errors.New("image could not be decoded")
)

// ImageData is a prepared, size-bounded image payload ready for a gateway
// call. Instances are immutable once created.
type ImageData struct {
	data     []byte
	mimeType string
	fileName string
}

func NewImageData(data []byte, mimeType, fileName string) (*ImageData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image data cannot be empty")
	}

	return &ImageData{
		data:     data,
		mimeType: mimeType,
		fileName: fileName,
	}, nil
}

// LoadImage reads and normalizes an image file for analysis: decode, drop
// alpha, scale so the longest edge is at most 1024px preserving aspect ratio,
// and re-encode as JPEG at quality 90.
func LoadImage(path string) (*ImageData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageDecode, path)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxEdge || height > maxEdge {
		ratio := math.Min(float64(maxEdge)/float64(width), float64(maxEdge)/float64(height))
		newWidth := int(float64(width) * ratio)
		newHeight := int(float64(height) * ratio)

		scaled := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image as JPEG: %w", err)
	}

	return &ImageData{
		data:     buf.Bytes(),
		mimeType: "image/jpeg",
		fileName: filepath.Base(path),
	}, nil
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) MimeType() string {
	return i.mimeType
}

func (i *ImageData) FileName() string {
	return i.fileName
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}
