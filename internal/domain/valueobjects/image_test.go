package valueobjects

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestJPEG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to create test JPEG: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write test JPEG: %v", err)
	}
	return path
}

func TestNewImageData(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "empty data should fail",
			data:    []byte{},
			wantErr: true,
		},
		{
			name:    "nil data should fail",
			data:    nil,
			wantErr: true,
		},
		{
			name:    "non-empty data should succeed",
			data:    []byte{0xFF, 0xD8, 0xFF},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageData(tt.data, "image/jpeg", "hair.jpg")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImageData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadImage(filepath.Join(dir, "nope.jpg"))
		if !errors.Is(err, ErrImageNotFound) {
			t.Errorf("LoadImage() error = %v, want ErrImageNotFound", err)
		}
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		_, err := LoadImage(path)
		if !errors.Is(err, ErrImageDecode) {
			t.Errorf("LoadImage() error = %v, want ErrImageDecode", err)
		}
	})
}

func TestLoadImage_Downscale(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "small image keeps its size",
			width:      640,
			height:     480,
			wantWidth:  640,
			wantHeight: 480,
		},
		{
			name:       "wide image scales to 1024 on the long edge",
			width:      2048,
			height:     1024,
			wantWidth:  1024,
			wantHeight: 512,
		},
		{
			name:       "tall image scales to 1024 on the long edge",
			width:      500,
			height:     2000,
			wantWidth:  256,
			wantHeight: 1024,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestJPEG(t, dir, tt.name+".jpg", tt.width, tt.height)

			prepared, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage() error = %v", err)
			}

			if prepared.MimeType() != "image/jpeg" {
				t.Errorf("MimeType() = %q, want image/jpeg", prepared.MimeType())
			}
			if prepared.FileName() != tt.name+".jpg" {
				t.Errorf("FileName() = %q, want %q", prepared.FileName(), tt.name+".jpg")
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(prepared.Data()))
			if err != nil {
				t.Fatalf("Failed to decode prepared image: %v", err)
			}
			if format != "jpeg" {
				t.Errorf("Prepared format = %q, want jpeg", format)
			}
			if cfg.Width != tt.wantWidth || cfg.Height != tt.wantHeight {
				t.Errorf("Prepared size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestLoadImage_ConvertsPNG(t *testing.T) {
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to create test PNG: %v", err)
	}
	path := filepath.Join(dir, "scalp.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write test PNG: %v", err)
	}

	prepared, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if prepared.MimeType() != "image/jpeg" {
		t.Errorf("MimeType() = %q, want image/jpeg after conversion", prepared.MimeType())
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(prepared.Data()))
	if err != nil {
		t.Fatalf("Failed to decode prepared image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("Prepared format = %q, want jpeg", format)
	}
}

func TestImageData_ToBase64(t *testing.T) {
	imageData, err := NewImageData([]byte("test data"), "image/jpeg", "a.jpg")
	if err != nil {
		t.Fatalf("NewImageData() error = %v", err)
	}
	if imageData.ToBase64() != "dGVzdCBkYXRh" {
		t.Errorf("ToBase64() = %q, want %q", imageData.ToBase64(), "dGVzdCBkYXRh")
	}
}
