package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solidImage(w, h, color.RGBA{200, 30, 30, 255}), &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h, color.RGBA{30, 30, 200, 255})); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, solidImage(w, h, color.RGBA{30, 200, 30, 255}), nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

func TestProcessAcceptsSupportedFormats(t *testing.T) {
	for name, data := range map[string][]byte{
		"jpeg": encodeJPEG(t, 120, 80),
		"png":  encodePNG(t, 120, 80),
		"gif":  encodeGIF(t, 120, 80),
	} {
		res, err := Process(data)
		if err != nil {
			t.Fatalf("%s: Process: %v", name, err)
		}
		if res.MIME != "image/jpeg" {
			t.Fatalf("%s: expected image/jpeg output, got %s", name, res.MIME)
		}
		if len(res.Data) == 0 {
			t.Fatalf("%s: empty output", name)
		}
	}
}

func TestProcessDownscalesLargeImages(t *testing.T) {
	data := encodePNG(t, 2048, 512)

	res, err := Process(data)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := img.Bounds().Dx(); got != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, got)
	}
	if got := img.Bounds().Dy(); got != 256 {
		t.Errorf("expected height 256, got %d", got)
	}
}

func TestValidateRejectsOversized(t *testing.T) {
	data := make([]byte, MaxUploadBytes+1)
	copy(data, []byte("\xff\xd8\xff"))

	if _, err := Validate(data); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestValidateRejectsUnsupportedFormat(t *testing.T) {
	if _, err := Validate([]byte("%PDF-1.4 not an image")); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}
