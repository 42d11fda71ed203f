package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{40, 90, 200, 255})
		}
	}
	return img
}

func encodeJPEG(w, h int) []byte {
	var buf bytes.Buffer
	jpeg.Encode(&buf, solid(w, h), &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func encodePNG(w, h int) []byte {
	var buf bytes.Buffer
	png.Encode(&buf, solid(w, h))
	return buf.Bytes()
}

func TestNormalizePhotoJPEG(t *testing.T) {
	p, err := NormalizePhoto(bytes.NewReader(encodeJPEG(100, 80)))
	if err != nil {
		t.Fatalf("NormalizePhoto: %v", err)
	}
	if p.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", p.MIME)
	}
	if p.Width != 100 || p.Height != 80 {
		t.Errorf("small photo should keep its size, got %dx%d", p.Width, p.Height)
	}
}

func TestNormalizePhotoPNGBecomesJPEG(t *testing.T) {
	p, err := NormalizePhoto(bytes.NewReader(encodePNG(64, 64)))
	if err != nil {
		t.Fatalf("NormalizePhoto: %v", err)
	}
	if p.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", p.MIME)
	}
	if _, err := jpeg.Decode(bytes.NewReader(p.Data)); err != nil {
		t.Errorf("output is not a JPEG: %v", err)
	}
}

func TestNormalizePhotoShrinksLongEdge(t *testing.T) {
	p, err := NormalizePhoto(bytes.NewReader(encodeJPEG(2048, 1024)))
	if err != nil {
		t.Fatalf("NormalizePhoto: %v", err)
	}
	if p.Width != MaxEdge || p.Height != MaxEdge/2 {
		t.Errorf("expected %dx%d, got %dx%d", MaxEdge, MaxEdge/2, p.Width, p.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != p.Width {
		t.Errorf("reported width %d does not match encoded width %d", p.Width, img.Bounds().Dx())
	}
}

func TestNormalizePhotoRejectsOtherFormats(t *testing.T) {
	for _, data := range [][]byte{[]byte("not an image"), []byte("GIF89a...")} {
		_, err := NormalizePhoto(bytes.NewReader(data))
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("expected ErrUnsupported for %q, got %v", data, err)
		}
	}
}
