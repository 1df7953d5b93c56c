package qoi_test

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/qoi-go/qoi"
	testdataloader "github.com/peteole/testdata-loader"
)

// TestDecode loads a PNG fixture through the third-party testdata-loader
// helper (so the test works regardless of the working directory `go
// test` is invoked from), encodes it to QOI, decodes it back through the
// generic image.Decode dispatch (exercising image.RegisterFormat), and
// compares pixel-for-pixel against the original.
func TestDecode(t *testing.T) {
	pngContent := testdataloader.GetTestFile("testdata/sample.png")
	img, err := png.Decode(bytes.NewReader(pngContent))
	if err != nil {
		t.Fatal(err)
	}
	var qoiEncoded bytes.Buffer
	if err := qoi.Encode(&qoiEncoded, img, qoi.ColorspaceSRGB); err != nil {
		t.Fatal(err)
	}
	decoded, format, err := image.Decode(bytes.NewReader(qoiEncoded.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if format != "qoi" {
		t.Fatalf("format = %q, want %q", format, "qoi")
	}
	if err := imageEquals(decoded, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeConfig(t *testing.T) {
	pngContent := testdataloader.GetTestFile("testdata/sample.png")
	img, err := png.Decode(bytes.NewReader(pngContent))
	if err != nil {
		t.Fatal(err)
	}
	var qoiEncoded bytes.Buffer
	if err := qoi.Encode(&qoiEncoded, img, qoi.ColorspaceLinear); err != nil {
		t.Fatal(err)
	}
	cfg, err := qoi.DecodeConfig(bytes.NewReader(qoiEncoded.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != img.Bounds().Dx() || cfg.Height != img.Bounds().Dy() {
		t.Fatalf("config dims = %dx%d, want %dx%d", cfg.Width, cfg.Height, img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func imageEquals(a, b image.Image) error {
	if !sameRectDimensions(a.Bounds(), b.Bounds()) {
		return fmt.Errorf("dimensions not equal")
	}
	ar, br := a.Bounds(), b.Bounds()
	width, height := ar.Dx(), ar.Dy()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ra, ga, ba, aa := a.At(ar.Min.X+x, ar.Min.Y+y).RGBA()
			rb, gb, bb, ab := b.At(br.Min.X+x, br.Min.Y+y).RGBA()
			if ra != rb || ga != gb || ba != bb || aa != ab {
				return fmt.Errorf("pixel (%d,%d) not equal: got %v,%v,%v,%v want %v,%v,%v,%v", x, y, ra, ga, ba, aa, rb, gb, bb, ab)
			}
		}
	}
	return nil
}

func sameRectDimensions(a, b image.Rectangle) bool {
	return a.Dx() == b.Dx() && a.Dy() == b.Dy()
}
