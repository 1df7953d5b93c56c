package qoi

import (
	"image"
	"image/color"
	"io"

	"github.com/qoi-go/qoi/internal/imgconv"
)

// Image implements image.Image directly over a packed QOI raster, the
// way Zyl9393-qoi's own Image type does, so a decoded stream can be
// handed straight to anything that accepts image.Image without a
// per-pixel NRGBA copy.
type Image struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace Colorspace
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	off := (y*img.Width + x) * int(img.Channels)
	if img.Channels == 4 {
		return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: img.Pix[off+3]}
	}
	return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: 255}
}

// Decode reads a complete QOI stream and returns it as an image.Image,
// matching the signature image.RegisterFormat requires.
func Decode(r io.Reader) (image.Image, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	h, raw, err := DecodeRaster(buf)
	if err != nil {
		return nil, err
	}
	return &Image{Pix: raw, Width: int(h.Width), Height: int(h.Height), Channels: h.Channels, Colorspace: h.Colorspace}, nil
}

// DecodeConfig parses just the 14-byte header, without decoding the
// pixel body, the way every other format image.RegisterFormat knows
// about implements it.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return image.Config{}, err
	}
	h, err := readHeader(newByteReader(buf))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: int(h.Width), Height: int(h.Height)}, nil
}

// Encode normalizes an arbitrary image.Image (generalizing
// kriticalflare-qoi's imageToNRGBA) into a packed raster and writes it
// as a complete QOI stream.
func Encode(w io.Writer, m image.Image, colorspace Colorspace) error {
	raw, width, height, channels := imgconv.ToRaster(m, false)
	out, err := EncodeRaster(raw, uint32(width), uint32(height), channels, colorspace)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

func init() {
	image.RegisterFormat("qoi", "qoif", Decode, DecodeConfig)
}
