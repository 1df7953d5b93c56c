// Package imgconv converts between the standard library's image.Image
// and the tightly packed, row-major byte rasters the qoi codec core
// operates on. It generalizes kriticalflare-qoi's imageToNRGBA helper
// (encode.go) into a channel-count-aware conversion, since this format
// supports a 3-channel RGB stream with alpha pinned to 255.
package imgconv

import (
	"image"
	"image/draw"
)

// isOpaque reports whether every pixel in m has full alpha, mirroring
// Zyl9393-qoi's util.go isOpaqueImage.
func isOpaque(m image.Image) bool {
	if oim, ok := m.(interface{ Opaque() bool }); ok {
		return oim.Opaque()
	}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// ToRaster normalizes an arbitrary image.Image into a tightly packed
// raster. When forceAlpha is false and the source image is fully
// opaque, a 3-channel RGB raster is produced; otherwise a 4-channel
// RGBA raster is produced.
func ToRaster(src image.Image, forceAlpha bool) (raw []byte, width, height int, channels uint8) {
	b := src.Bounds()
	width, height = b.Dx(), b.Dy()

	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Bounds().Min != (image.Point{}) {
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		nrgba = dst
	}

	channels = 4
	if !forceAlpha && isOpaque(src) {
		channels = 3
	}

	raw = make([]byte, width*height*int(channels))
	for y := 0; y < height; y++ {
		srcOff := y * nrgba.Stride
		dstOff := y * width * int(channels)
		for x := 0; x < width; x++ {
			so := srcOff + x*4
			do := dstOff + x*int(channels)
			raw[do] = nrgba.Pix[so]
			raw[do+1] = nrgba.Pix[so+1]
			raw[do+2] = nrgba.Pix[so+2]
			if channels == 4 {
				raw[do+3] = nrgba.Pix[so+3]
			}
		}
	}
	return raw, width, height, channels
}

// FromRaster rebuilds an *image.NRGBA from a tightly packed raster,
// assuming alpha 255 throughout for 3-channel rasters (spec invariant:
// a 3-channel stream never carries alpha information).
func FromRaster(raw []byte, width, height int, channels uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcOff := y * width * int(channels)
		dstOff := y * img.Stride
		for x := 0; x < width; x++ {
			so := srcOff + x*int(channels)
			do := dstOff + x*4
			img.Pix[do] = raw[so]
			img.Pix[do+1] = raw[so+1]
			img.Pix[do+2] = raw[so+2]
			if channels == 4 {
				img.Pix[do+3] = raw[so+3]
			} else {
				img.Pix[do+3] = 255
			}
		}
	}
	return img
}
