package qoi

import "fmt"

// magic is the big-endian ASCII "qoif" header preamble.
const magic uint32 = 0x716f6966

const (
	headerSize = 14
	endMarkerSize = 8
)

// Colorspace is the header's opaque colorspace marker. The codec
// preserves it verbatim and never interprets it.
type Colorspace uint8

const (
	ColorspaceSRGB   Colorspace = 0
	ColorspaceLinear Colorspace = 1
)

// Header is the 14-byte QOI preamble.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	Colorspace Colorspace
}

func (h Header) pixelCount() int {
	return int(h.Width) * int(h.Height)
}

func writeHeader(w *byteWriter, h Header) {
	w.WriteUint32BE(magic)
	w.WriteUint32BE(h.Width)
	w.WriteUint32BE(h.Height)
	w.WriteBytes(h.Channels, byte(h.Colorspace))
}

func readHeader(r *byteReader) (Header, error) {
	gotMagic, ok := r.ReadUint32BE()
	if !ok {
		return Header{}, fmt.Errorf("%w: stream shorter than %d bytes", ErrBadMagic, headerSize)
	}
	if gotMagic != magic {
		return Header{}, fmt.Errorf("%w: got %#08x", ErrBadMagic, gotMagic)
	}
	width, ok := r.ReadUint32BE()
	if !ok {
		return Header{}, fmt.Errorf("%w: stream shorter than %d bytes", ErrBadMagic, headerSize)
	}
	height, ok := r.ReadUint32BE()
	if !ok {
		return Header{}, fmt.Errorf("%w: stream shorter than %d bytes", ErrBadMagic, headerSize)
	}
	rest, ok := r.ReadBytes(2)
	if !ok {
		return Header{}, fmt.Errorf("%w: stream shorter than %d bytes", ErrBadMagic, headerSize)
	}
	channels, colorspace := rest[0], rest[1]
	if channels != 3 && channels != 4 {
		return Header{}, fmt.Errorf("%w: got %d", ErrBadChannels, channels)
	}
	return Header{Width: width, Height: height, Channels: channels, Colorspace: Colorspace(colorspace)}, nil
}

// endMarker is the fixed 8-byte trailer: seven zero bytes then one byte
// of value 1.
var endMarker = [endMarkerSize]byte{0, 0, 0, 0, 0, 0, 0, 1}

func writeEndMarker(w *byteWriter) {
	w.WriteBytes(endMarker[:]...)
}
