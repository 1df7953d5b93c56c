package qoi

import "fmt"

// decoder carries the decode state machine's per-image mutable state:
// the current pixel register, the recently-seen table, and the pending
// run countdown.
type decoder struct {
	r     *byteReader
	table seenTable
	pixel Pixel
	run   int
}

// DecodeRaster parses a complete QOI byte stream and returns the header
// metadata plus a tightly packed, row-major raster of header.Channels
// bytes per pixel.
func DecodeRaster(buf []byte) (Header, []byte, error) {
	r := newByteReader(buf)
	h, err := readHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	n := h.pixelCount()
	out := make([]byte, n*int(h.Channels))

	d := &decoder{r: r, pixel: initialPixel}

	for i := 0; i < n; i++ {
		if d.run > 0 {
			d.run--
		} else if err := d.readChunk(); err != nil {
			return Header{}, nil, err
		}

		d.table.set(d.pixel)

		off := i * int(h.Channels)
		out[off] = d.pixel.R
		out[off+1] = d.pixel.G
		out[off+2] = d.pixel.B
		if h.Channels == 4 {
			out[off+3] = d.pixel.A
		}
	}

	return h, out, nil
}

// readChunk reads and applies exactly one chunk, advancing d.pixel (and,
// for RUN, d.run) accordingly. Full-byte tags are tested before the
// two-bit-discriminated forms, since 0xFE/0xFF would otherwise be
// misread as RUN.
func (d *decoder) readChunk() error {
	tag, ok := d.r.ReadByte()
	if !ok {
		return fmt.Errorf("%w: expected a chunk tag", ErrTruncated)
	}

	switch {
	case tag == opRGB:
		b, ok := d.r.ReadBytes(3)
		if !ok {
			return fmt.Errorf("%w: truncated QOI_OP_RGB chunk", ErrTruncated)
		}
		d.pixel.R, d.pixel.G, d.pixel.B = b[0], b[1], b[2]

	case tag == opRGBA:
		b, ok := d.r.ReadBytes(4)
		if !ok {
			return fmt.Errorf("%w: truncated QOI_OP_RGBA chunk", ErrTruncated)
		}
		d.pixel.R, d.pixel.G, d.pixel.B, d.pixel.A = b[0], b[1], b[2], b[3]

	case tag&tagMask2 == opIndex:
		d.pixel = d.table[tag&0x3F]

	case tag&tagMask2 == opDiff:
		d.pixel.R += ((tag >> 4) & 0x03) - 2
		d.pixel.G += ((tag >> 2) & 0x03) - 2
		d.pixel.B += (tag & 0x03) - 2

	case tag&tagMask2 == opLuma:
		b2, ok := d.r.ReadByte()
		if !ok {
			return fmt.Errorf("%w: second QOI_OP_LUMA byte missing", ErrOverflow)
		}
		dg := int(tag&0x3F) - 32
		drDg := int((b2>>4)&0x0F) - 8
		dbDg := int(b2&0x0F) - 8
		d.pixel.G = byte(int(d.pixel.G) + dg)
		d.pixel.R = byte(int(d.pixel.R) + dg + drDg)
		d.pixel.B = byte(int(d.pixel.B) + dg + dbDg)

	case tag&tagMask2 == opRun:
		d.run = int(tag & 0x3F)

	default:
		return fmt.Errorf("%w: unreachable tag %#02x", ErrTruncated, tag)
	}
	return nil
}
