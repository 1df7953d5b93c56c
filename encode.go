package qoi

import "fmt"

// encoder holds the per-image mutable state the encode state machine
// carries from one pixel to the next: the recently-seen table and the
// previous-pixel register. It is constructed fresh for every call to
// EncodeRaster and discarded once the image is fully written.
type encoder struct {
	w       *byteWriter
	table   seenTable
	prev    Pixel
	run     int
	channels uint8
}

// EncodeRaster compresses a tightly packed, row-major raster of 3- or
// 4-channel pixels into a complete QOI byte stream: 14-byte header, chunk
// body, 8-byte end marker.
func EncodeRaster(raw []byte, width, height uint32, channels uint8, colorspace Colorspace) ([]byte, error) {
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedPixelMode, channels)
	}
	n := int(width) * int(height)
	if len(raw) != n*int(channels) {
		return nil, fmt.Errorf("%w: want %d bytes (%dx%dx%d), got %d", ErrRasterSizeMismatch, n*int(channels), width, height, channels, len(raw))
	}

	w := newByteWriter(headerSize + n*(int(channels)+1) + endMarkerSize)
	writeHeader(w, Header{Width: width, Height: height, Channels: channels, Colorspace: colorspace})

	e := &encoder{w: w, prev: initialPixel, channels: channels}

	for i := 0; i < n; i++ {
		off := i * int(channels)
		p := Pixel{R: raw[off], G: raw[off+1], B: raw[off+2], A: 255}
		if channels == 4 {
			p.A = raw[off+3]
		}
		e.step(p, i == n-1)
	}

	writeEndMarker(w)
	return w.Bytes(), nil
}

// step processes one pixel of the raster: run accumulation, INDEX
// lookup, alpha-changed RGBA fallback, DIFF/LUMA fit checks in
// tie-break order, and RGB fallback. last reports whether this is the
// final pixel of the image, which forces a pending run to flush even if
// it hasn't hit the 62-pixel cap.
func (e *encoder) step(p Pixel, last bool) {
	if p.Equals(e.prev) {
		// The decoder records every pixel it outputs, run pixels included;
		// recording it here too keeps both tables equal when the image
		// opens with a run of the initial register.
		e.table.set(p)
		e.run++
		if e.run == maxRun || last {
			e.emitRun()
		}
		return
	}

	if e.run > 0 {
		e.emitRun()
	}

	h := p.Hash()
	if e.table[h].Equals(p) {
		e.w.WriteByte(opIndex | h)
		e.prev = p
		return
	}
	e.table.set(p)

	if e.channels == 4 && p.A != e.prev.A {
		e.w.WriteBytes(opRGBA, p.R, p.G, p.B, p.A)
		e.prev = p
		return
	}

	dr := wrapDelta8(p.R, e.prev.R)
	dg := wrapDelta8(p.G, e.prev.G)
	db := wrapDelta8(p.B, e.prev.B)

	if inRange(dr, -2, 1) && inRange(dg, -2, 1) && inRange(db, -2, 1) {
		e.w.WriteByte(opDiff | byte(dr+2)<<4 | byte(dg+2)<<2 | byte(db+2))
		e.prev = p
		return
	}

	drDg := dr - dg
	dbDg := db - dg
	if inRange(dg, -32, 31) && inRange(drDg, -8, 7) && inRange(dbDg, -8, 7) {
		e.w.WriteByte(opLuma | byte(dg+32))
		e.w.WriteByte(byte(drDg+8)<<4 | byte(dbDg+8))
		e.prev = p
		return
	}

	e.w.WriteBytes(opRGB, p.R, p.G, p.B)
	e.prev = p
}

func (e *encoder) emitRun() {
	e.w.WriteByte(opRun | byte(e.run-1))
	e.run = 0
}

// wrapDelta8 computes cur-prev in [-128,127], the natural signed
// difference under mod-256 wraparound (e.g. 250 -> 2 yields +8, not
// -248). Equivalent to the reference formula
// ((cur-prev+384) mod 256) - 128, but expressed via an int8 conversion
// of the wrapped byte difference.
func wrapDelta8(cur, prev uint8) int {
	return int(int8(cur - prev))
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
