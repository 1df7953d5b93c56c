package qoi

// Chunk tags. The two full-byte tags are checked before the four
// two-bit-discriminated tags -- 0xFE and 0xFF would otherwise collide
// with the QOI_OP_RUN prefix (0xC0), since RUN never legally carries a
// low-6 value of 62 or 63.
const (
	opRGB   byte = 0b1111_1110
	opRGBA  byte = 0b1111_1111
	opIndex byte = 0b00_000000
	opDiff  byte = 0b01_000000
	opLuma  byte = 0b10_000000
	opRun   byte = 0b11_000000

	tagMask2 byte = 0b11_000000

	maxRun = 62
)
