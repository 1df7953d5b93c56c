package qoi

import "errors"

// Sentinel errors for the codec's failure kinds. Callers compare with
// errors.Is; every error the codec itself produces wraps one of these.
// Errors from the io.Reader or io.Writer passed to Decode, DecodeConfig or
// Encode are returned as they are.
var (
	// ErrUnsupportedPixelMode is returned by EncodeRaster when the caller
	// declares a channel count other than 3 or 4.
	ErrUnsupportedPixelMode = errors.New("qoi: unsupported pixel mode, channels must be 3 or 4")

	// ErrRasterSizeMismatch is returned by EncodeRaster when the raw
	// buffer length does not equal width*height*channels.
	ErrRasterSizeMismatch = errors.New("qoi: raster length does not match width*height*channels")

	// ErrBadMagic is returned by DecodeRaster/DecodeConfig when the
	// header's first four bytes are not "qoif", or when the stream is
	// shorter than the 14-byte header.
	ErrBadMagic = errors.New("qoi: bad magic bytes")

	// ErrBadChannels is returned when the header's channel byte is
	// neither 3 nor 4.
	ErrBadChannels = errors.New("qoi: channel count must be 3 or 4")

	// ErrTruncated is returned when the chunk stream runs out of bytes
	// before the expected number of pixels has been produced.
	ErrTruncated = errors.New("qoi: truncated chunk stream")

	// ErrOverflow is returned when a QOI_OP_LUMA tag is read but its
	// second byte is missing.
	ErrOverflow = errors.New("qoi: truncated QOI_OP_LUMA chunk")
)
