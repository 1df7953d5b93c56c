// Command qoiconv converts between QOI and common raster image formats.
// Its only job is to get bytes into and out of the codec package; it
// carries no pixel-manipulation logic of its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/qoi-go/qoi"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func main() {
	decode := flag.Bool("d", false, "decode a .qoi file to PNG instead of encoding to it")
	srgb := flag.Bool("srgb", false, "encode mode only: mark the output as sRGB rather than linear")
	in := flag.String("in", "", "input file path (required)")
	flag.Parse()

	if *in == "" {
		log.Fatalf("qoiconv: -in is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *decode {
		err = decodeFile(ctx, *in)
	} else {
		err = encodeFile(ctx, *in, *srgb)
	}
	if err != nil {
		log.Fatalf("qoiconv: %v", err)
	}
}

func decodeFile(ctx context.Context, inPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer f.Close()

	img, err := qoi.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	outPath := replaceExtension(inPath, "png")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}

func encodeFile(ctx context.Context, inPath string, srgb bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	colorspace := qoi.ColorspaceLinear
	if srgb {
		colorspace = qoi.ColorspaceSRGB
	}

	outPath := replaceExtension(inPath, "qoi")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := qoi.Encode(out, src, colorspace); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return nil
}

// replaceExtension swaps the final dot-suffix of path for ext. Unlike a
// naive substring replace of the old extension, this handles paths that
// contain the old extension's text earlier in the name (e.g. a directory
// named "png-sources").
func replaceExtension(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i+1] + ext
	}
	return path + "." + ext
}
