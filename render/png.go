package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	mandelgray "github.com/marben/mandelgray"
)

// GrayImage wraps a row-major intensity buffer as an image without
// copying it. len(pixels) must equal b.Width*b.Height.
func GrayImage(pixels []uint8, b mandelgray.Bounds) *image.Gray {
	if len(pixels) != b.Width*b.Height {
		panic("render: buffer length does not match bounds")
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// EncodePNG writes img to w as an 8-bit grayscale PNG.
func EncodePNG(w io.Writer, img *image.Gray) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// WritePNG saves the intensity buffer to filename as a grayscale PNG.
func WritePNG(filename string, pixels []uint8, b mandelgray.Bounds) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %q: %w", filename, err)
	}
	defer f.Close()

	return EncodePNG(f, GrayImage(pixels, b))
}
