// mandelgray renders a grayscale image of a region of the Mandelbrot
// set and saves it as a PNG file.
package main

import (
	"fmt"
	"log"
	"os"

	mandelgray "github.com/marben/mandelgray"
	"github.com/marben/mandelgray/render"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Fprintf(os.Stderr, "Usage: %s FILE PIXELS UPPERLEFT LOWERRIGHT\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s mandelbrot.png 1024x768 -1.20,0.35 -1,0.2\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2], os.Args[3], os.Args[4]); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(filename, pixelsArg, upperLeftArg, lowerRightArg string) error {
	bounds, err := mandelgray.ParseBounds(pixelsArg)
	if err != nil {
		return fmt.Errorf("parsing image dimensions: %w", err)
	}
	upperLeft, err := mandelgray.ParseComplex(upperLeftArg)
	if err != nil {
		return fmt.Errorf("parsing upper-left corner point: %w", err)
	}
	lowerRight, err := mandelgray.ParseComplex(lowerRightArg)
	if err != nil {
		return fmt.Errorf("parsing lower-right corner point: %w", err)
	}

	pixels := make([]uint8, bounds.Width*bounds.Height)
	render.Render(pixels, bounds, mandelgray.Viewport{UpperLeft: upperLeft, LowerRight: lowerRight})

	if err := render.WritePNG(filename, pixels, bounds); err != nil {
		return fmt.Errorf("writing PNG file: %w", err)
	}
	return nil
}
