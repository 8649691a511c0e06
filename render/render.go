// Package render computes grayscale escape-time rasters of the
// Mandelbrot set, either in one sequential pass or tile by tile.
package render

import (
	"image"
	"image/color"

	mandelgray "github.com/marben/mandelgray"
)

// EscapeLimit is the fixed iteration cap. Together with the shading
// below it keeps every escaped pixel in [1, 255].
const EscapeLimit = 255

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// PixelToPoint returns the point on the complex plane corresponding to
// the pixel at (column, row).
//
// Pixel (0,0) maps exactly onto vp.UpperLeft; (Width-1, Height-1) lands
// just short of vp.LowerRight. No bounds checking: out-of-range pixels
// extrapolate beyond the viewport.
func PixelToPoint(b mandelgray.Bounds, column, row int, vp mandelgray.Viewport) complex128 {
	return complex(
		lerp(real(vp.UpperLeft), real(vp.LowerRight), float64(column)/float64(b.Width)),
		lerp(imag(vp.UpperLeft), imag(vp.LowerRight), float64(row)/float64(b.Height)),
	)
}

// EscapeTime tries to determine whether c belongs to the Mandelbrot
// set, using at most limit iterations to decide.
//
// If the orbit of z under z*z + c leaves the circle of radius 2, it
// returns the number of iterations completed before that was detected
// and escaped=true. If the limit is exhausted first, escaped is false
// and c is assumed to be a member.
//
// The magnitude check happens before each update, so the count is the
// number of iterations during which z was still within bound at the
// start of the iteration. Callers that want pixel-identical output must
// not change that ordering.
func EscapeTime(c complex128, limit int) (count int, escaped bool) {
	z := complex(0, 0)
	for i := 0; i < limit; i++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
		z = z*z + c
	}
	return 0, false
}

// shade maps one plane point to its grayscale intensity: black for
// assumed members, brighter the faster the point escapes.
func shade(c complex128) uint8 {
	count, escaped := EscapeTime(c, EscapeLimit)
	if !escaped {
		return 0
	}
	return uint8(255 - count)
}

// Render fills pixels with the grayscale raster of vp at the given
// bounds. pixels is row-major, index row*Width+column, and its length
// must be exactly Width*Height.
func Render(pixels []uint8, b mandelgray.Bounds, vp mandelgray.Viewport) {
	if len(pixels) != b.Width*b.Height {
		panic("render: buffer length does not match bounds")
	}

	for row := 0; row < b.Height; row++ {
		for column := 0; column < b.Width; column++ {
			point := PixelToPoint(b, column, row, vp)
			pixels[row*b.Width+column] = shade(point)
		}
	}
}

// RenderTile renders one tile of the full image, in global pixel
// coordinates. Tiling the image and rendering each tile yields byte for
// byte the same pixels as a single Render call over the full bounds.
func RenderTile(tile image.Rectangle, b mandelgray.Bounds, vp mandelgray.Viewport) *image.Gray {
	img := image.NewGray(tile)
	for row := tile.Min.Y; row < tile.Max.Y; row++ {
		for column := tile.Min.X; column < tile.Max.X; column++ {
			point := PixelToPoint(b, column, row, vp)
			img.SetGray(column, row, color.Gray{Y: shade(point)})
		}
	}
	return img
}

// SplitTiles splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func SplitTiles(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
