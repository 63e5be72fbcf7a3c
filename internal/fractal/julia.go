// Package fractal renders Julia set escape-time images.
package fractal

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math/cmplx"
)

// MaxIterations caps the orbit length; points that never escape are
// treated as members of the set.
const MaxIterations = 255

const escapeRadius = 2.0

// Orbit iterates z ← z² + c and returns the number of iterations until
// |z| exceeds the escape radius, or ok = false if the orbit stays bounded
// for MaxIterations steps.
func Orbit(c, z complex128) (n int, escaped bool) {
	for i := 0; i < MaxIterations; i++ {
		if cmplx.Abs(z) > escapeRadius {
			return i, true
		}
		z = z*z + c
	}
	return MaxIterations, false
}

// Render paints the escape-time grayscale image of the Julia set for
// parameter c over the square [-1.5, 1.5]².
func Render(c complex128, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))

	scaleX := 3.0 / float64(width)
	scaleY := 3.0 / float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			z := complex(float64(x)*scaleX-1.5, float64(y)*scaleY-1.5)
			n, escaped := Orbit(c, z)
			if !escaped {
				n = MaxIterations
			}
			img.SetGray(x, y, color.Gray{Y: uint8(n)})
		}
	}

	return img
}

// WritePNG renders the set and encodes it as PNG.
func WritePNG(w io.Writer, c complex128, width, height int) error {
	return png.Encode(w, Render(c, width, height))
}
