package webpconv

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// jpegSource returns an image suitable for JPEG encoding. Rasters carrying
// an alpha channel are composited onto an opaque white canvas of the same
// size, using their own alpha as the blend mask. Other non-RGB rasters are
// cloned into RGB-order pixels, the way PIL's convert("RGB") behaves.
// Plain three-channel images pass through untouched. The input image is
// never modified.
func jpegSource(img image.Image) image.Image {
	if hasAlpha(img) {
		bounds := img.Bounds()
		canvas := imaging.New(bounds.Dx(), bounds.Dy(), white)
		return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
	}
	if _, ok := img.(*image.YCbCr); ok {
		// Lossy WebP without alpha decodes to YCbCr, which the JPEG
		// encoder takes natively.
		return img
	}
	return imaging.Clone(img)
}

// hasAlpha reports whether the raster carries an alpha channel. The check
// is on the pixel layout, not on pixel content: a fully opaque NRGBA image
// still counts.
func hasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64, *image.RGBA, *image.RGBA64, *image.NYCbCrA:
		return true
	}
	return false
}
