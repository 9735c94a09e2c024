// Package webpconv converts WebP images into PNG and JPEG files. A PNG is
// written as-is (alpha survives); for the JPEG, transparency is composited
// onto a white background first.
package webpconv

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/webp"
)

const (
	DefaultInputDir  = "inputs"
	DefaultOutputDir = "outputs"

	// DefaultQuality is the JPEG quality used when none is configured.
	// The CLI defaults to the same value.
	DefaultQuality = 85
)

type Option func(c *Converter)

// WithInputDir sets the directory the input file is looked up in.
func WithInputDir(dir string) Option {
	return func(c *Converter) {
		c.inputDir = dir
	}
}

// WithOutputDir sets the directory outputs are written to. It is created
// on demand.
func WithOutputDir(dir string) Option {
	return func(c *Converter) {
		c.outputDir = dir
	}
}

// WithQuality sets the JPEG quality. Values are trusted as-is; callers
// validate the 1-100 range.
func WithQuality(quality int) Option {
	return func(c *Converter) {
		c.quality = quality
	}
}

// WithFit scales the decoded image down (never up) to fit within
// width x height pixels, preserving aspect ratio, before either encode.
func WithFit(width, height uint) Option {
	return func(c *Converter) {
		c.fitWidth = width
		c.fitHeight = height
	}
}

// Converter turns one WebP file from the input directory into sibling
// .png and .jpg files in the output directory. It holds no state across
// calls and is safe to use from multiple goroutines on distinct files.
type Converter struct {
	inputDir  string
	outputDir string
	quality   int
	fitWidth  uint
	fitHeight uint
}

func NewConverter(opts ...Option) *Converter {
	conv := Converter{
		inputDir:  DefaultInputDir,
		outputDir: DefaultOutputDir,
		quality:   DefaultQuality,
	}
	for _, opt := range opts {
		opt(&conv)
	}
	return &conv
}

// Outcome reports the result of the two independent encode attempts along
// with the paths they targeted.
type Outcome struct {
	PNGPath  string
	JPEGPath string
	PNGErr   error
	JPEGErr  error
}

func (o Outcome) PNGOK() bool  { return o.PNGErr == nil }
func (o Outcome) JPEGOK() bool { return o.JPEGErr == nil }

/*
Convert locates <inputDir>/<baseFilename>, decodes it as WebP and writes
<outputDir>/<stem>.png and <outputDir>/<stem>.jpg, where stem is
baseFilename with a trailing ".webp" removed. The raw baseFilename is used
for the lookup, so "photo.webp" and "photo" name the same outputs but only
the former matches a conventionally named input file.

A missing input, an unreadable or undecodable file, or a failure creating
the output directory is fatal: Convert returns a *StepError and writes
nothing. Failures encoding or writing one output format are not fatal; they
are recorded on the returned Outcome and the other format is still
attempted.
*/
func (c *Converter) Convert(baseFilename string) (Outcome, error) {
	inputPath := filepath.Join(c.inputDir, baseFilename)
	stem := strings.TrimSuffix(baseFilename, ".webp")

	fi, err := os.Stat(inputPath)
	if err != nil || !fi.Mode().IsRegular() {
		return Outcome{}, &StepError{Step: StepLookup, Path: inputPath, Err: ErrInputNotFound}
	}

	// MkdirAll tolerates concurrent creation of the same directory.
	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return Outcome{}, &StepError{Step: StepOutputDir, Path: c.outputDir, Err: err}
	}

	img, err := decodeFile(inputPath)
	if err != nil {
		return Outcome{}, &StepError{Step: StepDecode, Path: inputPath, Err: err}
	}

	if c.fitWidth > 0 && c.fitHeight > 0 {
		img = resize.Thumbnail(c.fitWidth, c.fitHeight, img, resize.Lanczos3)
	}

	out := Outcome{
		PNGPath:  filepath.Join(c.outputDir, stem+".png"),
		JPEGPath: filepath.Join(c.outputDir, stem+".jpg"),
	}

	// PNG keeps the decoded image untouched, alpha included.
	if err := imaging.Save(img, out.PNGPath); err != nil {
		out.PNGErr = &StepError{Step: StepEncodePNG, Path: out.PNGPath, Err: err}
	}

	if err := imaging.Save(jpegSource(img), out.JPEGPath, imaging.JPEGQuality(c.quality)); err != nil {
		out.JPEGErr = &StepError{Step: StepEncodeJPEG, Path: out.JPEGPath, Err: err}
	}

	return out, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return webp.Decode(f)
}
