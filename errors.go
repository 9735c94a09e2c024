package webpconv

import (
	"errors"
	"fmt"
)

// ErrInputNotFound reports that no regular file exists at the computed
// input path.
var ErrInputNotFound = errors.New("input file not found")

// Step identifies the stage of a conversion an error belongs to.
type Step int

const (
	StepLookup Step = iota + 1
	StepOutputDir
	StepDecode
	StepEncodePNG
	StepEncodeJPEG
)

func (s Step) String() string {
	switch s {
	case StepLookup:
		return "lookup"
	case StepOutputDir:
		return "create output dir"
	case StepDecode:
		return "decode"
	case StepEncodePNG:
		return "encode png"
	case StepEncodeJPEG:
		return "encode jpeg"
	default:
		return "unknown"
	}
}

// StepError couples an underlying error with the conversion step that
// produced it and the file path involved.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
