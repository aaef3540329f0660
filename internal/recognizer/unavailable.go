package recognizer

import (
	"fmt"

	"gocv.io/x/gocv"
)

// unavailableRecognizer stands in for a model that failed to load.
type unavailableRecognizer struct {
	err error
}

// Unavailable returns a Recognizer whose every Recognize call fails with err.
// It keeps the rest of the service up while frames report the startup failure.
func Unavailable(err error) Recognizer {
	return &unavailableRecognizer{err: fmt.Errorf("gesture model unavailable: %w", err)}
}

func (u *unavailableRecognizer) Recognize(frame *gocv.Mat) ([]Category, error) {
	return nil, u.err
}

func (u *unavailableRecognizer) Close() error {
	return nil
}
