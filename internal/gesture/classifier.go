package gesture

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayusman/samvaad/internal/phrase"
	"github.com/ayusman/samvaad/internal/recognizer"
)

// ErrClassify is returned when the underlying model fails on a frame.
var ErrClassify = errors.New("classify gesture")

// Classifier turns frames into gesture labels using a Recognizer and a remap table.
type Classifier struct {
	recognizer recognizer.Recognizer
	labels     map[string]phrase.Label
}

// NewClassifier creates a Classifier. A nil labels map uses DefaultLabels.
func NewClassifier(r recognizer.Recognizer, labels map[string]phrase.Label) *Classifier {
	if labels == nil {
		labels = DefaultLabels
	}
	return &Classifier{
		recognizer: r,
		labels:     labels,
	}
}

// Classify runs the model once and returns the label for its top candidate.
// phrase.NoGesture is returned when the model reports no candidates. Raw category
// names missing from the remap table are returned unchanged.
func (c *Classifier) Classify(frame *gocv.Mat) (phrase.Label, error) {
	categories, err := c.recognizer.Recognize(frame)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClassify, err)
	}
	if len(categories) == 0 {
		return phrase.NoGesture, nil
	}
	return c.Remap(categories[0].Name), nil
}

// Remap returns the friendly phrase for a raw category name.
func (c *Classifier) Remap(raw string) phrase.Label {
	if friendly, ok := c.labels[raw]; ok {
		return friendly
	}
	return raw
}
