// Package recognizer wraps the pre-trained hand gesture model behind a small interface.
package recognizer

import "gocv.io/x/gocv"

// Category is a single gesture class returned by the model.
type Category struct {
	Name  string  `json:"category"`
	Score float64 `json:"score"`
}

// Recognizer runs the gesture model on a frame.
type Recognizer interface {
	// Recognize returns the candidate gestures for an RGB frame, best first.
	// An empty slice means no gesture was found.
	Recognize(frame *gocv.Mat) ([]Category, error)

	// Close releases any resources held by the recognizer.
	Close() error
}

// Config holds options for the MediaPipe recognizer.
type Config struct {
	// ModelPath is the gesture recognizer .task asset loaded once at startup.
	ModelPath string

	// ScriptPath overrides the location of gesture_service.py.
	ScriptPath string

	// Python overrides the interpreter used to run the worker.
	Python string
}

// DefaultConfig returns a Config pointing at the stock MediaPipe model file.
func DefaultConfig() Config {
	return Config{
		ModelPath: "gesture_recognizer.task",
	}
}
