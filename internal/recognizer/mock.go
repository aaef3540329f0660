package recognizer

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockRecognizer is a test implementation of the Recognizer interface.
// It allows tests to control the recognition results.
type MockRecognizer struct {
	mu         sync.Mutex
	categories []Category
	err        error
	calls      int
}

// NewMockRecognizer creates a new MockRecognizer instance.
func NewMockRecognizer() *MockRecognizer {
	return &MockRecognizer{}
}

// SetCategories sets the categories returned by Recognize.
func (m *MockRecognizer) SetCategories(categories ...Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = categories
}

// SetError sets the error returned by Recognize.
func (m *MockRecognizer) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Recognize has been invoked.
func (m *MockRecognizer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Recognize returns the pre-configured categories or error.
func (m *MockRecognizer) Recognize(frame *gocv.Mat) ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

// Close is a no-op for the mock recognizer.
func (m *MockRecognizer) Close() error {
	return nil
}
