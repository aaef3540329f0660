// Package history keeps the short-term gesture context used to compose sentences.
package history

import (
	"sync"

	"github.com/ayusman/samvaad/internal/phrase"
)

// DefaultCapacity is the number of recent gestures kept for sentence composition.
const DefaultCapacity = 5

// Buffer is a fixed-capacity FIFO of the most recent valid gesture labels.
// The oldest label is evicted when a new one would exceed the capacity.
// It is safe for concurrent use.
type Buffer struct {
	mu     sync.RWMutex
	labels []string
	start  int
	size   int
}

// New creates a Buffer holding at most capacity labels.
// A capacity less than 1 falls back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		labels: make([]string, capacity),
	}
}

// Append adds label to the buffer and reports whether it was stored.
// Empty labels and the "No gesture" sentinel are ignored.
func (b *Buffer) Append(label string) bool {
	if !phrase.IsValid(label) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.appendLocked(label)
	return true
}

// Push appends label and returns the resulting snapshot in a single step,
// so concurrent callers never observe a half-applied update.
// Invalid labels leave the buffer untouched.
func (b *Buffer) Push(label string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if phrase.IsValid(label) {
		b.appendLocked(label)
	}
	return b.snapshotLocked()
}

// Snapshot returns a copy of the buffered labels, oldest first.
func (b *Buffer) Snapshot() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshotLocked()
}

// Len returns the number of labels currently buffered.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.size
}

// Cap returns the maximum number of labels the buffer holds.
func (b *Buffer) Cap() int {
	return len(b.labels)
}

func (b *Buffer) appendLocked(label string) {
	capacity := len(b.labels)
	if b.size < capacity {
		b.labels[(b.start+b.size)%capacity] = label
		b.size++
		return
	}

	// Full: overwrite the oldest slot and advance the head.
	b.labels[b.start] = label
	b.start = (b.start + 1) % capacity
}

func (b *Buffer) snapshotLocked() []string {
	out := make([]string, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.labels[(b.start+i)%len(b.labels)]
	}
	return out
}
