// Package phrase defines the gesture label contract shared by the classifier
// and the sentence context.
package phrase

// Label identifies a recognized gesture, either a raw model category name
// or the friendly phrase it was remapped to.
type Label = string

// NoGesture is reported when the model finds no hand gesture in a frame.
// It is never translated or added to the sentence context.
const NoGesture Label = "No gesture"

// IsValid reports whether label names an actual gesture.
func IsValid(label Label) bool {
	return label != "" && label != NoGesture
}
