// Package gesture maps raw model output to the phrases shown to users.
package gesture

import "github.com/ayusman/samvaad/internal/phrase"

// DefaultLabels maps MediaPipe's canned gesture categories to phrases.
var DefaultLabels = map[string]phrase.Label{
	"Thumb_Up":    "Yes",
	"Thumb_Down":  "No",
	"Open_Palm":   "Hello",
	"Closed_Fist": "Thank you",
	"Victory":     "Good job",
}
