// Package capture turns client-supplied image payloads into frames for the recognizer.
package capture

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"gocv.io/x/gocv"
)

// ErrDecode is returned when an image payload cannot be turned into a frame.
var ErrDecode = errors.New("decode image")

// Decode converts a base64 image payload into an RGB frame mirrored
// horizontally, the layout the gesture model expects from a selfie camera.
// A data-URI header ("data:image/jpeg;base64,") is stripped if present.
// The caller is responsible for closing the returned Mat.
func Decode(payload string) (*gocv.Mat, error) {
	data, err := decodeBase64(payload)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes an encoded image (JPEG, PNG, ...) into a mirrored RGB frame.
func DecodeBytes(data []byte) (*gocv.Mat, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	bgr, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer bgr.Close()

	if bgr.Empty() {
		return nil, fmt.Errorf("%w: unsupported or corrupt image", ErrDecode)
	}

	mirrored := gocv.NewMat()
	defer mirrored.Close()
	gocv.Flip(bgr, &mirrored, 1)

	rgb := gocv.NewMat()
	gocv.CvtColor(mirrored, &rgb, gocv.ColorBGRToRGB)

	return &rgb, nil
}

// decodeBase64 strips an optional data-URI header and decodes the remainder.
func decodeBase64(payload string) ([]byte, error) {
	if i := strings.LastIndex(payload, ","); i >= 0 {
		payload = payload[i+1:]
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some browsers drop the padding.
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, fmt.Errorf("%w: invalid base64: %v", ErrDecode, err)
		}
		data = raw
	}
	return data, nil
}
