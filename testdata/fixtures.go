// Package testdata builds small deterministic images shared by tests.
package testdata

import (
	"encoding/base64"
	"fmt"

	"gocv.io/x/gocv"
)

// TwoPixelPNG returns a 1x2 PNG with a blue pixel on the left and a red
// pixel on the right. PNG is lossless, so decoded bytes are exact.
func TwoPixelPNG() ([]byte, error) {
	mat := gocv.NewMatWithSize(1, 2, gocv.MatTypeCV8UC3)
	defer mat.Close()

	// BGR order: blue, then red.
	pixels := []uint8{255, 0, 0, 0, 0, 255}
	for i, v := range pixels {
		mat.SetUCharAt(0, i, v)
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	return append([]byte(nil), buf.GetBytes()...), nil
}

// TwoPixelBase64 returns TwoPixelPNG as a data URI, the way browsers send it.
func TwoPixelBase64() (string, error) {
	data, err := TwoPixelPNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// BlankFrame returns an RGB frame of the given size filled with zeros.
// The caller is responsible for closing it.
func BlankFrame(rows, cols int) *gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3)
	return &mat
}
