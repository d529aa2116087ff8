// Package qr derives a scannable code from a device's business key.
package qr

import (
	"encoding/base64"
	"errors"

	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type Generator struct {
	size int
}

func New() *Generator { return &Generator{size: defaultSize} }

// Generate encodes key as a QR PNG and returns it as a data URL.
// Deterministic for a given key, so resubmission after a failed request
// reproduces the same code.
func (g *Generator) Generate(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	png, err := qrcode.Encode(key, qrcode.Medium, g.size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
