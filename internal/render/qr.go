package render

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// VerificationQRPNG returns PNG bytes of a QR code for the given text.
func VerificationQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// VerificationQR returns a QR image for stamping onto a certificate.
func VerificationQR(text string, size int) (image.Image, error) {
	b, err := VerificationQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}
