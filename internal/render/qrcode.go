package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCodeImage returns a QR code image for the given payload, sized
// sizePx on a side. An empty payload returns (nil, nil) so callers can skip
// the overlay without a sentinel error.
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = QRSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}
