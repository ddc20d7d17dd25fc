package qr

import qrcode "github.com/skip2/go-qrcode"

// PNG renders content as a QR PNG of size×size pixels.
func PNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
