package utils

import "github.com/skip2/go-qrcode"

// GenerateQRCode renders content as a size×size PNG and returns the bytes.
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
