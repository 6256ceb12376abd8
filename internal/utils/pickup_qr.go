package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// GeneratePickupQR encodes the order id as a QR data URI ready for an
// <img src="...">. Partner stores scan it at pickup to match the order.
func GeneratePickupQR(orderID string) (string, error) {
	png, err := qrcode.Encode("ewh-order:"+orderID, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
