package service

import "github.com/google/uuid"

// QRCodeService generates share QR codes for crop listing pages.
type QRCodeService interface {
	// GenerateCropQR renders a PNG QR code pointing at the crop's public page.
	GenerateCropQR(cropID uuid.UUID) ([]byte, error)
}
