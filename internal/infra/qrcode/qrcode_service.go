// Package qrcode renders share QR codes for crop listing pages.
package qrcode

import (
	"fmt"
	"strings"

	"dailyfarm/internal/domain/service"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// qrCodeService implements service.QRCodeService with skip2/go-qrcode.
type qrCodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService is the constructor for qrCodeService.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrCodeService{
		size:    size,
		level:   parseRecoveryLevel(errorCorrectionLevel),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateCropQR renders a PNG QR code pointing at the crop's public page.
func (s *qrCodeService) GenerateCropQR(cropID uuid.UUID) ([]byte, error) {
	url := fmt.Sprintf("%s/crops/%s", s.baseURL, cropID)

	return qrcode.Encode(url, s.level, s.size)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
