// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package ticketdoc

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrImageSize is the pixel size of the PNG embedded in the PDF.
const qrImageSize = 256

// PNRQRImage encodes a PNR code as a QR PNG for embedding.
func PNRQRImage(pnrCode string) ([]byte, error) {
	if pnrCode == "" {
		return nil, fmt.Errorf("ticketdoc: PNR code is empty")
	}
	image, err := qrcode.Encode(pnrCode, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("ticketdoc: encoding PNR QR: %w", err)
	}
	return image, nil
}

// PNRQRTerminal renders a PNR code as a QR block of half-height
// characters suitable for printing to a terminal.
func PNRQRTerminal(pnrCode string) (string, error) {
	if pnrCode == "" {
		return "", fmt.Errorf("ticketdoc: PNR code is empty")
	}
	code, err := qrcode.New(pnrCode, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("ticketdoc: encoding PNR QR: %w", err)
	}
	return code.ToSmallString(false), nil
}
