// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package ticketdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/rayliner-project/rayliner/lib/booking"
)

// TicketPDF renders a booking as an A4 e-ticket. Returns the PDF
// bytes and a suggested filename derived from the PNR.
func TicketPDF(ticket booking.Booking) ([]byte, string, error) {
	if ticket.PNRCode == "" {
		return nil, "", fmt.Errorf("ticketdoc: booking has no PNR code")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+ticket.PNRCode, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR        : %s", ticket.PNRCode),
		fmt.Sprintf("Passenger  : %s %s", orDash(ticket.PassengerName), orDash(ticket.PassengerSurname)),
		fmt.Sprintf("Trip       : %s", orDash(ticket.TripNumber)),
		fmt.Sprintf("Date       : %s", orDash(ticket.Date())),
		fmt.Sprintf("Wagon/Seat : %d / %d", ticket.WagonNo, ticket.SeatNo),
		fmt.Sprintf("Status     : %s", orDash(string(ticket.Status))),
		fmt.Sprintf("Price      : %.2f", ticket.TotalPrice),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	// QR in the top-right corner, clear of the text column.
	qrImage, err := PNRQRImage(ticket.PNRCode)
	if err != nil {
		return nil, "", err
	}
	options := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("pnr-qr", options, bytes.NewReader(qrImage))
	pdf.ImageOptions("pnr-qr", 155, 15, 40, 40, false, options, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6,
		"This e-ticket is valid for one passenger and one seat. "+
			"The PNR code retrieves the booking at any time without an account.",
		"", "", false)

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, "", fmt.Errorf("ticketdoc: writing PDF: %w", err)
	}

	filename := fmt.Sprintf("eticket_%s.pdf", strings.ToLower(ticket.PNRCode))
	return buffer.Bytes(), filename, nil
}

// orDash substitutes a dash for fields the server left empty, so the
// ticket layout stays aligned.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
