// Package ticket renders booking confirmation documents.
package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/dtroode/travelgo-server/internal/model"
)

const (
	ContentType = "application/pdf"
	qrSize      = 256
)

// Key is the object storage key of a booking's confirmation document.
// Status is part of the key so a cancelled booking gets a fresh document.
func Key(booking model.Booking) string {
	return "tickets/" + booking.ID + "-" + strings.ToLower(string(booking.Status.OrDefault())) + ".pdf"
}

// QRPayload is the string encoded in the ticket's QR code.
func QRPayload(booking model.Booking) string {
	return booking.ID + "|" + booking.OwnerEmail
}

var _ model.TicketRenderer = (*PDF)(nil)

type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (p *PDF) Render(booking model.Booking) ([]byte, error) {
	qrPNG, err := qrcode.Encode(QRPayload(booking), qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("TravelGo booking "+booking.ID, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "TravelGo Booking Confirmation")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	for _, line := range [][2]string{
		{"Booking ID", booking.ID},
		{"Passenger", booking.OwnerEmail},
		{"Service", booking.Service},
		{"Details", booking.Time},
		{"Date", booking.DisplayDate()},
		{"Price", booking.Price},
		{"Status", string(booking.Status.OrDefault())},
	} {
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", line[0], line[1])))
		pdf.Ln(8)
	}

	imageOpts := gofpdf.ImageOptions{
		ImageType: "PNG",
	}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 30, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return buf.Bytes(), nil
}
