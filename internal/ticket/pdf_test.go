package ticket

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/travelgo-server/internal/model"
)

func TestPDF_Render(t *testing.T) {
	doc, err := NewPDF().Render(model.Booking{
		ID:         "42",
		OwnerEmail: "a@x.com",
		Service:    "BusX",
		Time:       "10:00",
		Price:      "$5",
		Status:     model.BookingStatusConfirmed,
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Contains(t, string(doc), "%%EOF")
}

func TestPDF_RenderNonASCII(t *testing.T) {
	doc, err := NewPDF().Render(model.Booking{ID: "1", OwnerEmail: "zoë@x.com", Service: "Hôtel Étoile", Time: "Check-in: 12:00 PM"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestKeyAndPayload(t *testing.T) {
	assert.Equal(t, "tickets/42-confirmed.pdf", Key(model.Booking{ID: "42"}))
	assert.Equal(t, "tickets/42-cancelled.pdf", Key(model.Booking{ID: "42", Status: model.BookingStatusCancelled}))
	assert.Equal(t, "42|a@x.com", QRPayload(model.Booking{ID: "42", OwnerEmail: "a@x.com"}))
}
