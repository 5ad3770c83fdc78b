package leads

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"planetholiday/models"
	"planetholiday/schema"
)

func siteURL() string {
	if u := os.Getenv("SITE_URL"); u != "" {
		return u
	}
	return "http://localhost:3000"
}

// WriteLeadPDF renders a one-page inquiry summary the sales team can
// print or attach. When the lead names a tour, a QR code linking to that
// tour's page is stamped in the corner.
func WriteLeadPDF(w io.Writer, lead models.BookingLead) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Inquiry")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	rows := []struct{ label, value string }{
		{"Lead ID", lead.ID},
		{"Received", lead.Timestamp.Format("2 Jan 2006 15:04")},
		{"Status", lead.Status},
		{"Name", lead.Name},
		{"Email", lead.Email},
		{"Phone", lead.Phone},
		{"Tour Interest", lead.TourInterest},
		{"Travel Dates", lead.TravelDates},
		{"Group Size", lead.GroupSize},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s", row.label, row.value))
		pdf.Ln(8)
	}

	if lead.Message != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Message")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, lead.Message, "", "L", false)
	}

	if lead.TourInterest != "" {
		tourURL := siteURL() + "/tours/" + url.PathEscape(schema.DeriveSlug(lead.TourInterest))
		if qrPNG, err := qrcode.Encode(tourURL, qrcode.Medium, 256); err == nil {
			imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("qr", 155, 15, 40, 40, false, imageOpts, 0, "")
		}
	}

	return pdf.Output(w)
}
