package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"splashshine/models"
	"splashshine/services/pricing"
)

// Kind selects which document to render.
type Kind string

const (
	KindInvoice   Kind = "invoice"
	KindQuotation Kind = "quotation"
)

// Service renders invoices and quotations from booking and payment records.
type Service struct {
	Gotenberg *GotenbergClient
}

// NewService constructs a document service.
func NewService(gotenberg *GotenbergClient) *Service {
	return &Service{Gotenberg: gotenberg}
}

// Build assembles the template data for a booking. The settlement lines are
// always derived through the splitter from the booking's GST-inclusive total,
// never copied from another rendering.
func Build(kind Kind, b *models.Booking, p *models.Payment) models.DocumentData {
	now := time.Now()

	prefix := "INV"
	if kind == KindQuotation {
		prefix = "QUO"
	}
	shortID := strings.ToUpper(strings.ReplaceAll(b.ID, "-", ""))
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	data := models.DocumentData{
		DocumentNo:   fmt.Sprintf("%s%s%04d", prefix, shortID, now.Unix()%10000),
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Mobile:       b.Mobile,
		Address:      b.Address,
		Service:      b.ServiceDescription(),
		BookingDate:  b.BookingDate,
		Hours:        b.Hours,
		IssuedAt:     now,
		Settlement:   pricing.Split(b.TotalPrice).Lines(),
	}
	if p != nil && kind == KindInvoice {
		data.Method = p.Method
	}
	return data
}

// RenderHTML renders a document to HTML.
func (s *Service) RenderHTML(kind Kind, data models.DocumentData) (string, error) {
	tmpl := invoiceTemplate
	if kind == KindQuotation {
		tmpl = quotationTemplate
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", kind, err)
	}
	return buf.String(), nil
}

// RenderPDF renders a document to PDF via Gotenberg.
func (s *Service) RenderPDF(ctx context.Context, kind Kind, data models.DocumentData) ([]byte, error) {
	html, err := s.RenderHTML(kind, data)
	if err != nil {
		return nil, err
	}
	if s.Gotenberg == nil {
		return nil, fmt.Errorf("pdf rendering is not configured")
	}
	return s.Gotenberg.RenderHTML(ctx, html)
}
