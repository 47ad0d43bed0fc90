package document

import "html/template"

// The invoice and quotation share one settlement block so the five lines can
// never drift apart between the two documents.
const settlementBlock = `
    <table class="settlement">
      <tr><td>Taxable Amount</td><td class="amt">Rs. {{printf "%.2f" .Settlement.TaxableAmount}}</td></tr>
      <tr><td>GST (18%)</td><td class="amt">Rs. {{printf "%.2f" .Settlement.GSTAmount}}</td></tr>
      <tr class="total"><td>TOTAL AMOUNT (Including GST)</td><td class="amt">Rs. {{printf "%.2f" .Settlement.TotalAmount}}</td></tr>
      <tr><td>Advance (50%)</td><td class="amt">Rs. {{printf "%.2f" .Settlement.AdvanceAmount}}</td></tr>
      <tr><td>Balance Due (50%)</td><td class="amt">Rs. {{printf "%.2f" .Settlement.DueAmount}}</td></tr>
    </table>
`

const documentStyle = `
  <style>
    body { font-family: Helvetica, Arial, sans-serif; color: #1f2937; margin: 40px; }
    h1 { text-align: center; letter-spacing: 2px; }
    .brand { text-align: center; font-size: 22px; font-weight: bold; color: #2563eb; }
    .meta td { padding: 2px 12px 2px 0; }
    .settlement { width: 100%; margin-top: 24px; border-collapse: collapse; }
    .settlement td { padding: 6px 4px; border-bottom: 1px solid #e5e7eb; }
    .settlement .amt { text-align: right; }
    .settlement .total td { font-weight: bold; border-top: 2px solid #1f2937; }
    .terms { margin-top: 32px; font-size: 12px; color: #6b7280; }
  </style>
`

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><title>Invoice {{.DocumentNo}}</title>` + documentStyle + `</head>
<body>
  <div class="brand">SPLASH SHINE</div>
  <h1>INVOICE</h1>
  <table class="meta">
    <tr><td>Invoice No:</td><td>{{.DocumentNo}}</td></tr>
    <tr><td>Booking ID:</td><td>{{.BookingID}}</td></tr>
    <tr><td>Date:</td><td>{{.IssuedAt.Format "02 Jan 2006"}}</td></tr>
    <tr><td>Customer:</td><td>{{.CustomerName}}</td></tr>
    <tr><td>Mobile:</td><td>{{.Mobile}}</td></tr>
    <tr><td>Address:</td><td>{{.Address}}</td></tr>
    <tr><td>Service:</td><td>{{.Service}}</td></tr>
    {{if .BookingDate}}<tr><td>Booking Date:</td><td>{{.BookingDate}}</td></tr>{{end}}
    <tr><td>Hours:</td><td>{{printf "%g" .Hours}}</td></tr>
    {{if .Method}}<tr><td>Method:</td><td>{{.Method}}</td></tr>{{end}}
  </table>
` + settlementBlock + `
  <div class="terms">
    <p>Advance paid covers 50% of the total; the balance is due on service completion.</p>
    <p>Thank you for choosing Splash Shine.</p>
  </div>
</body>
</html>
`))

var quotationTemplate = template.Must(template.New("quotation").Parse(`<!DOCTYPE html>
<html>
<head><title>Quotation {{.DocumentNo}}</title>` + documentStyle + `</head>
<body>
  <div class="brand">SPLASH SHINE</div>
  <h1>QUOTATION</h1>
  <table class="meta">
    <tr><td>Quotation No:</td><td>{{.DocumentNo}}</td></tr>
    <tr><td>Booking ID:</td><td>{{.BookingID}}</td></tr>
    <tr><td>Date:</td><td>{{.IssuedAt.Format "02 Jan 2006"}}</td></tr>
    <tr><td>Customer:</td><td>{{.CustomerName}}</td></tr>
    <tr><td>Mobile:</td><td>{{.Mobile}}</td></tr>
    <tr><td>Address:</td><td>{{.Address}}</td></tr>
    <tr><td>Service:</td><td>{{.Service}}</td></tr>
    {{if .BookingDate}}<tr><td>Booking Date:</td><td>{{.BookingDate}}</td></tr>{{end}}
    <tr><td>Hours:</td><td>{{printf "%g" .Hours}}</td></tr>
  </table>
` + settlementBlock + `
  <div class="terms">
    <p>&bull; This quotation is valid for 30 days from the date of issue</p>
    <p>&bull; 50% advance payment required, remaining 50% due on service completion</p>
    <p>&bull; All prices are inclusive of 18% GST</p>
  </div>
</body>
</html>
`))
