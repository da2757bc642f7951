package infra

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateBillPDF renders a vendor bill as a one-page PDF and returns the
// raw bytes. Layout mirrors a plain invoice: header, vendor block, amount
// table, status line.
func GenerateBillPDF(b *model.Bill, vendorName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Bill %s", b.BillNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Bill %s", b.BillNumber))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Vendor: %s", vendorName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issued: %s", b.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Due: %s", b.DueDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(95, 8, "Amount", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 8, b.Amount.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	status := b.Status
	if b.IsOverdue(time.Now()) {
		status = "overdue"
	}
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("bill pdf: %w", err)
	}
	return buf.Bytes(), nil
}
