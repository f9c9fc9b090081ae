package client

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/reboot-ai/crm-backend-go/internal/domain/client"
)

// RenderInvoicePDF implements client.ClientService. The layout mirrors the
// printable invoice the dashboard offers for download.
func (s *clientServiceImpl) RenderInvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	billTo, err := s.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.InvoiceNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Invoice No: "+inv.InvoiceNumber, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Issue Date: "+inv.IssueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	if inv.DueDate != nil {
		pdf.CellFormat(0, 6, "Due Date: "+inv.DueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, billTo.Name, "", 1, "L", false, 0, "")
	if billTo.ContactName != "" {
		pdf.CellFormat(0, 6, "Attn: "+billTo.ContactName, "", 1, "L", false, 0, "")
	}
	if billTo.Address != nil {
		pdf.CellFormat(0, 6, *billTo.Address, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, billTo.City, "", 1, "L", false, 0, "")
	if billTo.GSTIN != nil {
		pdf.CellFormat(0, 6, "GSTIN: "+*billTo.GSTIN, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Line item table
	colWidths := []float64{90, 25, 35, 40}
	headers := []string{"Description", "Qty", "Unit Price", "Amount"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(221, 235, 247)
	for i, h := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(colWidths[0], 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[2], 8, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 8, item.Amount().StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	summaryLabel := colWidths[0] + colWidths[1] + colWidths[2]
	pdf.CellFormat(summaryLabel, 8, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, inv.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(summaryLabel, 8, "Tax ("+inv.TaxPercent.StringFixed(2)+"%)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, inv.Total.Sub(inv.Subtotal).StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(summaryLabel, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidths[3], 8, inv.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Status: "+string(inv.Status), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := "invoice-" + inv.InvoiceNumber + ".pdf"
	return buf.Bytes(), filename, nil
}

var _ client.ClientService = (*clientServiceImpl)(nil)
