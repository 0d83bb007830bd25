// Package pdf renders committed invoices as A4 PDF documents. The renderer
// only reads the aggregate it is given; it never mutates state.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/aurumworks/goldleaf/internal/domain"
)

type Renderer struct {
	CompanyName    string
	CompanyAddress string

	// taxHalfRate labels each CGST/SGST row with half the configured rate,
	// e.g. "1.5" for a 3% total. Empty when no rate is configured.
	taxHalfRate string
}

func NewRenderer(name, address, taxRatePct string) *Renderer {
	r := &Renderer{CompanyName: name, CompanyAddress: address}
	if rate, err := decimal.NewFromString(taxRatePct); err == nil && rate.IsPositive() {
		r.taxHalfRate = rate.Div(decimal.NewFromInt(2)).String()
	}
	return r
}

func (r *Renderer) taxLabel(component string) string {
	if r.taxHalfRate == "" {
		return component
	}
	return fmt.Sprintf("%s (%s%%)", component, r.taxHalfRate)
}

// Render produces the invoice document: company header, customer block,
// line table, totals with the CGST/SGST tax split, and the jewelry-specific
// notes (deposit, warranty, appraisal).
func (r *Renderer) Render(inv *domain.Invoice) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, r.CompanyName, "", 1, "C", false, 0, "")
	if r.CompanyAddress != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, r.CompanyAddress, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Invoice %s", inv.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Issued: "+inv.IssueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	if inv.DueDate != nil {
		pdf.CellFormat(contentW, 5, "Due: "+inv.DueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Status: "+string(inv.Status), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	if inv.Customer != nil {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Billed to", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, inv.Customer.Name, "", 1, "L", false, 0, "")
		if inv.Customer.Phone != "" {
			pdf.CellFormat(contentW, 5, inv.Customer.Phone, "", 1, "L", false, 0, "")
		}
		if inv.Customer.Address != "" {
			pdf.MultiCell(contentW, 5, inv.Customer.Address, "", "L", false)
		}
		pdf.Ln(3)
	}

	// Line table
	colDesc := contentW - 22 - 30 - 30
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colDesc, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(22, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range inv.Lines {
		pdf.CellFormat(colDesc, 7, lineDescription(line), "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, money(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, money(line.TotalPrice), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Totals block, tax shown as the CGST/SGST halves
	labelW := contentW - 30
	halfTax := inv.TaxAmount.Div(decimal.NewFromInt(2)).Round(2)
	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(labelW, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, value, "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal", money(inv.TotalAmount), false)
	totalRow(r.taxLabel("CGST"), money(halfTax), false)
	totalRow(r.taxLabel("SGST"), money(inv.TaxAmount.Sub(halfTax)), false)
	if inv.Discount.IsPositive() {
		totalRow("Discount", "-"+money(inv.Discount), false)
	}
	totalRow("Total", money(inv.FinalAmount), true)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	if inv.DepositAmount.IsPositive() {
		pdf.CellFormat(contentW, 5, "Deposit received: "+money(inv.DepositAmount), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "Balance due: "+money(inv.FinalAmount.Sub(inv.DepositAmount)), "", 1, "L", false, 0, "")
	}
	if inv.WarrantyPeriod > 0 {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Warranty: %d months", inv.WarrantyPeriod), "", 1, "L", false, 0, "")
	}
	if inv.AppraisalValue != nil {
		pdf.CellFormat(contentW, 5, "Appraisal value (insurance): "+money(*inv.AppraisalValue), "", 1, "L", false, 0, "")
	}
	if inv.EstimatedReadyDate != nil {
		pdf.CellFormat(contentW, 5, "Estimated ready: "+inv.EstimatedReadyDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	}
	if inv.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(contentW, 5, "Notes: "+inv.Notes, "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Thank you for your business.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

func lineDescription(line domain.InvoiceLine) string {
	if line.IsService {
		if line.Service != nil {
			return line.Service.Name + " (service)"
		}
		return "Service"
	}
	if line.Product != nil {
		return line.Product.Name
	}
	return "Item"
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
