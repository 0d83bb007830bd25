package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/aurumworks/goldleaf/internal/domain"
)

// handleExportInventory streams the full product catalog as an XLSX workbook.
func (s *Server) handleExportInventory(w http.ResponseWriter, r *http.Request) {
	products, _, err := s.catalog.ListProducts(r.Context(), domain.ProductFilter{Page: 1, PageSize: 10000})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Barcode", "Name", "Category", "Supplier", "Price", "Cost Price",
		"Quantity", "Material", "Metal", "Purity", "Stone", "Stone Count",
		"Carat", "Weight (g)", "Size",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, p := range products {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		supplier := ""
		if p.Supplier != nil {
			supplier = p.Supplier.Name
		}
		values := []any{
			p.Barcode, p.Name, category, supplier,
			p.Price.StringFixed(2), p.CostPrice.StringFixed(2),
			p.Quantity, p.Material, p.MetalType, p.Purity,
			p.StoneType, p.StoneCount, p.StoneCarat.StringFixed(2),
			p.Weight.StringFixed(3), p.Size,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("export inventory")
	}
}
