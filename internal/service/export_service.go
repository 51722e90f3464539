package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ExportFilename    = "donations.xlsx"

	exportSheet      = "تبرعات"
	exportDateLayout = "2006/01/02"
)

var exportHeader = []any{
	"ID", "الاسم الكامل", "الهاتف", "المنطقة", "الحي", "الفئة", "الحالة", "تاريخ الإنشاء",
}

// Cosmetic hints only, one width per column A..H.
var exportColWidths = []float64{5, 20, 15, 15, 15, 20, 15, 15}

// ExportService materializes the full record set into a single-sheet xlsx
// workbook. The whole set is built in memory; there is no volume bound in
// this design, which is a known scaling limit.
type ExportService struct {
	donations *DonationService
}

func NewExportService(donations *DonationService) *ExportService {
	return &ExportService{donations: donations}
}

func (s *ExportService) ExportAll(ctx context.Context) ([]byte, error) {
	list, err := s.donations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for i, w := range exportColWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(exportSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, d := range list {
		row := []any{
			d.ID, d.FullName, d.Phone, d.Region, d.District,
			d.Category, d.Status, d.CreatedAt.Format(exportDateLayout),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
