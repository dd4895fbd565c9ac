package sheet

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/image-inventory/internal/common"
	"github.com/joseph-ayodele/image-inventory/internal/thumbnail"
)

// SheetName is the single worksheet every inventory workbook carries.
const SheetName = "Inventory"

// Row is one inventory record. A nil Thumb marks a placeholder row whose
// Name already carries the error text.
type Row struct {
	Thumb *thumbnail.Asset
	Name  string
}

const (
	photoColWidth = 18
	nameColWidth  = 40
	minRowHeight  = 80
)

// Builder assembles the inventory workbook from ordered rows.
type Builder struct {
	thumbSize int
	logger    *slog.Logger
}

func NewBuilder(thumbSize int, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{thumbSize: thumbSize, logger: logger}
}

// Build returns a workbook with the header row plus exactly one data row
// per input row, in input order. The caller owns the file and must close it.
func (b *Builder) Build(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, common.WrapError(err, "name sheet")
	}

	headers := []string{"Photo", "Temporary Name"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, common.WrapError(err, "write header")
		}
	}

	// keep the header visible on scroll
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, common.WrapError(err, "freeze header")
	}

	if err := f.SetColWidth(SheetName, "A", "A", photoColWidth); err != nil {
		return nil, common.WrapError(err, "set photo column width")
	}
	if err := f.SetColWidth(SheetName, "B", "B", nameColWidth); err != nil {
		return nil, common.WrapError(err, "set name column width")
	}

	// Excel row height is in points; keep enough room for the thumbnail.
	height := float64(minRowHeight)
	if h := 0.75 * float64(b.thumbSize); h > height {
		height = h
	}

	rowIdx := 2
	for _, r := range rows {
		if err := f.SetRowHeight(SheetName, rowIdx, height); err != nil {
			return nil, common.WrapError(err, fmt.Sprintf("set row %d height", rowIdx))
		}
		if r.Thumb != nil {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			err := f.AddPictureFromBytes(SheetName, cell, &excelize.Picture{
				Extension: ".png",
				File:      r.Thumb.PNG,
				Format: &excelize.GraphicOptions{
					OffsetX: 2,
					OffsetY: 2,
				},
			})
			if err != nil {
				return nil, common.WrapError(err, fmt.Sprintf("embed thumbnail at row %d", rowIdx))
			}
		}
		nameCell, _ := excelize.CoordinatesToCellName(2, rowIdx)
		if err := f.SetCellValue(SheetName, nameCell, r.Name); err != nil {
			return nil, common.WrapError(err, fmt.Sprintf("write name at row %d", rowIdx))
		}
		rowIdx++
	}

	b.logger.Info("workbook assembled", "rows", len(rows))
	return f, nil
}
