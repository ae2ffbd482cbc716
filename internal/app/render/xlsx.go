package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"speechbench/internal/app/compare"
)

// MatrixSheetName is the worksheet holding the exported comparison
const MatrixSheetName = "Comparison"

var matrixColumns = []string{
	"ID", "Provider", "Type", "Pricing", "Quality", "Speed", "Languages", "Key Features", "Website",
}

// MatrixWorkbook lays the comparison out as a spreadsheet, one provider per row
func MatrixWorkbook(m compare.Matrix) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(MatrixSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, name := range matrixColumns {
		headerRow.AddCell().Value = name
	}

	for _, r := range m.Rows {
		row := sheet.AddRow()
		row.AddCell().Value = r.ProviderID
		row.AddCell().Value = r.Name
		row.AddCell().Value = r.Modality
		row.AddCell().Value = strings.Join(r.Tiers, "\n")
		row.AddCell().SetFloat(r.Quality)
		row.AddCell().SetFloat(r.Speed)
		row.AddCell().SetInt(r.LanguageCount)
		row.AddCell().Value = strings.Join(r.Features, ", ")
		row.AddCell().Value = r.Website
	}

	return file, nil
}

// ExportMatrix writes the comparison workbook to w
func ExportMatrix(w io.Writer, m compare.Matrix) error {
	file, err := MatrixWorkbook(m)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveMatrix writes the comparison workbook to path
func SaveMatrix(path string, m compare.Matrix) error {
	file, err := MatrixWorkbook(m)
	if err != nil {
		return err
	}
	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
