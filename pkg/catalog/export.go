package catalog

import (
	"fmt"
	"strings"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Name", "Category", "Parameters", "Defaults", "Status"}

// ExportXLSX writes the catalog to a workbook with one sheet per library.
// status, when set, fills the Status column, e.g. with a skip reason.
func (c *Catalog) ExportXLSX(path string, status func(core.IndicatorDescriptor) string) error {
	fx := excelize.NewFile()
	defer fx.Close()

	headStyle, err := fx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	grouped := c.All()
	first := true
	for _, library := range core.Libraries() {
		descriptors := grouped[library]
		if len(descriptors) == 0 {
			continue
		}

		sheet := string(library)
		if first {
			if err := fx.SetSheetName(fx.GetSheetName(0), sheet); err != nil {
				return err
			}
			first = false
		} else if _, err := fx.NewSheet(sheet); err != nil {
			return err
		}

		for i, h := range exportHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			fx.SetCellValue(sheet, cell, h)
			fx.SetCellStyle(sheet, cell, cell, headStyle)
		}

		for row, d := range descriptors {
			defaults := make([]string, len(d.Defaults))
			for i, v := range d.Defaults {
				defaults[i] = core.FormatValue(v)
			}
			values := []any{d.Name, d.Category, strings.Join(d.ParamNames, ", "), strings.Join(defaults, ", "), ""}
			if status != nil {
				values[4] = status(d)
			}
			cell, _ := excelize.CoordinatesToCellName(1, row+2)
			if err := fx.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("write %s row %d: %w", sheet, row+2, err)
			}
		}
	}

	return fx.SaveAs(path)
}
