package catalog

import (
	"path/filepath"
	"testing"

	"github.com/raykavin/vbtforge/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	c, err := New(
		core.IndicatorDescriptor{Library: core.Native, Name: "SMA", Category: "Moving Averages", ParamNames: []string{"window"}, Defaults: []any{20}},
		core.IndicatorDescriptor{Library: core.Native, Name: "OBV", Category: "Volume"},
		core.IndicatorDescriptor{Library: core.TALib, Name: "BBANDS", Category: "Overlap Studies",
			ParamNames: []string{"timeperiod", "nbdevup"}, Defaults: []any{5, 2.0}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, c.ExportXLSX(path, func(d core.IndicatorDescriptor) string {
		if d.Name == "OBV" {
			return "volume required"
		}
		return "ok"
	}))

	fx, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer fx.Close()

	assert.Equal(t, []string{"native", "talib"}, fx.GetSheetList())

	rows, err := fx.GetRows("native")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Category", "Parameters", "Defaults", "Status"}, rows[0])
	assert.Equal(t, []string{"SMA", "Moving Averages", "window", "20", "ok"}, rows[1])
	assert.Equal(t, "volume required", rows[2][4])

	rows, err = fx.GetRows("talib")
	require.NoError(t, err)
	assert.Equal(t, "timeperiod, nbdevup", rows[1][2])
	assert.Equal(t, "5, 2.0", rows[1][3])
}
