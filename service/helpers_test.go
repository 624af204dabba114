package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sheetRow lays out the advance sheet columns: date, route, details, three
// unused columns, work type marker, amount.
func sheetRow(date any, route, details, marker string, amount any) []any {
	return []any{date, route, details, nil, nil, nil, marker, amount}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// buildWorkbook writes rows from row 4 onwards of the named sheet. Extra sheet
// names are created before it.
func buildWorkbook(t *testing.T, sheet string, rows [][]any, before ...string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	names := append(append([]string(nil), before...), sheet)
	require.NoError(t, f.SetSheetName(first, names[0]))
	for _, name := range names[1:] {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
	}

	require.NoError(t, f.SetCellValue(sheet, "A1", "TY Advance Application"))
	require.NoError(t, f.SetCellValue(sheet, "A3", "Date"))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, DefaultStartRow+i)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func sampleRows() [][]any {
	return [][]any{
		sheetRow(day(2025, 12, 1), "Tumkur Gubbi", "2 pits at OTDR Distance 1.50km from XYZ Exchange due to BESCOM work", "Pits", 4500),
		sheetRow(day(2025, 12, 1), "Tumkur Kora", "Laid 150 mtr OH cable at Kora village", "OH Cable", 3200.75),
		sheetRow(day(2025, 12, 1), "Tumkur Kora", "Span replaced", "OH Cable", nil),
		sheetRow("2025-12-02", "Tumkur Nittur", "Cable cut near NH48", "pit", "2,000"),
		sheetRow(day(2025, 12, 2), "", "Total", "", 9700),
	}
}
