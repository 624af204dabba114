package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/cash-receipt-generator/service"
)

func writeAdvanceSheet(t *testing.T, path string, rows int) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := "TY Adv Appl"
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))

	date := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, service.DefaultStartRow+i)
		require.NoError(t, err)
		row := []any{date, "Tumkur Gubbi", "cable cut", nil, nil, nil, "Pits", 1000 + i}
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func receiptCount(t *testing.T, path string) int {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(service.SheetName)
	require.NoError(t, err)
	n := 0
	for _, row := range rows {
		if len(row) > 0 && row[0] == "CASH RECEIPT" {
			n++
		}
	}
	return n
}

func TestRunGenerate_DefaultOutputAndEndRow(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Dec -25.xlsx")
	writeAdvanceSheet(t, input, 30)

	var out bytes.Buffer
	opts := &generateOptions{endRow: service.DefaultCLIEndRow, seed: 1}
	require.NoError(t, runGenerate(context.Background(), input, opts, false, &out))

	output := filepath.Join(dir, "Dec -25_cash_receipt.xlsx")
	require.FileExists(t, output)
	// rows 4 through 20
	assert.Equal(t, 17, receiptCount(t, output))
	assert.Contains(t, out.String(), "Generated 17 cash receipts")
}

func TestRunGenerate_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "advances.xlsx")
	writeAdvanceSheet(t, input, 10)

	configPath := filepath.Join(dir, "receipts.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("end_row: 6\n"), 0o644))

	output := filepath.Join(dir, "out.xlsx")
	opts := &generateOptions{output: output, configPath: configPath, endRow: service.DefaultCLIEndRow, seed: 1}
	require.NoError(t, runGenerate(context.Background(), input, opts, false, &bytes.Buffer{}))
	assert.Equal(t, 2, receiptCount(t, output))

	opts.endRow = 9
	require.NoError(t, runGenerate(context.Background(), input, opts, true, &bytes.Buffer{}))
	assert.Equal(t, 5, receiptCount(t, output))
}

func TestRunGenerate_MissingInput(t *testing.T) {
	opts := &generateOptions{endRow: service.DefaultCLIEndRow}
	err := runGenerate(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"), opts, false, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestDefaultOutput(t *testing.T) {
	assert.Equal(t, "Dec -25_cash_receipt.xlsx", defaultOutput("Dec -25.xlsx"))
	assert.Equal(t, "in/Nov_cash_receipt.xlsx", defaultOutput("in/Nov.xls"))
}
