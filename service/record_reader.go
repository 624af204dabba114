package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/Aashish23092/cash-receipt-generator/utils"
)

// Advance sheet columns, 1-indexed.
const (
	colDate    = 1
	colRoute   = 2
	colDetails = 3
	colMarker  = 7
	colAmount  = 8
)

const (
	DefaultStartRow  = 4
	DefaultWebEndRow = 100
	DefaultCLIEndRow = 21
)

var (
	ErrNoValidData = errors.New("no valid data found in the uploaded file")
	errSkipRow     = errors.New("row skipped")
)

// placeholder rows that carry a date and amount but are not work orders
var skippedDetails = map[string]struct{}{
	"Local Purchase": {},
	"Total":          {},
}

// ReaderOptions bounds the rows scanned: StartRow inclusive, EndRow exclusive.
type ReaderOptions struct {
	StartRow int
	EndRow   int
}

func (o ReaderOptions) withDefaults() ReaderOptions {
	if o.StartRow <= 0 {
		o.StartRow = DefaultStartRow
	}
	if o.EndRow <= 0 {
		o.EndRow = DefaultWebEndRow
	}
	return o
}

type RecordReader interface {
	ReadRecords(r io.Reader, opts ReaderOptions) ([]dto.WorkRecord, error)
}

type excelRecordReader struct {
	logger *zap.Logger
}

func NewRecordReader(logger *zap.Logger) RecordReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &excelRecordReader{logger: logger}
}

// ReadRecords opens the workbook, picks the advance sheet and returns the
// accepted rows in sheet order.
func (x *excelRecordReader) ReadRecords(r io.Reader, opts ReaderOptions) ([]dto.WorkRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	opts = opts.withDefaults()
	sheet := SelectSheet(f.GetSheetList())
	if sheet == "" {
		return nil, ErrNoValidData
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var records []dto.WorkRecord
	for rowNum := opts.StartRow; rowNum < opts.EndRow && rowNum <= len(rows); rowNum++ {
		rec, err := parseRow(rows[rowNum-1], rowNum, date1904)
		if err != nil {
			x.logger.Debug("skipping row", zap.Int("row", rowNum), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	x.logger.Info("records read",
		zap.String("sheet", sheet),
		zap.Int("records", len(records)),
	)

	if len(records) == 0 {
		return nil, ErrNoValidData
	}
	return records, nil
}

// SelectSheet returns the first sheet whose name contains both "ty" and "adv",
// falling back to the first sheet.
func SelectSheet(names []string) string {
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "ty") && strings.Contains(lower, "adv") {
			return name
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

func parseRow(row []string, rowNum int, date1904 bool) (dto.WorkRecord, error) {
	rawDate := cellAt(row, colDate)
	rawAmount := cellAt(row, colAmount)
	details := cellAt(row, colDetails)

	if rawDate == "" || rawAmount == "" {
		return dto.WorkRecord{}, fmt.Errorf("%w: missing date or amount", errSkipRow)
	}
	if details == "" {
		return dto.WorkRecord{}, fmt.Errorf("%w: missing work details", errSkipRow)
	}
	if _, placeholder := skippedDetails[details]; placeholder {
		return dto.WorkRecord{}, fmt.Errorf("%w: %q row", errSkipRow, details)
	}

	date, err := parseDateCell(rawDate, date1904)
	if err != nil {
		return dto.WorkRecord{}, fmt.Errorf("%w: date %q: %v", errSkipRow, rawDate, err)
	}

	amount, err := parseAmountCell(rawAmount)
	if err != nil {
		return dto.WorkRecord{}, fmt.Errorf("%w: amount %q: %v", errSkipRow, rawAmount, err)
	}

	return dto.WorkRecord{
		Date:        date,
		Route:       cellAt(row, colRoute),
		WorkDetails: details,
		WorkType:    utils.ClassifyWorkType(cellAt(row, colMarker)),
		Amount:      amount,
		SourceRow:   rowNum,
	}, nil
}

func cellAt(row []string, col int) string {
	if col-1 < len(row) {
		return strings.TrimSpace(row[col-1])
	}
	return ""
}

// parseDateCell accepts a native date cell (stored as a serial number) as is and
// otherwise parses the text.
func parseDateCell(raw string, date1904 bool) (time.Time, error) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, err
		}
		return utils.TruncateDay(t), nil
	}
	return utils.ParseRecordDate(raw)
}

// parseAmountCell truncates the amount to whole rupees.
func parseAmountCell(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return 0, err
	}
	amount := d.IntPart()
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %d", amount)
	}
	return amount, nil
}
