package utils

import (
	"errors"
	"strings"
	"time"
)

// ReceiptDateLayout is the DD-MM-YYYY layout printed on receipts.
const ReceiptDateLayout = "02-01-2006"

var ErrUnparseableDate = errors.New("unknown date format")

var recordDateFormats = []string{"2006-01-02 15:04:05", "2006-01-02"}

// ParseRecordDate parses a date typed as text into the sheet, returning
// midnight UTC of that day.
func ParseRecordDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, format := range recordDateFormats {
		if t, err := time.ParseInLocation(format, raw, time.UTC); err == nil {
			return TruncateDay(t), nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}

// TruncateDay drops the time of day, keeping the calendar date in UTC.
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatReceiptDate renders a date as DD-MM-YYYY.
func FormatReceiptDate(t time.Time) string {
	return t.Format(ReceiptDateLayout)
}
