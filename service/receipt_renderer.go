package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/Aashish23092/cash-receipt-generator/utils"
)

const (
	SheetName = "Cash Receipts"

	// BlockRows is the height of one receipt, SpacerRows the gap after it.
	BlockRows  = 12
	SpacerRows = 2

	descriptionRowHeight = 75
	dateNumFmt           = "dd-mm-yyyy"
)

const (
	DefaultPayer       = "SDE (Txn), Tumkur"
	DefaultAccountCode = "RM Cables / TMR/LABOUR/5020819"
)

var clauseLines = []string{
	"1. Labour Engaged is Justified",
	"2.Work is done satisfactorily",
	"3.Provision Exists in the estimate Maintainnace Grant",
}

// ReceiptLayout carries the office specific text printed on every receipt.
type ReceiptLayout struct {
	Payer       string
	AccountCode string
}

func (l ReceiptLayout) withDefaults() ReceiptLayout {
	if l.Payer == "" {
		l.Payer = DefaultPayer
	}
	if l.AccountCode == "" {
		l.AccountCode = DefaultAccountCode
	}
	return l
}

type rendererStyles struct {
	border      int
	title       int
	left        int
	right       int
	center      int
	date        int
	description int
}

// ReceiptRenderer lays out cash receipts one below the other on a single
// sheet. Voucher numbers start at 1 and grow by one per appended receipt.
type ReceiptRenderer struct {
	f       *excelize.File
	layout  ReceiptLayout
	styles  rendererStyles
	row     int
	voucher int
}

func NewReceiptRenderer(layout ReceiptLayout) (*ReceiptRenderer, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 15); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", "H", 12); err != nil {
		f.Close()
		return nil, err
	}

	styles, err := newRendererStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create styles: %w", err)
	}

	return &ReceiptRenderer{
		f:      f,
		layout: layout.withDefaults(),
		styles: styles,
		row:    1,
	}, nil
}

func newRendererStyles(f *excelize.File) (rendererStyles, error) {
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	align := func(h, v string, wrap bool) *excelize.Alignment {
		return &excelize.Alignment{Horizontal: h, Vertical: v, WrapText: wrap}
	}
	numFmt := dateNumFmt

	var s rendererStyles
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.border, &excelize.Style{Border: thin}},
		{&s.title, &excelize.Style{Border: thin, Font: &excelize.Font{Bold: true, Size: 14}, Alignment: align("center", "center", false)}},
		{&s.left, &excelize.Style{Border: thin, Alignment: align("left", "center", false)}},
		{&s.right, &excelize.Style{Border: thin, Alignment: align("right", "center", false)}},
		{&s.center, &excelize.Style{Border: thin, Alignment: align("center", "center", false)}},
		{&s.date, &excelize.Style{Border: thin, Alignment: align("left", "center", false), CustomNumFmt: &numFmt}},
		{&s.description, &excelize.Style{Border: thin, Alignment: align("left", "top", true)}},
	}
	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return s, err
		}
		*def.dst = id
	}
	return s, nil
}

// Append writes one receipt block and returns its voucher number.
func (r *ReceiptRenderer) Append(rec dto.WorkRecord, description, amountWords string) (int, error) {
	r.voucher++
	w := &sheetWriter{f: r.f, sheet: SheetName}
	row := r.row
	amount := rec.Amount

	// 1: title
	w.merge(row, "A", "H", "CASH RECEIPT", r.styles.title)
	row++

	// 2: date and voucher number
	w.set("A", row, "Date", r.styles.left)
	w.set("B", row, rec.Date.In(time.UTC), r.styles.date)
	w.merge(row, "C", "F", nil, r.styles.border)
	w.set("G", row, "Voucher No:", r.styles.right)
	w.set("H", row, r.voucher, r.styles.center)
	row++

	// 3: received from
	w.merge(row, "A", "H", fmt.Sprintf("Received from %s  Sum of Rupees %d/-", r.layout.Payer, amount), r.styles.left)
	row++

	// 4: description
	w.merge(row, "A", "H", description, r.styles.description)
	w.height(row, descriptionRowHeight)
	row++

	// 5: amount
	w.set("A", row, "RS", r.styles.left)
	w.merge(row, "B", "H", amount, r.styles.left)
	row++

	// 6: amount in words and signatures
	w.merge(row, "A", "D", fmt.Sprintf("Rupees %s only", amountWords), r.styles.center)
	w.merge(row, "E", "F", "Signature of Payee", r.styles.center)
	w.merge(row, "G", "H", "Signature of witness", r.styles.center)
	row++

	// 7-12: clauses, account code, passed and paid
	lines := append(append([]string(nil), clauseLines...),
		r.layout.AccountCode,
		fmt.Sprintf("Passed and Paid for Rs. %d/-", amount),
		fmt.Sprintf("(Rupees %s only)", utils.TitleWords(amountWords)),
	)
	for _, line := range lines {
		w.merge(row, "A", "H", line, r.styles.center)
		row++
	}

	if w.err != nil {
		r.voucher--
		return 0, fmt.Errorf("render voucher %d: %w", r.voucher+1, w.err)
	}

	r.row = row + SpacerRows
	return r.voucher, nil
}

// Count is the number of receipts rendered so far.
func (r *ReceiptRenderer) Count() int {
	return r.voucher
}

// Bytes serializes the workbook.
func (r *ReceiptRenderer) Bytes() ([]byte, error) {
	buf, err := r.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ReceiptRenderer) Close() error {
	return r.f.Close()
}

// sheetWriter keeps the first error so a block can be written without
// checking every call.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func axis(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func (w *sheetWriter) set(col string, row int, value any, style int) {
	if w.err != nil {
		return
	}
	cell := axis(col, row)
	if w.err = w.f.SetCellValue(w.sheet, cell, value); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *sheetWriter) merge(row int, from, to string, value any, style int) {
	if w.err != nil {
		return
	}
	start, end := axis(from, row), axis(to, row)
	if w.err = w.f.MergeCell(w.sheet, start, end); w.err != nil {
		return
	}
	if value != nil {
		if w.err = w.f.SetCellValue(w.sheet, start, value); w.err != nil {
			return
		}
	}
	w.err = w.f.SetCellStyle(w.sheet, start, end, style)
}

func (w *sheetWriter) height(row int, h float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetRowHeight(w.sheet, row, h)
}
