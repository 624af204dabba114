package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// PreviewEntry is one generated receipt as shown before download
type PreviewEntry struct {
	VoucherNo   int    `json:"voucher_no"`
	Date        string `json:"date"` // DD-MM-YYYY
	WorkType    string `json:"work_type"`
	Contractor  string `json:"contractor"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	AmountWords string `json:"amount_words"`
	Route       string `json:"route"`
}

// GenerationResult is what the server remembers about one conversion run
type GenerationResult struct {
	ID               string         `json:"id"`
	Filename         string         `json:"filename"`
	OriginalFilename string         `json:"original_filename"`
	ReceiptsCount    int            `json:"receipts_count"`
	Preview          []PreviewEntry `json:"preview"`
	CreatedAt        time.Time      `json:"created_at"`
}

// GenerateResponse is returned after a successful upload
type GenerateResponse struct {
	GenerationResult
	DownloadURL string `json:"download_url"`
}
