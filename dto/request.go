package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileRequired   = errors.New("file is required")
	ErrInvalidFileExt = errors.New("invalid file type. Please upload an Excel file (.xlsx or .xls)")
)

// AllowedExtensions lists the spreadsheet extensions accepted for upload.
var AllowedExtensions = []string{".xlsx", ".xls"}

// GenerateRequest represents an uploaded advance sheet
type GenerateRequest struct {
	File    *multipart.FileHeader `form:"file" binding:"required"`
	MaxSize int64                 `form:"-"`
}

// Validate checks the file is present, is a spreadsheet and fits the size limit
func (r *GenerateRequest) Validate() error {
	if r.File == nil || r.File.Filename == "" {
		return ErrFileRequired
	}

	ext := strings.ToLower(filepath.Ext(r.File.Filename))
	valid := false
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidFileExt
	}

	if r.MaxSize > 0 && r.File.Size > r.MaxSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", r.File.Size, r.MaxSize)
	}

	return nil
}
