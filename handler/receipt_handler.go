package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/Aashish23092/cash-receipt-generator/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	store          *service.ResultStore
	readerOpts     service.ReaderOptions
	maxUploadSize  int64
	logger         *zap.Logger
}

func NewReceiptHandler(
	receiptService *service.ReceiptService,
	store *service.ResultStore,
	readerOpts service.ReaderOptions,
	maxUploadSize int64,
	logger *zap.Logger,
) *ReceiptHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptHandler{
		receiptService: receiptService,
		store:          store,
		readerOpts:     readerOpts,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

// Generate handles POST /receipts/generate
func (h *ReceiptHandler) Generate(c *gin.Context) {
	if h.maxUploadSize > 0 {
		if c.Request.ContentLength > h.maxUploadSize {
			h.sendError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", tooLargeMessage(h.maxUploadSize), nil)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.sendError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", tooLargeMessage(h.maxUploadSize), nil)
			return
		}
		h.sendError(c, http.StatusBadRequest, "FILE_REQUIRED", dto.ErrFileRequired.Error(), err)
		return
	}

	request := &dto.GenerateRequest{File: header, MaxSize: h.maxUploadSize}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_FILE", err.Error(), nil)
		return
	}

	h.logger.Info("generating receipts",
		zap.String("file", header.Filename),
		zap.Int64("size", header.Size),
	)

	src, err := header.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "RECEIPT_GENERATION_FAILED", "Failed to generate receipts", err)
		return
	}
	defer src.Close()

	// a nil Rand gives every request its own time seeded source
	result, err := h.receiptService.Generate(c.Request.Context(), src, service.GenerateOptions{Reader: h.readerOpts})
	if err != nil {
		if errors.Is(err, service.ErrNoValidData) {
			h.sendError(c, http.StatusUnprocessableEntity, "NO_VALID_DATA", service.ErrNoValidData.Error(), nil)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "RECEIPT_GENERATION_FAILED", "Failed to generate receipts", err)
		return
	}

	gen, err := h.store.Save(header.Filename, result)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "RECEIPT_GENERATION_FAILED", "Failed to generate receipts", err)
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateResponse{
		GenerationResult: gen,
		DownloadURL:      fmt.Sprintf("/api/v1/receipts/%s/download/%s", gen.ID, gen.Filename),
	})
}

// Preview handles GET /receipts/:id/preview
func (h *ReceiptHandler) Preview(c *gin.Context) {
	gen, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.sendError(c, http.StatusNotFound, "NOT_FOUND", "Result not found", nil)
		return
	}
	c.JSON(http.StatusOK, gen)
}

// Download handles GET /receipts/:id/download/:filename
func (h *ReceiptHandler) Download(c *gin.Context) {
	filename := c.Param("filename")
	path, err := h.store.DownloadPath(c.Param("id"), filename)
	switch {
	case errors.Is(err, service.ErrInvalidDownload):
		h.sendError(c, http.StatusBadRequest, "INVALID_DOWNLOAD", "Invalid download request", nil)
		return
	case err != nil:
		h.sendError(c, http.StatusNotFound, "NOT_FOUND", "File not found", nil)
		return
	}

	if _, err := os.Stat(path); err != nil {
		h.sendError(c, http.StatusNotFound, "NOT_FOUND", "File not found", err)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.FileAttachment(path, filename)
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("File too large. Maximum upload size is %d MB", limit>>20)
}

// sendError sends a structured error response; err is logged, never returned
// to the client.
func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	if err != nil {
		h.logger.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}
