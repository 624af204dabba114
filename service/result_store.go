package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aashish23092/cash-receipt-generator/dto"
)

var (
	ErrResultNotFound  = errors.New("result not found")
	ErrInvalidDownload = errors.New("invalid download request")
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ResultStore remembers generated workbooks by an opaque id. Workbooks are
// written to dir; entries older than ttl are dropped together with their file.
type ResultStore struct {
	mu      sync.Mutex
	dir     string
	ttl     time.Duration
	results map[string]dto.GenerationResult
	now     func() time.Time
	logger  *zap.Logger
}

func NewResultStore(dir string, ttl time.Duration, logger *zap.Logger) (*ResultStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &ResultStore{
		dir:     dir,
		ttl:     ttl,
		results: make(map[string]dto.GenerationResult),
		now:     time.Now,
		logger:  logger,
	}, nil
}

// Save writes the workbook and records the result. Nothing is recorded if the
// file cannot be written.
func (s *ResultStore) Save(originalFilename string, res *Result) (dto.GenerationResult, error) {
	id := uuid.New().String()
	filename := OutputFilename(originalFilename, id[:8])
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, res.Workbook, 0o644); err != nil {
		return dto.GenerationResult{}, fmt.Errorf("save workbook: %w", err)
	}

	gen := dto.GenerationResult{
		ID:               id,
		Filename:         filename,
		OriginalFilename: originalFilename,
		ReceiptsCount:    len(res.Preview),
		Preview:          res.Preview,
		CreatedAt:        s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.results[id] = gen

	return gen, nil
}

// Get returns a live result.
func (s *ResultStore) Get(id string) (dto.GenerationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	gen, ok := s.results[id]
	if !ok {
		return dto.GenerationResult{}, ErrResultNotFound
	}
	return gen, nil
}

// DownloadPath resolves the workbook path for a download request. The
// filename must be the one recorded for the id, whether or not some other
// file of that name exists.
func (s *ResultStore) DownloadPath(id, filename string) (string, error) {
	gen, err := s.Get(id)
	if err != nil {
		return "", err
	}
	if gen.Filename != filename {
		return "", ErrInvalidDownload
	}
	return filepath.Join(s.dir, gen.Filename), nil
}

func (s *ResultStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().UTC().Add(-s.ttl)
	for id, gen := range s.results {
		if gen.CreatedAt.After(cutoff) {
			continue
		}
		delete(s.results, id)
		if err := os.Remove(filepath.Join(s.dir, gen.Filename)); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("remove expired workbook", zap.String("file", gen.Filename), zap.Error(err))
		}
	}
}

// OutputFilename derives "<base>_cash_receipt[_<suffix>].xlsx" from the
// uploaded file name.
func OutputFilename(original, suffix string) string {
	base := filepath.Base(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Trim(unsafeFilenameChars.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		base = "receipts"
	}
	if suffix == "" {
		return base + "_cash_receipt.xlsx"
	}
	return fmt.Sprintf("%s_cash_receipt_%s.xlsx", base, suffix)
}
