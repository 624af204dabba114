package service

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/Aashish23092/cash-receipt-generator/utils"
)

// ReceiptSettings are the per deployment inputs of a conversion run.
type ReceiptSettings struct {
	Pools        ContractorPools
	Layout       ReceiptLayout
	AssignByDate bool
}

// GenerateOptions are the per run inputs. A nil Rand gets a time seeded source.
type GenerateOptions struct {
	Reader ReaderOptions
	Rand   *rand.Rand
}

// Result is the outcome of one run: the workbook and what went into it.
type Result struct {
	Workbook []byte
	Preview  []dto.PreviewEntry
}

type ReceiptService struct {
	reader   RecordReader
	settings ReceiptSettings
	logger   *zap.Logger
}

func NewReceiptService(reader RecordReader, settings ReceiptSettings, logger *zap.Logger) *ReceiptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(settings.Pools) == 0 {
		settings.Pools = DefaultPools()
	}
	return &ReceiptService{
		reader:   reader,
		settings: settings,
		logger:   logger,
	}
}

// Generate reads the advance sheet from src and renders one cash receipt per
// accepted row. The preview and the workbook come from the same pass, so they
// always name the same contractor.
func (s *ReceiptService) Generate(ctx context.Context, src io.Reader, opts GenerateOptions) (*Result, error) {
	start := time.Now()

	records, err := s.reader.ReadRecords(src, opts.Reader)
	if err != nil {
		return nil, err
	}

	res, err := s.Render(ctx, records, opts.Rand)
	if err != nil {
		return nil, err
	}

	s.logger.Info("receipts.generate.ok",
		zap.Int("receipts", len(res.Preview)),
		zap.Int("bytes", len(res.Workbook)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return res, nil
}

// Render turns already read records into receipts.
func (s *ReceiptService) Render(ctx context.Context, records []dto.WorkRecord, rng *rand.Rand) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoValidData
	}

	assigner := NewContractorAssigner(s.settings.Pools, rng, s.settings.AssignByDate)
	renderer, err := NewReceiptRenderer(s.settings.Layout)
	if err != nil {
		return nil, err
	}
	defer renderer.Close()

	preview := make([]dto.PreviewEntry, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		contractor, err := assigner.Assign(rec.Date, rec.WorkType)
		if err != nil {
			return nil, err
		}

		facts := utils.ExtractWorkFacts(rec.WorkType, rec.WorkDetails, rec.Route)
		description := ComposeDescription(rec, facts, contractor)

		words, err := utils.AmountToWords(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rec.SourceRow, err)
		}

		voucher, err := renderer.Append(rec, description, words)
		if err != nil {
			return nil, err
		}

		s.logger.Debug("receipt rendered",
			zap.Int("voucher_no", voucher),
			zap.Int("row", rec.SourceRow),
			zap.String("work_type", string(rec.WorkType)),
			zap.String("contractor", contractor),
		)

		preview = append(preview, dto.PreviewEntry{
			VoucherNo:   voucher,
			Date:        utils.FormatReceiptDate(rec.Date),
			WorkType:    rec.WorkType.Label(),
			Contractor:  contractor,
			Description: description,
			Amount:      rec.Amount,
			AmountWords: words,
			Route:       rec.Route,
		})
	}

	data, err := renderer.Bytes()
	if err != nil {
		return nil, err
	}

	return &Result{Workbook: data, Preview: preview}, nil
}
