package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Aashish23092/cash-receipt-generator/config"
	"github.com/Aashish23092/cash-receipt-generator/service"
)

const defaultInput = "Dec -25.xlsx"

type generateOptions struct {
	output     string
	configPath string
	startRow   int
	endRow     int
	seed       int64
	byDate     bool
	verbose    bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [input.xlsx]",
		Short: "Generate a cash receipt workbook",
		Example: `  cashreceipts generate
  cashreceipts generate "Nov -25.xlsx" --output nov_receipts.xlsx --seed 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			return runGenerate(cmd.Context(), input, opts, cmd.Flags().Changed("end-row"), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output workbook (default \"<input>_cash_receipt.xlsx\")")
	flags.StringVar(&opts.configPath, "config", "", "receipt settings YAML file")
	flags.IntVar(&opts.startRow, "start-row", 0, "first sheet row to read (default 4)")
	flags.IntVar(&opts.endRow, "end-row", service.DefaultCLIEndRow, "sheet row to stop before")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for contractor rotation (0 picks one from the clock)")
	flags.BoolVar(&opts.byDate, "by-date", false, "rotate contractors per date instead of per date and work type")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every rendered receipt")

	return cmd
}

func runGenerate(ctx context.Context, input string, opts *generateOptions, endRowSet bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var rc config.ReceiptsFileConfig
	if opts.configPath != "" {
		loaded, err := config.LoadReceiptsFile(opts.configPath)
		if err != nil {
			return err
		}
		rc = *loaded
	}

	readerOpts := rc.ReaderOptions(service.DefaultCLIEndRow)
	if opts.startRow > 0 {
		readerOpts.StartRow = opts.startRow
	}
	if endRowSet {
		readerOpts.EndRow = opts.endRow
	}

	settings := rc.ReceiptSettings()
	if opts.byDate {
		settings.AssignByDate = true
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	svc := service.NewReceiptService(service.NewRecordReader(logger), settings, logger)
	res, err := svc.Generate(ctx, src, service.GenerateOptions{
		Reader: readerOpts,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = defaultOutput(input)
	}
	if err := os.WriteFile(output, res.Workbook, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("receipts written", zap.String("output", output), zap.Int64("seed", seed))
	fmt.Fprintf(out, "Generated %d cash receipts in %s\n", len(res.Preview), output)
	return nil
}

// defaultOutput keeps the input base name as is, next to the input file.
func defaultOutput(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_cash_receipt.xlsx"
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
