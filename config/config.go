package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Aashish23092/cash-receipt-generator/dto"
	"github.com/Aashish23092/cash-receipt-generator/service"
)

type Config struct {
	ServerPort    string
	MaxUploadSize int64
	OutputDir     string
	ResultTTL     time.Duration
	GinMode       string
	Receipts      ReceiptsFileConfig
}

// ReceiptsFileConfig is the optional YAML file named by RECEIPTS_CONFIG.
// Zero values keep the built in defaults.
type ReceiptsFileConfig struct {
	Contractors struct {
		Pits    []string `yaml:"pits"`
		OHCable []string `yaml:"oh_cable"`
	} `yaml:"contractors"`
	Payer        string `yaml:"payer"`
	AccountCode  string `yaml:"account_code"`
	StartRow     int    `yaml:"start_row"`
	EndRow       int    `yaml:"end_row"`
	AssignByDate bool   `yaml:"assign_by_date"`
}

func LoadConfig() (*Config, error) {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}

	maxUpload := int64(16 * 1024 * 1024) // 16 MB
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE %q", v)
		}
		maxUpload = n
	}

	ttl := time.Hour
	if v := os.Getenv("RESULT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RESULT_TTL %q: %w", v, err)
		}
		ttl = d
	}

	cfg := &Config{
		ServerPort:    serverPort,
		MaxUploadSize: maxUpload,
		OutputDir:     outputDir,
		ResultTTL:     ttl,
		GinMode:       os.Getenv("GIN_MODE"),
	}

	if path := os.Getenv("RECEIPTS_CONFIG"); path != "" {
		receipts, err := LoadReceiptsFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Receipts = *receipts
	}

	return cfg, nil
}

// LoadReceiptsFile reads receipt settings from a YAML file.
func LoadReceiptsFile(path string) (*ReceiptsFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read receipts config: %w", err)
	}

	var rc ReceiptsFileConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("parse receipts config %s: %w", path, err)
	}
	start := rc.StartRow
	if start == 0 {
		start = service.DefaultStartRow
	}
	if rc.StartRow < 0 || rc.EndRow < 0 || (rc.EndRow > 0 && rc.EndRow <= start) {
		return nil, fmt.Errorf("receipts config %s: invalid row range %d..%d", path, start, rc.EndRow)
	}
	return &rc, nil
}

// ReceiptSettings merges the file settings over the defaults.
func (rc ReceiptsFileConfig) ReceiptSettings() service.ReceiptSettings {
	pools := service.DefaultPools()
	if len(rc.Contractors.Pits) > 0 {
		pools[dto.WorkTypePits] = rc.Contractors.Pits
	}
	if len(rc.Contractors.OHCable) > 0 {
		pools[dto.WorkTypeOverheadCable] = rc.Contractors.OHCable
	}

	return service.ReceiptSettings{
		Pools: pools,
		Layout: service.ReceiptLayout{
			Payer:       rc.Payer,
			AccountCode: rc.AccountCode,
		},
		AssignByDate: rc.AssignByDate,
	}
}

// ReaderOptions returns the configured row window; defaultEnd applies when the
// file leaves end_row unset.
func (rc ReceiptsFileConfig) ReaderOptions(defaultEnd int) service.ReaderOptions {
	end := rc.EndRow
	if end == 0 {
		end = defaultEnd
	}
	return service.ReaderOptions{StartRow: rc.StartRow, EndRow: end}
}
