package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aashish23092/cash-receipt-generator/config"
	"github.com/Aashish23092/cash-receipt-generator/handler"
	"github.com/Aashish23092/cash-receipt-generator/service"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize service layer
	reader := service.NewRecordReader(logger)
	receiptService := service.NewReceiptService(reader, cfg.Receipts.ReceiptSettings(), logger)
	store, err := service.NewResultStore(cfg.OutputDir, cfg.ResultTTL, logger)
	if err != nil {
		logger.Fatal("init result store", zap.Error(err))
	}

	// Initialize handler layer
	receiptHandler := handler.NewReceiptHandler(
		receiptService,
		store,
		cfg.Receipts.ReaderOptions(service.DefaultWebEndRow),
		cfg.MaxUploadSize,
		logger,
	)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Cash Receipt Generator",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		receipts := api.Group("/receipts")
		{
			receipts.POST("/generate", receiptHandler.Generate)
			receipts.GET("/:id/preview", receiptHandler.Preview)
			receipts.GET("/:id/download/:filename", receiptHandler.Download)
		}
	}

	// Start server
	logger.Info("starting cash receipt generator", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
