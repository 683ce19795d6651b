package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/adapters/llm"
	"github.com/Alarksharma15/travelchatbot/adapters/stt"
	"github.com/Alarksharma15/travelchatbot/adapters/weather"
	"github.com/Alarksharma15/travelchatbot/internal/api"
	"github.com/Alarksharma15/travelchatbot/internal/config"
	"github.com/Alarksharma15/travelchatbot/usecase"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Initialize adapters
	geminiLLM, err := llm.NewGeminiLLM(ctx, llm.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini", zap.Error(err))
	}

	speechToText, err := stt.NewGoogleSpeechToText(ctx, logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech-to-text", zap.Error(err))
	}
	defer speechToText.Close()

	weatherProvider := weather.NewOpenMeteo(weather.OpenMeteoConfig{
		GeocodingBaseURL: cfg.GeocodingBaseURL,
		ForecastBaseURL:  cfg.ForecastBaseURL,
	}, logger)

	// Initialize usecase services
	chatService := usecase.NewChatService(geminiLLM, logger)
	speechService, err := usecase.NewSpeechService(speechToText, cfg.UploadDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize speech service", zap.Error(err))
	}
	weatherService := usecase.NewWeatherService(weatherProvider, logger)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Initialize API routes
	api.InitRoutes(e,
		api.NewChatHandler(chatService, logger),
		api.NewSpeechHandler(speechService, logger),
		api.NewWeatherHandler(weatherService, logger),
	)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
