package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// maxAudioUploadSize caps transcription uploads.
const maxAudioUploadSize = "25M"

// InitRoutes initializes all API routes.
func InitRoutes(e *echo.Echo, chat *ChatHandler, speech *SpeechHandler, weather *WeatherHandler) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "travelchatbot-server",
		})
	})

	api := e.Group("/api")
	api.POST("/chat", chat.Handle)
	api.POST("/speech/transcribe", speech.Transcribe, middleware.BodyLimit(maxAudioUploadSize))
	api.GET("/weather", weather.Get)
}
