package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Alarksharma15/travelchatbot/domain/entities"
	"github.com/Alarksharma15/travelchatbot/internal/i18n"
	"github.com/Alarksharma15/travelchatbot/usecase"
)

// SpeechHandler serves POST /api/speech/transcribe.
type SpeechHandler struct {
	speech *usecase.SpeechService
	logger *zap.Logger
}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler(speech *usecase.SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{speech: speech, logger: logger}
}

// Transcribe accepts a multipart upload (file field "audio", form field
// "language") and returns the recognized text.
func (h *SpeechHandler) Transcribe(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "No audio file provided",
		})
	}

	lang := i18n.Parse(c.FormValue("language"))

	// The declared media type of the upload itself decides acceptance and
	// the on-disk extension; the client filename is only a hint.
	mediaType := fileHeader.Header.Get("Content-Type")
	if !h.speech.AllowedMediaType(mediaType) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Invalid file type. Only audio files are allowed.",
			ErrorType: string(entities.ErrorKindUnsupportedFormat),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to transcribe audio",
			Details: err.Error(),
		})
	}
	defer src.Close()

	text, err := h.speech.Transcribe(c.Request().Context(), src, mediaType, lang)
	if err != nil {
		h.logger.Error("Transcription failed",
			zap.String("filename", fileHeader.Filename),
			zap.String("media_type", mediaType),
			zap.Error(err))

		if entities.KindOf(err) == entities.ErrorKindUnsupportedFormat {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:     err.Error(),
				ErrorType: string(entities.ErrorKindUnsupportedFormat),
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Failed to transcribe audio",
			Details:   providerDetail(err),
			ErrorType: string(entities.KindOf(err)),
		})
	}

	return c.JSON(http.StatusOK, TranscriptionResponse{
		Text:     text,
		Language: string(lang),
	})
}
