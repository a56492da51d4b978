package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/internal/domains/transcript"
	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/stt"
)

// TranscriptionHandler handles transcription HTTP requests
type TranscriptionHandler struct {
	transcriptionService transcript.TranscriptionService
	logger               *Logger.Logger
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(transcriptionService transcript.TranscriptionService, logger *Logger.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{
		transcriptionService: transcriptionService,
		logger:               logger,
	}
}

// Transcribe handles uploading a recording through the pipeline
// @Summary Transcribe a recording
// @Description Run speech recognition, dictionary corrections and task/event analysis over an uploaded recording
// @Tags Transcriptions
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param audio formData file true "Audio file (wav)"
// @Param language formData string false "Recognition language (defaults to the configured one)"
// @Success 201 {object} transcript.TranscribeResponse "Transcript with analysis results"
// @Failure 400 {object} ErrorResponse "Missing or empty audio"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Failure 503 {object} ErrorResponse "Speech-to-text backend not configured"
// @Router /transcriptions [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Audio file is required",
			Details: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Unable to open uploaded file",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Unable to read uploaded file",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.transcriptionService.Transcribe(c.Request.Context(), transcript.TranscribeRequest{
		Audio:    audio,
		Filename: fileHeader.Filename,
		Language: c.PostForm("language"),
	})
	if err != nil {
		switch {
		case errors.Is(err, transcript.ErrEmptyAudio):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Audio payload is empty"})
		case errors.Is(err, stt.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: stt.ErrNotConfigured.Error()})
		default:
			h.logger.Errorf("transcription error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Transcription failed",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTranscript handles getting a specific transcript
// @Summary Get transcript by ID
// @Description Get a stored transcript by ID
// @Tags Transcriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcript ID"
// @Success 200 {object} TranscriptDetailResponse "Transcript data"
// @Failure 400 {object} ErrorResponse "Invalid transcript ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Transcript not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /transcriptions/{id} [get]
func (h *TranscriptionHandler) GetTranscript(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.transcriptionService.GetTranscript(c.Request.Context(), id)
	if err != nil {
		switch err {
		case transcript.ErrTranscriptNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transcript not found"})
		default:
			h.logger.Errorf("get transcript error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TranscriptDetailResponse{Transcript: resp})
}

// ListTranscripts handles listing stored transcripts
// @Summary List transcripts
// @Description List stored transcripts, newest first
// @Tags Transcriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Number of transcripts to skip" default(0)
// @Param limit query int false "Number of transcripts to return" default(20)
// @Success 200 {object} ListTranscriptsResponse "List of transcripts with pagination"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /transcriptions [get]
func (h *TranscriptionHandler) ListTranscripts(c *gin.Context) {
	var req transcript.ListTranscriptsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	transcripts, total, err := h.transcriptionService.ListTranscripts(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorf("list transcripts error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListTranscriptsResponse{
		Transcripts: transcripts,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: req.Offset,
			Limit:  req.Limit,
		},
	})
}

// DeleteTranscript handles deleting a transcript and its artifact files
// @Summary Delete transcript
// @Description Delete a stored transcript together with its text and audio files
// @Tags Transcriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transcript ID"
// @Success 200 {object} SuccessResponse "Transcript deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid transcript ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Transcript not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /transcriptions/{id} [delete]
func (h *TranscriptionHandler) DeleteTranscript(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.transcriptionService.DeleteTranscript(c.Request.Context(), id); err != nil {
		switch err {
		case transcript.ErrTranscriptNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transcript not found"})
		default:
			h.logger.Errorf("delete transcript error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Transcript deleted successfully"})
}

// RegisterTranscriptionRoutes registers all transcription-related routes
func (h *TranscriptionHandler) RegisterTranscriptionRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/transcriptions")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.POST("", h.Transcribe)
		protected.GET("", h.ListTranscripts)
		protected.GET("/:id", h.GetTranscript)
		protected.DELETE("/:id", h.DeleteTranscript)
	}
}
