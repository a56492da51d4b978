package whisperserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/hukuitappei/voicetask/pkg/Logger"
	"github.com/hukuitappei/voicetask/pkg/stt"
)

// transcriptionResponse is the whisper-asr-webservice JSON shape.
type transcriptionResponse struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []segment `json:"segments,omitempty"`
}

type segment struct {
	ID    int     `json:"id"`
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Client talks to a self-hosted whisper ASR service over HTTP. It satisfies
// stt.Transcriber so the provider is swappable with the hosted API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *Logger.Logger
}

func New(baseURL string, logger *Logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) Name() string { return "server" }

// Transcribe implements stt.Transcriber.
func (c *Client) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	if len(req.Audio) == 0 {
		return nil, fmt.Errorf("no audio data provided")
	}

	filename := req.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio_file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(req.Audio); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	query := url.Values{}
	query.Set("encode", "true")
	query.Set("task", "transcribe")
	query.Set("output", "json")
	if req.Language != "" {
		query.Set("language", req.Language)
	}
	if req.Prompt != "" {
		query.Set("initial_prompt", req.Prompt)
	}

	requestURL := fmt.Sprintf("%s/asr?%s", c.baseURL, query.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, "POST", requestURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Errorf("whisper server error (status %d): %s", resp.StatusCode, string(responseBody))
		return nil, fmt.Errorf("whisper server returned status %d: %s", resp.StatusCode, string(responseBody))
	}
	if len(responseBody) == 0 {
		return nil, fmt.Errorf("whisper server returned empty response")
	}

	// Some deployments answer plain text regardless of output=json.
	var decoded transcriptionResponse
	if err := json.Unmarshal(responseBody, &decoded); err != nil {
		c.logger.Debugf("response is not JSON, treating as plain text: %q", string(responseBody))
		return &stt.Result{
			Text:        string(responseBody),
			Language:    req.Language,
			GeneratedAt: time.Now(),
		}, nil
	}

	language := decoded.Language
	if language == "" {
		language = req.Language
	}
	return &stt.Result{
		Text:        decoded.Text,
		Language:    language,
		GeneratedAt: time.Now(),
	}, nil
}
