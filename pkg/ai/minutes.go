package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	"github.com/johnquangdev/meeting-workspace/pkg/config"
	"github.com/johnquangdev/meeting-workspace/pkg/metrics"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics
const maxErrorBody = 4 << 10

// MinutesClient calls the transcription/summarization backend
type MinutesClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewMinutesClient creates a backend client from config.
// Deadlines come from the caller's context, so the http.Client has no timeout.
func NewMinutesClient(cfg *config.BackendConfig, logger *zap.Logger) *MinutesClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MinutesClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		client:  &http.Client{},
		logger:  logger,
	}
}

// MeetingFile is the recording sent to the processing endpoint
type MeetingFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// ChatRequest is the payload of the chat endpoint
type ChatRequest struct {
	Question   string `json:"question"`
	Transcript string `json:"transcript"`
}

// ChatResponse is the consumed part of the chat response
type ChatResponse struct {
	Answer string `json:"answer"`
}

// HealthStatus is the backend root endpoint response
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// BaseURL returns the configured backend address
func (c *MinutesClient) BaseURL() string {
	return c.baseURL
}

// ProcessMeeting uploads a recording as multipart field "file" and returns the
// minutes exactly as the backend produced them
func (c *MinutesClient) ProcessMeeting(ctx context.Context, file MeetingFile) (result *entities.MeetingResult, err error) {
	started := time.Now()
	defer func() { metrics.RecordBackendCall(metrics.OpProcess, started, err) }()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/process-meeting", pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("failed to build process request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	go func() {
		pw.CloseWithError(writeFilePart(mw, file))
	}()

	c.logger.Info("sending recording to backend",
		zap.String("file_name", file.Name),
		zap.String("content_type", file.ContentType),
	)

	var out entities.MeetingResult
	if err := c.do(req, "process-meeting", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportToNotion sends the current minutes to the export endpoint.
// The response body is ignored.
func (c *MinutesClient) ExportToNotion(ctx context.Context, minutes entities.Minutes) (err error) {
	started := time.Now()
	defer func() { metrics.RecordBackendCall(metrics.OpExport, started, err) }()

	req, err := c.newJSONRequest(ctx, "/export-to-notion", minutes)
	if err != nil {
		return err
	}
	return c.do(req, "export-to-notion", nil)
}

// Chat asks a question about the transcript
func (c *MinutesClient) Chat(ctx context.Context, question, transcript string) (answer string, err error) {
	started := time.Now()
	defer func() { metrics.RecordBackendCall(metrics.OpChat, started, err) }()

	req, err := c.newJSONRequest(ctx, "/chat", ChatRequest{Question: question, Transcript: transcript})
	if err != nil {
		return "", err
	}
	var cr ChatResponse
	if err := c.do(req, "chat", &cr); err != nil {
		return "", err
	}
	return cr.Answer, nil
}

// Health calls the backend root endpoint
func (c *MinutesClient) Health(ctx context.Context) (status *HealthStatus, err error) {
	started := time.Now()
	defer func() {
		metrics.RecordBackendCall(metrics.OpHealth, started, err)
		metrics.SetBackendReady(err == nil)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build health request: %w", err)
	}
	var hs HealthStatus
	if err := c.do(req, "health", &hs); err != nil {
		return nil, err
	}
	return &hs, nil
}

// WaitReady probes the backend with exponential backoff until it answers or
// maxElapsed passes. It is only used at startup, never for user actions.
func (c *MinutesClient) WaitReady(ctx context.Context, maxElapsed time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = maxElapsed

	probe := func() error {
		_, err := c.Health(ctx)
		return err
	}
	notify := func(err error, next time.Duration) {
		c.logger.Warn("backend not ready",
			zap.String("backend_url", c.baseURL),
			zap.Duration("retry_in", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(probe, backoff.WithContext(bo, ctx), notify); err != nil {
		return fmt.Errorf("backend %s not ready: %w", c.baseURL, err)
	}
	return nil
}

func (c *MinutesClient) newJSONRequest(ctx context.Context, path string, payload interface{}) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (when non-nil)
func (c *MinutesClient) do(req *http.Request, operation string, out interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend %s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend %s response: %w", operation, err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(mw *multipart.Writer, file MeetingFile) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := io.Copy(part, file.Body); err != nil {
		return fmt.Errorf("failed to stream recording: %w", err)
	}
	return mw.Close()
}
