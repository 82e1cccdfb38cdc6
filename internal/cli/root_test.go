package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-workspace/pkg/ai"
	"github.com/johnquangdev/meeting-workspace/pkg/config"
)

type stubBackend struct {
	uploaded  string
	exported  int
	questions []string
	healthErr error
	baseURL   string
}

func (b *stubBackend) ProcessMeeting(_ context.Context, file pkgai.MeetingFile) (*entities.MeetingResult, error) {
	data, err := io.ReadAll(file.Body)
	if err != nil {
		return nil, err
	}
	b.uploaded = file.Name + ":" + string(data)
	deadline := "2024-07-01"
	return &entities.MeetingResult{
		DiscussionPoints: []entities.DiscussionPoint{{ID: 1, Topic: "Budget", Summary: "Discussed Q3 budget"}},
		ActionItems:      []entities.ActionItem{{ID: 2, Task: "Send deck", Owner: []string{"Ana", "Bo"}, Deadline: &deadline}},
		OverallSentiment: "positive",
		Topics:           []string{"budget", "hiring"},
		Transcript:       "...",
	}, nil
}

func (b *stubBackend) ExportToNotion(context.Context, entities.Minutes) error {
	b.exported++
	return nil
}

func (b *stubBackend) Chat(_ context.Context, question, _ string) (string, error) {
	b.questions = append(b.questions, question)
	return "Yes.", nil
}

func (b *stubBackend) Health(context.Context) (*pkgai.HealthStatus, error) {
	if b.healthErr != nil {
		return nil, b.healthErr
	}
	return &pkgai.HealthStatus{Status: "ok", Message: "Momentum AI Backend is running."}, nil
}

func newTestDeps(backend *stubBackend) (*Deps, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Deps{
		LoadConfig: func() (*config.Config, error) {
			return &config.Config{
				Backend: config.BackendConfig{URL: "http://localhost:8000"},
				Session: config.SessionConfig{TTL: time.Hour},
			}, nil
		},
		NewBackend: func(cfg *config.BackendConfig, _ *zap.Logger) Backend {
			backend.baseURL = cfg.URL
			return backend
		},
		Logger: zap.NewNop(),
		Out:    out,
	}, out
}

func writeRecording(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "standup.m4a")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o600))
	return path
}

func TestNewRootCommand(t *testing.T) {
	deps, _ := newTestDeps(&stubBackend{})
	cmd := NewRootCommand(deps)

	assert.Equal(t, "minutes", cmd.Use)
	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"process", "health"}, names)
}

func TestProcessCommand(t *testing.T) {
	backend := &stubBackend{}
	deps, out := newTestDeps(backend)
	cmd := NewRootCommand(deps)
	cmd.SetArgs([]string{"process", writeRecording(t), "--ask", "Approved?", "--export"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "standup.m4a:audio", backend.uploaded)
	assert.Equal(t, []string{"Approved?"}, backend.questions)
	assert.Equal(t, 1, backend.exported)

	text := out.String()
	assert.Contains(t, text, "Overall Sentiment: positive")
	assert.Contains(t, text, "Topics: budget, hiring")
	assert.Contains(t, text, "Owner: Ana, Bo")
	assert.Contains(t, text, "Deadline: 2024-07-01")
	assert.Contains(t, text, "bot: Yes.")
	assert.Contains(t, text, entities.MsgExported)
}

func TestProcessCommand_JSON(t *testing.T) {
	deps, out := newTestDeps(&stubBackend{})
	cmd := NewRootCommand(deps)
	cmd.SetArgs([]string{"process", writeRecording(t), "--json"})

	require.NoError(t, cmd.Execute())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "results", got["stage"])
	assert.Equal(t, "positive", got["overall_sentiment"])
}

func TestProcessCommand_MissingFile(t *testing.T) {
	deps, _ := newTestDeps(&stubBackend{})
	cmd := NewRootCommand(deps)
	cmd.SetArgs([]string{"process", filepath.Join(t.TempDir(), "missing.mp3")})
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}

func TestHealthCommand_APIURLOverride(t *testing.T) {
	backend := &stubBackend{}
	deps, out := newTestDeps(backend)
	cmd := NewRootCommand(deps)
	cmd.SetArgs([]string{"health", "--api-url", "http://backend:9000"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "http://backend:9000", backend.baseURL)
	assert.Contains(t, out.String(), "ok (Momentum AI Backend is running.)")
}

func TestHealthCommand_Unreachable(t *testing.T) {
	deps, _ := newTestDeps(&stubBackend{healthErr: assert.AnError})
	cmd := NewRootCommand(deps)
	cmd.SetArgs([]string{"health"})
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
