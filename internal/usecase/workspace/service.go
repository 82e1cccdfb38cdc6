package workspace

import (
	"context"
	"io"
	"time"

	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-workspace/pkg/ai"
)

// Service defines the interface for the meeting workspace use case.
// Every method returns the workspace as it stands after the operation, also
// when the operation itself was a no-op reported through a domain error.
type Service interface {
	// Get returns the session's workspace, creating an empty one when missing
	Get(ctx context.Context, sessionID string) (*entities.Workspace, error)

	// SelectFile stages a recording and resets all state derived from the previous one
	SelectFile(ctx context.Context, sessionID string, upload Upload) (*entities.Workspace, error)

	// ProcessMeeting sends the selected recording to the backend and stores the minutes
	ProcessMeeting(ctx context.Context, sessionID string) (*entities.Workspace, error)

	// OpenForm opens one of the add-forms, closing the other
	OpenForm(ctx context.Context, sessionID string, kind entities.FormKind) (*entities.Workspace, error)

	// CloseForm closes the open add-form
	CloseForm(ctx context.Context, sessionID string) (*entities.Workspace, error)

	// AddDiscussionPoint appends a manual discussion point
	AddDiscussionPoint(ctx context.Context, sessionID string, input DiscussionPointInput) (*entities.Workspace, error)

	// AddActionItem appends a manual action item
	AddActionItem(ctx context.Context, sessionID string, input ActionItemInput) (*entities.Workspace, error)

	// DeleteItem removes one item from a list; unknown ids are ignored
	DeleteItem(ctx context.Context, sessionID string, kind entities.ItemKind, id int) (*entities.Workspace, error)

	// ExportToWorkspace exports the current minutes through the backend
	ExportToWorkspace(ctx context.Context, sessionID string) (*entities.Workspace, error)

	// AskQuestion asks the backend a question about the loaded transcript
	AskQuestion(ctx context.Context, sessionID string, question string) (*entities.Workspace, error)
}

// Backend is the subset of the minutes backend the workspace calls
type Backend interface {
	ProcessMeeting(ctx context.Context, file pkgai.MeetingFile) (*entities.MeetingResult, error)
	ExportToNotion(ctx context.Context, minutes entities.Minutes) error
	Chat(ctx context.Context, question, transcript string) (string, error)
}

// Upload is a recording chosen by the user
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DiscussionPointInput represents the discussion point form
type DiscussionPointInput struct {
	Topic   string
	Summary string
}

// ActionItemInput represents the action item form
type ActionItemInput struct {
	Task     string
	Owner    string
	Deadline string
}

// Options tunes session lifetime and backend call deadlines.
// A zero timeout leaves that call without a deadline.
type Options struct {
	SessionTTL     time.Duration
	ProcessTimeout time.Duration
	ExportTimeout  time.Duration
	ChatTimeout    time.Duration
}
