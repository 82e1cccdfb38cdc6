package workspace

import (
	"context"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-workspace/errors"
	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	"github.com/johnquangdev/meeting-workspace/internal/domain/repositories"
	"github.com/johnquangdev/meeting-workspace/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/meeting-workspace/internal/usecase/errors"
	pkgai "github.com/johnquangdev/meeting-workspace/pkg/ai"
	"github.com/johnquangdev/meeting-workspace/pkg/callcontext"
	"github.com/johnquangdev/meeting-workspace/pkg/metrics"
)

// completionSaveTimeout bounds the store write that ends a backend call
const completionSaveTimeout = 10 * time.Second

// WorkspaceService implements Service
type WorkspaceService struct {
	sessions repositories.SessionRepository
	files    repositories.FileRepository
	backend  Backend
	opts     Options
	locks    *sessionLocks
	logger   *zap.Logger
}

// Ensure WorkspaceService implements Service interface
var _ Service = (*WorkspaceService)(nil)

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(
	sessions repositories.SessionRepository,
	files repositories.FileRepository,
	backend Backend,
	opts Options,
	logger *zap.Logger,
) *WorkspaceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkspaceService{
		sessions: sessions,
		files:    files,
		backend:  backend,
		opts:     opts,
		locks:    newSessionLocks(),
		logger:   logger,
	}
}

// Get returns the session's workspace, creating an empty one when missing
func (s *WorkspaceService) Get(ctx context.Context, sessionID string) (*entities.Workspace, error) {
	return s.update(ctx, sessionID, func(*entities.Workspace) error { return nil })
}

// SelectFile stages the upload, then swaps it into the workspace
func (s *WorkspaceService) SelectFile(ctx context.Context, sessionID string, upload Upload) (*entities.Workspace, error) {
	if upload.Name == "" || upload.Body == nil {
		return nil, usecaseErrors.ErrEmptyUpload
	}

	key := fmt.Sprintf("uploads/%s/%s", sessionID, uuid.NewString())
	if err := s.files.Put(ctx, key, upload.Body, upload.Size, upload.ContentType); err != nil {
		return nil, errors.ErrStorageFailed("put", err).WithDetail("object_key", key)
	}
	metrics.UploadBytes.Observe(float64(upload.Size))

	file := entities.UploadedFile{
		Name:        upload.Name,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		ObjectKey:   key,
		UploadedAt:  time.Now(),
	}

	var previous *entities.UploadedFile
	w, err := s.update(ctx, sessionID, func(w *entities.Workspace) error {
		previous = w.SelectFile(file)
		return nil
	})
	if err != nil {
		s.removeObject(ctx, key)
		return nil, err
	}

	if previous != nil {
		s.removeObject(ctx, previous.ObjectKey)
	}

	s.logger.Info("file selected",
		zap.String("session_id", sessionID),
		zap.String("file_name", file.Name),
		zap.Int64("size", file.Size),
		zap.Int("generation", w.Generation),
	)
	return w, nil
}

// ProcessMeeting runs the processing call for the selected file
func (s *WorkspaceService) ProcessMeeting(ctx context.Context, sessionID string) (*entities.Workspace, error) {
	var ticket entities.ProcessTicket
	w, err := s.update(ctx, sessionID, func(w *entities.Workspace) error {
		var err error
		ticket, err = w.BeginProcessing()
		return err
	})
	if err != nil {
		return w, err
	}

	callCtx, cancel := callcontext.CallBegin(ctx, metrics.OpProcess, sessionID, s.opts.ProcessTimeout)
	defer cancel()

	result, callErr := s.runProcess(callCtx, ticket.File)
	if callErr != nil {
		s.logger.Error("meeting processing failed",
			append(callcontext.LogFields(callCtx),
				zap.String("file_name", ticket.File.Name),
				zap.Error(callErr))...,
		)
	}

	return s.finish(callCtx, sessionID, func(w *entities.Workspace) bool {
		if callErr != nil {
			return w.FailProcessing(ticket.Generation)
		}
		return w.CompleteProcessing(ticket.Generation, *result)
	})
}

func (s *WorkspaceService) runProcess(ctx context.Context, file entities.UploadedFile) (*entities.MeetingResult, error) {
	body, err := s.files.Open(ctx, file.ObjectKey)
	if stdErrors.Is(err, storage.ErrObjectNotFound) {
		return nil, usecaseErrors.ErrUploadMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open staged recording: %w", err)
	}
	defer body.Close()

	return s.backend.ProcessMeeting(ctx, pkgai.MeetingFile{
		Name:        file.Name,
		ContentType: file.ContentType,
		Body:        body,
	})
}

// OpenForm opens one of the add-forms
func (s *WorkspaceService) OpenForm(ctx context.Context, sessionID string, kind entities.FormKind) (*entities.Workspace, error) {
	return s.update(ctx, sessionID, func(w *entities.Workspace) error {
		w.OpenAddForm(kind)
		return nil
	})
}

// CloseForm closes the open add-form
func (s *WorkspaceService) CloseForm(ctx context.Context, sessionID string) (*entities.Workspace, error) {
	return s.update(ctx, sessionID, func(w *entities.Workspace) error {
		w.CloseAddForm()
		return nil
	})
}

// AddDiscussionPoint appends a manual discussion point; blank input is ignored
func (s *WorkspaceService) AddDiscussionPoint(ctx context.Context, sessionID string, input DiscussionPointInput) (*entities.Workspace, error) {
	return s.update(ctx, sessionID, func(w *entities.Workspace) error {
		if _, ok := w.AddDiscussionPoint(input.Topic, input.Summary); ok {
			metrics.RecordItemEdit(string(entities.ItemDiscussion), "add")
		}
		return nil
	})
}

// AddActionItem appends a manual action item; blank input is ignored
func (s *WorkspaceService) AddActionItem(ctx context.Context, sessionID string, input ActionItemInput) (*entities.Workspace, error) {
	return s.update(ctx, sessionID, func(w *entities.Workspace) error {
		if _, ok := w.AddActionItem(input.Task, input.Owner, input.Deadline); ok {
			metrics.RecordItemEdit(string(entities.ItemAction), "add")
		}
		return nil
	})
}

// DeleteItem removes one item from a list
func (s *WorkspaceService) DeleteItem(ctx context.Context, sessionID string, kind entities.ItemKind, id int) (*entities.Workspace, error) {
	return s.update(ctx, sessionID, func(w *entities.Workspace) error {
		removed, err := w.DeleteItem(kind, id)
		if removed {
			metrics.RecordItemEdit(string(kind), "delete")
		}
		return err
	})
}

// ExportToWorkspace exports the current, possibly edited, minutes
func (s *WorkspaceService) ExportToWorkspace(ctx context.Context, sessionID string) (*entities.Workspace, error) {
	var ticket entities.ExportTicket
	w, err := s.update(ctx, sessionID, func(w *entities.Workspace) error {
		var err error
		ticket, err = w.BeginExport()
		return err
	})
	if err != nil {
		return w, err
	}

	callCtx, cancel := callcontext.CallBegin(ctx, metrics.OpExport, sessionID, s.opts.ExportTimeout)
	defer cancel()

	callErr := s.backend.ExportToNotion(callCtx, ticket.Minutes)
	if callErr != nil {
		s.logger.Error("export failed", append(callcontext.LogFields(callCtx), zap.Error(callErr))...)
	}

	return s.finish(callCtx, sessionID, func(w *entities.Workspace) bool {
		return w.FinishExport(ticket.Generation, callErr)
	})
}

// AskQuestion appends the question, asks the backend and appends the answer
func (s *WorkspaceService) AskQuestion(ctx context.Context, sessionID string, question string) (*entities.Workspace, error) {
	var ticket entities.ChatTicket
	w, err := s.update(ctx, sessionID, func(w *entities.Workspace) error {
		var err error
		ticket, err = w.BeginChat(question)
		return err
	})
	if err != nil {
		return w, err
	}

	callCtx, cancel := callcontext.CallBegin(ctx, metrics.OpChat, sessionID, s.opts.ChatTimeout)
	defer cancel()

	answer, callErr := s.backend.Chat(callCtx, ticket.Question, ticket.Transcript)
	if callErr != nil {
		s.logger.Error("chat failed", append(callcontext.LogFields(callCtx), zap.Error(callErr))...)
	}

	return s.finish(callCtx, sessionID, func(w *entities.Workspace) bool {
		return w.FinishChat(ticket.Generation, answer, callErr)
	})
}

// update loads the workspace under the session lock, applies fn and saves.
// The workspace is saved even when fn reports a domain error, since such
// errors still record user-visible state (e.g. the "select a file" message).
func (s *WorkspaceService) update(ctx context.Context, sessionID string, fn func(*entities.Workspace) error) (*entities.Workspace, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fnErr := fn(w)
	if err := s.sessions.Save(ctx, w, s.opts.SessionTTL); err != nil {
		return nil, errors.ErrCacheFailed("save session", err)
	}
	return w, fnErr
}

// finish applies the outcome of a backend call. The call context may already
// be done, so the store write gets its own deadline and one retry; a busy flag
// left set would disable the control for the rest of the session.
func (s *WorkspaceService) finish(callCtx context.Context, sessionID string, apply func(*entities.Workspace) bool) (*entities.Workspace, error) {
	var (
		w       *entities.Workspace
		applied bool
		err     error
	)
	for attempt := 0; attempt < 2; attempt++ {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(callCtx), completionSaveTimeout)
		w, err = s.update(ctx, sessionID, func(w *entities.Workspace) error {
			applied = apply(w)
			return nil
		})
		cancel()
		if err == nil {
			break
		}
		s.logger.Warn("failed to store call outcome",
			append(callcontext.LogFields(callCtx), zap.Int("attempt", attempt+1), zap.Error(err))...,
		)
	}
	if err != nil {
		return nil, err
	}

	if !applied {
		s.logger.Info("discarded outcome for a replaced file", callcontext.LogFields(callCtx)...)
	}
	return w, nil
}

func (s *WorkspaceService) load(ctx context.Context, sessionID string) (*entities.Workspace, error) {
	w, err := s.sessions.FindByID(ctx, sessionID)
	if stdErrors.Is(err, entities.ErrSessionNotFound) {
		return entities.NewWorkspace(sessionID), nil
	}
	if err != nil {
		return nil, errors.ErrCacheFailed("load session", err)
	}
	return w, nil
}

func (s *WorkspaceService) removeObject(ctx context.Context, key string) {
	if err := s.files.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.logger.Warn("failed to delete staged recording",
			zap.String("object_key", key),
			zap.Error(err),
		)
	}
}
