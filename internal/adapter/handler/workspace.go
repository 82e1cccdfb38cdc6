package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-workspace/errors"
	workspaceDTO "github.com/johnquangdev/meeting-workspace/internal/adapter/dto/workspace"
	"github.com/johnquangdev/meeting-workspace/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	httpmw "github.com/johnquangdev/meeting-workspace/internal/infrastructure/http/middleware"
	workspaceUsecase "github.com/johnquangdev/meeting-workspace/internal/usecase/workspace"
	"github.com/johnquangdev/meeting-workspace/pkg/callcontext"
	"github.com/johnquangdev/meeting-workspace/web"
)

// chatAnchor keeps the newest chat message in view after a chat post
const chatAnchor = "#chat-end"

// Workspace handles the meeting workspace page and its form posts.
// Browser requests are answered with a redirect back to the page; requests
// sending "Accept: application/json" get the workspace view model instead.
type Workspace struct {
	service        workspaceUsecase.Service
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(service workspaceUsecase.Service, maxUploadBytes int64, logger *zap.Logger) *Workspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workspace{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Page handles GET /
func (h *Workspace) Page(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleErrorPage(h.logger, c, err)
	}

	w, err := h.service.Get(requestContext(c), sessionID)
	if err != nil {
		return HandleErrorPage(h.logger, c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Render(http.StatusOK, web.PageIndex, presenter.ToWorkspaceResponse(w))
}

// Snapshot handles GET /v1/workspace
func (h *Workspace) Snapshot(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	w, err := h.service.Get(requestContext(c), sessionID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToWorkspaceResponse(w))
}

// SelectFile handles POST /file
func (h *Workspace) SelectFile(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.logger.Debug("no file in upload form", zap.String("session_id", sessionID), zap.Error(err))
		return h.respond(c, nil, errors.ErrFileRequired(), "")
	}
	if fh.Size > h.maxUploadBytes {
		return h.respond(c, nil, errors.ErrFileTooLarge(h.maxUploadBytes), "")
	}

	body, err := fh.Open()
	if err != nil {
		return h.respond(c, nil, errors.ErrInvalidPayload(), "")
	}
	defer body.Close()

	w, err := h.service.SelectFile(requestContext(c), sessionID, workspaceUsecase.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        body,
	})
	return h.respond(c, w, err, "")
}

// Process handles POST /process
func (h *Workspace) Process(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	w, err := h.service.ProcessMeeting(requestContext(c), sessionID)
	return h.respond(c, w, err, "")
}

// OpenForm handles POST /forms/:kind
func (h *Workspace) OpenForm(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	var req workspaceDTO.FormPathRequest
	if err := c.Bind(&req); err != nil {
		return h.respond(c, nil, errors.ErrInvalidPayload(), "")
	}
	kind, err := entities.ParseFormKind(req.Kind)
	if err != nil {
		return h.respond(c, nil, errors.ErrInvalidForm(req.Kind), "")
	}

	w, err := h.service.OpenForm(requestContext(c), sessionID, kind)
	return h.respond(c, w, err, "")
}

// CloseForm handles POST /forms/close
func (h *Workspace) CloseForm(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	w, err := h.service.CloseForm(requestContext(c), sessionID)
	return h.respond(c, w, err, "")
}

// AddDiscussionPoint handles POST /discussion-points
func (h *Workspace) AddDiscussionPoint(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	var req workspaceDTO.AddDiscussionPointRequest
	if err := c.Bind(&req); err != nil {
		return h.respond(c, nil, errors.ErrInvalidPayload(), "")
	}
	if err := c.Validate(&req); err != nil && wantsJSON(c) {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	// blank input is a no-op that keeps the typed draft
	w, err := h.service.AddDiscussionPoint(requestContext(c), sessionID, workspaceUsecase.DiscussionPointInput{
		Topic:   req.Topic,
		Summary: req.Summary,
	})
	return h.respond(c, w, err, "")
}

// AddActionItem handles POST /action-items
func (h *Workspace) AddActionItem(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	var req workspaceDTO.AddActionItemRequest
	if err := c.Bind(&req); err != nil {
		return h.respond(c, nil, errors.ErrInvalidPayload(), "")
	}
	if err := c.Validate(&req); err != nil && wantsJSON(c) {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	w, err := h.service.AddActionItem(requestContext(c), sessionID, workspaceUsecase.ActionItemInput{
		Task:     req.Task,
		Owner:    req.Owner,
		Deadline: req.Deadline,
	})
	return h.respond(c, w, err, "")
}

// DeleteDiscussionPoint handles POST /discussion-points/:id/delete
func (h *Workspace) DeleteDiscussionPoint(c echo.Context) error {
	return h.deleteItem(c, entities.ItemDiscussion)
}

// DeleteActionItem handles POST /action-items/:id/delete
func (h *Workspace) DeleteActionItem(c echo.Context) error {
	return h.deleteItem(c, entities.ItemAction)
}

func (h *Workspace) deleteItem(c echo.Context, kind entities.ItemKind) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	var req workspaceDTO.ItemPathRequest
	if err := echo.PathParamsBinder(c).MustInt("id", &req.ID).BindError(); err != nil {
		return h.respond(c, nil, errors.ErrInvalidArgument("Invalid item id"), "")
	}

	w, err := h.service.DeleteItem(requestContext(c), sessionID, kind, req.ID)
	return h.respond(c, w, err, "")
}

// Export handles POST /export
func (h *Workspace) Export(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, "")
	}

	w, err := h.service.ExportToWorkspace(requestContext(c), sessionID)
	return h.respond(c, w, err, "")
}

// Chat handles POST /chat
func (h *Workspace) Chat(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return h.respond(c, nil, err, chatAnchor)
	}

	var req workspaceDTO.ChatRequest
	if err := c.Bind(&req); err != nil {
		return h.respond(c, nil, errors.ErrInvalidPayload(), chatAnchor)
	}
	if err := c.Validate(&req); err != nil && wantsJSON(c) {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	w, err := h.service.AskQuestion(requestContext(c), sessionID, req.Question)
	return h.respond(c, w, err, chatAnchor)
}

// requestContext carries the request id into backend call logs
func requestContext(c echo.Context) context.Context {
	return callcontext.WithRequestID(c.Request().Context(), getRequestID(c))
}

func (h *Workspace) sessionID(c echo.Context) (string, error) {
	id, ok := httpmw.GetSessionID(c)
	if !ok {
		return "", errors.ErrInternal(nil).WithDetail("reason", "missing session")
	}
	return id, nil
}

// respond finishes a form post. Domain no-ops are already reflected in the
// workspace, so browsers are sent back to the page for them.
func (h *Workspace) respond(c echo.Context, w *entities.Workspace, err error, fragment string) error {
	if wantsJSON(c) {
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		return HandleSuccess(h.logger, c, presenter.ToWorkspaceResponse(w))
	}

	if err != nil && !isDomainError(err) && !isFileRequired(err) {
		return HandleErrorPage(h.logger, c, err)
	}
	if err != nil {
		h.logger.Debug("workspace action ignored",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Redirect(http.StatusSeeOther, "/"+fragment)
}

func isFileRequired(err error) bool {
	appErr, ok := err.(errors.AppError)
	return ok && appErr.Code == errors.ErrorCode_WORKSPACE_FILE_REQUIRED
}
