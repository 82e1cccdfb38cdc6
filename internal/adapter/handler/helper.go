package handler

import (
	stdErrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-workspace/errors"
	"github.com/johnquangdev/meeting-workspace/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-workspace/internal/usecase/errors"
	"github.com/johnquangdev/meeting-workspace/web"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request, then from the
// response header set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// wantsJSON reports whether the client asked for a JSON answer instead of the page
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// toAppError maps domain errors to their HTTP representation
func toAppError(err error) error {
	switch {
	case stdErrors.Is(err, entities.ErrNoFileSelected), stdErrors.Is(err, usecaseErrors.ErrEmptyUpload):
		return errors.ErrFileRequired()
	case stdErrors.Is(err, entities.ErrOperationInProgress):
		return errors.ErrWorkspaceBusy(err.Error())
	case stdErrors.Is(err, entities.ErrNoTranscript):
		return errors.ErrNoTranscript()
	case stdErrors.Is(err, entities.ErrEmptyQuestion):
		return errors.ErrInvalidArgument("Question is required")
	case stdErrors.Is(err, entities.ErrInvalidFormKind):
		return errors.ErrInvalidForm("")
	case stdErrors.Is(err, entities.ErrInvalidItemKind):
		return errors.ErrInvalidArgument("Unknown list")
	}
	return err
}

// isDomainError reports whether err is a user-level condition already
// recorded on the workspace rather than an infrastructure failure
func isDomainError(err error) bool {
	for _, target := range []error{
		entities.ErrNoFileSelected,
		usecaseErrors.ErrEmptyUpload,
		entities.ErrOperationInProgress,
		entities.ErrNoTranscript,
		entities.ErrEmptyQuestion,
		entities.ErrInvalidFormKind,
		entities.ErrInvalidItemKind,
	} {
		if stdErrors.Is(err, target) {
			return true
		}
	}
	return false
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	err = toAppError(err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// HandleErrorPage renders the error page for browser requests
func HandleErrorPage(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr errors.AppError
	if stdErrors.As(toAppError(err), &appErr) {
		status = appErr.HTTPCode
		message = appErr.Message
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.Render(status, web.PageError, web.ErrorPage{Message: message, RequestID: reqID})
}
