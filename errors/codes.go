package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Workspace
	ErrorCode_WORKSPACE_FILE_REQUIRED  ErrorCode = 2000
	ErrorCode_WORKSPACE_FILE_TOO_LARGE ErrorCode = 2001
	ErrorCode_WORKSPACE_BUSY           ErrorCode = 2002
	ErrorCode_WORKSPACE_NO_TRANSCRIPT  ErrorCode = 2003
	ErrorCode_WORKSPACE_INVALID_FORM   ErrorCode = 2004

	// Integration
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 3001
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 3002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_WORKSPACE_FILE_REQUIRED:         "WORKSPACE_FILE_REQUIRED",
	ErrorCode_WORKSPACE_FILE_TOO_LARGE:        "WORKSPACE_FILE_TOO_LARGE",
	ErrorCode_WORKSPACE_BUSY:                  "WORKSPACE_BUSY",
	ErrorCode_WORKSPACE_NO_TRANSCRIPT:         "WORKSPACE_NO_TRANSCRIPT",
	ErrorCode_WORKSPACE_INVALID_FORM:          "WORKSPACE_INVALID_FORM",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
