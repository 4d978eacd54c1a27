package contract

import "fmt"

// ChatErrorCode classifies caller-visible failures.
type ChatErrorCode string

const (
	CodeSessionNotFound ChatErrorCode = "SESSION_NOT_FOUND"
	CodeEmptyMessage    ChatErrorCode = "EMPTY_MESSAGE"
	CodeInvalidRequest  ChatErrorCode = "INVALID_REQUEST"
)

// ChatError is an error the caller is expected to handle by code.
type ChatError struct {
	Code    ChatErrorCode
	Message string
}

func (e *ChatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewChatError(code ChatErrorCode, format string, args ...any) *ChatError {
	return &ChatError{Code: code, Message: fmt.Sprintf(format, args...)}
}
