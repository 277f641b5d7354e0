package core

// error_messages.go maps pipeline errors to user-facing messages with codes
// for support reference.
//
//	FILE001 - Input file could not be opened or read
//	FILE002 - Input is not valid CSV
//	FILE003 - Output file could not be written
//	FILE005 - Input file is empty
//	VAL002  - Numeric column holds a non-numeric value
//	VAL004  - Required column is missing
//	RUN001  - Run was cancelled
//	ERR000  - Anything else; check the logs for the technical error
//
// Typed errors are matched first with errors.As, then the message is matched
// case-insensitively against errorPatterns. The first match wins.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgFileOpen = UserMessage{
		Message: "Input file could not be read",
		Action:  "Check that the input path exists and is readable",
		Code:    "FILE001",
	}
	msgInvalidCSV = UserMessage{
		Message: "File is not a valid CSV",
		Action:  "Ensure file is comma-separated with no more fields per row than the header",
		Code:    "FILE002",
	}
	msgFileWrite = UserMessage{
		Message: "Output file could not be written",
		Action:  "Check that the output directory exists and is writable",
		Code:    "FILE003",
	}
	msgEmptyFile = UserMessage{
		Message: "The input file is empty",
		Action:  "Provide a CSV file with a header row",
		Code:    "FILE005",
	}
	msgInvalidNumber = UserMessage{
		Message: "Numeric column holds a non-numeric value",
		Action:  "Convert data types before filtering rows",
		Code:    "VAL002",
	}
	msgMissingColumn = UserMessage{
		Message: "Required column is missing from CSV",
		Action:  "Check that the file has price and quantity (or qty) columns",
		Code:    "VAL004",
	}
	msgCancelled = UserMessage{
		Message: "Run was cancelled",
		Action:  "Start the run again when ready",
		Code:    "RUN001",
	}
)

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns catches errors that lost their type on the way up.
var errorPatterns = []errorPattern{
	{pattern: "empty file", msg: msgEmptyFile},
	{pattern: "invalid csv", msg: msgInvalidCSV},
	{pattern: "missing required column", msg: msgMissingColumn},
	{pattern: "invalid number", msg: msgInvalidNumber},
	{pattern: "context canceled", msg: msgCancelled},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns the zero UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var (
		fileErr   *FileError
		parseErr  *ParseError
		columnErr *ColumnError
		typeErr   *TypeError
	)
	switch {
	case errors.As(err, &parseErr):
		if errors.Is(parseErr, ErrEmptyFile) {
			return msgEmptyFile
		}
		return msgInvalidCSV
	case errors.As(err, &fileErr):
		if fileErr.Op == "write" {
			return msgFileWrite
		}
		return msgFileOpen
	case errors.As(err, &columnErr):
		return msgMissingColumn
	case errors.As(err, &typeErr):
		return msgInvalidNumber
	case errors.Is(err, context.Canceled):
		return msgCancelled
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
