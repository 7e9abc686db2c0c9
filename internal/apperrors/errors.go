package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindIO             Kind = "io"
	KindMalformedInput Kind = "malformed_input"
	KindConfig         Kind = "config"
	KindUsage          Kind = "usage"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindIO:
		return "File could not be read or written."
	case KindMalformedInput:
		return "Subtitle file is malformed."
	case KindConfig:
		return "Configuration is invalid."
	case KindUsage:
		return "Invalid arguments."
	default:
		return "Conversion failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func IO(err error) error {
	return New(KindIO, "", err)
}

func MalformedInput(err error) error {
	return New(KindMalformedInput, "", err)
}

func Config(err error) error {
	return New(KindConfig, "", err)
}

func Usage(err error) error {
	return New(KindUsage, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// Detail returns the safe message followed by the underlying cause, for CLI output
// where the cause (file path, line number) is what the user needs to act on.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) || e.Cause == nil {
		return err.Error()
	}
	msg := strings.TrimSpace(e.SafeMessage)
	if msg == "" {
		return e.Cause.Error()
	}
	return msg + " " + e.Cause.Error()
}

func IsMalformedInput(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindMalformedInput
}

func IsIO(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindIO
}
