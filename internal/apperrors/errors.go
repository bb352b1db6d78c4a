package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindUnknownSection Kind = "unknown_section"
	KindPersistence    Kind = "persistence"
	KindPlayback       Kind = "playback"
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
	case KindValidation:
		return "Input rejected."
	case KindUnknownSection:
		return "Unknown content section."
	case KindPersistence:
		return "Settings could not be read or written."
	case KindPlayback:
		return "Audio playback is unavailable."
	default:
		return "Operation failed."
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

func Validation(msg string) error {
	return New(KindValidation, msg, nil)
}

func UnknownSection(title string) error {
	return New(KindUnknownSection, "unknown section: "+title, nil)
}

func Persistence(err error) error {
	return New(KindPersistence, "", err)
}

func Playback(err error) error {
	return New(KindPlayback, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func IsValidation(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindValidation
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
