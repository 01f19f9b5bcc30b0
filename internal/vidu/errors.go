package vidu

import (
	"errors"
	"fmt"
)

// Kind classifies a client failure so callers can branch on the failure
// class without inspecting message strings.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindAuth       Kind = "auth"
	KindTimeout    Kind = "timeout"
	KindRemote     Kind = "remote"
)

// Error is the normalized failure surfaced by the client. Code carries the
// remote err_code or envelope error tag when one was present.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("vidu: %s (%s)", e.Message, e.Code)
	}
	return "vidu: " + e.Message
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or KindRemote when err is a non-nil error
// that did not originate from this package. A nil err yields the empty kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRemote
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
