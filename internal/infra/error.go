package infra

import (
	"context"
	"errors"
	"log/slog"

	"stay-client/internal/pkg/errs"
)

type RemoteErrorKind string

// RemoteError classifies a failed call to the upstream API. msg is the
// server's own message, kept for logs and never shown to users verbatim.
type RemoteError struct {
	Kind   RemoteErrorKind
	Status int
	msg    string
	err    error // wrapped low-level error
}

func (e RemoteError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RemoteError) Unwrap() error {
	return e.err
}

func (e RemoteError) Message() string {
	return e.msg
}

func WrapRemoteErr(slogger *slog.Logger, kind RemoteErrorKind, status int, msg string, err error) error {
	level := slog.LevelWarn
	if kind == KindTransport || kind == KindServer {
		level = slog.LevelError
	}
	slogger.Log(context.Background(), level, "Remote API error: "+msg,
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RemoteError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind RemoteErrorKind) bool {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func KindOf(err error) (RemoteErrorKind, bool) {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Remote error kinds
const (
	KindNotFound     RemoteErrorKind = "NOT_FOUND"
	KindConflict     RemoteErrorKind = "CONFLICT"
	KindValidation   RemoteErrorKind = "VALIDATION"
	KindUnauthorized RemoteErrorKind = "UNAUTHORIZED"
	KindServer       RemoteErrorKind = "SERVER_FAILURE"
	KindTransport    RemoteErrorKind = "TRANSPORT_FAILURE"
	KindDecode       RemoteErrorKind = "DECODE_FAILURE"
)
