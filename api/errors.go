package api

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed request. Screens branch on the kind; the
// message is already user-presentable.
type ErrorKind int

const (
	KindConnection ErrorKind = iota
	KindValidation
	KindAuthExpired
	KindForbidden
	KindNotFound
	KindConflict
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindValidation:
		return "validation"
	case KindAuthExpired:
		return "auth-expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not-found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is the only error type the gateway returns.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

// kindForStatus maps an HTTP status to an error kind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusBadRequest:
		return KindValidation
	case status == http.StatusUnauthorized:
		return KindAuthExpired
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindServer
	default:
		return KindServer
	}
}

// fallbackMessage picks a user-presentable default when the backend sent no
// usable body.
func fallbackMessage(kind ErrorKind) string {
	switch kind {
	case KindConnection:
		return "Cannot reach the server"
	case KindValidation:
		return "The submitted data was rejected"
	case KindAuthExpired:
		return "Your session has expired, please log in again"
	case KindForbidden:
		return "You do not have permission to do that"
	case KindNotFound:
		return "Not found"
	case KindConflict:
		return "A record with the same email or phone already exists"
	default:
		return "The server reported an internal error"
	}
}
