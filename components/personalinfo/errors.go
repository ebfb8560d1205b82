package personalinfo

import (
	"errors"
	"log/slog"
	"net/http"
)

var errNoStore = errors.New("personalinfo: no resume store configured")

// HTTPError lets guards and collaborators pick the response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an error with the status it should be answered with.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.StatusCode())
	}
	return e.Err.Error()
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code > 0 {
		return e.Code
	}
	return http.StatusInternalServerError
}

func badRequest(err error) error {
	return StatusError{Code: http.StatusBadRequest, Err: err}
}

// statusOf returns the status carried by err, or fallback.
func statusOf(err error, fallback int) int {
	var carrier HTTPError
	if errors.As(err, &carrier) && carrier != nil {
		if code := carrier.StatusCode(); code > 0 {
			return code
		}
	}
	return fallback
}

// writeError answers client errors with their message. Server errors are
// logged and answered with the bare status text.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := statusOf(err, http.StatusInternalServerError)
	if code < http.StatusInternalServerError {
		http.Error(w, err.Error(), code)
		return
	}
	logger.Error("personal info request failed", "error", err, "status", code)
	http.Error(w, http.StatusText(code), code)
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := statusOf(err, http.StatusForbidden)
	http.Error(w, http.StatusText(code), code)
}
