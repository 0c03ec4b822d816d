package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/metrics"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Detail []domain.FieldError `json:"detail,omitempty"`
}

// bodyError is a request body that is not a single JSON value.
type bodyError struct {
	status int
	code   string
	cause  error
}

func (e *bodyError) Error() string { return e.code + ": " + e.cause.Error() }
func (e *bodyError) Unwrap() error { return e.cause }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}

// decodeJSON reads exactly one JSON value of at most maxBytes and binds it
// to dst. Field problems, wrong JSON types included, come back together as a
// *domain.ValidationError; a body that is not JSON at all as *bodyError.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &bodyError{status: http.StatusRequestEntityTooLarge, code: "body_too_large", cause: err}
		}
		return &bodyError{status: http.StatusBadRequest, code: "invalid_json", cause: err}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &bodyError{status: http.StatusRequestEntityTooLarge, code: "body_too_large", cause: err}
		}
		return &bodyError{status: http.StatusBadRequest, code: "invalid_json", cause: err}
	}

	return domain.Bind(raw, dst)
}

// bind decodes the request body into dst for resource and answers the
// request itself when that fails.
func bind(w http.ResponseWriter, r *http.Request, d deps.Deps, resource string, dst any) bool {
	err := decodeJSON(w, r, d.MaxBodyBytes, dst)
	if err == nil {
		return true
	}
	if domain.IsValidation(err) {
		metrics.ValidationFailures.WithLabelValues(resource).Inc()
	}
	writeFailure(w, r, d, "error decoding "+resource+" request", err)
	return false
}

// writeFailure maps err to a response. Validation and body errors are the
// client's fault and are answered in detail; anything else is logged and
// hidden behind a generic 500.
func writeFailure(w http.ResponseWriter, r *http.Request, d deps.Deps, op string, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation_failed", Detail: ve.Fields})
		return
	}

	var be *bodyError
	if errors.As(err, &be) {
		writeError(w, be.status, be.code)
		return
	}

	d.Logger.Error(op,
		logger.String("request_id", middleware.GetReqID(r.Context())),
		logger.String("path", r.URL.Path),
		logger.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_server_error")
}
