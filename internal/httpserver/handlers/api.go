package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

type rootResponse struct {
	Message string `json:"message"`
}

// Root answers GET /api/
func Root(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rootResponse{Message: d.APIMessage})
	}
}

// CreateStatusCheck answers POST /api/status with the stored record
func CreateStatusCheck(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.StatusCheckInput
		if !bind(w, r, d, "status", &in) {
			return
		}

		sc, err := d.Service.CreateStatusCheck(r.Context(), in)
		if err != nil {
			writeFailure(w, r, d, "error saving status check", err)
			return
		}
		writeJSON(w, http.StatusOK, sc)
	}
}

// ListStatusChecks answers GET /api/status
func ListStatusChecks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks, err := d.Service.ListStatusChecks(r.Context())
		if err != nil {
			writeFailure(w, r, d, "error fetching status checks", err)
			return
		}
		if checks == nil {
			checks = []*domain.StatusCheck{}
		}
		writeJSON(w, http.StatusOK, checks)
	}
}

// SubmitContact answers POST /api/contact
func SubmitContact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.ContactInput
		if !bind(w, r, d, "contact", &in) {
			return
		}

		receipt, err := d.Service.SubmitContact(r.Context(), in)
		if err != nil {
			writeFailure(w, r, d, "error saving contact message", err)
			return
		}
		writeJSON(w, http.StatusOK, receipt)
	}
}

// ListContactMessages answers GET /api/contact, newest first
func ListContactMessages(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := d.Service.ListContactMessages(r.Context())
		if err != nil {
			writeFailure(w, r, d, "error fetching contact messages", err)
			return
		}
		if msgs == nil {
			msgs = []*domain.ContactMessage{}
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

// TrackAnalytics answers POST /api/analytics. Storage failures are reported
// in the body with a 200; see portfolio.Service.TrackEvent.
func TrackAnalytics(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.AnalyticsInput
		if !bind(w, r, d, "analytics", &in) {
			return
		}

		res, err := d.Service.TrackEvent(r.Context(), in)
		if err != nil {
			writeFailure(w, r, d, "error tracking analytics", err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// AnalyticsSummary answers GET /api/analytics
func AnalyticsSummary(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := d.Service.Summary(r.Context())
		if err != nil {
			writeFailure(w, r, d, "error fetching analytics", err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// NotFound answers unknown paths in JSON
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not_found")
}

// MethodNotAllowed answers known paths hit with the wrong verb
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
}
