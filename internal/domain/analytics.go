package domain

import "time"

// AnalyticsEvent is a single section view reported by the frontend.
type AnalyticsEvent struct {
	ID        string    `json:"id"`
	VisitDate time.Time `json:"visitDate"`
	Section   string    `json:"section"`
	UserAgent *string   `json:"userAgent"`
}

// AnalyticsInput is the accepted payload for POST /api/analytics.
type AnalyticsInput struct {
	Section   string  `json:"section" validate:"notblank"`
	UserAgent *string `json:"userAgent"`
}

// NewAnalyticsEvent builds an AnalyticsEvent from validated input.
func NewAnalyticsEvent(in AnalyticsInput, id string, at time.Time) *AnalyticsEvent {
	return &AnalyticsEvent{
		ID:        id,
		VisitDate: at,
		Section:   in.Section,
		UserAgent: in.UserAgent,
	}
}

// TrackResult is the analytics write acknowledgement. Success is false when
// the event could not be stored; the HTTP status stays 200 either way.
type TrackResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SectionCount is one row of the popular sections aggregate.
type SectionCount struct {
	Section string
	Count   int64
}

// AnalyticsSummary is the response of GET /api/analytics.
type AnalyticsSummary struct {
	TotalVisits        int64    `json:"total_visits"`
	ContactSubmissions int64    `json:"contact_submissions"`
	PopularSections    []string `json:"popular_sections"`
}
