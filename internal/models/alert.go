package models

import "time"

// Severity classifies an alert for presentation.
type Severity string

// Alert severities.
const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Alert is a transient user-facing notification. It is created by an
// orchestrator, shown once by the view, and cleared explicitly.
type Alert struct {
	Message  string        `json:"message"`
	Severity Severity      `json:"severity"`
	Duration time.Duration `json:"duration,omitempty"`
}
