package anatomy

import "strings"

// Severity grades how urgent a finding is.
type Severity string

// The recognized severity levels.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity normalizes a raw severity tag. Returns false for
// anything outside the recognized levels, including the empty string.
func ParseSeverity(raw string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityLow:
		return SeverityLow, true
	case SeverityMedium:
		return SeverityMedium, true
	case SeverityHigh:
		return SeverityHigh, true
	}
	return "", false
}

// Keyword sets for the severity fallback, checked in descending order.
var (
	highSeverityKeywords = []string{
		"severe", "acute", "emergency", "critical", "intense pain",
		"difficulty breathing", "chest pain", "unconscious",
	}
	mediumSeverityKeywords = []string{
		"moderate", "persistent", "recurring", "chronic", "fever",
	}
)

// ClassifySeverity grades a free-text clinical description by keyword,
// used when a report carries no usable severity tag. Defaults to low.
func ClassifySeverity(description string) Severity {
	lower := strings.ToLower(description)

	for _, kw := range highSeverityKeywords {
		if strings.Contains(lower, kw) {
			return SeverityHigh
		}
	}
	for _, kw := range mediumSeverityKeywords {
		if strings.Contains(lower, kw) {
			return SeverityMedium
		}
	}
	return SeverityLow
}
