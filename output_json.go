package ngcorex

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Valid     bool        `json:"valid"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains issue counts per severity
type JSONSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Info        int `json:"info"`
}

// JSONIssue represents a single finding
type JSONIssue struct {
	Source     string `json:"source"`
	Code       string `json:"code"`
	Severity   string `json:"severity"`
	Path       string `json:"path"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Example    string `json:"example,omitempty"`
}

// WriteJSON writes issues as an indented JSON document
func WriteJSON(w io.Writer, issues []Issue, valid bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(issues, valid, time.Now()))
}

func buildJSONOutput(issues []Issue, valid bool, now time.Time) JSONOutput {
	errs, warnings, infos := countSeverities(issues)

	jsonIssues := make([]JSONIssue, len(issues))
	for i, issue := range issues {
		jsonIssues[i] = JSONIssue{
			Source:     issue.Source,
			Code:       issue.Code,
			Severity:   issue.Severity,
			Path:       issue.Path,
			Message:    issue.Message,
			Suggestion: issue.Fix,
			Example:    issue.Example,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Valid:     valid,
		Summary: JSONSummary{
			TotalIssues: len(issues),
			Errors:      errs,
			Warnings:    warnings,
			Info:        infos,
		},
		Issues: jsonIssues,
	}
}
