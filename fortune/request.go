package fortune

import "strings"

// ThoughtsRequest is the inbound payload for POST /rest/fortune.
type ThoughtsRequest struct {
	Thoughts string `json:"thoughts"`
}

// Validate returns the untrimmed thoughts, or a *ValidationError when the
// request is nil or carries only whitespace.
func Validate(req *ThoughtsRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Thoughts) == "" {
		return "", &ValidationError{Message: ErrNoThoughts}
	}
	return req.Thoughts, nil
}

const (
	logPreviewLimit = 100
	logPreviewKeep  = 97
)

// Truncate shortens text for log lines: anything over 100 runes keeps the
// first 97 followed by "...".
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= logPreviewLimit {
		return text
	}
	return string(runes[:logPreviewKeep]) + "..."
}
