package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailure is returned when model output cannot be decoded into the
// requested structure. Callers convert it into the documented fallback
// response instead of surfacing it.
var ErrParseFailure = fmt.Errorf("could not parse model output")

// Matches the first fenced code block, with or without a json language tag.
var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// StripCodeFence extracts the content of the first fenced code block if the
// model wrapped its answer in one, discarding any surrounding prose.
// Text without a fence is returned verbatim.
func StripCodeFence(input string) string {
	if matches := fencedBlockRe.FindStringSubmatch(input); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return strings.TrimSpace(input)
}

// ParseModelJSON strips fencing artifacts from model output and parses the
// result as JSON. Parsing is strict: output that is not valid JSON yields
// ErrParseFailure with no attempt at repair.
func ParseModelJSON(input string, target any) error {
	cleaned := StripCodeFence(input)
	if cleaned == "" {
		return fmt.Errorf("%w: empty output", ErrParseFailure)
	}
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return fmt.Errorf("%w: %v (content: %s)", ErrParseFailure, err, truncateString(cleaned, 100))
	}
	return nil
}

// truncateString shortens a string for log and error messages.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
