// Package aioutput turns untrusted free-form model output into the typed,
// defaulted records the rest of the system works with. Extraction is
// strict (no JSON means failure), validation is lenient (salvage whatever
// is approximately right).
package aioutput

import (
	"encoding/json"
	"strings"
)

// ExtractObject pulls a single JSON object out of raw model text. The text
// may carry markdown fences, leading or trailing prose, or both. Fence
// stripping is only a fast path; models do not reliably emit fences, so the
// delimiter scan is the fallback of record.
func ExtractObject(raw string) (map[string]any, error) {
	sliced, err := sliceDelimited(raw, '{', '}')
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(sliced), &out); err != nil {
		return nil, &ExtractionError{Reason: ReasonInvalidJSON, Detail: err.Error(), Raw: raw}
	}
	return out, nil
}

// ExtractArray is ExtractObject for array-shaped expectations.
func ExtractArray(raw string) ([]any, error) {
	sliced, err := sliceDelimited(raw, '[', ']')
	if err != nil {
		return nil, err
	}
	var out []any
	if err := json.Unmarshal([]byte(sliced), &out); err != nil {
		return nil, &ExtractionError{Reason: ReasonInvalidJSON, Detail: err.Error(), Raw: raw}
	}
	return out, nil
}

func sliceDelimited(raw string, open, close byte) (string, error) {
	s := stripCodeFences(raw)
	start := strings.IndexByte(s, open)
	if start == -1 {
		return "", &ExtractionError{Reason: ReasonNoDelimiter, Detail: "no opening " + string(open) + " in model output", Raw: raw}
	}
	end := strings.LastIndexByte(s, close)
	if end < start {
		return "", &ExtractionError{Reason: ReasonInvalidJSON, Detail: "no closing " + string(close) + " after opening delimiter", Raw: raw}
	}
	return s[start : end+1], nil
}

func stripCodeFences(src string) string {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	firstNL := strings.IndexByte(s, '\n')
	if firstNL == -1 {
		return strings.TrimSpace(strings.Trim(s, "`"))
	}
	s = s[firstNL+1:]
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
