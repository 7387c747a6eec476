package aioutput

import "fmt"

const (
	ReasonNoDelimiter = "no_delimiter_found"
	ReasonInvalidJSON = "invalid_json"
)

// ExtractionError means no parseable JSON value could be pulled out of the
// model's text. Raw always carries the full model output so callers can log
// it; extraction failures are never silently swallowed.
type ExtractionError struct {
	Reason string
	Detail string
	Raw    string
}

func (e *ExtractionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ai output extraction failed (%s): %s", e.Reason, e.Detail)
	}
	return fmt.Sprintf("ai output extraction failed (%s)", e.Reason)
}

// ValidationError is returned only when the top-level structure of the
// parsed value is unusable. Field-level problems are repaired in place, not
// surfaced: partial insight is more useful to the end user than none.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ai output validation failed: field %q %s", e.Field, e.Reason)
}
