package enrich

import "fmt"

// EnrichError represents a failed model call. It is logged and never returned
// to callers of an Enricher.
type EnrichError struct {
	Message string
	Cause   error
}

func (e *EnrichError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrich error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enrich error: %s", e.Message)
}

func (e *EnrichError) Unwrap() error {
	return e.Cause
}
