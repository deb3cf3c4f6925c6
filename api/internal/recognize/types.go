// Package recognize relays images to the upstream recognition API: it
// validates the inbound upload, builds the outbound multipart form, performs
// the single upstream call and maps failures to user-facing messages.
package recognize

import "fmt"

// Option field names the relay forwards verbatim. use_correction is the
// legacy flag older front-ends still send.
var OptionKeys = []string{"is_multi", "model", "ai_detect", "use_correction"}

// Input is a validated inbound request. Exactly one of File/URL carries the
// image; Options holds only the fields the client explicitly sent.
type Input struct {
	File     []byte
	Filename string
	MIME     string

	URL string

	Options map[string]string
}

type OutcomeKind int

const (
	KindSuccess OutcomeKind = iota
	KindRejected
	KindUnreachable
	KindBuildFailed
)

// Outcome is the result of one upstream attempt.
//   - Success:     Status 2xx, Body is the upstream JSON, relayed verbatim
//   - Rejected:    non-2xx Status, Body is the upstream error payload
//   - Unreachable: no response arrived, Err says why
//   - BuildFailed: the outbound request could not be constructed, Err says why
type Outcome struct {
	Kind   OutcomeKind
	Status int
	Body   []byte
	Err    error
}

// ValidationError marks inbound requests the relay refuses before any
// upstream call. Handlers translate it to HTTP 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
