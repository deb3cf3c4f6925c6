package recognize

import (
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
)

// Messages for the numeric error codes the upstream documents. The table is
// data so adding a code is a one-line change; loaded once, never mutated.
var upstreamErrors = map[int64]string{
	17701: "image is too large for the recognition service",
	17702: "recognition service is busy, please retry later",
	17703: "request parameters were rejected by the recognition service",
	17704: "recognition service is under maintenance",
	17705: "image format is not supported by the recognition service",
	17706: "recognition could not be completed, please retry with another image",
	17707: "recognition service hit an internal error",
	17708: "too many subjects in the image",
	17709: "recognition service could not download the image url",
	17710: "usage quota for the recognition service is exhausted",
	17711: "recognition service is under high load, please retry later",
}

const (
	msgGenericRejected = "recognition service error"
	msgUnreachable     = "cannot reach the recognition service, please retry later"
)

// MapFailure converts a non-success Outcome into the HTTP status, user
// message and optional structured details of the error envelope. The details
// payload is the upstream body when it is valid JSON, nil otherwise.
func MapFailure(o Outcome) (status int, msg string, details json.RawMessage) {
	switch o.Kind {
	case KindRejected:
		msg = msgGenericRejected
		if code := gjson.GetBytes(o.Body, "code"); code.Type == gjson.Number {
			if m, ok := upstreamErrors[code.Int()]; ok {
				msg = m
			} else if free := gjson.GetBytes(o.Body, "message"); free.Type == gjson.String && free.Str != "" {
				msg = free.Str
			}
		} else if free := gjson.GetBytes(o.Body, "message"); free.Type == gjson.String && free.Str != "" {
			msg = free.Str
		}
		if json.Valid(o.Body) {
			details = json.RawMessage(o.Body)
		}
		return o.Status, msg, details

	case KindBuildFailed:
		return http.StatusInternalServerError, "failed to build upstream request: " + o.Err.Error(), nil

	default: // KindUnreachable
		return http.StatusInternalServerError, msgUnreachable, nil
	}
}
