package recognize

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Client performs the single upstream call per inbound request. No retries.
type Client struct {
	endpoint string
	httpc    *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: timeout},
	}
}

// Search posts the input to the recognition endpoint and classifies the
// result. A transport error (refused, DNS, timeout) is Unreachable; a
// response with a non-2xx status is Rejected with the upstream body kept for
// the error mapper; anything that fails before the request leaves the
// process is BuildFailed.
func (c *Client) Search(ctx context.Context, in *Input) Outcome {
	body, contentType, err := BuildForm(in)
	if err != nil {
		return Outcome{Kind: KindBuildFailed, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return Outcome{Kind: KindBuildFailed, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Outcome{Kind: KindUnreachable, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Kind: KindUnreachable, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{Kind: KindRejected, Status: resp.StatusCode, Body: payload}
	}
	return Outcome{Kind: KindSuccess, Status: resp.StatusCode, Body: payload}
}
