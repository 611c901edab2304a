package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linguarelay/linguarelay/internal/segmenter"
)

const (
	// DefaultEndpoint is the free Google Translate web endpoint.
	DefaultEndpoint = "https://translate.googleapis.com"
	// DefaultTimeout bounds one unit round trip.
	DefaultTimeout = 5 * time.Second
)

// Client performs one network round trip per unit against the translation
// endpoint and classifies the outcome. It performs no retries.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for baseURL. Empty baseURL selects
// DefaultEndpoint; a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// TranslateUnit translates one unit from source to target. The unit text is
// sent percent-encoded in a single GET request. When the unit carries the
// trailing-space flag, a single space is re-appended to the translated text
// because the endpoint trims it.
func (c *Client) TranslateUnit(ctx context.Context, unit segmenter.Unit, source, target string) Outcome {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", unit.Text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return Outcome{Failure: FailureBadResponse, Detail: "invalid translation request"}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Outcome{Failure: FailureTransient, Detail: "translation service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return Outcome{Failure: FailureRateLimited, Detail: "translation service rate limit reached"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{Failure: FailureBadResponse, Detail: fmt.Sprintf("translation service reported %s", resp.Status)}
	}

	text, ok := decodeTranslation(resp.Body)
	if !ok {
		return Outcome{Failure: FailureBadResponse, Detail: "malformed translation response"}
	}

	if unit.TrailingSpace {
		text += " "
	}
	return Outcome{Translated: text}
}

// decodeTranslation extracts the translated text at the fixed structural
// path [0][0][0] of the endpoint's JSON array response.
func decodeTranslation(r io.Reader) (string, bool) {
	var root []any
	if err := json.NewDecoder(r).Decode(&root); err != nil || len(root) == 0 {
		return "", false
	}
	segments, ok := root[0].([]any)
	if !ok || len(segments) == 0 {
		return "", false
	}
	first, ok := segments[0].([]any)
	if !ok || len(first) == 0 {
		return "", false
	}
	text, ok := first[0].(string)
	return text, ok
}
