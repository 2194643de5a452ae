package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shareit/internal/platform/apperr"
	"shareit/internal/platform/identity"
)

// Client talks to the server service. Responses are returned as raw bytes so
// the gateway can relay them without re-encoding.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Do(ctx context.Context, method, path string, query url.Values, userID int64, requestID string, body any) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, apperr.Internal("failed to encode request body: " + err.Error())
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, apperr.Internal("failed to build request: " + err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID > 0 {
		req.Header.Set(identity.Header, strconv.FormatInt(userID, 10))
	}
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, apperr.Internal("server unreachable: " + err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperr.Internal("failed to read server response: " + err.Error())
	}
	return resp.StatusCode, data, nil
}
