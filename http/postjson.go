package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jcharovsky/docs2skill"
)

// maxErrorBody bounds how much of a failed response body ends up in an error.
const maxErrorBody = 512

// PostJSON marshals in, POSTs it to url with header and decodes a 2xx JSON
// response into out. Non-2xx responses become errors carrying the status code.
func PostJSON(ctx context.Context, client *http.Client, url string, header http.Header, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return docs2skill.Errorf(docs2skill.EINVALID, "invalid endpoint %s: %v", url, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return docs2skill.Errorf(docs2skill.EINTERNAL, "HTTP %d from %s: %s", resp.StatusCode, url, bytes.TrimSpace(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return docs2skill.Errorf(docs2skill.EINTERNAL, "decode response from %s: %v", url, err)
	}
	return nil
}
