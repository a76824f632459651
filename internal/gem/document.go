package gem

import (
	"context"
	"errors"
	"io"
	"net/http"
)

var ErrDocumentUnavailable = errors.New("bid document unavailable upstream")

// FetchDocument downloads the official bid document. The caller owns the
// returned body.
func (c *Client) FetchDocument(ctx context.Context, gemBidId string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+documentPath+gemBidId, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()

		return nil, "", ErrDocumentUnavailable
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}

	return resp.Body, contentType, nil
}
