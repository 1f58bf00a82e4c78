//go:generate mockgen -destination=mocks/doer.go -package=mocks compile-js/internal/compile Doer

package compile

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	DefaultURL         = "http://closure-compiler.appspot.com/compile"
	DefaultContentType = "application/x-www-form-urlencoded"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoint describes where and how the form body is posted.
type Endpoint struct {
	URL         string
	ContentType string
}

func DefaultEndpoint() Endpoint {
	return Endpoint{URL: DefaultURL, ContentType: DefaultContentType}
}

type Client struct {
	endpoint Endpoint
	doer     Doer
}

// NewHTTPClient returns an http.Client that never follows redirects, so a 3xx
// answer is handed back as the response of the single POST. It has no timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// NewClient returns a client posting to the given endpoint. A nil doer falls
// back to NewHTTPClient.
func NewClient(endpoint Endpoint, doer Doer) *Client {
	if doer == nil {
		doer = NewHTTPClient()
	}

	return &Client{endpoint: endpoint, doer: doer}
}

// Compile posts the parameters and returns the raw response body. The status
// code is not inspected, whatever the service answers with is returned.
func (c *Client) Compile(ctx context.Context, params Parameters) ([]byte, error) {
	body := params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.URL, strings.NewReader(body))

	if err != nil {
		return nil, &NetworkError{Endpoint: c.endpoint.URL, Err: errors.Wrap(err, "failed to create request")}
	}

	req.Header.Set("Content-Type", c.endpoint.ContentType)

	resp, err := c.doer.Do(req)

	if err != nil {
		return nil, &NetworkError{Endpoint: c.endpoint.URL, Err: errors.Wrap(err, "failed to send request")}
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, &NetworkError{Endpoint: c.endpoint.URL, Err: errors.Wrap(err, "failed to read response")}
	}

	log.Debug().
		Str("endpoint", c.endpoint.URL).
		Int("status", resp.StatusCode).
		Int("requestBytes", len(body)).
		Int("responseBytes", len(data)).
		Msg("compile response")

	return data, nil
}
