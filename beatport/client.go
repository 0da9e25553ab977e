package beatport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/viant/beatport-mcp/credentials"
	"golang.org/x/oauth2"
)

// Client represents a Beatport API client
type Client struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	base       http.RoundTripper
	tokens     oauth2.TokenSource
	clientID   string
	httpClient *http.Client
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClientID returns the OAuth client id the credentials were issued for
func (c *Client) ClientID() string {
	return c.clientID
}

// Get issues a GET request
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Endpoint: endpoint, Query: query})
}

// Do sends exactly one request; non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, request *Request) (*Response, error) {
	URL, err := c.URL(request.Endpoint, request.Query)
	if err != nil {
		return nil, err
	}
	method := request.method()
	var body io.Reader
	if request.hasBody() {
		data, err := json.Marshal(request.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	httpRequest, err := http.NewRequestWithContext(ctx, method, URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		httpRequest.Header.Set("Content-Type", "application/json")
	}
	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("beatport: %v %v: %w", method, URL, err)
	}
	defer httpResponse.Body.Close()
	data, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("beatport: failed to read %v %v response: %w", method, URL, err)
	}
	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, &APIError{
			Method:     method,
			URL:        URL,
			StatusCode: httpResponse.StatusCode,
			Status:     httpResponse.Status,
			Body:       data,
		}
	}
	return &Response{
		StatusCode:  httpResponse.StatusCode,
		ContentType: httpResponse.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

// URL resolves an endpoint relative to the API root
func (c *Client) URL(endpoint string, query url.Values) (string, error) {
	endpoint = strings.TrimLeft(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return "", fmt.Errorf("endpoint was empty")
	}
	if strings.Contains(endpoint, "://") {
		return "", fmt.Errorf("endpoint must be relative to %v: %v", c.baseURL, endpoint)
	}
	URL := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		separator := "?"
		if strings.Contains(URL, "?") {
			separator = "&"
		}
		URL += separator + query.Encode()
	}
	return URL, nil
}

// New creates a client authenticated with the supplied credentials
func New(creds *credentials.Credentials, options ...Option) *Client {
	ret := &Client{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
		base:      http.DefaultTransport,
		tokens:    creds.TokenSource(),
		clientID:  creds.ClientID,
	}
	for _, option := range options {
		option(ret)
	}
	ret.httpClient = &http.Client{
		Timeout:   ret.timeout,
		Transport: &oauth2.Transport{Source: ret.tokens, Base: ret.base},
	}
	return ret
}
