package financeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shunichi-ikebuchi/finance-page/pkg/transaction"
)

// maxErrorBody caps how much of an error response is kept in APIError.
const maxErrorBody = 512

// ClientConfig represents the configuration for the finance API client.
type ClientConfig struct {
	BaseURL   string
	Timeout   time.Duration // Default: 30 seconds
	UserAgent string
}

// Client talks to the finance tracker over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new finance API client.
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = "finance-page"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		userAgent: userAgent,
	}
}

// ListTransactions fetches every transaction from GET /api/transactions.
func (c *Client) ListTransactions(ctx context.Context) ([]transaction.Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, TransactionsPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var txs []transaction.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return txs, nil
}

// Navigate follows a link on the server, e.g. /delete/3, as a browser would:
// a GET whose redirects are followed.
func (c *Client) Navigate(ctx context.Context, href string) error {
	req, err := c.newRequest(ctx, http.MethodGet, href, nil)
	if err != nil {
		return err
	}
	return c.do(req)
}

// SubmitForm sends form values to action. POST bodies are form-encoded;
// GET submissions carry the values in the query string.
func (c *Client) SubmitForm(ctx context.Context, method, action string, values url.Values) error {
	method = strings.ToUpper(method)
	if method == "" {
		method = http.MethodGet
	}

	var req *http.Request
	var err error

	switch method {
	case http.MethodGet:
		target := action
		if encoded := values.Encode(); encoded != "" {
			sep := "?"
			if strings.Contains(action, "?") {
				sep = "&"
			}
			target = action + sep + encoded
		}
		req, err = c.newRequest(ctx, method, target, nil)
	default:
		req, err = c.newRequest(ctx, method, action, strings.NewReader(values.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return err
	}

	return c.do(req)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.parseError(resp)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// parseError builds an APIError from a failed response.
func (c *Client) parseError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		body = nil
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Method:     resp.Request.Method,
		Path:       resp.Request.URL.Path,
		Body:       strings.TrimSpace(string(body)),
	}
}
