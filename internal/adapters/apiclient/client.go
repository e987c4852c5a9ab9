// Package apiclient talks to the remote employee REST API.
package apiclient

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

	"github.com/pkg/errors"

	"github.com/csg33k/employee-admin/internal/domain"
)

const employeesPath = "/employees"

// Error is any non-2xx answer from the API. Callers treat all of them alike;
// the status is kept for logging.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// Observer is told the outcome of every call. It may be nil.
type Observer func(op string, err error)

type Client struct {
	base    *url.URL
	http    *http.Client
	observe Observer
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

func WithObserver(o Observer) Option {
	return func(cl *Client) { cl.observe = o }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:4000".
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("api base url %q must be absolute", baseURL)
	}
	c := &Client{base: u, http: &http.Client{Timeout: timeout}}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *Client) GetAll(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := c.do(ctx, "get_all", http.MethodGet, employeesPath, nil, &out)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Employee{}
	}
	return out, nil
}

func (c *Client) GetByID(ctx context.Context, id domain.ID) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.do(ctx, "get", http.MethodGet, itemPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, in domain.EmployeeInput) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.do(ctx, "create", http.MethodPost, employeesPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id domain.ID, in domain.EmployeeInput) (*domain.Employee, error) {
	var out domain.Employee
	if err := c.do(ctx, "update", http.MethodPut, itemPath(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id domain.ID) error {
	return c.do(ctx, "delete", http.MethodDelete, itemPath(id), nil, nil)
}

// itemPath returns the escaped path of one employee. The id is a single
// segment whatever it contains.
func itemPath(id domain.ID) string {
	return employeesPath + "/" + url.PathEscape(string(id))
}

// do performs exactly one round trip; nothing is retried. path must already
// be escaped.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	if c.observe != nil {
		defer func() { c.observe(op, err) }()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	u := *c.base
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	u.Path = c.base.Path + unescaped
	u.RawPath = c.base.EscapedPath() + path
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp, data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

// errorMessage prefers the API's {"message": "..."} body and falls back to
// the status text.
func errorMessage(resp *http.Response, data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return payload.Message
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", resp.StatusCode)
}
