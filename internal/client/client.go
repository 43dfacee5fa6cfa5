// Package client talks to the todo HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/thenoetrevino/todo/internal/models"
)

// ErrDecode wraps a 2xx response body that is not the expected JSON
var ErrDecode = errors.New("unexpected response from server")

// Client is a JSON client for the todo API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the API rooted at baseURL, e.g. http://localhost:8000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UpdateTodoInput is a partial update; nil fields are not sent
type UpdateTodoInput struct {
	Title       *string `json:"title,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	Description *string `json:"description,omitempty"`
}

type createTodoInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// ListTodos fetches every todo in store order
func (c *Client) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	var todos []*models.Todo
	if err := c.do(ctx, http.MethodGet, "/todo", nil, &todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*models.Todo{}
	}
	return todos, nil
}

// GetTodo fetches one todo
func (c *Client) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodGet, todoPath(id), nil, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// CreateTodo creates a todo and returns the stored record
func (c *Client) CreateTodo(ctx context.Context, title string, description *string) (*models.Todo, error) {
	var todo models.Todo
	in := createTodoInput{Title: title, Description: description}
	if err := c.do(ctx, http.MethodPost, "/todo", in, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo applies a partial update and returns the stored record
func (c *Client) UpdateTodo(ctx context.Context, id int, in UpdateTodoInput) (*models.Todo, error) {
	var todo models.Todo
	if err := c.do(ctx, http.MethodPatch, todoPath(id), in, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes a todo
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

func todoPath(id int) string {
	return fmt.Sprintf("/todo/%d", id)
}

// do sends one request. Non-2xx responses become *APIError; out may be nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsBadRequest reports whether err is a 400 from the API
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
