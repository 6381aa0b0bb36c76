package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds backend connection settings.
type Config struct {
	BaseURL string        `env:"RECETAS_API_URL,required"`
	Timeout time.Duration `env:"RECETAS_API_TIMEOUT" envDefault:"10s"`
}

// Client is a thin JSON client for the product backend. It owns request
// construction, response decoding, and the uniform mapping of backend
// status codes onto the package's sentinel errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

var alphaSpaceRx = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// NewClient creates a backend client from config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrValidation)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	v := validator.New()
	if err := v.RegisterValidation("alpha_space", func(fl validator.FieldLevel) bool {
		return alphaSpaceRx.MatchString(fl.Field().String())
	}); err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		validate:   v,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out (when out
// is non-nil). Non-2xx responses are mapped to sentinel errors; the body
// is drained so connections can be reused.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrUnexpected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return statusError(resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrUnexpected, err)
	}
	return nil
}

// httpStatusError carries the raw status code alongside the mapped
// sentinel so callers can refine the mapping per endpoint.
type httpStatusError struct {
	code     int
	sentinel error
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("%v: status %d", e.sentinel, e.code)
}

func (e *httpStatusError) Unwrap() error {
	return e.sentinel
}

// statusError maps a backend status code onto the package error taxonomy.
func statusError(code int) error {
	switch {
	case code == http.StatusBadRequest:
		return &httpStatusError{code: code, sentinel: ErrBadRequest}
	case code >= http.StatusInternalServerError:
		return &httpStatusError{code: code, sentinel: ErrServer}
	default:
		return &httpStatusError{code: code, sentinel: ErrUnexpected}
	}
}

func (c *Client) validateInput(v any) error {
	if err := c.validate.Struct(v); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}
