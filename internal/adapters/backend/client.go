// internal/adapters/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"hotel_console/internal/adapters/observability"
	"hotel_console/internal/domain"
)

const userAgent = "hotel-console/1.0"

// Client talks to the hotel platform REST API. It performs no retries: every
// failure is reported to the caller, which decides what the operator sees.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter

	mu    sync.RWMutex
	token func() string
}

func New(base string, timeout time.Duration, rps int) (*Client, error) {
	if strings.TrimSpace(base) == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if rps <= 0 {
		rps = 10
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// UseToken installs the bearer token source consulted on every request.
func (c *Client) UseToken(src func() string) {
	c.mu.Lock()
	c.token = src
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil {
		return ""
	}
	return c.token()
}

// ---- Public API ----

func (c *Client) Hotels() domain.HotelAPI {
	return &resource[domain.HotelRequest, domain.Hotel]{c: c, path: "/hotels", name: "hotels"}
}

func (c *Client) Users() domain.UserAPI {
	return &resource[domain.UserRequest, domain.User]{c: c, path: "/users", name: "users"}
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out domain.LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/admin-user", "auth.login", body, &out); err != nil {
		return domain.LoginResponse{}, err
	}
	if out.User == nil || out.AccessToken == "" {
		return domain.LoginResponse{}, errors.New("login response carries no identity")
	}
	return out, nil
}

// resource implements domain.ResourceAPI for one collection path.
type resource[Req, Resp any] struct {
	c    *Client
	path string
	name string
}

func (r *resource[Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	var out []Resp
	if _, err := r.c.do(ctx, http.MethodGet, r.path, r.name+".list", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Resp{}
	}
	return out, nil
}

func (r *resource[Req, Resp]) Get(ctx context.Context, id int64) (Resp, error) {
	var out Resp
	_, err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), r.name+".get", nil, &out)
	return out, err
}

func (r *resource[Req, Resp]) Create(ctx context.Context, payload Req) (int, error) {
	return r.c.do(ctx, http.MethodPost, r.path, r.name+".create", payload, nil)
}

func (r *resource[Req, Resp]) Update(ctx context.Context, id int64, payload Req) (int, error) {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), r.name+".update", payload, nil)
}

func (r *resource[Req, Resp]) Delete(ctx context.Context, id int64) (int, error) {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), r.name+".delete", nil, nil)
}

// ---- Internals ----

// do sends one request and decodes a 2xx body into out (when out != nil).
// It returns the response status; non-2xx statuses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path, endpoint string, in, out any) (int, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return 0, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("backend", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("backend", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, newAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return resp.StatusCode, nil
}
