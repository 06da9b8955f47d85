// internal/adapters/content/client.go
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"biduk_site/internal/adapters/observability"
	"biduk_site/internal/domain"
)

const maxBody = 8 << 20

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("content API base URL %q is invalid", base)
	}
	if rps <= 0 {
		rps = 10
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

func (c *Client) ListDestinations(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Destination], error) {
	return fetchList[domain.Destination](ctx, c, "destinations", "/destinations/", q)
}

func (c *Client) GetDestination(ctx context.Context, id int64) (domain.Destination, error) {
	return fetchOne[domain.Destination](ctx, c, "destinations", fmt.Sprintf("/destinations/%d/", id))
}

func (c *Client) ListHotels(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Hotel], error) {
	return fetchList[domain.Hotel](ctx, c, "hotels", "/hotels/", q)
}

func (c *Client) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	return fetchOne[domain.Hotel](ctx, c, "hotels", fmt.Sprintf("/hotels/%d/", id))
}

func (c *Client) ListPackages(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Package], error) {
	return fetchList[domain.Package](ctx, c, "packages", "/packages/", q)
}

func (c *Client) GetPackage(ctx context.Context, id int64) (domain.Package, error) {
	return fetchOne[domain.Package](ctx, c, "packages", fmt.Sprintf("/packages/%d/", id))
}

func (c *Client) ListArticles(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Article], error) {
	return fetchList[domain.Article](ctx, c, "articles", "/articles", q)
}

func (c *Client) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	return fetchOne[domain.Article](ctx, c, "articles", fmt.Sprintf("/articles/%d/", id))
}

func (c *Client) ListGallery(ctx context.Context, q domain.GalleryQuery) ([]domain.GalleryImage, error) {
	v := url.Values{}
	if q.Featured {
		v.Set("featured", "true")
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	raw, err := c.get(ctx, "gallery", "/gallery", v)
	if err != nil {
		return nil, err
	}
	data := unwrap(raw)
	if isFalsy(data) {
		return []domain.GalleryImage{}, nil
	}
	var out []domain.GalleryImage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: gallery: %v", domain.ErrMalformed, err)
	}
	if out == nil {
		out = []domain.GalleryImage{}
	}
	return out, nil
}

// ---- Internals ----

// StatusError is returned for any non-2xx answer. 404/401/403 unwrap to the
// matching domain sentinel.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content api: status %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	}
	return nil
}

func listParams(q domain.ListQuery) url.Values {
	v := url.Values{}
	if q.Active {
		v.Set("is_active", "true")
	}
	if q.Category != nil {
		v.Set("category", strconv.FormatInt(*q.Category, 10))
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("page_size", strconv.Itoa(q.PageSize))
	return v
}

// listEnvelope covers both list shapes served by the backend:
// {success,message,data:[...],pagination:{...}} and
// {count,next,previous,results:{success,message,data:{items:[...]}}}.
type listEnvelope[T any] struct {
	Success    *bool              `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`

	Count    *int    `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  *struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Items []T `json:"items"`
		} `json:"data"`
	} `json:"results"`
}

func fetchList[T any](ctx context.Context, c *Client, resource, path string, q domain.ListQuery) (domain.Page[T], error) {
	raw, err := c.get(ctx, resource, path, listParams(q))
	if err != nil {
		return domain.Page[T]{}, err
	}
	return decodeList[T](raw, q)
}

func decodeList[T any](raw []byte, q domain.ListQuery) (domain.Page[T], error) {
	var env listEnvelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.Page[T]{}, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}

	out := domain.Page[T]{Success: true, Message: env.Message}
	if env.Results != nil {
		out.Success = env.Results.Success
		out.Message = env.Results.Message
		out.Items = env.Results.Data.Items
	} else if !isFalsy(env.Data) {
		if err := json.Unmarshal(env.Data, &out.Items); err != nil {
			var nested struct {
				Items []T `json:"items"`
			}
			if err2 := json.Unmarshal(env.Data, &nested); err2 != nil {
				return domain.Page[T]{}, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
			}
			out.Items = nested.Items
		}
	}
	if env.Success != nil {
		out.Success = *env.Success
	}
	if out.Items == nil {
		out.Items = []T{}
	}

	if env.Pagination != nil {
		out.Pagination = *env.Pagination
	} else {
		count := len(out.Items)
		if env.Count != nil {
			count = *env.Count
		}
		out.Pagination = domain.Pagination{
			Count:       count,
			Next:        env.Next,
			Previous:    env.Previous,
			PageSize:    q.PageSize,
			CurrentPage: q.Page,
			TotalPages:  domain.TotalPages(count, q.PageSize),
		}
	}
	return out, nil
}

func fetchOne[T domain.Identifiable](ctx context.Context, c *Client, resource, path string) (T, error) {
	var zero T
	raw, err := c.get(ctx, resource, path, nil)
	if err != nil {
		return zero, err
	}
	var v T
	if err := json.Unmarshal(unwrap(raw), &v); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", domain.ErrMalformed, path, err)
	}
	if v.Key() == 0 {
		return zero, fmt.Errorf("%w: %s: no identifier", domain.ErrMalformed, path)
	}
	return v, nil
}

// unwrap returns the "data" member when present and truthy, else the payload itself.
func unwrap(raw []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && !isFalsy(env.Data) {
		return env.Data
	}
	return raw
}

func isFalsy(b json.RawMessage) bool {
	switch strings.TrimSpace(string(b)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}

// get performs one rate-limited GET and returns the raw body of a 2xx answer.
func (c *Client) get(ctx context.Context, resource, path string, q url.Values) ([]byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "biduk-site/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("content", resource, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("content api: %s: %w", path, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("content", resource, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		body := strings.TrimSpace(string(b))
		log.Error().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", body).
			Msg("content api error response")
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("content api: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return nil, fmt.Errorf("%w: %s: empty body", domain.ErrMalformed, path)
	}
	return b, nil
}
