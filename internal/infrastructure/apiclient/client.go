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

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-web/internal/domain"
)

const maxResponseBytes = 4 << 20

func init() {
	// el API espera precio y salario como números JSON
	decimal.MarshalJSONWithoutQuotes = true
}

// Client cliente HTTP base del API de inventario. Todas las llamadas pasan por AuthTransport.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. tokens normalmente es session.TokenFromContext.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: NewAuthTransport(http.DefaultTransport, tokens),
		},
	}
}

type requestOptions struct {
	noAuth bool
	query  url.Values
}

type requestOption func(*requestOptions)

func withoutAuth() requestOption {
	return func(o *requestOptions) { o.noAuth = true }
}

func withQuery(q url.Values) requestOption {
	return func(o *requestOptions) { o.query = q }
}

// do ejecuta la petición, serializa in como JSON y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any, opts ...requestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	target := c.baseURL + path
	if len(o.query) > 0 {
		target += "?" + o.query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("API: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("API: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if o.noAuth {
		req.Header.Set(NoAuthHeader, NoAuthValue)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, ctx.Err())
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta de %s %s: %v", domain.ErrNetwork, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Status:  resp.StatusCode,
			Method:  method,
			Path:    path,
			Message: errorMessage(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta de %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	return nil
}

func idPath(prefix string, id int64, suffix ...string) string {
	p := fmt.Sprintf("%s/%d", prefix, id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}
