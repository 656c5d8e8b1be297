package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL - адрес публичного PokeAPI
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// defaultTimeout - таймаут одного запроса к каталогу
	defaultTimeout = 10 * time.Second
)

// Resolver переводит номер покедекса в отображаемое имя покемона
type Resolver interface {
	ResolveName(ctx context.Context, id int) (string, error)
}

// Client реализует Resolver поверх HTTP-каталога PokeAPI
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithTimeout задает таймаут HTTP-запроса
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient подменяет HTTP-клиент (для тестов)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient создает клиент каталога. Пустой baseURL означает публичный PokeAPI.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ResolveName(ctx context.Context, id int) (string, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("pokeapi: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pokeapi: request for pokemon %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("pokeapi: unexpected status %d for pokemon %d", resp.StatusCode, id)
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("pokeapi: decode response for pokemon %d: %w", id, err)
	}

	if payload.Name == "" {
		return "", fmt.Errorf("pokeapi: empty name for pokemon %d", id)
	}

	return payload.Name, nil
}
