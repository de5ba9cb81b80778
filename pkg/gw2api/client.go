// Package gw2api is a thin client of the read-only game API, limited to the item listings.
package gw2api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/gw2tracker/pkg/domain"
)

// DefaultEndpoint of the public API
const DefaultEndpoint = "https://api.guildwars2.com/v2"

// ErrBadStatus returned for non-2xx API responses
var ErrBadStatus = errors.New("unexpected status")

// Client talks to the API over HTTP
type Client struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// Params for NewClient
type Params struct {
	Endpoint  string // DefaultEndpoint if empty
	Timeout   time.Duration
	UserAgent string
}

// item is the subset of /items response fields we keep
type item struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
	Level  int    `json:"level"`
}

// New makes an API client
func New(params Params) *Client {
	if params.Endpoint == "" {
		params.Endpoint = DefaultEndpoint
	}
	if params.Timeout == 0 {
		params.Timeout = 30 * time.Second
	}
	if params.UserAgent == "" {
		params.UserAgent = "gw2tracker"
	}
	return &Client{
		endpoint:  strings.TrimSuffix(params.Endpoint, "/"),
		userAgent: params.UserAgent,
		client:    &http.Client{Timeout: params.Timeout},
	}
}

// ItemCount returns total number of items, taken from the X-Result-Total header of a one-item page
func (c *Client) ItemCount(ctx context.Context, locale domain.Locale) (int, error) {
	resp, err := c.get(ctx, "/items", url.Values{"page": {"0"}, "page_size": {"1"}, "lang": {string(locale)}})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	total, err := strconv.Atoi(resp.Header.Get("X-Result-Total"))
	if err != nil {
		return 0, fmt.Errorf("parse X-Result-Total %q: %w", resp.Header.Get("X-Result-Total"), err)
	}
	return total, nil
}

// ItemsPage returns one page of items in the given locale
func (c *Client) ItemsPage(ctx context.Context, locale domain.Locale, page, pageSize int) ([]domain.ItemEntry, error) {
	params := url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
		"lang":      {string(locale)},
	}
	resp, err := c.get(ctx, "/items", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var items []item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode items page %d: %w", page, err)
	}

	res := make([]domain.ItemEntry, 0, len(items))
	for _, it := range items {
		res = append(res, domain.ItemEntry{ID: it.ID, Name: it.Name, Rarity: domain.ParseRarity(it.Rarity), Level: it.Level})
	}
	return res, nil
}

// get performs GET request, the caller closes the body of a successful response
func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	u := c.endpoint + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%w %d for %s: %s", ErrBadStatus, resp.StatusCode, u, strings.TrimSpace(string(body)))
	}
	return resp, nil
}
