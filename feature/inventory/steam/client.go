package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// Client fetches a user's full inventory from the Steam community endpoint.
//
// Pagination is sequential: Steam's rate ceiling, not local compute, is the
// binding constraint, so pages are never fetched in parallel. Each page
// request carries its own timeout and goes through a bounded retry loop with
// jittered exponential backoff. A fixed delay separates page requests.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	appID          string
	contextID      string
	language       string
	pageSize       int
	maxRetries     uint
	requestTimeout time.Duration
	baseBackoff    time.Duration
	maxBackoff     time.Duration
	pageDelay      time.Duration
	logger         *zap.Logger
}

// NewClient creates a fetch client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{},
		baseURL:        cfg.BaseURL,
		appID:          cfg.AppID,
		contextID:      cfg.ContextID,
		language:       cfg.Language,
		pageSize:       cfg.PageSize,
		maxRetries:     uint(cfg.MaxRetries),
		requestTimeout: cfg.requestTimeout(),
		baseBackoff:    cfg.baseBackoff(),
		maxBackoff:     cfg.maxBackoff(),
		pageDelay:      cfg.pageDelay(),
		logger:         logger,
	}
}

// FetchAll retrieves every page of the inventory and returns the normalized
// item list. All expected failure modes come back as a *Error; the previous
// pages are discarded on failure so callers never see a partial inventory.
func (c *Client) FetchAll(ctx context.Context, steamID string) (*Inventory, error) {
	inv := &Inventory{}
	startAssetID := ""

	for {
		page, raw, err := c.fetchPage(ctx, steamID, startAssetID)
		if err != nil {
			return nil, err
		}

		inv.RawPages = append(inv.RawPages, raw)
		inv.Items = append(inv.Items, normalizePage(page, steamID)...)
		if page.TotalInventoryCount > 0 {
			inv.TotalCount = page.TotalInventoryCount
		}

		if page.MoreItems != 1 || page.LastAssetID == "" {
			break
		}
		startAssetID = page.LastAssetID

		// Fixed pause between pages, distinct from retry backoff.
		select {
		case <-ctx.Done():
			return nil, newError(KindNetworkError, "fetch canceled between pages", ctx.Err())
		case <-time.After(c.pageDelay):
		}
	}

	if inv.TotalCount == 0 {
		inv.TotalCount = len(inv.Items)
	}
	return inv, nil
}

// fetchPage requests a single page through the retry loop. Permanent
// failures (403, malformed payloads, application-level errors) abort
// immediately; rate limits and network errors retry up to maxRetries times.
func (c *Client) fetchPage(ctx context.Context, steamID, startAssetID string) (*inventoryPage, []byte, error) {
	var page *inventoryPage
	var raw []byte

	err := retry.Do(
		func() error {
			p, body, err := c.requestPage(ctx, steamID, startAssetID)
			if err != nil {
				return err
			}
			page = p
			raw = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetries+1),
		retry.DelayType(c.backoffDelay),
		retry.RetryIf(isTransient),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("Retrying inventory page",
				zap.String("steam_id", steamID),
				zap.Uint("failed_attempt", n+1),
				zap.Error(err))
		}),
	)
	if err != nil {
		if serr, ok := AsError(err); ok {
			return nil, nil, serr
		}
		// Context cancellation and anything else unexpected surface as a
		// transient network failure to keep the caller contract uniform.
		return nil, nil, newError(KindNetworkError, "inventory page request failed", err)
	}
	return page, raw, nil
}

// backoffDelay computes base·2^n scaled by a uniform jitter in [0.5, 1.0),
// capped at maxBackoff regardless of the computed value.
func (c *Client) backoffDelay(n uint, _ error, _ *retry.Config) time.Duration {
	base := c.baseBackoff << n
	if base > c.maxBackoff || base <= 0 {
		base = c.maxBackoff
	}
	jitter := 0.5 + rand.Float64()/2
	return time.Duration(float64(base) * jitter)
}

// isTransient decides whether an attempt error is worth retrying. Unknown
// error types (transport-level surprises) are treated as transient.
func isTransient(err error) bool {
	if serr, ok := AsError(err); ok {
		return serr.Transient()
	}
	return true
}

// requestPage performs one HTTP attempt and classifies the outcome.
func (c *Client) requestPage(ctx context.Context, steamID, startAssetID string) (*inventoryPage, []byte, error) {
	reqURL := fmt.Sprintf("%s/inventory/%s/%s/%s?l=%s&count=%d",
		c.baseURL, steamID, c.appID, c.contextID, url.QueryEscape(c.language), c.pageSize)
	if startAssetID != "" {
		reqURL += "&start_assetid=" + url.QueryEscape(startAssetID)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil, newError(KindInvalidResponse, "failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures flow through the same retry path.
		return nil, nil, newError(KindNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, newError(KindNetworkError, "failed to read response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, nil, newError(KindPrivateInventory, "inventory is private", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, nil, newError(KindRateLimited, "rate limited by steam", nil)
	case resp.StatusCode >= 500:
		return nil, nil, newError(KindNetworkError, fmt.Sprintf("steam returned status %d", resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return nil, nil, newError(KindInvalidResponse, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	var page inventoryPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, nil, newError(KindInvalidResponse, "malformed inventory payload", err)
	}

	if page.Success != 1 {
		msg := page.Error
		if msg == "" {
			msg = "steam reported an unspecified failure"
		}
		return nil, nil, newError(KindExternalAPIError, msg, nil)
	}

	return &page, body, nil
}
