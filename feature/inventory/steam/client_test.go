package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testConfig returns a client config pointed at the test server with
// near-zero delays so retry tests run fast.
func testConfig(baseURL string) Config {
	return Config{
		BaseURL:               baseURL,
		AppID:                 "730",
		ContextID:             "2",
		Language:              "english",
		PageSize:              2000,
		MaxRetries:            2,
		RequestTimeoutSeconds: 5,
		BaseBackoffMillis:     1,
		MaxBackoffMillis:      2,
		PageDelayMillis:       1,
	}
}

func TestFetchAllPagination(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)
		if r.URL.Query().Get("start_assetid") == "" {
			fmt.Fprint(w, `{
				"success": 1,
				"assets": [
					{"assetid": "101", "classid": "1", "instanceid": "0", "amount": "1"},
					{"assetid": "102", "classid": "2", "instanceid": "0", "amount": "1"}
				],
				"descriptions": [
					{"classid": "1", "instanceid": "0", "name": "AK-47 | Redline", "market_name": "AK-47 | Redline (Field-Tested)", "market_hash_name": "AK-47 | Redline (Field-Tested)", "tradable": 1, "marketable": 1},
					{"classid": "2", "instanceid": "0", "name": "Glock-18 | Fade", "market_name": "Glock-18 | Fade (Factory New)", "market_hash_name": "Glock-18 | Fade (Factory New)", "tradable": 1, "marketable": 1}
				],
				"more_items": 1,
				"last_assetid": "102",
				"total_inventory_count": 3
			}`)
			return
		}
		assert.Equal(t, "102", r.URL.Query().Get("start_assetid"))
		fmt.Fprint(w, `{
			"success": 1,
			"assets": [{"assetid": "103", "classid": "1", "instanceid": "0", "amount": "1"}],
			"descriptions": [
				{"classid": "1", "instanceid": "0", "name": "AK-47 | Redline", "market_name": "AK-47 | Redline (Field-Tested)", "market_hash_name": "AK-47 | Redline (Field-Tested)", "tradable": 1, "marketable": 1}
			],
			"total_inventory_count": 3
		}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	inv, err := client.FetchAll(context.Background(), "76561198000000001")

	require.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Len(t, inv.Items, 3)
	assert.Equal(t, 3, inv.TotalCount)
	assert.Len(t, inv.RawPages, 2)
	// Cursor order is preserved
	assert.Equal(t, "101", inv.Items[0].AssetID)
	assert.Equal(t, "103", inv.Items[2].AssetID)
}

func TestFetchAllPrivateInventoryNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	_, err := client.FetchAll(context.Background(), "76561198000000001")

	require.Error(t, err)
	serr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindPrivateInventory, serr.Kind)
	// Permanent failures must not be retried
	assert.Equal(t, int32(1), attempts.Load())
}

func TestFetchAllRateLimitedRetriesThenSurfaces(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	client := NewClient(cfg, zap.NewNop())
	_, err := client.FetchAll(context.Background(), "76561198000000001")

	require.Error(t, err)
	serr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindRateLimited, serr.Kind)
	// maxRetries+1 attempts in total
	assert.Equal(t, int32(cfg.MaxRetries+1), attempts.Load())
}

func TestFetchAllServerErrorRecovers(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"success": 1, "assets": [], "descriptions": [], "total_inventory_count": 0}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	inv, err := client.FetchAll(context.Background(), "76561198000000001")

	require.NoError(t, err)
	assert.Empty(t, inv.Items)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestFetchAllMalformedPayloadNotRetried(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		fmt.Fprint(w, `{"success": 1, "assets": [`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	_, err := client.FetchAll(context.Background(), "76561198000000001")

	require.Error(t, err)
	serr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidResponse, serr.Kind)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestFetchAllApplicationLevelError(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		fmt.Fprint(w, `{"success": 0, "error": "inventory temporarily unavailable"}`)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), zap.NewNop())
	_, err := client.FetchAll(context.Background(), "76561198000000001")

	require.Error(t, err)
	serr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindExternalAPIError, serr.Kind)
	assert.Equal(t, "inventory temporarily unavailable", serr.Message)
	// HTTP 200 with success=0 is a contract violation, not a flake
	assert.Equal(t, int32(1), attempts.Load())
}

func TestBackoffDelayBounds(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.BaseBackoffMillis = 2000
	cfg.MaxBackoffMillis = 30000
	client := NewClient(cfg, zap.NewNop())

	for n := uint(0); n < 12; n++ {
		base := cfg.baseBackoff() << n
		if base > cfg.maxBackoff() || base <= 0 {
			base = cfg.maxBackoff()
		}
		for i := 0; i < 50; i++ {
			d := client.backoffDelay(n, nil, nil)
			assert.GreaterOrEqual(t, d, time.Duration(float64(base)*0.5),
				"attempt %d: delay below jitter floor", n)
			assert.Less(t, d, base+1, "attempt %d: delay above base", n)
			assert.LessOrEqual(t, d, cfg.maxBackoff(), "attempt %d: delay above ceiling", n)
		}
	}
}
