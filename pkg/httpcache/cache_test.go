package httpcache

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCacheGetSet(t *testing.T) {
	c, err := New(t.TempDir(), time.Hour, testLogger())
	require.NoError(t, err)

	_, found := c.Get("https://example.com/a")
	assert.False(t, found)

	c.Set("https://example.com/a", []byte("payload"))

	got, found := c.Get("https://example.com/a")
	require.True(t, found)
	assert.Equal(t, []byte("payload"), got)

	// Different URLs hash to different keys.
	_, found = c.Get("https://example.com/b")
	assert.False(t, found)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	c1, err := New(dir, time.Hour, testLogger())
	require.NoError(t, err)
	c1.Set("https://example.com/page", []byte("persisted"))
	require.NoError(t, c1.Close())

	c2, err := New(dir, time.Hour, testLogger())
	require.NoError(t, err)
	got, found := c2.Get("https://example.com/page")
	require.True(t, found)
	assert.Equal(t, []byte("persisted"), got)
}

func TestCacheExpiredEntriesDropped(t *testing.T) {
	dir := t.TempDir()

	c1, err := New(dir, time.Nanosecond, testLogger())
	require.NoError(t, err)
	c1.Set("https://example.com/stale", []byte("old"))
	time.Sleep(5 * time.Millisecond)

	_, found := c1.Get("https://example.com/stale")
	assert.False(t, found, "expired entry should not be served")
	require.NoError(t, c1.Close())

	c2, err := New(dir, time.Hour, testLogger())
	require.NoError(t, err)
	_, found = c2.Get("https://example.com/stale")
	assert.False(t, found, "expired entry should not survive the snapshot")
}

func TestTransportCachesGETs(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("body-" + r.URL.Path))
	}))
	defer srv.Close()

	cache, err := New(t.TempDir(), time.Hour, testLogger())
	require.NoError(t, err)

	client := &http.Client{Transport: &Transport{Cache: cache, Logger: testLogger()}}

	fetch := func() (string, string) {
		resp, err := client.Get(srv.URL + "/page")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		return string(body), resp.Header.Get("X-From-Cache")
	}

	body, fromCache := fetch()
	assert.Equal(t, "body-/page", body)
	assert.Empty(t, fromCache)

	body, fromCache = fetch()
	assert.Equal(t, "body-/page", body)
	assert.Equal(t, "true", fromCache)
	assert.Equal(t, 1, hits, "second GET should be served from cache")
}

func TestTransportPassesThroughPOST(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("token"))
	}))
	defer srv.Close()

	cache, err := New(t.TempDir(), time.Hour, testLogger())
	require.NoError(t, err)

	client := &http.Client{Transport: &Transport{Cache: cache, Logger: testLogger()}}

	for range 2 {
		resp, err := client.Post(srv.URL+"/oauth/token", "application/x-www-form-urlencoded", http.NoBody)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
	}

	assert.Equal(t, 2, hits, "POST requests must never be cached")
}

func TestTransportSkipsNon200(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cache, err := New(t.TempDir(), time.Hour, testLogger())
	require.NoError(t, err)

	client := &http.Client{Transport: &Transport{Cache: cache, Logger: testLogger()}}

	for range 2 {
		resp, err := client.Get(srv.URL + "/flaky")
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	}

	assert.Equal(t, 2, hits, "error responses must not be cached")
}
