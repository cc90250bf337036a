package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lrucache/internal/cache"
)

func TestCollector_CountsCacheEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := NewCollector[string]("test", reg)
	require.NoError(t, err)

	c := cache.Must[string, string](2, cache.WithListener[string, string](col))
	require.NoError(t, col.TrackSize(c.Len))

	c.Put("A", "va")
	c.Put("B", "vb")
	c.Get("A")
	c.Get("X")
	c.Put("C", "vc")

	assert.Equal(t, 1.0, testutil.ToFloat64(col.Hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.Misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.Evictions))

	n, err := testutil.GatherAndCount(reg, "test_cache_entries")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector[string]("dup", reg)
	require.NoError(t, err)

	_, err = NewCollector[string]("dup", reg)
	assert.Error(t, err)
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := NewCollector[int]("demo", reg)
	require.NoError(t, err)
	col.OnMiss(1)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "demo_cache_misses_total 1")
}
