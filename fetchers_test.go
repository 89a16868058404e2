package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) *Fetcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFetcher(&Config{
		MetarURL:    srv.URL + "/metar?ids=%s",
		TafURL:      srv.URL + "/taf?ids=%s",
		StationURL:  srv.URL + "/stationinfo?ids=%s",
		HTTPTimeout: time.Second,
	})
}

func TestFetcher_FetchMETAR(t *testing.T) {
	t.Parallel()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/metar", r.URL.Path)
		assert.Equal(t, "KJFK", r.URL.Query().Get("ids"))
		_, _ = w.Write([]byte("KJFK 121851Z 18012KT 10SM FEW250 22/12 A3002\n"))
	})

	raw, err := f.FetchMETAR(context.Background(), "KJFK")
	require.NoError(t, err)
	assert.Equal(t, "KJFK 121851Z 18012KT 10SM FEW250 22/12 A3002", raw)
}

func TestFetcher_FetchTAF_empty(t *testing.T) {
	t.Parallel()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/taf", r.URL.Path)
		_, _ = w.Write([]byte("  \n"))
	})

	_, err := f.FetchTAF(context.Background(), "KJFK")
	require.ErrorIs(t, err, ErrNoData)
}

func TestFetcher_badStatus(t *testing.T) {
	t.Parallel()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := f.FetchMETAR(context.Background(), "KJFK")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetcher_cancelled(t *testing.T) {
	t.Parallel()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("KJFK"))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.FetchMETAR(ctx, "KJFK")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_FetchSiteInfo(t *testing.T) {
	t.Parallel()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Site: New York/JF Kennedy Intl\nState: NY\nCountry: US\n"))
	})

	info, err := f.FetchSiteInfo(context.Background(), "KJFK")
	require.NoError(t, err)
	assert.Equal(t, SiteInfo{Name: "New York/JF Kennedy Intl", State: "NY", Country: "US"}, info)
	assert.Equal(t, "New York/JF Kennedy Intl, NY, US", info.String())
}

func TestFetcher_FetchSiteInfo_noSite(t *testing.T) {
	t.Parallel()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("State: NY\n"))
	})

	_, err := f.FetchSiteInfo(context.Background(), "KJFK")
	assert.Error(t, err)
}
