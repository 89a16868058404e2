package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmitchellscott/wxdecode/station"
)

const testTAF = "TAF KJFK 121730Z 1218/1324 10010KT P6SM SCT250\n" +
	"  TEMPO 1220/1224 4SM -SHRA OVC020 PROB30 1302/1306 2SM TSRA BKN010CB"

func newTestProcessor(t *testing.T, format string) (*processor, *bytes.Buffer) {
	t.Helper()
	f := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/metar"):
			_, _ = w.Write([]byte(testMETAR + "\n"))
		case strings.HasPrefix(r.URL.Path, "/taf"):
			_, _ = w.Write([]byte(testTAF + "\n"))
		default:
			_, _ = w.Write([]byte("Site: New York/JF Kennedy Intl\nState: NY\nCountry: US\n"))
		}
	})
	var out bytes.Buffer
	return &processor{
		cfg:     &Config{HourThreshold: 200},
		fetcher: f,
		clock:   clockwork.NewFakeClockAt(renderNow),
		out:     &out,
		format:  format,
	}, &out
}

func TestProcessor_METAR(t *testing.T) {
	t.Parallel()
	p, out := newTestProcessor(t, formatText)
	ctx := context.Background()

	site := p.siteInfo(ctx, "KJFK")
	require.NoError(t, p.processMETAR(ctx, "KJFK", "", site))

	assert.Contains(t, out.String(), "----- Raw METAR -----\n"+testMETAR+"\n")
	assert.Contains(t, out.String(), "--- Decoded METAR ---\n")
	assert.Contains(t, out.String(), "Station: KJFK (New York/JF Kennedy Intl, NY, US)\n")
}

func TestProcessor_TAF_noRaw(t *testing.T) {
	t.Parallel()
	p, out := newTestProcessor(t, formatText)
	p.noRaw = true

	require.NoError(t, p.processTAF(context.Background(), "KJFK", "", SiteInfo{}))
	assert.NotContains(t, out.String(), "Raw TAF")
	assert.Contains(t, out.String(), "---- Decoded TAF ----\n")
	assert.Contains(t, out.String(), "3. 30% Probability")
}

func TestProcessor_TAF_splitProb(t *testing.T) {
	t.Parallel()
	p, out := newTestProcessor(t, formatJSON)
	p.splitProb = true

	require.NoError(t, p.processTAF(context.Background(), "KJFK", "", SiteInfo{}))
	var doc struct {
		TAF struct {
			Forecast []struct {
				Type string `json:"type"`
			} `json:"forecast"`
		} `json:"taf"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.TAF.Forecast, 3)
	assert.Equal(t, "PROB30", doc.TAF.Forecast[2].Type)
}

func TestProcessor_noDecode(t *testing.T) {
	t.Parallel()
	p, out := newTestProcessor(t, formatText)
	p.noDecode = true

	assert.Equal(t, SiteInfo{}, p.siteInfo(context.Background(), "KJFK"))
	require.NoError(t, p.processMETAR(context.Background(), "KJFK", "KJFK 121851Z 18012KT", SiteInfo{}))
	assert.Equal(t, "----- Raw METAR -----\nKJFK 121851Z 18012KT\n", out.String())
}

func TestProcessor_piped(t *testing.T) {
	t.Parallel()
	p, out := newTestProcessor(t, formatYAML)

	rep, ok := readReport(strings.NewReader("EGLL 121850Z 24008KT CAVOK 15/07 Q1018"))
	require.True(t, ok)
	require.NoError(t, p.processMETAR(context.Background(), rep.Station, rep.Raw, SiteInfo{}))
	assert.Contains(t, out.String(), "station: EGLL")
	assert.Contains(t, out.String(), "altimeter: hPa")
}

func TestProcessor_invalidStation(t *testing.T) {
	t.Parallel()
	p, _ := newTestProcessor(t, formatText)
	p.noRaw = true

	err := p.processMETAR(context.Background(), "QQQQ", "QQQQ 121850Z 24008KT", SiteInfo{})
	assert.ErrorIs(t, err, station.ErrInvalidStation)
}
