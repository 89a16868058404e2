package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// ErrNoData is returned when the weather service answers with an empty body.
var ErrNoData = errors.New("no data")

// Fetcher retrieves raw reports and station details over HTTP.
type Fetcher struct {
	client *http.Client
	cfg    *Config
}

// NewFetcher builds a Fetcher whose requests time out per the config.
func NewFetcher(cfg *Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		cfg:    cfg,
	}
}

// fetchData fetches data from a URL template for a given station code
func (f *Fetcher) fetchData(ctx context.Context, urlTemplate, stationCode, dataType string) (string, error) {
	target := fmt.Sprintf(urlTemplate, url.QueryEscape(stationCode))
	slog.Debug("fetching report", "type", dataType, "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("error building %s request: %w", dataType, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching %s: %w", dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	data := strings.TrimSpace(string(body))
	if data == "" {
		return "", fmt.Errorf("%w: %s for station %s", ErrNoData, dataType, stationCode)
	}
	return data, nil
}

// FetchMETAR fetches the raw METAR for a given station code
func (f *Fetcher) FetchMETAR(ctx context.Context, stationCode string) (string, error) {
	return f.fetchData(ctx, f.cfg.MetarURL, stationCode, "METAR")
}

// FetchTAF fetches the raw TAF for a given station code
func (f *Fetcher) FetchTAF(ctx context.Context, stationCode string) (string, error) {
	return f.fetchData(ctx, f.cfg.TafURL, stationCode, "TAF")
}

// SiteInfo names the airport a station belongs to.
type SiteInfo struct {
	Name    string `json:"name" yaml:"name"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

func (s SiteInfo) String() string {
	var parts []string
	for _, p := range []string{s.Name, s.State, s.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

var (
	siteRegex    = regexp.MustCompile(`Site:\s+(.+)`)
	stateRegex   = regexp.MustCompile(`State:\s+(.+)`)
	countryRegex = regexp.MustCompile(`Country:\s+(.+)`)
)

// FetchSiteInfo fetches site information for a station from the station
// info endpoint, which answers in "Key: value" text lines.
func (f *Fetcher) FetchSiteInfo(ctx context.Context, stationCode string) (SiteInfo, error) {
	text, err := f.fetchData(ctx, f.cfg.StationURL, stationCode, "station info")
	if err != nil {
		return SiteInfo{}, err
	}

	info := SiteInfo{
		Name:    firstSubmatch(siteRegex, text),
		State:   firstSubmatch(stateRegex, text),
		Country: firstSubmatch(countryRegex, text),
	}
	if info.Name == "" {
		return SiteInfo{}, fmt.Errorf("could not extract site name from response")
	}
	return info, nil
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
