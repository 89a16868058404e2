package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/rmitchellscott/wxdecode/parser"
)

// processor fetches, decodes and prints reports for one invocation.
type processor struct {
	cfg       *Config
	fetcher   *Fetcher
	clock     clockwork.Clock
	out       io.Writer
	format    string
	noRaw     bool
	noDecode  bool
	splitProb bool
}

func (p *processor) parserOptions() []parser.Option {
	opts := []parser.Option{
		parser.WithClock(p.clock),
		parser.WithHourThreshold(p.cfg.HourThreshold),
	}
	if p.splitProb {
		opts = append(opts, parser.WithProbPolicy(parser.ProbStandalone))
	}
	return opts
}

// siteInfo looks up the station name. Failures are logged and yield an
// empty SiteInfo.
func (p *processor) siteInfo(ctx context.Context, stationCode string) SiteInfo {
	if p.noDecode {
		return SiteInfo{}
	}
	info, err := p.fetcher.FetchSiteInfo(ctx, stationCode)
	if err != nil {
		slog.Warn("could not fetch site info", "station", stationCode, "error", err)
		return SiteInfo{}
	}
	return info
}

// processMETAR decodes and displays a METAR. An empty raw report is fetched
// for the station first.
func (p *processor) processMETAR(ctx context.Context, stationCode, raw string, site SiteInfo) error {
	if raw == "" {
		var err error
		if raw, err = p.fetcher.FetchMETAR(ctx, stationCode); err != nil {
			return fmt.Errorf("error fetching METAR: %w", err)
		}
	}

	if p.format != formatText {
		data, units, err := parser.ParseMetar(stationCode, raw, p.parserOptions()...)
		if err != nil {
			return fmt.Errorf("error decoding METAR: %w", err)
		}
		return writeStructured(p.out, decodedMETAR{Site: site, Units: units, Data: data}, p.format)
	}

	if !p.noRaw {
		functionColor.Fprintln(p.out, "----- Raw METAR -----")
		fmt.Fprintln(p.out, raw)
		if !p.noDecode {
			fmt.Fprintln(p.out)
		}
	}
	if p.noDecode {
		return nil
	}

	data, units, err := parser.ParseMetar(stationCode, raw, p.parserOptions()...)
	if err != nil {
		return fmt.Errorf("error decoding METAR: %w", err)
	}
	functionColor.Fprintln(p.out, "--- Decoded METAR ---")
	fmt.Fprint(p.out, FormatMETAR(data, units, site, p.clock.Now()))
	return nil
}

// processTAF decodes and displays a TAF. An empty raw report is fetched for
// the station first.
func (p *processor) processTAF(ctx context.Context, stationCode, raw string, site SiteInfo) error {
	if raw == "" {
		var err error
		if raw, err = p.fetcher.FetchTAF(ctx, stationCode); err != nil {
			return fmt.Errorf("error fetching TAF: %w", err)
		}
	}

	if p.format != formatText {
		data, units, err := parser.ParseTaf(stationCode, raw, p.parserOptions()...)
		if err != nil {
			return fmt.Errorf("error decoding TAF: %w", err)
		}
		return writeStructured(p.out, decodedTAF{Site: site, Units: units, Data: data}, p.format)
	}

	if !p.noRaw {
		functionColor.Fprintln(p.out, "------ Raw TAF ------")
		fmt.Fprintln(p.out, raw)
		if !p.noDecode {
			fmt.Fprintln(p.out)
		}
	}
	if p.noDecode {
		return nil
	}

	data, units, err := parser.ParseTaf(stationCode, raw, p.parserOptions()...)
	if err != nil {
		return fmt.Errorf("error decoding TAF: %w", err)
	}
	functionColor.Fprintln(p.out, "---- Decoded TAF ----")
	fmt.Fprint(p.out, FormatTAF(data, units, site, p.clock.Now()))
	return nil
}
