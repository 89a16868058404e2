package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/fatih/color"
	"github.com/jonboulle/clockwork"
)

func main() {
	os.Exit(run())
}

// run parses flags, decodes the requested reports and returns the exit code.
func run() int {
	// Define command-line flags
	metarOnly := flag.Bool("metar", false, "Show only METAR")
	tafOnly := flag.Bool("taf", false, "Show only TAF")
	noRawFlag := flag.Bool("no-raw", false, "Hide raw data")
	noDecodeFlag := flag.Bool("no-decode", false, "Show only raw data without decoding")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	splitProbFlag := flag.Bool("split-prob", false, "Start a new TAF period at every PROB group")
	formatFlag := flag.String("format", formatText, "Output format: text, json or yaml")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	if !slices.Contains([]string{formatText, formatJSON, formatYAML}, *formatFlag) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *formatFlag)
		return 2
	}
	if *flagNoColor || *formatFlag != formatText {
		color.NoColor = true // disables colorized output globally
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := &processor{
		cfg:       cfg,
		fetcher:   NewFetcher(cfg),
		clock:     clockwork.NewRealClock(),
		out:       os.Stdout,
		format:    *formatFlag,
		noRaw:     *noRawFlag,
		noDecode:  *noDecodeFlag,
		splitProb: *splitProbFlag,
	}

	// First check stdin for piped data
	if piped, ok := readFromStdin(); ok {
		site := p.siteInfo(ctx, piped.Station)
		if piped.Kind == kindTAF {
			err = p.processTAF(ctx, piped.Station, piped.Raw, site)
		} else {
			err = p.processMETAR(ctx, piped.Station, piped.Raw, site)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var stationCode string
	if args := flag.Args(); len(args) > 0 {
		stationCode, err = getStationCodeFromArgs(args)
	} else {
		stationCode, err = promptForStationCode(os.Stdin, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	site := p.siteInfo(ctx, stationCode)
	failed := false

	// Fetch and display METAR if requested or by default
	if !*tafOnly {
		if err := p.processMETAR(ctx, stationCode, "", site); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}

	// Fetch and display TAF if requested or by default
	if !*metarOnly {
		// Add a line break if we also displayed METAR
		if !*tafOnly && *formatFlag == formatText {
			fmt.Print("\n----------------------------------\n\n")
		}
		if err := p.processTAF(ctx, stationCode, "", site); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}

	if failed {
		return 1
	}
	return 0
}
