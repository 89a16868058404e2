package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rmitchellscott/wxdecode/station"
)

// reportKind tells which decoder a raw report goes through.
type reportKind int

const (
	kindMETAR reportKind = iota
	kindTAF
)

// pipedReport is a raw report read from stdin.
type pipedReport struct {
	Station string
	Raw     string
	Kind    reportKind
}

// readFromStdin reads a report from stdin if input is being piped in
func readFromStdin() (pipedReport, bool) {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return pipedReport{}, false
	}
	return readReport(os.Stdin)
}

// readReport reads one report and works out its station and kind from the
// leading tokens. TAFs may span several lines, so all input is joined.
func readReport(r io.Reader) (pipedReport, bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		return pipedReport{}, false
	}
	raw := strings.Join(strings.Fields(string(data)), " ")
	if raw == "" {
		return pipedReport{}, false
	}

	rep := pipedReport{Raw: raw, Kind: kindMETAR}
	for _, tok := range strings.Fields(raw) {
		switch tok {
		case "TAF":
			rep.Kind = kindTAF
			continue
		case "METAR", "SPECI", "AMD", "COR":
			continue
		}
		rep.Station = strings.ToUpper(tok)
		break
	}
	return rep, rep.Station != ""
}

// getStationCodeFromArgs gets station code from command-line args
func getStationCodeFromArgs(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no station code provided")
	}
	return station.Validate(strings.ToUpper(args[0]))
}

// promptForStationCode prompts the user for a station code
func promptForStationCode(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter ICAO airport code (e.g., KJFK, EGLL): ")
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return station.Validate(strings.ToUpper(input))
}
