// Package station validates ICAO station idents and resolves which regional
// report convention a station uses.
package station

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Format is the regional report convention used by a station.
type Format int

const (
	// NorthAmerican stations report altimeter in inHg and visibility in statute miles.
	NorthAmerican Format = iota + 1
	// International stations report altimeter in hPa and visibility in meters.
	International
)

func (f Format) String() string {
	switch f {
	case NorthAmerican:
		return "NA"
	case International:
		return "IN"
	default:
		return "unknown"
	}
}

// ErrInvalidStation is matched by every error returned for a bad station ident.
var ErrInvalidStation = errors.New("invalid station")

// InvalidStationError describes why a station ident was rejected.
type InvalidStationError struct {
	Station string
	Reason  string
}

func (e *InvalidStationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Station)
}

func (e *InvalidStationError) Is(target error) bool {
	return target == ErrInvalidStation
}

// Region prefixes. Central America is split between the conventions, so the
// "M" region (and TJ) is only resolvable from the first two characters.
var (
	naRegions  = []string{"C", "K", "P", "T"}
	inRegions  = []string{"A", "B", "D", "E", "F", "G", "H", "L", "N", "O", "R", "S", "U", "V", "W", "Y", "Z"}
	mnaRegions = []string{"MB", "MM", "MT", "MY", "TJ"}
	minRegions = []string{"MD", "MG", "MH", "MK", "MN", "MP", "MR", "MS", "MU", "MW", "MZ"}
)

// Validate trims the ident and checks that it is four characters long with a
// recognised region prefix. It returns the trimmed ident.
func Validate(station string) (string, error) {
	station = strings.TrimSpace(station)
	if len(station) != 4 {
		return station, &InvalidStationError{Station: station, Reason: "ICAO station idents must be four characters long"}
	}
	if _, err := formatFor(station); err != nil {
		return station, err
	}
	return station, nil
}

// Resolve returns the report convention used by a station.
func Resolve(station string) (Format, error) {
	station, err := Validate(station)
	if err != nil {
		return 0, err
	}
	f, _ := formatFor(station)
	slog.Debug("resolved station format", "station", station, "format", f.String())
	return f, nil
}

// UsesNAFormat reports whether the station uses the North American convention.
func UsesNAFormat(station string) (bool, error) {
	f, err := Resolve(station)
	if err != nil {
		return false, err
	}
	return f == NorthAmerican, nil
}

func formatFor(station string) (Format, error) {
	switch {
	case slices.Contains(naRegions, station[:1]):
		return NorthAmerican, nil
	case slices.Contains(inRegions, station[:1]):
		return International, nil
	case slices.Contains(mnaRegions, station[:2]):
		return NorthAmerican, nil
	case slices.Contains(minRegions, station[:2]):
		return International, nil
	}
	return 0, &InvalidStationError{Station: station, Reason: "station ICAO doesn't start with a recognized character set"}
}
