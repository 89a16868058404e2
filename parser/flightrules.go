package parser

import (
	"fmt"
	"strings"

	"github.com/rmitchellscott/wxdecode/value"
)

// FlightRules is the flight category derived from visibility and ceiling.
type FlightRules int

const (
	VFR FlightRules = iota
	MVFR
	IFR
	LIFR
)

var flightRuleNames = []string{"VFR", "MVFR", "IFR", "LIFR"}

func (f FlightRules) String() string {
	if f < 0 || int(f) >= len(flightRuleNames) {
		return fmt.Sprintf("FlightRules(%d)", int(f))
	}
	return flightRuleNames[f]
}

func (f FlightRules) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FlightRules) UnmarshalText(b []byte) error {
	for i, name := range flightRuleNames {
		if string(b) == name {
			*f = FlightRules(i)
			return nil
		}
	}
	return fmt.Errorf("unknown flight rules %q", b)
}

// noCeiling is used when no layer forms a ceiling.
const noCeiling = 99

// metersToMiles converts four-digit metric visibilities to statute miles.
const metersToMiles = 0.000621371

// Classify returns the flight rules for a visibility (in statute miles, or
// meters for four-digit values) and ceiling (hundreds of feet). A missing
// visibility classifies as IFR.
func Classify(vis *value.Number, ceiling *Cloud) FlightRules {
	if vis == nil {
		return IFR
	}
	var visibility int
	switch {
	case vis.Repr == "CAVOK" || strings.HasPrefix(vis.Repr, "P6"):
		visibility = 10
	case strings.HasPrefix(vis.Repr, "M"):
		visibility = 0
	case vis.Value == nil:
		return IFR
	case len(vis.Repr) == 4:
		visibility = int(*vis.Value * metersToMiles)
	default:
		visibility = int(*vis.Value)
	}

	cld := noCeiling
	if ceiling != nil && ceiling.Altitude != nil {
		cld = *ceiling.Altitude
	}

	switch {
	case visibility < 1 || cld < 5:
		return LIFR
	case visibility < 3 || cld < 10:
		return IFR
	case visibility <= 5 || cld <= 30:
		return MVFR
	}
	return VFR
}
