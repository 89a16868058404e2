package main

import (
	"regexp"
	"slices"
	"strings"
)

// WeatherCode describes one part of a present weather group. Position
// orders the parts when a group is read out: qualifiers, phenomena, the
// showers descriptor, then the vicinity marker.
type WeatherCode struct {
	Description string
	Position    int
}

// Present weather qualifiers and phenomena
var weatherCodes = map[string]WeatherCode{
	"VC":  {Description: "in the vicinity", Position: 3},
	"+":   {Description: "heavy", Position: 0},
	"-":   {Description: "light", Position: 0},
	"RE":  {Description: "recent", Position: 0},
	"MI":  {Description: "shallow", Position: 0},
	"PR":  {Description: "partial", Position: 0},
	"BC":  {Description: "patches of", Position: 0},
	"DR":  {Description: "low drifting", Position: 0},
	"BL":  {Description: "blowing", Position: 0},
	"FZ":  {Description: "freezing", Position: 0},
	"SH":  {Description: "showers", Position: 2},
	"TS":  {Description: "thunderstorm", Position: 1},
	"DZ":  {Description: "drizzle", Position: 1},
	"RA":  {Description: "rain", Position: 1},
	"SN":  {Description: "snow", Position: 1},
	"SG":  {Description: "snow grains", Position: 1},
	"IC":  {Description: "ice crystals", Position: 1},
	"PL":  {Description: "ice pellets", Position: 1},
	"GR":  {Description: "hail", Position: 1},
	"GS":  {Description: "small hail", Position: 1},
	"UP":  {Description: "unknown precipitation", Position: 1},
	"BR":  {Description: "mist", Position: 1},
	"FG":  {Description: "fog", Position: 1},
	"FU":  {Description: "smoke", Position: 1},
	"VA":  {Description: "volcanic ash", Position: 1},
	"DU":  {Description: "widespread dust", Position: 1},
	"SA":  {Description: "sand", Position: 1},
	"HZ":  {Description: "haze", Position: 1},
	"PY":  {Description: "spray", Position: 1},
	"PO":  {Description: "dust whirls", Position: 1},
	"SQ":  {Description: "squalls", Position: 1},
	"FC":  {Description: "funnel cloud", Position: 1},
	"+FC": {Description: "tornado/waterspout", Position: 1},
	"SS":  {Description: "sandstorm", Position: 1},
	"DS":  {Description: "duststorm", Position: 1},
}

// Special aerodrome conditions
var specialConditions = map[string]string{
	"NOSIG": "no significant changes expected",
	"CAVOK": "ceiling and visibility OK",
	"NSW":   "no significant weather",
	"SKC":   "sky clear",
	"CLR":   "sky clear",
}

// TAF forecast types
var forecastTypes = map[string]string{
	"FROM":  "From",
	"BECMG": "Becoming",
	"TEMPO": "Temporary",
	"INTER": "Intermittent",
}

var rvrRegex = regexp.MustCompile(`^R(\d{2}[CLR]?)/([MP]?\d{4})(?:V([MP]?\d{4}))?(FT)?/?([DNU])?$`)

var rvrTrends = map[string]string{
	"D": " (decreasing)",
	"U": " (increasing)",
	"N": " (no change)",
}

// describeWeather reads out a present weather group such as -SHRA or VCTS.
// ok is false when any part of the group is not a weather code.
func describeWeather(code string) (string, bool) {
	if wc, found := weatherCodes[code]; found && wc.Position != 0 {
		return wc.Description, true
	}

	rest := code
	var parts []WeatherCode
	if strings.HasPrefix(rest, "+FC") {
		parts = append(parts, weatherCodes["+FC"])
		rest = rest[3:]
	} else if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		parts = append(parts, weatherCodes[rest[:1]])
		rest = rest[1:]
	}
	if rest == "" || len(rest)%2 != 0 {
		return "", false
	}
	for i := 0; i < len(rest); i += 2 {
		wc, found := weatherCodes[rest[i:i+2]]
		if !found {
			return "", false
		}
		parts = append(parts, wc)
	}

	slices.SortStableFunc(parts, func(a, b WeatherCode) int { return a.Position - b.Position })
	words := make([]string, 0, len(parts))
	for i, p := range parts {
		// Two phenomena in a row read as "thunderstorm with rain".
		if i > 0 && p.Position == 1 && parts[i-1].Position == 1 {
			words = append(words, "with")
		}
		words = append(words, p.Description)
	}
	return strings.Join(words, " "), true
}

// describeOther reads out a leftover token, falling back to the token itself.
func describeOther(tok string) string {
	if desc, ok := specialConditions[tok]; ok {
		return desc
	}
	if desc, ok := describeWeather(tok); ok {
		return desc
	}
	return tok
}

// describeRVR reads out a runway visual range group, e.g. R04R/2000V4000FT/U.
func describeRVR(group string) string {
	m := rvrRegex.FindStringSubmatch(group)
	if m == nil {
		return group
	}
	unit := "meters"
	if m[4] != "" {
		unit = "feet"
	}
	desc := "Runway " + m[1] + ": " + rvrRange(m[2])
	if m[3] != "" {
		desc += " to " + rvrRange(m[3])
	}
	return desc + " " + unit + rvrTrends[m[5]]
}

func rvrRange(v string) string {
	switch {
	case strings.HasPrefix(v, "P"):
		return "more than " + strings.TrimLeft(v[1:], "0")
	case strings.HasPrefix(v, "M"):
		return "less than " + strings.TrimLeft(v[1:], "0")
	}
	return strings.TrimLeft(v, "0")
}
