package parser

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/rmitchellscott/wxdecode/station"
	"github.com/rmitchellscott/wxdecode/value"
)

// TafLine is one forecast period of a TAF.
type TafLine struct {
	Type        string          `json:"type" yaml:"type"`
	StartTime   value.Timestamp `json:"start_time" yaml:"start_time"`
	EndTime     value.Timestamp `json:"end_time" yaml:"end_time"`
	Probability *value.Number   `json:"probability" yaml:"probability"`
	Raw         string          `json:"raw" yaml:"raw"`
	Sanitized   string          `json:"sanitized" yaml:"sanitized"`
	Wind        Wind            `json:"wind" yaml:"wind"`
	WindShear   string          `json:"wind_shear,omitempty" yaml:"wind_shear,omitempty"`
	Visibility  *value.Number   `json:"visibility" yaml:"visibility"`
	Altimeter   *value.Number   `json:"altimeter" yaml:"altimeter"`
	Clouds      []Cloud         `json:"clouds" yaml:"clouds"`
	Icing       []string        `json:"icing" yaml:"icing"`
	Turbulence  []string        `json:"turbulence" yaml:"turbulence"`
	Other       []string        `json:"other" yaml:"other"`
	FlightRules FlightRules     `json:"flight_rules" yaml:"flight_rules"`
}

// TafData is a decoded TAF.
type TafData struct {
	Raw       string          `json:"raw" yaml:"raw"`
	Sanitized string          `json:"sanitized" yaml:"sanitized"`
	Station   string          `json:"station" yaml:"station"`
	Time      value.Timestamp `json:"time" yaml:"time"`
	Remarks   string          `json:"remarks" yaml:"remarks"`
	StartTime value.Timestamp `json:"start_time" yaml:"start_time"`
	EndTime   value.Timestamp `json:"end_time" yaml:"end_time"`
	MaxTemp   string          `json:"max_temp,omitempty" yaml:"max_temp,omitempty"`
	MinTemp   string          `json:"min_temp,omitempty" yaml:"min_temp,omitempty"`
	Temps     []string        `json:"temps,omitempty" yaml:"temps,omitempty"`
	Alts      []string        `json:"alts,omitempty" yaml:"alts,omitempty"`
	Lines     []TafLine       `json:"forecast" yaml:"forecast"`
}

// LineTimes holds the raw DDHH start and end of a forecast line before they
// are resolved into timestamps.
type LineTimes struct {
	Type  string
	Start string
	End   string
}

// ParseTaf decodes a TAF for the given station.
func ParseTaf(stationID, txt string, opts ...Option) (*TafData, *value.Units, error) {
	o := newOptions(opts)
	format, err := station.Resolve(stationID)
	if err != nil {
		return nil, nil, err
	}
	units := value.INUnits()
	if format == station.NorthAmerican {
		units = value.NAUnits()
	}

	tokens := strings.Fields(txt)
	for len(tokens) > 0 && slices.Contains(tafHeaders, tokens[0]) {
		tokens = tokens[1:]
	}
	clean := SanitizeReportString(strings.Join(tokens, " "))
	data := &TafData{Raw: txt, Sanitized: clean}

	var rtime string
	tokens, data.Station, rtime = GetStationAndTime(strings.Fields(clean))
	data.Time = o.timestamp(rtime)

	body := SanitizeLine(strings.Join(tokens, " "))
	body, data.Remarks = SplitTafRemarks(body)

	var times []LineTimes
	for _, segment := range SplitTaf(body, o.probPolicy) {
		line, lt := parseTafLine(segment, units)
		data.Lines = append(data.Lines, line)
		times = append(times, lt)
	}
	if len(data.Lines) == 0 {
		slog.Debug("taf has no forecast lines", "station", stationID)
		return data, units, nil
	}

	last := &data.Lines[len(data.Lines)-1]
	last.Other, data.MaxTemp, data.MinTemp = GetTempMinAndMax(last.Other)
	if data.MaxTemp == "" && data.MinTemp == "" {
		first := &data.Lines[0]
		first.Other, data.MaxTemp, data.MinTemp = GetTempMinAndMax(first.Other)
	}

	start, end := times[0].Start, times[0].End
	times[0].End = ""
	data.StartTime = o.timestamp(start)
	data.EndTime = o.timestamp(end)
	times = FindMissingTafTimes(times, start, end)
	for i := range data.Lines {
		data.Lines[i].StartTime = o.timestamp(times[i].Start)
		data.Lines[i].EndTime = o.timestamp(times[i].End)
	}
	applyTafFlightRules(data.Lines)

	ident := data.Station
	if ident == "" {
		ident = stationID
	}
	if strings.HasPrefix(ident, "A") {
		last.Other, data.Temps, data.Alts = GetOceaniaTempAndAlt(last.Other)
	}
	return data, units, nil
}

// parseTafLine decodes one forecast segment. The raw times are returned so
// the caller can fill in gaps across lines.
func parseTafLine(segment string, units *value.Units) (TafLine, LineTimes) {
	line := TafLine{Raw: segment}
	wxdata, _, shear := SanitizeReportList(strings.Fields(segment), false)
	line.Sanitized = strings.Join(wxdata, " ")
	line.WindShear = shear

	var lt LineTimes
	wxdata, lt.Type, line.Probability, lt.Start, lt.End = GetTypeAndTimes(wxdata)
	line.Type = lt.Type
	wxdata, line.Wind = GetWind(wxdata, units)

	if slices.Contains(wxdata, "CAVOK") {
		line.Visibility = value.MakeNumber("CAVOK")
		wxdata = slices.DeleteFunc(wxdata, func(s string) bool { return s == "CAVOK" })
	} else {
		wxdata, line.Visibility = GetVisibility(wxdata, units)
		wxdata, line.Clouds = GetClouds(wxdata)
	}

	var altimeter string
	line.Other, altimeter, line.Icing, line.Turbulence = GetTafAltIceTurb(wxdata)
	if altimeter != "" {
		val := altimeter
		if units.Altimeter == value.UnitInHg {
			val = altimeter[:2] + "." + altimeter[2:]
		}
		line.Altimeter = value.MakeNumber(val, value.WithRepr(altimeter))
	}
	return line, lt
}

// SplitTaf splits a TAF body into forecast segments at each line signifier.
// Joining the segments with single spaces gives back the whitespace-normalised
// input.
func SplitTaf(txt string, policy ProbPolicy) []string {
	split := strings.Fields(txt)
	if len(split) == 0 {
		return nil
	}
	var lines []string
	last := 0
	for i := 1; i < len(split); i++ {
		item, prev := split[i], split[i-1]
		if !startsNewLine(item) {
			continue
		}
		// PROB30 TEMPO stays on one line
		if strings.HasPrefix(prev, "PROB") {
			continue
		}
		if policy == ProbAttach && isProb(item) && startsNewLine(prev) {
			continue
		}
		lines = append(lines, strings.Join(split[last:i], " "))
		last = i
	}
	return append(lines, strings.Join(split[last:], " "))
}

// GetTypeAndTimes pops the line type, probability and DDHH start/end times
// from the front of a forecast segment. The type defaults to FROM.
func GetTypeAndTimes(wxdata []string) ([]string, string, *value.Number, string, string) {
	wxdata = slices.Clone(wxdata)
	var (
		probability *value.Number
		start, end  string
	)
	lineType := "FROM"
	if len(wxdata) > 0 {
		switch item := wxdata[0]; {
		case isTafNewline(item):
			lineType = item
			wxdata = wxdata[1:]
			// TEMPO PROB30 2004/2009
			if len(wxdata) > 0 && isProb(wxdata[0]) {
				probability = value.MakeNumber(wxdata[0][4:])
				wxdata = wxdata[1:]
			}
		case isProb(item):
			lineType = item
			probability = value.MakeNumber(item[4:])
			wxdata = wxdata[1:]
			if len(wxdata) > 0 && isTafNewline(wxdata[0]) {
				lineType = wxdata[0]
				wxdata = wxdata[1:]
			}
		}
	}

	if len(wxdata) > 0 {
		item := wxdata[0]
		switch {
		// 2718/2724
		case len(item) == 9 && item[4] == '/' && isDigits(item[:4]) && isDigits(item[5:]):
			start, end = item[:4], item[5:]
			wxdata = wxdata[1:]
		// FM2718/2724, FM271800
		case len(item) > 7 && strings.HasPrefix(item, "FM"):
			lineType = "FROM"
			if from, to, ok := strings.Cut(item[2:], "/"); ok && isDigits(from) && isDigits(to) {
				start, end = from, to
				wxdata = wxdata[1:]
			} else if isDigits(substr(item, 2, 8)) {
				start = item[2:6]
				wxdata = wxdata[1:]
			}
			// TL272400
			if len(wxdata) > 0 && len(wxdata[0]) > 7 && strings.HasPrefix(wxdata[0], "TL") && isDigits(wxdata[0][2:8]) {
				end = wxdata[0][2:6]
				wxdata = wxdata[1:]
			}
		}
	}
	return wxdata, lineType, probability, start, end
}

// isTemporary reports whether a line type describes a temporary condition
// that does not replace the prevailing forecast.
func isTemporary(lineType string) bool {
	return lineType == "TEMPO" || isProb(lineType)
}

// FindMissingTafTimes fills in absent start and end times. A prevailing line
// starts where the previous prevailing line ended and ends where the next one
// starts. The first line takes the report start; the last prevailing line
// takes the report end.
func FindMissingTafTimes(lines []LineTimes, start, end string) []LineTimes {
	if len(lines) == 0 {
		return lines
	}
	lines = slices.Clone(lines)
	lines[0].Start = start
	lastFM := 0
	for i := range lines {
		if isTemporary(lines[i].Type) {
			continue
		}
		lastFM = i
		if lines[i].Start == "" {
			for j := i - 1; j >= 0; j-- {
				if !isTemporary(lines[j].Type) && lines[j].End != "" {
					lines[i].Start = lines[j].End
					break
				}
			}
		}
		if lines[i].End == "" {
			for j := i + 1; j < len(lines); j++ {
				if !isTemporary(lines[j].Type) && lines[j].Start != "" {
					lines[i].End = lines[j].Start
					break
				}
			}
		}
	}
	if lastFM > 0 {
		lines[lastFM].End = end
	}
	if lines[0].End == "" {
		lines[0].End = end
	}
	return lines
}

// applyTafFlightRules classifies each line. A line missing visibility or
// clouds inherits them from the closest earlier prevailing line.
func applyTafFlightRules(lines []TafLine) {
	for i := range lines {
		vis, clouds := lines[i].Visibility, lines[i].Clouds
		clear := reportsClear(lines[i].Other)
		for j := i - 1; j >= 0; j-- {
			if vis != nil && (len(clouds) > 0 || clear) {
				break
			}
			prev := lines[j]
			if isTemporary(prev.Type) {
				continue
			}
			if vis == nil {
				vis = prev.Visibility
			}
			if len(clouds) == 0 && !clear {
				if reportsClear(prev.Other) {
					clear = true
				} else {
					clouds = prev.Clouds
				}
			}
		}
		lines[i].FlightRules = Classify(vis, GetCeiling(clouds))
	}
}

func reportsClear(other []string) bool {
	return slices.Contains(other, "SKC") || slices.Contains(other, "CLR")
}
